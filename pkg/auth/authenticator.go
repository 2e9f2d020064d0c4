package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrCredentialStoreUnavailable indica falha ao consultar o banco, não credencial inválida
var ErrCredentialStoreUnavailable = errors.New("não foi possível verificar as credenciais")

// RowQuerier é satisfeito por *pgxpool.Pool
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Authenticator delega a comparação de senha à função verify_login do banco.
// A aplicação nunca lê nem compara o hash.
type Authenticator struct {
	db RowQuerier
}

// NewAuthenticator cria um novo Authenticator
func NewAuthenticator(db RowQuerier) *Authenticator {
	return &Authenticator{db: db}
}

// VerifyLogin retorna false para credenciais inválidas e erro apenas quando o banco falha
func (a *Authenticator) VerifyLogin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	var ok bool
	if err := a.db.QueryRow(ctx, "SELECT verify_login($1, $2)", username, password).Scan(&ok); err != nil {
		return false, fmt.Errorf("%w: %v", ErrCredentialStoreUnavailable, err)
	}
	return ok, nil
}
