package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

type fakeRow struct {
	ok  bool
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.ok
	return nil
}

type fakeQuerier struct {
	row  fakeRow
	args []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	q.args = args
	return q.row
}

func TestVerifyLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("credenciais válidas", func(t *testing.T) {
		db := &fakeQuerier{row: fakeRow{ok: true}}
		ok, err := NewAuthenticator(db).VerifyLogin(ctx, "ana", "segredo")
		if err != nil || !ok {
			t.Fatalf("esperava true, obtido %v %v", ok, err)
		}
		if len(db.args) != 2 || db.args[0] != "ana" || db.args[1] != "segredo" {
			t.Errorf("argumentos inesperados: %v", db.args)
		}
	})

	t.Run("credenciais inválidas retornam false sem erro", func(t *testing.T) {
		ok, err := NewAuthenticator(&fakeQuerier{row: fakeRow{ok: false}}).VerifyLogin(ctx, "ana", "errada")
		if err != nil || ok {
			t.Errorf("esperava false sem erro, obtido %v %v", ok, err)
		}
	})

	t.Run("falha do banco é um erro distinto", func(t *testing.T) {
		db := &fakeQuerier{row: fakeRow{err: errors.New("conexão recusada")}}
		_, err := NewAuthenticator(db).VerifyLogin(ctx, "ana", "segredo")
		if !errors.Is(err, ErrCredentialStoreUnavailable) {
			t.Errorf("esperava ErrCredentialStoreUnavailable, obtido %v", err)
		}
	})

	t.Run("campos vazios não consultam o banco", func(t *testing.T) {
		db := &fakeQuerier{row: fakeRow{ok: true}}
		ok, err := NewAuthenticator(db).VerifyLogin(ctx, "", "")
		if ok || err != nil || db.args != nil {
			t.Errorf("consulta não deveria ser feita: %v %v %v", ok, err, db.args)
		}
	})
}
