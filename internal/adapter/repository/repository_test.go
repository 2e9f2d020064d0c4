package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hugohenrick/gestao-varejo/internal/domain/customer"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

type missingRow struct{}

func (missingRow) Scan(...any) error { return pgx.ErrNoRows }

// tenantQuerier responde ao SELECT de tenant_id com a linha configurada
type tenantQuerier struct {
	querier
	row pgx.Row
	sql string
}

func (q *tenantQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.sql = sql
	return q.row
}

func TestEnsureReference(t *testing.T) {
	ctx := context.Background()
	t1, t2 := "T1", "T2"
	loja := pkgtenant.Actor{UserID: "U1", Username: "ana", TenantID: "T1"}

	cases := []struct {
		name  string
		actor pkgtenant.Actor
		row   pgx.Row
		want  error
	}{
		{"mesmo tenant", loja, fakeRow{&t1}, nil},
		{"outro tenant", loja, fakeRow{&t2}, customer.ErrCustomerNotFound},
		{"linha sem tenant", loja, fakeRow{(*string)(nil)}, customer.ErrCustomerNotFound},
		{"inexistente", loja, missingRow{}, customer.ErrCustomerNotFound},
		{"administrador enxerga outro tenant", admin, fakeRow{&t2}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := &tenantQuerier{row: c.row}
			err := ensureReference(ctx, q, c.actor, "customers", "C1", customer.ErrCustomerNotFound)
			if !errors.Is(err, c.want) {
				t.Errorf("erro = %v, esperado %v", err, c.want)
			}
			if !strings.HasPrefix(q.sql, "SELECT tenant_id FROM customers WHERE id = $1") {
				t.Errorf("consulta inesperada: %s", q.sql)
			}
		})
	}
}
