package repository

import (
	"errors"
	"testing"

	"github.com/hugohenrick/gestao-varejo/internal/domain/category"
	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/hugohenrick/gestao-varejo/internal/domain/tenant"
	"github.com/hugohenrick/gestao-varejo/internal/domain/user"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateWrite(t *testing.T) {
	cases := []struct {
		name string
		err  *pgconn.PgError
		want error
	}{
		{"usuário duplicado", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "authorized_users_username_key"}, user.ErrDuplicateUsername},
		{"estoque negativo", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "products_quantity_check"}, sale.ErrInsufficientStock},
		{"categoria inexistente", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "products_category_id_fkey"}, category.ErrCategoryNotFound},
		{"tenant inexistente", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "customers_tenant_id_fkey"}, tenant.ErrTenantNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := translateWrite(tc.err); !errors.Is(got, tc.want) {
				t.Errorf("esperava %v, obtido %v", tc.want, got)
			}
		})
	}
}

func TestTranslateDelete(t *testing.T) {
	t.Run("tenant com usuários", func(t *testing.T) {
		err := translateDelete(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "authorized_users_tenant_id_fkey"})
		if !errors.Is(err, tenant.ErrTenantHasUsers) {
			t.Errorf("esperava ErrTenantHasUsers, obtido %v", err)
		}
	})

	t.Run("categoria em uso", func(t *testing.T) {
		err := translateDelete(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "products_category_id_fkey"})
		if !errors.Is(err, category.ErrCategoryInUse) {
			t.Errorf("esperava ErrCategoryInUse, obtido %v", err)
		}
	})

	t.Run("tenant com outros registros", func(t *testing.T) {
		err := translateDelete(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "sales_tenant_id_fkey"})
		if !errors.Is(err, tenant.ErrTenantInUse) {
			t.Errorf("esperava ErrTenantInUse, obtido %v", err)
		}
	})

	t.Run("restrição desconhecida vira conflito genérico", func(t *testing.T) {
		err := translateDelete(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "nova_tabela_fkey"})
		if !errors.Is(err, ErrConstraintViolation) || !errors.Is(err, domain.ErrConflict) {
			t.Errorf("esperava conflito genérico, obtido %v", err)
		}
	})

	t.Run("erro que não é do postgres é preservado", func(t *testing.T) {
		base := errors.New("conexão perdida")
		if err := translateDelete(base); !errors.Is(err, base) || domain.KindOf(err) != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})
}
