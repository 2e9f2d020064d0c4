package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/gestao-varejo/internal/domain/category"
	"github.com/hugohenrick/gestao-varejo/internal/domain/customer"
	"github.com/hugohenrick/gestao-varejo/internal/domain/expense"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/internal/domain/productorder"
	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/hugohenrick/gestao-varejo/internal/domain/tenant"
	"github.com/hugohenrick/gestao-varejo/internal/domain/user"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de erro do PostgreSQL tratados pelo repositório
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// ErrConstraintViolation é usado para restrições sem tradução específica
var ErrConstraintViolation = domain.NewError(domain.ErrConflict, "operação viola uma restrição dos dados cadastrados")

// Violações em INSERT/UPDATE: registro referenciado inexistente, duplicidade ou valor fora da regra
var writeViolations = map[string]error{
	"authorized_users_username_key":           user.ErrDuplicateUsername,
	"authorized_users_tenant_required":        user.ErrTenantRequired,
	"products_category_id_fkey":               category.ErrCategoryNotFound,
	"products_quantity_check":                 sale.ErrInsufficientStock,
	"products_prices_check":                   product.ErrNegativePrice,
	"sales_customer_id_fkey":                  customer.ErrCustomerNotFound,
	"sales_product_id_fkey":                   product.ErrProductNotFound,
	"sales_quantity_check":                    sale.ErrInvalidQuantity,
	"orders_customer_id_fkey":                 customer.ErrCustomerNotFound,
	"order_items_product_id_fkey":             product.ErrProductNotFound,
	"product_order_requests_product_id_fkey":  product.ErrProductNotFound,
	"product_order_requests_customer_id_fkey": customer.ErrCustomerNotFound,
	"product_order_requests_quantity_check":   productorder.ErrInvalidQuantity,
	"product_order_requests_status_check":     productorder.ErrInvalidStatus,
	"expenses_amount_check":                   expense.ErrInvalidAmount,
}

// Violações em DELETE: o registro ainda é referenciado
var deleteViolations = map[string]error{
	"authorized_users_tenant_id_fkey":         tenant.ErrTenantHasUsers,
	"products_category_id_fkey":               category.ErrCategoryInUse,
	"sales_customer_id_fkey":                  customer.ErrCustomerInUse,
	"orders_customer_id_fkey":                 customer.ErrCustomerInUse,
	"product_order_requests_customer_id_fkey": customer.ErrCustomerInUse,
	"product_order_requests_product_id_fkey":  product.ErrProductInUse,
}

// translateWrite converte violações de restrição de escrita em erros de domínio
func translateWrite(err error) error {
	return translate(err, writeViolations, tenant.ErrTenantNotFound)
}

// translateDelete converte violações de chave estrangeira em exclusões em erros de domínio
func translateDelete(err error) error {
	return translate(err, deleteViolations, tenant.ErrTenantInUse)
}

func translate(err error, known map[string]error, tenantFK error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("erro de banco de dados: %w", err)
	}

	switch pgErr.Code {
	case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation:
		if mapped, ok := known[pgErr.ConstraintName]; ok {
			return mapped
		}
		if strings.HasSuffix(pgErr.ConstraintName, "_tenant_id_fkey") {
			return tenantFK
		}
		return fmt.Errorf("%w (%s)", ErrConstraintViolation, pgErr.ConstraintName)
	case pgNotNullViolation:
		return domain.Validation(fmt.Sprintf("campo obrigatório não informado: %s", pgErr.ColumnName))
	}
	return fmt.Errorf("erro de banco de dados: %w", err)
}
