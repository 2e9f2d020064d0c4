package repository

import (
	"context"

	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var saleColumns = []string{
	"id", "customer_id", "product_id", "quantity", "unit_price",
	"total_price", "sale_date", "paid", "tenant_id", "created_at",
}

var saleViewColumns = []string{
	"s.id", "s.customer_id", "s.product_id", "s.quantity", "s.unit_price",
	"s.total_price", "s.sale_date", "s.paid", "s.tenant_id", "s.created_at",
	"p.name", "c.name",
}

// SaleRepository implementa sale.Repository e sale.UnitOfWork
type SaleRepository struct {
	db *database.PostgresDB
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *database.PostgresDB) *SaleRepository {
	return &SaleRepository{db: db}
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	s := &sale.Sale{}
	err := row.Scan(
		&s.ID,
		&s.CustomerID,
		&s.ProductID,
		&s.Quantity,
		&s.UnitPrice,
		&s.TotalPrice,
		&s.SaleDate,
		&s.Paid,
		&s.TenantID,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func scanSaleView(row pgx.Row) (*sale.View, error) {
	v := &sale.View{}
	err := row.Scan(
		&v.ID,
		&v.CustomerID,
		&v.ProductID,
		&v.Quantity,
		&v.UnitPrice,
		&v.TotalPrice,
		&v.SaleDate,
		&v.Paid,
		&v.TenantID,
		&v.CreatedAt,
		&v.ProductName,
		&v.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *SaleRepository) views(actor pkgtenant.Actor, filter sale.ListFilter) (database.Query, error) {
	q := database.From("sales").As("s").
		Select(saleViewColumns...).
		Join("LEFT JOIN products p ON p.id = s.product_id").
		Join("JOIN customers c ON c.id = s.customer_id")

	q, err := pkgtenant.FilterForRead(q, actor)
	if err != nil {
		return q, err
	}

	if filter.From != nil {
		q = q.WhereOp("sale_date", ">=", *filter.From)
	}
	if filter.To != nil {
		q = q.WhereOp("sale_date", "<=", *filter.To)
	}
	if filter.CustomerID != "" {
		q = q.Where("customer_id", filter.CustomerID)
	}
	if filter.ProductID != "" {
		q = q.Where("product_id", filter.ProductID)
	}
	return q, nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*sale.View, error) {
	q, err := r.views(actor, sale.ListFilter{})
	if err != nil {
		return nil, err
	}
	return queryOne(ctx, r.db.Pool(), q.Where("id", id), scanSaleView, sale.ErrSaleNotFound)
}

// List implementa sale.Repository.List, mais recentes primeiro
func (r *SaleRepository) List(ctx context.Context, actor pkgtenant.Actor, filter sale.ListFilter, limit, offset int) ([]*sale.View, error) {
	q, err := r.views(actor, filter)
	if err != nil {
		return nil, err
	}
	q = q.OrderBy("s.sale_date DESC, s.created_at DESC")
	return queryAll(ctx, r.db.Pool(), pageOf(q, limit, offset), scanSaleView)
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context, actor pkgtenant.Actor, filter sale.ListFilter) (int, error) {
	q, err := r.views(actor, filter)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.db.Pool(), q)
}

// Within implementa sale.UnitOfWork.
// Todas as operações de fn usam a mesma transação, identificada pelo ator.
func (r *SaleRepository) Within(ctx context.Context, actor pkgtenant.Actor, fn func(tx sale.Tx) error) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return fn(&saleTx{tx: tx, actor: actor})
	})
}

// saleTx implementa sale.Tx sobre uma transação pgx
type saleTx struct {
	tx    pgx.Tx
	actor pkgtenant.Actor
}

func (t *saleTx) FindProduct(ctx context.Context, id string) (*product.Product, error) {
	return findProduct(ctx, t.tx, t.actor, id)
}

func (t *saleTx) CustomerExists(ctx context.Context, id string) (bool, error) {
	q, err := pkgtenant.FilterForRead(database.From("customers").Where("id", id), t.actor)
	if err != nil {
		return false, err
	}
	n, err := countRows(ctx, t.tx, q)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t *saleTx) FindSale(ctx context.Context, id string) (*sale.Sale, error) {
	q, err := pkgtenant.FilterForRead(database.From("sales").Select(saleColumns...).Where("id", id), t.actor)
	if err != nil {
		return nil, err
	}
	return queryOne(ctx, t.tx, q, scanSale, sale.ErrSaleNotFound)
}

func (t *saleTx) AdjustStock(ctx context.Context, productID string, delta int) (bool, error) {
	return adjustStock(ctx, t.tx, productID, delta)
}

func (t *saleTx) SetSalePrice(ctx context.Context, productID string, price decimal.Decimal) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE products
		SET sale_price = $1, version = version + 1, updated_at = now()
		WHERE id = $2`,
		price, productID,
	)
	if err != nil {
		return translateWrite(err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (t *saleTx) InsertSale(ctx context.Context, s *sale.Sale) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO sales (
			id, customer_id, product_id, quantity, unit_price,
			total_price, sale_date, paid, tenant_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`,
		s.ID, s.CustomerID, s.ProductID, s.Quantity, s.UnitPrice,
		s.TotalPrice, s.SaleDate, s.Paid, s.TenantID, s.CreatedAt,
	)
	if err != nil {
		return translateWrite(err)
	}
	return nil
}

func (t *saleTx) UpdateSale(ctx context.Context, s *sale.Sale) error {
	q := database.From("sales").Where("id", s.ID)
	return updateOne(ctx, t.tx, q, []database.Assignment{
		database.Set("customer_id", s.CustomerID),
		database.Set("quantity", s.Quantity),
		database.Set("unit_price", s.UnitPrice),
		database.Set("total_price", s.TotalPrice),
		database.Set("sale_date", s.SaleDate),
		database.Set("paid", s.Paid),
	}, sale.ErrSaleNotFound)
}

func (t *saleTx) DeleteSale(ctx context.Context, id string) error {
	return deleteOne(ctx, t.tx, database.From("sales").Where("id", id), sale.ErrSaleNotFound)
}
