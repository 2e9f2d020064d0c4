package repository

import (
	"context"

	"github.com/hugohenrick/gestao-varejo/internal/domain/customer"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/internal/domain/productorder"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var productOrderViewColumns = []string{
	"r.id", "r.product_id", "r.customer_id", "r.quantity", "r.cost_price", "r.sale_price",
	"r.status", "r.request_date", "r.notes", "r.tenant_id", "r.created_at",
	"p.name", "c.name", "p.cost_price", "p.sale_price",
}

// ProductOrderRepository implementa productorder.Repository
type ProductOrderRepository struct {
	db *database.PostgresDB
}

// NewProductOrderRepository cria uma nova instância de ProductOrderRepository
func NewProductOrderRepository(db *database.PostgresDB) *ProductOrderRepository {
	return &ProductOrderRepository{db: db}
}

func scanProductOrderView(row pgx.Row) (*productorder.View, error) {
	v := &productorder.View{}
	var (
		cost, sale               decimal.NullDecimal
		productCost, productSale decimal.Decimal
		status                   string
	)
	err := row.Scan(
		&v.ID,
		&v.ProductID,
		&v.CustomerID,
		&v.Quantity,
		&cost,
		&sale,
		&status,
		&v.RequestDate,
		&v.Notes,
		&v.TenantID,
		&v.CreatedAt,
		&v.ProductName,
		&v.CustomerName,
		&productCost,
		&productSale,
	)
	if err != nil {
		return nil, err
	}

	if cost.Valid {
		v.CostPrice = &cost.Decimal
	}
	if sale.Valid {
		v.SalePrice = &sale.Decimal
	}
	v.Status = productorder.Status(status)
	v.EffectiveCostPrice, v.EffectiveSalePrice = v.EffectivePrices(productCost, productSale)
	return v, nil
}

func (r *ProductOrderRepository) views(actor pkgtenant.Actor, filter productorder.ListFilter) (database.Query, error) {
	q := database.From("product_order_requests").As("r").
		Select(productOrderViewColumns...).
		Join("JOIN products p ON p.id = r.product_id").
		Join("JOIN customers c ON c.id = r.customer_id")

	q, err := pkgtenant.FilterForRead(q, actor)
	if err != nil {
		return q, err
	}
	if filter.Status != "" {
		q = q.Where("status", string(filter.Status))
	}
	return q, nil
}

// Create implementa productorder.Repository.Create
func (r *ProductOrderRepository) Create(ctx context.Context, actor pkgtenant.Actor, req *productorder.Request) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		if err := ensureRequestReferences(ctx, tx, actor, req); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO product_order_requests (
				id, product_id, customer_id, quantity, cost_price, sale_price,
				status, request_date, notes, tenant_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			)`,
			req.ID, req.ProductID, req.CustomerID, req.Quantity, req.CostPrice, req.SalePrice,
			string(req.Status), req.RequestDate, req.Notes, req.TenantID, req.CreatedAt,
		)
		if err != nil {
			return translateWrite(err)
		}
		return nil
	})
}

// FindByID implementa productorder.Repository.FindByID
func (r *ProductOrderRepository) FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*productorder.View, error) {
	q, err := r.views(actor, productorder.ListFilter{})
	if err != nil {
		return nil, err
	}
	return queryOne(ctx, r.db.Pool(), q.Where("id", id), scanProductOrderView, productorder.ErrRequestNotFound)
}

// List implementa productorder.Repository.List
func (r *ProductOrderRepository) List(ctx context.Context, actor pkgtenant.Actor, filter productorder.ListFilter, limit, offset int) ([]*productorder.View, error) {
	q, err := r.views(actor, filter)
	if err != nil {
		return nil, err
	}
	q = q.OrderBy("r.request_date DESC, r.created_at DESC")
	return queryAll(ctx, r.db.Pool(), pageOf(q, limit, offset), scanProductOrderView)
}

// Count implementa productorder.Repository.Count
func (r *ProductOrderRepository) Count(ctx context.Context, actor pkgtenant.Actor, filter productorder.ListFilter) (int, error) {
	q, err := pkgtenant.FilterForRead(database.From("product_order_requests"), actor)
	if err != nil {
		return 0, err
	}
	if filter.Status != "" {
		q = q.Where("status", string(filter.Status))
	}
	return countRows(ctx, r.db.Pool(), q)
}

// Update implementa productorder.Repository.Update
func (r *ProductOrderRepository) Update(ctx context.Context, actor pkgtenant.Actor, req *productorder.Request) error {
	q, err := pkgtenant.FilterForRead(database.From("product_order_requests").Where("id", req.ID), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		if err := ensureRequestReferences(ctx, tx, actor, req); err != nil {
			return err
		}
		return updateOne(ctx, tx, q, []database.Assignment{
			database.Set("product_id", req.ProductID),
			database.Set("customer_id", req.CustomerID),
			database.Set("quantity", req.Quantity),
			database.Set("cost_price", req.CostPrice),
			database.Set("sale_price", req.SalePrice),
			database.Set("status", string(req.Status)),
			database.Set("request_date", req.RequestDate),
			database.Set("notes", req.Notes),
		}, productorder.ErrRequestNotFound)
	})
}

// UpdateStatus implementa productorder.Repository.UpdateStatus
func (r *ProductOrderRepository) UpdateStatus(ctx context.Context, actor pkgtenant.Actor, id string, status productorder.Status) error {
	q, err := pkgtenant.FilterForRead(database.From("product_order_requests").Where("id", id), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return updateOne(ctx, tx, q, []database.Assignment{
			database.Set("status", string(status)),
		}, productorder.ErrRequestNotFound)
	})
}

// Delete implementa productorder.Repository.Delete
func (r *ProductOrderRepository) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	q, err := pkgtenant.FilterForRead(database.From("product_order_requests").Where("id", id), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, q, productorder.ErrRequestNotFound)
	})
}

func ensureRequestReferences(ctx context.Context, tx querier, actor pkgtenant.Actor, req *productorder.Request) error {
	if err := ensureReference(ctx, tx, actor, "products", req.ProductID, product.ErrProductNotFound); err != nil {
		return err
	}
	return ensureReference(ctx, tx, actor, "customers", req.CustomerID, customer.ErrCustomerNotFound)
}
