package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/category"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

var productColumns = []string{
	"id", "name", "category_id", "cost_price", "sale_price", "quantity",
	"is_order_product", "version", "tenant_id", "created_at", "updated_at",
}

// ProductRepository implementa product.Repository
type ProductRepository struct {
	db *database.PostgresDB
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *database.PostgresDB) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	p := &product.Product{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.CategoryID,
		&p.CostPrice,
		&p.SalePrice,
		&p.Quantity,
		&p.IsOrderProduct,
		&p.Version,
		&p.TenantID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func filterProducts(q database.Query, filter product.ListFilter) database.Query {
	switch filter.Catalog {
	case product.CatalogStock:
		q = q.Where("is_order_product", false)
	case product.CatalogOrder:
		q = q.Where("is_order_product", true)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id", filter.CategoryID)
	}
	if filter.Name != "" {
		q = q.WhereOp("name", "ILIKE", "%"+filter.Name+"%")
	}
	return q
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, actor pkgtenant.Actor, p *product.Product) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		if err := ensureCategory(ctx, tx, actor, p.CategoryID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO products (
				id, name, category_id, cost_price, sale_price, quantity,
				is_order_product, version, tenant_id, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			)`,
			p.ID, p.Name, p.CategoryID, p.CostPrice, p.SalePrice, p.Quantity,
			p.IsOrderProduct, p.Version, p.TenantID, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return translateWrite(err)
		}
		return nil
	})
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*product.Product, error) {
	return findProduct(ctx, r.db.Pool(), actor, id)
}

// ensureCategory aceita produto sem categoria
func ensureCategory(ctx context.Context, tx querier, actor pkgtenant.Actor, categoryID *string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}
	return ensureReference(ctx, tx, actor, "categories", *categoryID, category.ErrCategoryNotFound)
}

func findProduct(ctx context.Context, db querier, actor pkgtenant.Actor, id string) (*product.Product, error) {
	q, err := pkgtenant.FilterForRead(database.From("products").Select(productColumns...).Where("id", id), actor)
	if err != nil {
		return nil, err
	}
	return queryOne(ctx, db, q, scanProduct, product.ErrProductNotFound)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, actor pkgtenant.Actor, filter product.ListFilter, limit, offset int) ([]*product.Product, error) {
	q, err := pkgtenant.FilterForRead(database.From("products").Select(productColumns...), actor)
	if err != nil {
		return nil, err
	}
	q = filterProducts(q, filter).OrderBy("name")
	return queryAll(ctx, r.db.Pool(), pageOf(q, limit, offset), scanProduct)
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, actor pkgtenant.Actor, filter product.ListFilter) (int, error) {
	q, err := pkgtenant.FilterForRead(database.From("products"), actor)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.db.Pool(), filterProducts(q, filter))
}

// Update implementa product.Repository.Update.
// A gravação só ocorre se a versão no banco for a mesma lida pelo cliente.
func (r *ProductRepository) Update(ctx context.Context, actor pkgtenant.Actor, p *product.Product) error {
	base, err := pkgtenant.FilterForRead(database.From("products").Where("id", p.ID), actor)
	if err != nil {
		return err
	}

	now := time.Now()
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		if err := ensureCategory(ctx, tx, actor, p.CategoryID); err != nil {
			return err
		}

		sql, args, err := base.Where("version", p.Version).BuildUpdate([]database.Assignment{
			database.Set("name", p.Name),
			database.Set("category_id", p.CategoryID),
			database.Set("cost_price", p.CostPrice),
			database.Set("sale_price", p.SalePrice),
			database.Set("quantity", p.Quantity),
			database.Set("is_order_product", p.IsOrderProduct),
			database.Set("version", p.Version+1),
			database.Set("updated_at", now),
		})
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return translateWrite(err)
		}
		if tag.RowsAffected() == 0 {
			exists, err := countRows(ctx, tx, base)
			if err != nil {
				return err
			}
			if exists == 0 {
				return product.ErrProductNotFound
			}
			return product.ErrConcurrentModification
		}

		p.Version++
		p.UpdatedAt = now
		return nil
	})
}

// Delete implementa product.Repository.Delete.
// Vendas do produto são mantidas com o produto nulo.
func (r *ProductRepository) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	q, err := pkgtenant.FilterForRead(database.From("products").Where("id", id), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, q, product.ErrProductNotFound)
	})
}

// adjustStock aplica delta ao estoque de forma condicional.
// A versão é incrementada para invalidar edições concorrentes do produto.
func adjustStock(ctx context.Context, tx querier, productID string, delta int) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE products
		SET quantity = quantity + $1, version = version + 1, updated_at = now()
		WHERE id = $2 AND quantity + $1 >= 0`,
		delta, productID,
	)
	if err != nil {
		return false, fmt.Errorf("falha ao ajustar estoque: %w", translateWrite(err))
	}
	return tag.RowsAffected() == 1, nil
}
