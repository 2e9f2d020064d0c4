package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/gestao-varejo/internal/domain/customer"
	"github.com/hugohenrick/gestao-varejo/internal/domain/order"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

var orderViewColumns = []string{
	"o.id", "o.customer_id", "o.order_date", "o.notes", "o.total_amount",
	"o.tenant_id", "o.created_at", "c.name",
}

// OrderRepository implementa order.Repository
type OrderRepository struct {
	db *database.PostgresDB
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *database.PostgresDB) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrderView(row pgx.Row) (*order.View, error) {
	v := &order.View{}
	err := row.Scan(
		&v.ID,
		&v.CustomerID,
		&v.OrderDate,
		&v.Notes,
		&v.TotalAmount,
		&v.TenantID,
		&v.CreatedAt,
		&v.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *OrderRepository) views(actor pkgtenant.Actor) (database.Query, error) {
	q := database.From("orders").As("o").
		Select(orderViewColumns...).
		Join("JOIN customers c ON c.id = o.customer_id")
	return pkgtenant.FilterForRead(q, actor)
}

// Create implementa order.Repository.Create gravando cabeçalho e itens na mesma transação
func (r *OrderRepository) Create(ctx context.Context, actor pkgtenant.Actor, o *order.Order) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		if err := ensureOrderReferences(ctx, tx, actor, o); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO orders (
				id, customer_id, order_date, notes, total_amount, tenant_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			)`,
			o.ID, o.CustomerID, o.OrderDate, o.Notes, o.TotalAmount, o.TenantID, o.CreatedAt,
		)
		if err != nil {
			return translateWrite(err)
		}
		return insertItems(ctx, tx, o.Items)
	})
}

// ensureOrderReferences rejeita cliente ou produto de outro tenant
func ensureOrderReferences(ctx context.Context, tx querier, actor pkgtenant.Actor, o *order.Order) error {
	if err := ensureReference(ctx, tx, actor, "customers", o.CustomerID, customer.ErrCustomerNotFound); err != nil {
		return err
	}
	for _, it := range o.Items {
		if it.ProductID == nil || *it.ProductID == "" {
			continue
		}
		if err := ensureReference(ctx, tx, actor, "products", *it.ProductID, product.ErrProductNotFound); err != nil {
			return err
		}
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, items []order.Item) error {
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO order_items (
				id, order_id, product_id, description, quantity, cost_price, subtotal
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			)`,
			it.ID, it.OrderID, it.ProductID, it.Description, it.Quantity, it.CostPrice, it.Subtotal,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return translateWrite(err)
		}
	}
	return results.Close()
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*order.View, error) {
	q, err := r.views(actor)
	if err != nil {
		return nil, err
	}

	v, err := queryOne(ctx, r.db.Pool(), q.Where("id", id), scanOrderView, order.ErrOrderNotFound)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, []*order.View{v}); err != nil {
		return nil, err
	}
	return v, nil
}

// List implementa order.Repository.List, mais recentes primeiro
func (r *OrderRepository) List(ctx context.Context, actor pkgtenant.Actor, limit, offset int) ([]*order.View, error) {
	q, err := r.views(actor)
	if err != nil {
		return nil, err
	}

	views, err := queryAll(ctx, r.db.Pool(), pageOf(q.OrderBy("o.order_date DESC, o.created_at DESC"), limit, offset), scanOrderView)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// loadItems busca os itens de todos os pedidos em uma única consulta
func (r *OrderRepository) loadItems(ctx context.Context, views []*order.View) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]string, 0, len(views))
	byID := make(map[string]*order.View, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
		byID[v.ID] = v
		v.Items = []order.Item{}
	}

	rows, err := r.db.Pool().Query(ctx, `
		SELECT id, order_id, product_id, description, quantity, cost_price, subtotal
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY description`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("falha ao consultar itens do pedido: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (order.Item, error) {
		var it order.Item
		err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Description, &it.Quantity, &it.CostPrice, &it.Subtotal)
		return it, err
	})
	if err != nil {
		return fmt.Errorf("falha ao ler itens do pedido: %w", err)
	}

	for _, it := range items {
		if v, ok := byID[it.OrderID]; ok {
			v.Items = append(v.Items, it)
		}
	}
	return nil
}

// Count implementa order.Repository.Count
func (r *OrderRepository) Count(ctx context.Context, actor pkgtenant.Actor) (int, error) {
	q, err := pkgtenant.FilterForRead(database.From("orders"), actor)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.db.Pool(), q)
}

// Update implementa order.Repository.Update.
// Os itens antigos são apagados e os novos inseridos na mesma transação.
func (r *OrderRepository) Update(ctx context.Context, actor pkgtenant.Actor, o *order.Order) error {
	q, err := pkgtenant.FilterForRead(database.From("orders").Where("id", o.ID), actor)
	if err != nil {
		return err
	}

	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		if err := ensureOrderReferences(ctx, tx, actor, o); err != nil {
			return err
		}

		err := updateOne(ctx, tx, q, []database.Assignment{
			database.Set("customer_id", o.CustomerID),
			database.Set("order_date", o.OrderDate),
			database.Set("notes", o.Notes),
			database.Set("total_amount", o.TotalAmount),
		}, order.ErrOrderNotFound)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", o.ID); err != nil {
			return fmt.Errorf("falha ao remover itens do pedido: %w", err)
		}
		return insertItems(ctx, tx, o.Items)
	})
}

// Delete implementa order.Repository.Delete; os itens são removidos em cascata
func (r *OrderRepository) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	q, err := pkgtenant.FilterForRead(database.From("orders").Where("id", id), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, q, order.ErrOrderNotFound)
	})
}
