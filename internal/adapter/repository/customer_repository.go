package repository

import (
	"context"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/customer"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

var customerColumns = []string{"id", "name", "phone", "email", "address", "notes", "tenant_id", "created_at", "updated_at"}

// CustomerRepository implementa customer.Repository usando PostgreSQL
type CustomerRepository struct {
	db *database.PostgresDB
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *database.PostgresDB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	c := &customer.Customer{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.Notes,
		&c.TenantID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) scoped(actor pkgtenant.Actor) (database.Query, error) {
	return pkgtenant.FilterForRead(database.From("customers").Select(customerColumns...), actor)
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, actor pkgtenant.Actor, c *customer.Customer) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO customers (
				id, name, phone, email, address, notes, tenant_id, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9
			)`,
			c.ID, c.Name, c.Phone, c.Email, c.Address, c.Notes, c.TenantID, c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return translateWrite(err)
		}
		return nil
	})
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*customer.Customer, error) {
	q, err := r.scoped(actor)
	if err != nil {
		return nil, err
	}
	return queryOne(ctx, r.db.Pool(), q.Where("id", id), scanCustomer, customer.ErrCustomerNotFound)
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, actor pkgtenant.Actor, limit, offset int) ([]*customer.Customer, error) {
	q, err := r.scoped(actor)
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.db.Pool(), pageOf(q.OrderBy("name"), limit, offset), scanCustomer)
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context, actor pkgtenant.Actor) (int, error) {
	q, err := r.scoped(actor)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.db.Pool(), q)
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, actor pkgtenant.Actor, c *customer.Customer) error {
	q, err := pkgtenant.FilterForRead(database.From("customers").Where("id", c.ID), actor)
	if err != nil {
		return err
	}
	c.UpdatedAt = time.Now()
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return updateOne(ctx, tx, q, []database.Assignment{
			database.Set("name", c.Name),
			database.Set("phone", c.Phone),
			database.Set("email", c.Email),
			database.Set("address", c.Address),
			database.Set("notes", c.Notes),
			database.Set("updated_at", c.UpdatedAt),
		}, customer.ErrCustomerNotFound)
	})
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	q, err := pkgtenant.FilterForRead(database.From("customers").Where("id", id), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, q, customer.ErrCustomerNotFound)
	})
}
