package repository

import (
	"context"

	"github.com/hugohenrick/gestao-varejo/internal/domain/category"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

var categoryColumns = []string{"id", "name", "tenant_id", "created_at"}

// CategoryRepository implementa category.Repository
type CategoryRepository struct {
	db *database.PostgresDB
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *database.PostgresDB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	c := &category.Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.TenantID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) scoped(actor pkgtenant.Actor) (database.Query, error) {
	return pkgtenant.FilterForRead(database.From("categories").Select(categoryColumns...), actor)
}

// Create implementa category.Repository.Create
func (r *CategoryRepository) Create(ctx context.Context, actor pkgtenant.Actor, c *category.Category) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO categories (id, name, tenant_id, created_at) VALUES ($1, $2, $3, $4)`,
			c.ID, c.Name, c.TenantID, c.CreatedAt,
		)
		if err != nil {
			return translateWrite(err)
		}
		return nil
	})
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*category.Category, error) {
	q, err := r.scoped(actor)
	if err != nil {
		return nil, err
	}
	return queryOne(ctx, r.db.Pool(), q.Where("id", id), scanCategory, category.ErrCategoryNotFound)
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context, actor pkgtenant.Actor, limit, offset int) ([]*category.Category, error) {
	q, err := r.scoped(actor)
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.db.Pool(), pageOf(q.OrderBy("name"), limit, offset), scanCategory)
}

// Count implementa category.Repository.Count
func (r *CategoryRepository) Count(ctx context.Context, actor pkgtenant.Actor) (int, error) {
	q, err := r.scoped(actor)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.db.Pool(), q)
}

// Update implementa category.Repository.Update
func (r *CategoryRepository) Update(ctx context.Context, actor pkgtenant.Actor, c *category.Category) error {
	q, err := pkgtenant.FilterForRead(database.From("categories").Where("id", c.ID), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return updateOne(ctx, tx, q, []database.Assignment{database.Set("name", c.Name)}, category.ErrCategoryNotFound)
	})
}

// Delete implementa category.Repository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	q, err := pkgtenant.FilterForRead(database.From("categories").Where("id", id), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, q, category.ErrCategoryNotFound)
	})
}
