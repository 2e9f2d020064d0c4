package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/gestao-varejo/internal/domain/tenant"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

var tenantColumns = []string{"id", "name", "created_at"}

// TenantRepository implementa a interface tenant.Repository
type TenantRepository struct {
	db *database.PostgresDB
}

// NewTenantRepository cria uma nova instância de TenantRepository
func NewTenantRepository(db *database.PostgresDB) *TenantRepository {
	return &TenantRepository{
		db: db,
	}
}

func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	t := &tenant.Tenant{}
	if err := row.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

// Create implementa tenant.Repository.Create
func (r *TenantRepository) Create(ctx context.Context, actor pkgtenant.Actor, t *tenant.Tenant) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO tenants (id, name, created_at) VALUES ($1, $2, $3)`,
			t.ID, t.Name, t.CreatedAt,
		)
		if err != nil {
			return translateWrite(err)
		}
		return nil
	})
}

// FindByID implementa tenant.Repository.FindByID
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	q := database.From("tenants").Select(tenantColumns...).Where("id", id)
	return queryOne(ctx, r.db.Pool(), q, scanTenant, tenant.ErrTenantNotFound)
}

// List implementa tenant.Repository.List
func (r *TenantRepository) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	q := database.From("tenants").Select(tenantColumns...).OrderBy("name")
	return queryAll(ctx, r.db.Pool(), pageOf(q, limit, offset), scanTenant)
}

// Count implementa tenant.Repository.Count
func (r *TenantRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db.Pool(), database.From("tenants"))
}

// Update implementa tenant.Repository.Update
func (r *TenantRepository) Update(ctx context.Context, actor pkgtenant.Actor, t *tenant.Tenant) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		q := database.From("tenants").Where("id", t.ID)
		return updateOne(ctx, tx, q, []database.Assignment{database.Set("name", t.Name)}, tenant.ErrTenantNotFound)
	})
}

// Delete implementa tenant.Repository.Delete.
// Tenants com usuários vinculados não podem ser removidos.
func (r *TenantRepository) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		users, err := countRows(ctx, tx, database.From("authorized_users").Where("tenant_id", id))
		if err != nil {
			return err
		}
		if users > 0 {
			return tenant.ErrTenantHasUsers
		}

		return deleteOne(ctx, tx, database.From("tenants").Where("id", id), tenant.ErrTenantNotFound)
	})
}

// Exists implementa tenant.Repository.Exists
func (r *TenantRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar tenant: %w", err)
	}
	return exists, nil
}
