package repository

import (
	"context"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/user"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

var userColumns = []string{"id", "username", "password_hash", "tenant_id", "is_admin", "created_at", "updated_at"}

// UserRepository implementa a interface user.Repository usando PostgreSQL
type UserRepository struct {
	db *database.PostgresDB
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *database.PostgresDB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.TenantID, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, actor pkgtenant.Actor, u *user.User) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO authorized_users (
				id, username, password_hash, tenant_id, is_admin, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			)`,
			u.ID, u.Username, u.PasswordHash, u.TenantID, u.IsAdmin, u.CreatedAt, u.UpdatedAt,
		)
		if err != nil {
			return translateWrite(err)
		}
		return nil
	})
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	q := database.From("authorized_users").Select(userColumns...).Where("id", id)
	return queryOne(ctx, r.db.Pool(), q, scanUser, user.ErrUserNotFound)
}

// FindByUsername implementa user.Repository.FindByUsername
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	q := database.From("authorized_users").Select(userColumns...).Where("username", username)
	return queryOne(ctx, r.db.Pool(), q, scanUser, user.ErrUserNotFound)
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	q := database.From("authorized_users").Select(userColumns...).OrderBy("username")
	return queryAll(ctx, r.db.Pool(), pageOf(q, limit, offset), scanUser)
}

// Count implementa user.Repository.Count
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db.Pool(), database.From("authorized_users"))
}

// CountAdmins implementa user.Repository.CountAdmins
func (r *UserRepository) CountAdmins(ctx context.Context) (int, error) {
	return countRows(ctx, r.db.Pool(), database.From("authorized_users").Where("is_admin", true))
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, actor pkgtenant.Actor, u *user.User) error {
	u.UpdatedAt = time.Now()
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		q := database.From("authorized_users").Where("id", u.ID)
		return updateOne(ctx, tx, q, []database.Assignment{
			database.Set("username", u.Username),
			database.Set("tenant_id", u.TenantID),
			database.Set("is_admin", u.IsAdmin),
			database.Set("updated_at", u.UpdatedAt),
		}, user.ErrUserNotFound)
	})
}

// UpdatePassword implementa user.Repository.UpdatePassword
func (r *UserRepository) UpdatePassword(ctx context.Context, actor pkgtenant.Actor, id, hashedPassword string) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		q := database.From("authorized_users").Where("id", id)
		return updateOne(ctx, tx, q, []database.Assignment{
			database.Set("password_hash", hashedPassword),
			database.Set("updated_at", time.Now()),
		}, user.ErrUserNotFound)
	})
}

// Delete implementa user.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, database.From("authorized_users").Where("id", id), user.ErrUserNotFound)
	})
}
