package repository

import (
	"context"

	"github.com/hugohenrick/gestao-varejo/internal/domain/expense"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

var expenseColumns = []string{"id", "description", "amount", "category", "expense_date", "tenant_id", "created_at"}

// ExpenseRepository implementa expense.Repository
type ExpenseRepository struct {
	db *database.PostgresDB
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db *database.PostgresDB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	e := &expense.Expense{}
	var category string
	err := row.Scan(&e.ID, &e.Description, &e.Amount, &category, &e.ExpenseDate, &e.TenantID, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	// O sinal vem sempre da categoria, nunca da coluna gravada
	e.Category = expense.Category(category)
	e.Direction = expense.DirectionOf(e.Category)
	return e, nil
}

func (r *ExpenseRepository) scoped(actor pkgtenant.Actor, filter expense.ListFilter) (database.Query, error) {
	q, err := pkgtenant.FilterForRead(database.From("expenses").Select(expenseColumns...), actor)
	if err != nil {
		return q, err
	}
	if filter.From != nil {
		q = q.WhereOp("expense_date", ">=", *filter.From)
	}
	if filter.To != nil {
		q = q.WhereOp("expense_date", "<=", *filter.To)
	}
	if filter.Category != "" {
		q = q.Where("category", string(filter.Category))
	}
	return q, nil
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, actor pkgtenant.Actor, e *expense.Expense) error {
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO expenses (
				id, description, amount, category, direction, expense_date, tenant_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8
			)`,
			e.ID, e.Description, e.Amount, string(e.Category), string(e.Direction), e.ExpenseDate, e.TenantID, e.CreatedAt,
		)
		if err != nil {
			return translateWrite(err)
		}
		return nil
	})
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*expense.Expense, error) {
	q, err := r.scoped(actor, expense.ListFilter{})
	if err != nil {
		return nil, err
	}
	return queryOne(ctx, r.db.Pool(), q.Where("id", id), scanExpense, expense.ErrExpenseNotFound)
}

// List implementa expense.Repository.List, mais recentes primeiro
func (r *ExpenseRepository) List(ctx context.Context, actor pkgtenant.Actor, filter expense.ListFilter, limit, offset int) ([]*expense.Expense, error) {
	q, err := r.scoped(actor, filter)
	if err != nil {
		return nil, err
	}
	q = q.OrderBy("expense_date DESC, created_at DESC")
	return queryAll(ctx, r.db.Pool(), pageOf(q, limit, offset), scanExpense)
}

// Count implementa expense.Repository.Count
func (r *ExpenseRepository) Count(ctx context.Context, actor pkgtenant.Actor, filter expense.ListFilter) (int, error) {
	q, err := r.scoped(actor, filter)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.db.Pool(), q)
}

// Update implementa expense.Repository.Update
func (r *ExpenseRepository) Update(ctx context.Context, actor pkgtenant.Actor, e *expense.Expense) error {
	q, err := pkgtenant.FilterForRead(database.From("expenses").Where("id", e.ID), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return updateOne(ctx, tx, q, []database.Assignment{
			database.Set("description", e.Description),
			database.Set("amount", e.Amount),
			database.Set("category", string(e.Category)),
			database.Set("direction", string(e.Direction)),
			database.Set("expense_date", e.ExpenseDate),
		}, expense.ErrExpenseNotFound)
	})
}

// Delete implementa expense.Repository.Delete
func (r *ExpenseRepository) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	q, err := pkgtenant.FilterForRead(database.From("expenses").Where("id", id), actor)
	if err != nil {
		return err
	}
	return r.db.Mutate(ctx, actor, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, q, expense.ErrExpenseNotFound)
	})
}
