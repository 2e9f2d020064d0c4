package repository

import (
	"context"

	"github.com/hugohenrick/gestao-varejo/internal/domain/audit"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
)

var auditColumns = []string{"id", "table_name", "operation", "record_id", "old_data", "new_data", "username", "created_at"}

// AuditRepository lê o log gravado pelos gatilhos do banco
type AuditRepository struct {
	db *database.PostgresDB
}

// NewAuditRepository cria uma nova instância de AuditRepository
func NewAuditRepository(db *database.PostgresDB) *AuditRepository {
	return &AuditRepository{db: db}
}

func scanAuditEntry(row pgx.Row) (*audit.Entry, error) {
	e := &audit.Entry{}
	var operation string
	var oldData, newData []byte
	err := row.Scan(&e.ID, &e.TableName, &operation, &e.RecordID, &oldData, &newData, &e.Username, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Operation = audit.Operation(operation)
	e.OldData = oldData
	e.NewData = newData
	return e, nil
}

func (r *AuditRepository) query(actor pkgtenant.Actor, filter audit.Filter) (database.Query, error) {
	if err := pkgtenant.RequireAdmin(actor); err != nil {
		return database.Query{}, err
	}

	q := database.From("audit_log").Select(auditColumns...)
	if filter.Table != "" {
		q = q.Where("table_name", filter.Table)
	}
	if filter.Operation != "" {
		q = q.Where("operation", string(filter.Operation))
	}
	if filter.Username != "" {
		q = q.Where("username", filter.Username)
	}
	if filter.From != nil {
		q = q.WhereOp("created_at", ">=", *filter.From)
	}
	if filter.To != nil {
		q = q.WhereOp("created_at", "<=", *filter.To)
	}
	return q, nil
}

// List implementa audit.Repository.List, mais recentes primeiro
func (r *AuditRepository) List(ctx context.Context, actor pkgtenant.Actor, filter audit.Filter, limit, offset int) ([]*audit.Entry, error) {
	q, err := r.query(actor, filter)
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.db.Pool(), pageOf(q.OrderBy("created_at DESC, id DESC"), limit, offset), scanAuditEntry)
}

// Count implementa audit.Repository.Count
func (r *AuditRepository) Count(ctx context.Context, actor pkgtenant.Actor, filter audit.Filter) (int, error) {
	q, err := r.query(actor, filter)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.db.Pool(), q)
}
