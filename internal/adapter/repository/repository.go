package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier é satisfeito por *pgxpool.Pool e pgx.Tx
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// queryAll executa o SELECT e converte cada linha com scan
func queryAll[T any](ctx context.Context, db querier, q database.Query, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	sql, args, err := q.BuildSelect()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar registros: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao ler registros: %w", err)
	}
	return items, nil
}

// queryOne executa o SELECT e retorna notFound se não houver linha
func queryOne[T any](ctx context.Context, db querier, q database.Query, scan func(pgx.Row) (*T, error), notFound error) (*T, error) {
	sql, args, err := q.BuildSelect()
	if err != nil {
		return nil, err
	}

	item, err := scan(db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("falha ao buscar registro: %w", err)
	}
	return item, nil
}

// countRows conta as linhas que atendem aos filtros de q
func countRows(ctx context.Context, db querier, q database.Query) (int, error) {
	sql, args, err := q.BuildCount()
	if err != nil {
		return 0, err
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("falha ao contar registros: %w", err)
	}
	return total, nil
}

// updateOne executa o UPDATE e retorna notFound se nenhuma linha for alterada
func updateOne(ctx context.Context, tx querier, q database.Query, set []database.Assignment, notFound error) error {
	sql, args, err := q.BuildUpdate(set)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return translateWrite(err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// deleteOne executa o DELETE e retorna notFound se nenhuma linha for removida
func deleteOne(ctx context.Context, tx querier, q database.Query, notFound error) error {
	sql, args, err := q.BuildDelete()
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return translateDelete(err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// pageOf converte limit zero em consulta sem paginação
func pageOf(q database.Query, limit, offset int) database.Query {
	if limit <= 0 {
		return q
	}
	return q.Page(limit, offset)
}

// ensureReference confere que a linha id de table existe e pertence a um
// tenant que o ator enxerga. Caso contrário retorna notFound.
func ensureReference(ctx context.Context, db querier, actor pkgtenant.Actor, table, id string, notFound error) error {
	sql, args, err := database.From(table).Select("tenant_id").Where("id", id).BuildSelect()
	if err != nil {
		return err
	}

	var rowTenant *string
	if err := db.QueryRow(ctx, sql, args...).Scan(&rowTenant); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound
		}
		return fmt.Errorf("falha ao verificar referência: %w", err)
	}
	if !pkgtenant.CanAccess(actor, rowTenant) {
		return notFound
	}
	return nil
}
