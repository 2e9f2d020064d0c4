package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/gestao-varejo/pkg/config"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionUserSetting é a variável de sessão lida pelo trigger de auditoria
const SessionUserSetting = "app.current_user"

// ErrMissingActor ocorre quando uma escrita é tentada sem usuário identificado
var ErrMissingActor = errors.New("usuário não identificado para auditoria")

// PostgresDB gerencia a conexão com o PostgreSQL
type PostgresDB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// NewPostgresDB cria uma nova conexão com o banco de dados PostgreSQL
func NewPostgresDB(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar configuração do pool: %w", err)
	}

	// Ajustar configurações do pool
	poolConfig.MaxConns = cfg.MaxConnections
	poolConfig.MinConns = cfg.MinConnections
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao verificar conexão com o banco de dados: %w", err)
	}

	return NewPostgresDBFromPool(pool, log), nil
}

// NewPostgresDBFromPool encapsula um pool já criado
func NewPostgresDBFromPool(pool *pgxpool.Pool, log logger.Logger) *PostgresDB {
	return &PostgresDB{pool: pool, logger: log}
}

// Pool retorna o pool para leituras
func (db *PostgresDB) Pool() *pgxpool.Pool {
	return db.pool
}

// Ping verifica a conexão
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close fecha o pool de conexões
func (db *PostgresDB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Transaction executa uma função dentro de uma transação
func (db *PostgresDB) Transaction(ctx context.Context, txFunc func(tx pgx.Tx) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	if err := txFunc(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			db.logger.Error("erro ao fazer rollback", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// Mutate executa uma escrita em transação identificada pelo usuário do ator.
// A escrita é abortada se o usuário não puder ser registrado na sessão.
func (db *PostgresDB) Mutate(ctx context.Context, actor tenant.Actor, txFunc func(tx pgx.Tx) error) error {
	if actor.Username == "" {
		return ErrMissingActor
	}

	return db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := StampSession(ctx, tx, actor.Username); err != nil {
			return err
		}
		return txFunc(tx)
	})
}

// Execer é satisfeito por pgx.Tx, pgx.Conn e pgxpool.Pool
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// StampSession grava o usuário na variável local da transação
func StampSession(ctx context.Context, tx Execer, username string) error {
	if username == "" {
		return ErrMissingActor
	}
	if _, err := tx.Exec(ctx, "SELECT set_config($1, $2, true)", SessionUserSetting, username); err != nil {
		return fmt.Errorf("erro ao registrar usuário da sessão: %w", err)
	}
	return nil
}
