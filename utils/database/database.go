package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/hashicorp/go-multierror"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/migration"
	"github.com/saurabh/starter-templates/pkg/logger"
)

// DB wraps the SQL handle and the ent driver used to apply the library.
type DB struct {
	SqlDB   *sql.DB
	drv     *entsql.Driver
	dialect string
	closed  bool
}

// NewPostgresConnection opens a pooled PostgreSQL connection and pings it.
func NewPostgresConnection(cfg *config.Config) (*DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger.WithFields(map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
	}).Debug("Creating new PostgreSQL connection")

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logger.WithError(err).Error("Failed to open database connection")
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.PingTimeout)*time.Second)
	defer cancel()

	if err = sqlDB.PingContext(ctx); err != nil {
		logger.WithError(err).Error("Database ping failed")
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Failed to close database connection after ping failure")
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info("Database connection ping successful")
	return NewDB(dialect.Postgres, sqlDB), nil
}

// NewDB wraps an already opened handle for the given ent dialect.
func NewDB(dialectName string, sqlDB *sql.DB) *DB {
	return &DB{
		SqlDB:   sqlDB,
		drv:     entsql.OpenDB(dialectName, sqlDB),
		dialect: dialectName,
	}
}

// Dialect returns the ent dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// ExecScript runs a whole migration file in a single call. The file carries
// its own BEGIN/COMMIT.
func (db *DB) ExecScript(ctx context.Context, script string) error {
	if _, err := db.SqlDB.ExecContext(ctx, script); err != nil {
		logger.WithError(err).Error("Failed to execute migration script")
		return fmt.Errorf("failed to execute migration script: %w", err)
	}
	return nil
}

// Bootstrap creates the library tables when they are missing.
func (db *DB) Bootstrap(ctx context.Context) error {
	logger.Info("Ensuring library tables exist")
	if err := db.ExecScript(ctx, migration.SchemaDDL); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}

// Upsert runs the statements in one transaction and rolls back on the first failure.
func (db *DB) Upsert(ctx context.Context, stmts []migration.Statement) (err error) {
	tx, err := db.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.WithError(rbErr).Warn("Failed to roll back transaction")
			}
		}
	}()

	for i, stmt := range stmts {
		var res sql.Result
		if err = tx.Exec(ctx, stmt.Query, stmt.Args, &res); err != nil {
			return fmt.Errorf("failed to execute upsert %d: %w", i, err)
		}
		affected, _ := res.RowsAffected()
		logger.WithFields(map[string]interface{}{
			"statement": i,
			"rows":      affected,
		}).Debug("Upsert executed")
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Count returns the number of rows in table.
func (db *DB) Count(ctx context.Context, table string) (int, error) {
	query, args := entsql.Dialect(db.dialect).Select(entsql.Count("*")).From(entsql.Table(table)).Query()
	var n int
	if err := db.SqlDB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// Close closes the driver and the underlying handle. Calling it twice is a no-op.
func (db *DB) Close() error {
	if db.closed {
		logger.Debug("Database connections already closed")
		return nil
	}
	db.closed = true

	var result *multierror.Error
	if err := db.drv.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("ent driver close: %w", err))
	}
	if err := db.SqlDB.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("sql db close: %w", err))
	}
	if err := result.ErrorOrNil(); err != nil {
		logger.WithError(err).Error("Failed to close database connections")
		return err
	}

	logger.Debug("Database connections closed")
	return nil
}
