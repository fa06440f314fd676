package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a database/sql connection pool together with the driver specific
// pieces every repository needs: a query builder with the right placeholder
// format and an error classifier.
type DB struct {
	*sql.DB
	driver             string
	queries            sqlQueries
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// retryDelays are the pauses before each attempt of a retried operation.
var retryDelays = []time.Duration{0, 100 * time.Millisecond, 300 * time.Millisecond}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		queries:            newSQLQueries(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// withRetry runs op until it succeeds, fails with an error the classifier
// deems non-retryable, or the attempts are exhausted.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt, delay := range retryDelays {
		if delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err = op()
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.withRetry").
			Int("attempt", attempt+1).
			Msg("retryable database error")
	}

	return err
}

// dbTime normalizes t to the precision and zone stored in the database.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// execAffected runs a DML statement with retries and returns the number of
// rows it touched.
func execAffected(ctx context.Context, db *DB, query string, args []any) (int64, error) {
	var affected int64
	err := db.withRetry(ctx, func() error {
		res, execErr := db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})

	return affected, err
}
