package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/AchilleasB/mindease/wellness-service/internal/config"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_store (
	key TEXT PRIMARY KEY,
	value BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at TIMESTAMPTZ
);
ALTER TABLE kv_store ADD COLUMN IF NOT EXISTS expires_at TIMESTAMPTZ`

const purgeEvery = 10 * time.Minute

// PostgresStore keeps every key in a single kv_store table. Rows past
// expires_at are invisible to reads and removed by PurgeExpired.
type PostgresStore struct {
	db     *sql.DB
	cb     *gobreaker.CircuitBreaker
	logger *logging.Logger
	now    func() time.Time
}

var _ ports.KeyValueStore = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB, logger *logging.Logger) *PostgresStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &PostgresStore{
		db:     db,
		cb:     config.NewCircuitBreaker(config.BreakerPostgres, logger),
		logger: logger,
		now:    time.Now,
	}
}

// EnsureSchema creates the kv_store table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var missing bool
	res, err := s.cb.Execute(func() (interface{}, error) {
		var value []byte
		err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())", key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			missing = true
			return nil, nil
		}
		return value, err
	})
	if err != nil {
		return nil, err
	}
	if missing {
		return nil, domain.ErrNotFound
	}
	return res.([]byte), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

func (s *PostgresStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: s.now().Add(ttl).UTC(), Valid: true}
	}
	_, err := s.cb.Execute(func() (interface{}, error) {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO kv_store (key, value, updated_at, expires_at)
			 VALUES ($1, $2, NOW(), $3)
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW(), expires_at = EXCLUDED.expires_at`,
			key, value, expiresAt,
		)
		return nil, err
	})
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		_, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = $1", key)
		return nil, err
	})
	return err
}

func (s *PostgresStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		rows, err := s.db.QueryContext(ctx,
			"SELECT key FROM kv_store WHERE key LIKE $1 AND (expires_at IS NULL OR expires_at > NOW()) ORDER BY key",
			escapeLike(prefix)+"%",
		)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		keys := make([]string, 0)
		for rows.Next() {
			var k string
			if err := rows.Scan(&k); err != nil {
				return nil, err
			}
			keys = append(keys, k)
		}
		return keys, rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return res.([]string), nil
}

// PurgeExpired deletes rows whose expiry has passed.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		r, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE expires_at IS NOT NULL AND expires_at <= NOW()")
		if err != nil {
			return nil, err
		}
		return r.RowsAffected()
	})
	if err != nil {
		return 0, err
	}
	return res.(int64), nil
}

// Run purges expired rows periodically until ctx is cancelled.
func (s *PostgresStore) Run(ctx context.Context) {
	ticker := time.NewTicker(purgeEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				s.logger.Warn("purging expired keys failed", "error", err)
				continue
			}
			if n > 0 {
				s.logger.Debug("purged expired keys", "count", n)
			}
		}
	}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// escapeLike escapes LIKE wildcards; keys use '_' as a separator.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
