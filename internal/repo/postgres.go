package repo

import (
    "context"
    "errors"
    "time"

    "github.com/HamedShams/jira-peek/internal/config"
    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgxpool"
    "github.com/rs/zerolog"
)

type DB struct {
    Pool *pgxpool.Pool
    log  zerolog.Logger
}

func MustOpen(ctx context.Context, cfg config.Config, log zerolog.Logger) *DB {
    pool, err := pgxpool.New(ctx, cfg.DBDSN)
    if err != nil { log.Fatal().Err(err).Msg("db connect failed") }
    ctx2, cancel := context.WithTimeout(ctx, 10*time.Second); defer cancel()
    if err := pool.Ping(ctx2); err != nil { log.Fatal().Err(err).Msg("db ping failed") }
    return &DB{Pool: pool, log: log}
}

func (d *DB) Close() { d.Pool.Close() }

type Repository struct {
    db  *DB
    log zerolog.Logger
}

func NewRepository(d *DB, log zerolog.Logger) *Repository { return &Repository{db: d, log: log} }

// EnsureSchema creates the prefs table. Two keys live there in practice:
// project and user.
func (r *Repository) EnsureSchema(ctx context.Context) error {
    _, err := r.db.Pool.Exec(ctx,
        `CREATE TABLE IF NOT EXISTS prefs(key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
    return err
}

// GetPref returns the stored value or def when the key has never been set.
func (r *Repository) GetPref(ctx context.Context, key, def string) (string, error) {
    var v string
    err := r.db.Pool.QueryRow(ctx, `SELECT value FROM prefs WHERE key=$1`, key).Scan(&v)
    if errors.Is(err, pgx.ErrNoRows) { return def, nil }
    if err != nil { return def, err }
    return v, nil
}

func (r *Repository) SetPref(ctx context.Context, key, value string) error {
    _, err := r.db.Pool.Exec(ctx,
        `INSERT INTO prefs(key, value) VALUES($1,$2)
         ON CONFLICT(key) DO UPDATE SET value=EXCLUDED.value`, key, value)
    return err
}

func (r *Repository) TryAdvisoryLock(ctx context.Context, key int64) (bool, error) {
    var ok bool
    err := r.db.Pool.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&ok)
    return ok, err
}

func (r *Repository) AdvisoryUnlock(ctx context.Context, key int64) error {
    var ok bool
    err := r.db.Pool.QueryRow(ctx, "SELECT pg_advisory_unlock($1)", key).Scan(&ok)
    if !ok && err == nil { return errors.New("advisory unlock returned false") }
    return err
}
