package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DefaultStatsInterval is how often pool statistics are exported.
const DefaultStatsInterval = 15 * time.Second

// Recorder receives query timings and pool statistics.
type Recorder interface {
	ObserveDBQuery(operation string, duration time.Duration)
	SetDBConnections(open, inUse, idle int)
}

// DB wraps *sql.DB and times every statement.
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap instruments db. A nil recorder disables timing.
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault instruments db and exports pool statistics every DefaultStatsInterval until stop is closed.
func WrapWithDefault(db *sql.DB, recorder Recorder, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, recorder)
	go wrapped.collectStats(DefaultStatsInterval, stop)
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx starts a transaction whose statements are timed the same way.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, recorder: d.recorder}, nil
}

func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) observe(operation string, started time.Time) {
	if d.recorder == nil {
		return
	}
	d.recorder.ObserveDBQuery(operation, time.Since(started))
}

func (d *DB) collectStats(interval time.Duration, stop <-chan struct{}) {
	if d.recorder == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.recorder.SetDBConnections(stats.OpenConnections, stats.InUse, stats.Idle)
		case <-stop:
			return
		}
	}
}

// Tx is an instrumented *sql.Tx.
type Tx struct {
	tx       *sql.Tx
	recorder Recorder
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.observe("tx_exec", time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.observe("tx_query", time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.observe("tx_query_row", time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func (t *Tx) observe(operation string, started time.Time) {
	if t.recorder == nil {
		return
	}
	t.recorder.ObserveDBQuery(operation, time.Since(started))
}
