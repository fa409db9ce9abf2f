// Package sheet is a local stand-in for the spreadsheet that receives contact
// form submissions. Each submission is appended as a row, verbatim.
package sheet

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Zachkp/microx-portfolio/internal/contact"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Row is one stored submission.
type Row struct {
	ID         string         `json:"id"`
	ReceivedAt time.Time      `json:"received_at"`
	Record     contact.Record `json:"record"`
}

// Stats counts stored rows.
type Stats struct {
	Total    int64 `json:"total"`
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"this_week"`
}

// Store appends and lists rows in a SQLite database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
	now func() time.Time
}

// Open opens (creating if needed) the database at path and migrates it to
// the latest schema. Use ":memory:" for a throwaway store.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One writer; also keeps an in-memory database on a single
	// connection.
	db.SetMaxOpenConns(1)

	if err := applyMigrations(db, log); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, log: log, now: time.Now}, nil
}

// migrationLogger adapts zap to migrate.Logger.
type migrationLogger struct {
	log *zap.SugaredLogger
}

func (m migrationLogger) Printf(format string, v ...any) {
	m.log.Debugf(format, v...)
}

func (m migrationLogger) Verbose() bool {
	return false
}

func applyMigrations(db *sql.DB, log *zap.Logger) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	m.Log = migrationLogger{log: log.Sugar()}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	log.Debug("Sheet schema ready",
		zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores rec as a new row.
func (s *Store) Append(ctx context.Context, rec contact.Record) (Row, error) {
	row := Row{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC().Truncate(time.Millisecond),
		Record:     rec,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions
			(id, received_at, name, email, subject, message, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.ReceivedAt.UnixMilli(), rec.Name, rec.Email,
		rec.Subject, rec.Message, rec.Timestamp,
	)
	if err != nil {
		return Row{}, fmt.Errorf("append submission: %w", err)
	}

	return row, nil
}

// List returns up to limit rows, newest first. A non-positive limit returns
// every row.
func (s *Store) List(ctx context.Context, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, received_at, name, email, subject, message, submitted_at
		FROM submissions
		ORDER BY received_at DESC, id
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			r  Row
			ms int64
		)
		err := rows.Scan(
			&r.ID, &ms, &r.Record.Name, &r.Record.Email,
			&r.Record.Subject, &r.Record.Message, &r.Record.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		r.ReceivedAt = time.UnixMilli(ms).UTC()
		out = append(out, r)
	}

	return out, rows.Err()
}

// Stats counts all rows, rows received since midnight UTC, and rows received
// in the last seven days.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	now := s.now().UTC()
	midnight := now.Truncate(24 * time.Hour)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(received_at >= ?), 0),
			COALESCE(SUM(received_at >= ?), 0)
		FROM submissions`,
		midnight.UnixMilli(), weekAgo.UnixMilli(),
	).Scan(&st.Total, &st.Today, &st.ThisWeek)
	if err != nil {
		return Stats{}, fmt.Errorf("count submissions: %w", err)
	}

	return st, nil
}
