package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
)

// Storage owns the connection pool. Its embedded Tables run on the pool and
// serve reads; writes go through a Writer obtained from Write.
type Storage struct {
	db        *sql.DB
	bobDB     bob.DB
	isolation sql.IsolationLevel
	Tables
}

func NewStorage(env *config.Config) (*Storage, error) {
	isolation, err := env.Isolation()
	if err != nil {
		return nil, err
	}

	s, err := Open(env.ConnectionString(), isolation)
	if err != nil {
		return nil, err
	}
	s.db.SetMaxOpenConns(env.DBMaxOpenConns)
	return s, nil
}

// Open connects to the Postgres database at connStr. Write units of work run
// at the given isolation level.
func Open(connStr string, isolation sql.IsolationLevel) (*Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		db:        db,
		bobDB:     bobDB,
		isolation: isolation,
		Tables:    NewTables(bobDB),
	}, nil
}

// Write begins a unit of work. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, &sql.TxOptions{Isolation: s.isolation})
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
