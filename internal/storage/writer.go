package storage

import (
	"context"

	"github.com/stephenafamo/bob"
)

// UnitOfWork is the commit boundary shared by a Writer's tables.
type UnitOfWork interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to one open transaction. Everything done
// through a Writer becomes visible together on Commit or not at all.
type Writer struct {
	tx UnitOfWork
	Tables
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:     tx,
		Tables: NewTables(tx),
	}
}

// NewWriterFromTables builds a Writer over caller-supplied tables.
func NewWriterFromTables(tx UnitOfWork, tables Tables) *Writer {
	return &Writer{
		tx:     tx,
		Tables: tables,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
