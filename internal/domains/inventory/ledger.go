// Package inventory tracks available stock per book. All movements go
// through the ledger so quantity can never go negative.
package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookvault-backend/internal/domains/book/repository"
	"bookvault-backend/pkg/cache"
	"bookvault-backend/pkg/database"
	"bookvault-backend/pkg/logger"
)

// Ledger reserves and releases stock. The Tx variants run inside a
// caller-owned transaction so stock movements commit atomically with
// cart and order writes.
type Ledger interface {
	Reserve(ctx context.Context, bookID int64, quantity int) error
	Release(ctx context.Context, bookID int64, quantity int) error
	ReserveTx(ctx context.Context, tx pgx.Tx, bookID int64, quantity int) error
	ReleaseTx(ctx context.Context, tx pgx.Tx, bookID int64, quantity int) error
}

type postgresLedger struct {
	db    *pgxpool.Pool
	cache cache.Cache
}

func NewLedger(db *pgxpool.Pool, c cache.Cache) Ledger {
	return &postgresLedger{db: db, cache: c}
}

func (l *postgresLedger) Reserve(ctx context.Context, bookID int64, quantity int) error {
	return database.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		return l.ReserveTx(ctx, tx, bookID, quantity)
	})
}

func (l *postgresLedger) Release(ctx context.Context, bookID int64, quantity int) error {
	return database.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		return l.ReleaseTx(ctx, tx, bookID, quantity)
	})
}

// ReserveTx locks the book row, checks availability and decrements
// stock. On failure the row is left unchanged.
func (l *postgresLedger) ReserveTx(ctx context.Context, tx pgx.Tx, bookID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	var available int
	err := tx.QueryRow(ctx,
		`SELECT quantity FROM books WHERE id = $1 FOR UPDATE`, bookID,
	).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrBookNotFound
		}
		return fmt.Errorf("failed to lock book %d: %w", bookID, err)
	}

	if available < quantity {
		return ErrInsufficientStock
	}

	_, err = tx.Exec(ctx,
		`UPDATE books SET quantity = quantity - $2, updated_at = NOW() WHERE id = $1`,
		bookID, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to reserve stock for book %d: %w", bookID, err)
	}

	l.invalidate(ctx, bookID)
	return nil
}

// ReleaseTx returns previously reserved stock to the book row.
func (l *postgresLedger) ReleaseTx(ctx context.Context, tx pgx.Tx, bookID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	tag, err := tx.Exec(ctx,
		`UPDATE books SET quantity = quantity + $2, updated_at = NOW() WHERE id = $1`,
		bookID, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to release stock for book %d: %w", bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookNotFound
	}

	l.invalidate(ctx, bookID)
	return nil
}

// invalidate drops the cached book detail so reads do not serve the
// pre-movement quantity for a full TTL window.
func (l *postgresLedger) invalidate(ctx context.Context, bookID int64) {
	if err := l.cache.Delete(ctx, repository.BookCacheKey(bookID)); err != nil {
		logger.Warn("failed to invalidate book cache", map[string]interface{}{"book_id": bookID})
	}
}
