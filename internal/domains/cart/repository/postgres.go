package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookvault-backend/internal/domains/cart/model"
)

// RepositoryInterface is the cart persistence contract. Services own
// the transaction so stock movements and cart writes commit together.
type RepositoryInterface interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
	CommitTx(ctx context.Context, tx pgx.Tx) error
	RollbackTx(ctx context.Context, tx pgx.Tx) error

	GetItemsByUser(ctx context.Context, userID int64) ([]model.CartItem, error)
	GetItemsByUserTx(ctx context.Context, tx pgx.Tx, userID int64) ([]model.CartItem, error)
	GetItemByBookTx(ctx context.Context, tx pgx.Tx, userID, bookID int64) (*model.CartItem, error)
	GetItemByIDTx(ctx context.Context, tx pgx.Tx, itemID int64) (*model.CartItem, error)
	UpsertItemTx(ctx context.Context, tx pgx.Tx, userID, bookID int64, quantity int) error
	DeleteItemTx(ctx context.Context, tx pgx.Tx, itemID int64) error
	DeleteAllByUserTx(ctx context.Context, tx pgx.Tx, userID int64) error
}

type cartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) RepositoryInterface {
	return &cartRepository{db: db}
}

func (r *cartRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *cartRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	return tx.Commit(ctx)
}

func (r *cartRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	return tx.Rollback(ctx)
}

const cartItemColumns = `
	ci.id, ci.user_id, ci.book_id, b.name, b.price, ci.quantity, ci.created_at, ci.updated_at`

func (r *cartRepository) GetItemsByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	query := `
		SELECT` + cartItemColumns + `
		FROM cart_items ci
		JOIN books b ON b.id = ci.book_id
		WHERE ci.user_id = $1
		ORDER BY ci.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	return scanCartItems(rows)
}

func (r *cartRepository) GetItemsByUserTx(ctx context.Context, tx pgx.Tx, userID int64) ([]model.CartItem, error) {
	query := `
		SELECT` + cartItemColumns + `
		FROM cart_items ci
		JOIN books b ON b.id = ci.book_id
		WHERE ci.user_id = $1
		ORDER BY ci.id
		FOR UPDATE OF ci`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	return scanCartItems(rows)
}

func (r *cartRepository) GetItemByBookTx(ctx context.Context, tx pgx.Tx, userID, bookID int64) (*model.CartItem, error) {
	query := `
		SELECT` + cartItemColumns + `
		FROM cart_items ci
		JOIN books b ON b.id = ci.book_id
		WHERE ci.user_id = $1 AND ci.book_id = $2
		FOR UPDATE OF ci`

	return scanCartItem(tx.QueryRow(ctx, query, userID, bookID))
}

func (r *cartRepository) GetItemByIDTx(ctx context.Context, tx pgx.Tx, itemID int64) (*model.CartItem, error) {
	query := `
		SELECT` + cartItemColumns + `
		FROM cart_items ci
		JOIN books b ON b.id = ci.book_id
		WHERE ci.id = $1
		FOR UPDATE OF ci`

	return scanCartItem(tx.QueryRow(ctx, query, itemID))
}

func (r *cartRepository) UpsertItemTx(ctx context.Context, tx pgx.Tx, userID, bookID int64, quantity int) error {
	query := `
		INSERT INTO cart_items (user_id, book_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, book_id)
		DO UPDATE SET quantity = $3, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, userID, bookID, quantity); err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

func (r *cartRepository) DeleteItemTx(ctx context.Context, tx pgx.Tx, itemID int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepository) DeleteAllByUserTx(ctx context.Context, tx pgx.Tx, userID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func scanCartItem(row pgx.Row) (*model.CartItem, error) {
	var item model.CartItem
	err := row.Scan(
		&item.ID, &item.UserID, &item.BookID, &item.BookName,
		&item.Price, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to scan cart item: %w", err)
	}
	return &item, nil
}

func scanCartItems(rows pgx.Rows) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.BookID, &item.BookName,
			&item.Price, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
