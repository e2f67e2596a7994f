package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookvault-backend/internal/domains/wishlist/model"
)

type RepositoryInterface interface {
	Add(ctx context.Context, userID, bookID int64) (*model.WishlistItem, error)
	GetByUser(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	GetByID(ctx context.Context, itemID int64) (*model.WishlistItem, error)
	Delete(ctx context.Context, itemID int64) error
}

type wishlistRepository struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) RepositoryInterface {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(ctx context.Context, userID, bookID int64) (*model.WishlistItem, error) {
	query := `
		INSERT INTO wishlist_items (user_id, book_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at`

	var item model.WishlistItem
	item.UserID = userID
	item.BookID = bookID

	err := r.db.QueryRow(ctx, query, userID, bookID).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrAlreadyInWishList
		}
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return r.GetByID(ctx, item.ID)
}

func (r *wishlistRepository) GetByUser(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	query := `
		SELECT wi.id, wi.user_id, wi.book_id, b.name, b.author, b.price, wi.created_at
		FROM wishlist_items wi
		JOIN books b ON b.id = wi.book_id
		WHERE wi.user_id = $1
		ORDER BY wi.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}
	defer rows.Close()

	items := make([]model.WishlistItem, 0)
	for rows.Next() {
		var item model.WishlistItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.BookID,
			&item.BookName, &item.Author, &item.Price, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *wishlistRepository) GetByID(ctx context.Context, itemID int64) (*model.WishlistItem, error) {
	query := `
		SELECT wi.id, wi.user_id, wi.book_id, b.name, b.author, b.price, wi.created_at
		FROM wishlist_items wi
		JOIN books b ON b.id = wi.book_id
		WHERE wi.id = $1`

	var item model.WishlistItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.UserID, &item.BookID,
		&item.BookName, &item.Author, &item.Price, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWishlistItemNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist item: %w", err)
	}

	return &item, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, itemID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM wishlist_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrWishlistItemNotFound
	}
	return nil
}
