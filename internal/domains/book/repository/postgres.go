package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookvault-backend/internal/domains/book/model"
	"bookvault-backend/pkg/cache"
	"bookvault-backend/pkg/logger"
)

const bookCacheTTL = 5 * time.Minute

// RepositoryInterface is the catalog persistence contract.
type RepositoryInterface interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	GetByName(ctx context.Context, name string) (*model.Book, error)
	GetAll(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) (*model.Book, error)
	UpdateLogo(ctx context.Context, id int64, logo string) error
	Delete(ctx context.Context, id int64) error
}

type bookRepository struct {
	db    *pgxpool.Pool
	cache cache.Cache
}

func NewBookRepository(db *pgxpool.Pool, c cache.Cache) RepositoryInterface {
	return &bookRepository{db: db, cache: c}
}

// BookCacheKey is shared with the inventory ledger, which invalidates
// the entry whenever it moves stock.
func BookCacheKey(id int64) string {
	return fmt.Sprintf("book:%d", id)
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
		INSERT INTO books (name, author, description, price, logo, quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		book.Name, book.Author, book.Description, book.Price,
		book.Logo, book.Quantity, book.Status,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	var cached model.Book
	if found, err := r.cache.Get(ctx, BookCacheKey(id), &cached); err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT id, name, author, description, price, logo, quantity, status, created_at, updated_at
		FROM books
		WHERE id = $1`

	book, err := r.scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, BookCacheKey(id), book, bookCacheTTL); err != nil {
		logger.Warn("failed to cache book", map[string]interface{}{"book_id": id})
	}

	return book, nil
}

func (r *bookRepository) GetByName(ctx context.Context, name string) (*model.Book, error) {
	query := `
		SELECT id, name, author, description, price, logo, quantity, status, created_at, updated_at
		FROM books
		WHERE name = $1`

	return r.scanBook(r.db.QueryRow(ctx, query, name))
}

func (r *bookRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	query := `
		SELECT id, name, author, description, price, logo, quantity, status, created_at, updated_at
		FROM books
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Author, &b.Description, &b.Price,
			&b.Logo, &b.Quantity, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (r *bookRepository) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
		UPDATE books
		SET name = $2, author = $3, description = $4, price = $5,
		    logo = $6, quantity = $7, status = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		book.ID, book.Name, book.Author, book.Description,
		book.Price, book.Logo, book.Quantity, book.Status,
	).Scan(&book.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidate(ctx, book.ID)
	return book, nil
}

func (r *bookRepository) UpdateLogo(ctx context.Context, id int64, logo string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE books SET logo = $2, updated_at = NOW() WHERE id = $1`, id, logo)
	if err != nil {
		return fmt.Errorf("failed to update book logo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *bookRepository) scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID, &b.Name, &b.Author, &b.Description, &b.Price,
		&b.Logo, &b.Quantity, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}
	return &b, nil
}

func (r *bookRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, BookCacheKey(id)); err != nil {
		logger.Warn("failed to invalidate book cache", map[string]interface{}{"book_id": id})
	}
}
