package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookvault-backend/internal/domains/order/model"
)

// RepositoryInterface is the order persistence contract. Placement and
// cancellation run inside service-owned transactions.
type RepositoryInterface interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
	CommitTx(ctx context.Context, tx pgx.Tx) error
	RollbackTx(ctx context.Context, tx pgx.Tx) error

	CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)
	GetByIDTx(ctx context.Context, tx pgx.Tx, orderID int64) (*model.Order, error)
	GetByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, orderID int64, status string) error
}

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) RepositoryInterface {
	return &orderRepository{db: db}
}

func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *orderRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	return tx.Commit(ctx)
}

func (r *orderRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	return tx.Rollback(ctx)
}

func (r *orderRepository) CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	err := tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		order.UserID, order.Status, order.Total,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		err := tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, book_id, book_name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.OrderID, item.BookID, item.BookName, item.UnitPrice, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := r.scanOrder(r.db.QueryRow(ctx, `
		SELECT id, user_id, status, total, created_at, updated_at
		FROM orders
		WHERE id = $1`, orderID))
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, r.db, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, orderID int64) (*model.Order, error) {
	order, err := r.scanOrder(tx.QueryRow(ctx, `
		SELECT id, user_id, status, total, created_at, updated_at
		FROM orders
		WHERE id = $1
		FOR UPDATE`, orderID))
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) GetByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, status, total, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.getItems(ctx, r.db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, orderID int64, status string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`,
		orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *orderRepository) getItems(ctx context.Context, q querier, orderID int64) ([]model.OrderItem, error) {
	rows, err := q.Query(ctx, `
		SELECT id, order_id, book_id, book_name, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	items := make([]model.OrderItem, 0)
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.BookID,
			&item.BookName, &item.UnitPrice, &item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *orderRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return &o, nil
}
