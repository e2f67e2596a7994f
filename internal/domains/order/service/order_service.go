package service

import (
	"context"

	"github.com/shopspring/decimal"

	cartmodel "bookvault-backend/internal/domains/cart/model"
	cartrepo "bookvault-backend/internal/domains/cart/repository"
	"bookvault-backend/internal/domains/inventory"
	"bookvault-backend/internal/domains/order/model"
	"bookvault-backend/internal/domains/order/repository"
	"bookvault-backend/pkg/logger"
)

// ServiceInterface is the order business contract. Every operation is
// scoped to the calling user.
type ServiceInterface interface {
	PlaceOrder(ctx context.Context, userID int64) (*model.Order, error)
	GetOrders(ctx context.Context, userID int64) ([]model.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
}

type orderService struct {
	repo   repository.RepositoryInterface
	cart   cartrepo.RepositoryInterface
	ledger inventory.Ledger
}

func NewOrderService(repo repository.RepositoryInterface, cart cartrepo.RepositoryInterface, ledger inventory.Ledger) ServiceInterface {
	return &orderService{repo: repo, cart: cart, ledger: ledger}
}

// PlaceOrder converts the whole cart into an order, snapshotting each
// line's current price, and empties the cart in the same transaction.
// Stock was already reserved when the lines entered the cart.
func (s *orderService) PlaceOrder(ctx context.Context, userID int64) (*model.Order, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.repo.RollbackTx(ctx, tx)

	cartItems, err := s.cart.GetItemsByUserTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, cartmodel.ErrCartEmpty
	}

	order := &model.Order{
		UserID: userID,
		Status: model.StatusPlaced,
		Total:  decimal.Zero,
		Items:  make([]model.OrderItem, 0, len(cartItems)),
	}
	for _, ci := range cartItems {
		order.Items = append(order.Items, model.OrderItem{
			BookID:    ci.BookID,
			BookName:  ci.BookName,
			UnitPrice: ci.Price,
			Quantity:  ci.Quantity,
		})
		order.Total = order.Total.Add(ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity))))
	}

	created, err := s.repo.CreateTx(ctx, tx, order)
	if err != nil {
		return nil, err
	}

	if err := s.cart.DeleteAllByUserTx(ctx, tx, userID); err != nil {
		return nil, err
	}

	if err := s.repo.CommitTx(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("order placed", map[string]interface{}{
		"order_id": created.ID,
		"user_id":  userID,
		"total":    created.Total.String(),
	})
	return created, nil
}

func (s *orderService) GetOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.repo.GetByUser(ctx, userID)
}

// GetOrder returns the order only to its owner; anyone else sees not
// found.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// CancelOrder releases every line's stock and marks the order
// cancelled. Cancelled is terminal; a second cancel fails.
func (s *orderService) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.repo.RollbackTx(ctx, tx)

	order, err := s.repo.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, model.ErrOrderNotFound
	}
	if order.Status == model.StatusCancelled {
		return nil, model.ErrOrderAlreadyCancelled
	}

	for _, item := range order.Items {
		if err := s.ledger.ReleaseTx(ctx, tx, item.BookID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateStatusTx(ctx, tx, orderID, model.StatusCancelled); err != nil {
		return nil, err
	}

	if err := s.repo.CommitTx(ctx, tx); err != nil {
		return nil, err
	}

	order.Status = model.StatusCancelled

	logger.Info("order cancelled", map[string]interface{}{
		"order_id": orderID,
		"user_id":  userID,
	})
	return order, nil
}
