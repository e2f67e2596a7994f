package service

import (
	"context"
	"errors"

	"bookvault-backend/internal/domains/cart/model"
	"bookvault-backend/internal/domains/cart/repository"
	"bookvault-backend/internal/domains/inventory"
	"bookvault-backend/pkg/logger"
)

// ServiceInterface is the cart business contract. Every operation is
// scoped to the calling user.
type ServiceInterface interface {
	AddToCart(ctx context.Context, userID int64, req *model.AddToCartRequest) (*model.CartItem, error)
	GetCartItems(ctx context.Context, userID int64) ([]model.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, itemID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type cartService struct {
	repo   repository.RepositoryInterface
	ledger inventory.Ledger
}

func NewCartService(repo repository.RepositoryInterface, ledger inventory.Ledger) ServiceInterface {
	return &cartService{repo: repo, ledger: ledger}
}

// AddToCart reserves the requested quantity and folds it into the
// user's existing line for the book, if any. Reservation and cart
// write commit atomically.
func (s *cartService) AddToCart(ctx context.Context, userID int64, req *model.AddToCartRequest) (*model.CartItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.repo.RollbackTx(ctx, tx)

	newQuantity := req.Quantity
	existing, err := s.repo.GetItemByBookTx(ctx, tx, userID, req.BookID)
	if err != nil && !errors.Is(err, model.ErrCartItemNotFound) {
		return nil, err
	}
	if existing != nil {
		newQuantity += existing.Quantity
	}

	if err := s.ledger.ReserveTx(ctx, tx, req.BookID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertItemTx(ctx, tx, userID, req.BookID, newQuantity); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItemByBookTx(ctx, tx, userID, req.BookID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CommitTx(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("item added to cart", map[string]interface{}{
		"user_id":  userID,
		"book_id":  req.BookID,
		"quantity": item.Quantity,
	})
	return item, nil
}

func (s *cartService) GetCartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	items, err := s.repo.GetItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrCartEmpty
	}
	return items, nil
}

// RemoveFromCart releases the line's stock and deletes it. Items owned
// by another user are reported as not found.
func (s *cartService) RemoveFromCart(ctx context.Context, userID, itemID int64) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer s.repo.RollbackTx(ctx, tx)

	item, err := s.repo.GetItemByIDTx(ctx, tx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return model.ErrCartItemNotFound
	}

	if err := s.ledger.ReleaseTx(ctx, tx, item.BookID, item.Quantity); err != nil {
		return err
	}

	if err := s.repo.DeleteItemTx(ctx, tx, itemID); err != nil {
		return err
	}

	return s.repo.CommitTx(ctx, tx)
}

// ClearCart releases every line and empties the cart in one
// transaction; either everything is returned to stock or nothing is.
func (s *cartService) ClearCart(ctx context.Context, userID int64) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer s.repo.RollbackTx(ctx, tx)

	items, err := s.repo.GetItemsByUserTx(ctx, tx, userID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return model.ErrCartEmpty
	}

	for _, item := range items {
		if err := s.ledger.ReleaseTx(ctx, tx, item.BookID, item.Quantity); err != nil {
			return err
		}
	}

	if err := s.repo.DeleteAllByUserTx(ctx, tx, userID); err != nil {
		return err
	}

	return s.repo.CommitTx(ctx, tx)
}
