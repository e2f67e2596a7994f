package service

import (
	"context"

	bookrepo "bookvault-backend/internal/domains/book/repository"
	"bookvault-backend/internal/domains/wishlist/model"
	"bookvault-backend/internal/domains/wishlist/repository"
)

type ServiceInterface interface {
	AddToWishlist(ctx context.Context, userID int64, req *model.AddToWishlistRequest) (*model.WishlistItem, error)
	GetWishlist(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID, itemID int64) error
}

type wishlistService struct {
	repo  repository.RepositoryInterface
	books bookrepo.RepositoryInterface
}

func NewWishlistService(repo repository.RepositoryInterface, books bookrepo.RepositoryInterface) ServiceInterface {
	return &wishlistService{repo: repo, books: books}
}

// AddToWishlist bookmarks a book. Each book appears at most once per
// user.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID int64, req *model.AddToWishlistRequest) (*model.WishlistItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.books.GetByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	return s.repo.Add(ctx, userID, req.BookID)
}

// GetWishlist returns the user's wishlist; an empty wishlist is an
// empty list, not an error.
func (s *wishlistService) GetWishlist(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	return s.repo.GetByUser(ctx, userID)
}

// RemoveFromWishlist deletes an item. Items owned by another user are
// reported as not found.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, itemID int64) error {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return model.ErrWishlistItemNotFound
	}

	return s.repo.Delete(ctx, itemID)
}
