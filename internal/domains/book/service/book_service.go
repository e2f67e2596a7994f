package service

import (
	"context"

	"bookvault-backend/internal/domains/book/model"
	"bookvault-backend/internal/domains/book/query"
	"bookvault-backend/internal/domains/book/repository"
	"bookvault-backend/pkg/logger"
)

// ServiceInterface is the catalog business contract.
type ServiceInterface interface {
	CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)
	GetBookByName(ctx context.Context, name string) (*model.Book, error)
	GetAllBooks(ctx context.Context) ([]model.Book, error)
	GetBooksSorted(ctx context.Context, field string) ([]model.Book, error)
	SearchBooks(ctx context.Context, q string) ([]model.Book, error)
	GetBooksPage(ctx context.Context, pageNumber, pageSize int) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error)
	UpdateLogo(ctx context.Context, id int64, logoURL string) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type bookService struct {
	repo repository.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Quantity < model.MinInitialStock {
		return nil, model.ErrMinimumStock
	}
	if !req.Price.IsPositive() {
		return nil, model.ErrInvalidPrice
	}

	book := &model.Book{
		Name:        req.Name,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Logo:        req.Logo,
		Quantity:    req.Quantity,
		Status:      model.StatusActive,
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{
		"book_id": created.ID,
		"name":    created.Name,
	})
	return created, nil
}

func (s *bookService) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetBookByName(ctx context.Context, name string) (*model.Book, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *bookService) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, model.ErrNoBooks
	}
	return books, nil
}

func (s *bookService) GetBooksSorted(ctx context.Context, field string) ([]model.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sorted, err := query.SortBooks(books, field)
	if err != nil {
		return nil, err
	}
	if len(sorted) == 0 {
		return nil, model.ErrNoBooks
	}
	return sorted, nil
}

func (s *bookService) SearchBooks(ctx context.Context, q string) ([]model.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := query.SearchBooks(books, q)
	if len(matched) == 0 {
		return nil, model.ErrNoBooks
	}
	return matched, nil
}

func (s *bookService) GetBooksPage(ctx context.Context, pageNumber, pageSize int) ([]model.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	page, err := query.Paginate(books, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	if len(page) == 0 {
		return nil, model.ErrNoBooks
	}
	return page, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Quantity < model.MinInitialStock {
		return nil, model.ErrMinimumStock
	}
	if !req.Price.IsPositive() {
		return nil, model.ErrInvalidPrice
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Name = req.Name
	book.Author = req.Author
	book.Description = req.Description
	book.Price = req.Price
	book.Logo = req.Logo
	book.Quantity = req.Quantity

	return s.repo.Update(ctx, book)
}

func (s *bookService) UpdateLogo(ctx context.Context, id int64, logoURL string) (*model.Book, error) {
	if err := s.repo.UpdateLogo(ctx, id, logoURL); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("book deleted", map[string]interface{}{"book_id": id})
	return nil
}
