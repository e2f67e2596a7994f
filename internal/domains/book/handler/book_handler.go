package handler

import (
	"context"
	"errors"
	"io"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookvault-backend/internal/domains/book/model"
	"bookvault-backend/internal/domains/book/query"
	"bookvault-backend/internal/domains/book/service"
	"bookvault-backend/internal/shared/response"
	"bookvault-backend/pkg/logger"
)

// LogoStorage stores book logo images. Upload returns the object's
// public URL; Remove deletes a previously stored object by name.
type LogoStorage interface {
	Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}

type BookHandler struct {
	service service.ServiceInterface
	storage LogoStorage
}

func NewBookHandler(svc service.ServiceInterface, storage LogoStorage) *BookHandler {
	return &BookHandler{service: svc, storage: storage}
}

// CreateBook handles POST /books.
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, book)
}

// GetBook handles GET /books/:id.
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	book, err := h.service.GetBookByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, book)
}

// GetBookByName handles GET /books/by-name/:name.
func (h *BookHandler) GetBookByName(c *gin.Context) {
	book, err := h.service.GetBookByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, book)
}

// ListBooks handles GET /books.
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.service.GetAllBooks(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, books)
}

// SortBooks handles GET /books/sort/:field.
func (h *BookHandler) SortBooks(c *gin.Context) {
	books, err := h.service.GetBooksSorted(c.Request.Context(), c.Param("field"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, books)
}

// SearchBooks handles GET /books/search/:query.
func (h *BookHandler) SearchBooks(c *gin.Context) {
	books, err := h.service.SearchBooks(c.Request.Context(), c.Param("query"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, books)
}

// ListBooksPage handles GET /books/pagination.
func (h *BookHandler) ListBooksPage(c *gin.Context) {
	pageNumber, err := strconv.Atoi(c.DefaultQuery("pageNumber", "0"))
	if err != nil {
		response.BadRequest(c, "invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "0"))
	if err != nil {
		response.BadRequest(c, "invalid page size")
		return
	}

	books, err := h.service.GetBooksPage(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, books)
}

// UpdateBook handles PUT /books/:id.
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, book)
}

// UploadLogo handles POST /books/:id/logo.
func (h *BookHandler) UploadLogo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	current, err := h.service.GetBookByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	previousLogo := current.Logo

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		response.BadRequest(c, "logo file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read logo file")
		return
	}
	defer file.Close()

	url, err := h.storage.Upload(
		c.Request.Context(), file, fileHeader.Size,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		logger.Error("logo upload failed", err)
		response.InternalServerError(c, "failed to store logo")
		return
	}

	book, err := h.service.UpdateLogo(c.Request.Context(), id, url)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// The replaced object is orphaned once the catalog points at the
	// new one; removal failure is not worth failing the request.
	if old := logoObjectName(previousLogo); old != "" {
		if err := h.storage.Remove(c.Request.Context(), old); err != nil {
			logger.Warn("failed to remove previous logo", map[string]interface{}{
				"book_id": id,
				"object":  old,
			})
		}
	}

	response.Success(c, book)
}

// logoObjectName extracts the stored object name from a logo URL.
func logoObjectName(logoURL string) string {
	if logoURL == "" {
		return ""
	}
	name := path.Base(logoURL)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// DeleteBook handles DELETE /books/:id.
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrNoBooks):
		response.NoContent(c)
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, model.ErrMinimumStock):
		response.BadRequest(c, "initial stock must be at least 16")
	case errors.Is(err, model.ErrInvalidPrice):
		response.BadRequest(c, "price must be positive")
	case errors.Is(err, query.ErrInvalidSortField):
		response.BadRequest(c, "sort field must be one of name, author, price")
	case errors.Is(err, query.ErrInvalidPageNumber):
		response.BadRequest(c, "page number must not be negative")
	case errors.As(err, &validationErrs):
		response.BadRequest(c, validationErrs.Error())
	default:
		logger.Error("book handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
