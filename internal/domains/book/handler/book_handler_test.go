package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookvault-backend/internal/domains/book/model"
	"bookvault-backend/internal/domains/book/service"
)

type stubBookService struct {
	book *model.Book
}

var _ service.ServiceInterface = (*stubBookService)(nil)

func (s *stubBookService) CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	return s.book, nil
}

func (s *stubBookService) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	if s.book == nil {
		return nil, model.ErrBookNotFound
	}
	b := *s.book
	return &b, nil
}

func (s *stubBookService) GetBookByName(ctx context.Context, name string) (*model.Book, error) {
	return s.book, nil
}

func (s *stubBookService) GetAllBooks(ctx context.Context) ([]model.Book, error) { return nil, nil }

func (s *stubBookService) GetBooksSorted(ctx context.Context, field string) ([]model.Book, error) {
	return nil, nil
}

func (s *stubBookService) SearchBooks(ctx context.Context, q string) ([]model.Book, error) {
	return nil, nil
}

func (s *stubBookService) GetBooksPage(ctx context.Context, pageNumber, pageSize int) ([]model.Book, error) {
	return nil, nil
}

func (s *stubBookService) UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error) {
	return s.book, nil
}

func (s *stubBookService) UpdateLogo(ctx context.Context, id int64, logoURL string) (*model.Book, error) {
	s.book.Logo = logoURL
	return s.book, nil
}

func (s *stubBookService) DeleteBook(ctx context.Context, id int64) error { return nil }

type stubStorage struct {
	uploadedURL string
	removed     []string
}

func (s *stubStorage) Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error) {
	return s.uploadedURL, nil
}

func (s *stubStorage) Remove(ctx context.Context, objectName string) error {
	s.removed = append(s.removed, objectName)
	return nil
}

func logoRequest(t *testing.T) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("logo", "cover.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/books/1/logo", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadLogoRemovesReplacedObject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubBookService{book: &model.Book{
		ID:   1,
		Logo: "http://localhost:9000/book-logos/111-old.png",
	}}
	storage := &stubStorage{uploadedURL: "http://localhost:9000/book-logos/222-new.png"}

	r := gin.New()
	r.POST("/books/:id/logo", NewBookHandler(svc, storage).UploadLogo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, logoRequest(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"111-old.png"}, storage.removed)
	assert.Equal(t, "http://localhost:9000/book-logos/222-new.png", svc.book.Logo)
}

func TestUploadLogoFirstUploadRemovesNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubBookService{book: &model.Book{ID: 1}}
	storage := &stubStorage{uploadedURL: "http://localhost:9000/book-logos/222-new.png"}

	r := gin.New()
	r.POST("/books/:id/logo", NewBookHandler(svc, storage).UploadLogo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, logoRequest(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, storage.removed)
}
