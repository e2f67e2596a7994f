package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookvault-backend/internal/domains/user/model"
	"bookvault-backend/internal/domains/user/repository"
	"bookvault-backend/pkg/jwt"
)

type fakeUserRepo struct {
	users  map[int64]model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]model.User), nextID: 1}
}

var _ repository.RepositoryInterface = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, model.ErrEmailTaken
		}
	}

	user.ID = f.nextID
	f.users[f.nextID] = *user
	f.nextID++
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func newService() ServiceInterface {
	return NewUserService(newFakeUserRepo(), jwt.NewManager("test-secret", 15))
}

func TestRegisterAssignsUserRole(t *testing.T) {
	svc := newService()

	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "super-secret", user.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newService()

	req := &model.RegisterRequest{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "super-secret",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestRegisterWithAdminRole(t *testing.T) {
	svc := newService()

	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "super-secret",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "sneaky",
		Email:    "sneaky@example.com",
		Password: "super-secret",
		Role:     "SUPERUSER",
	})
	assert.Error(t, err)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "reader@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "reader@example.com", result.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "reader@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-123",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
