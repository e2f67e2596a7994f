package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bookvault-backend/internal/domains/user/model"
	"bookvault-backend/internal/domains/user/repository"
	"bookvault-backend/pkg/jwt"
	"bookvault-backend/pkg/logger"
)

const bcryptCost = 12

type ServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type userService struct {
	repo   repository.RepositoryInterface
	tokens *jwt.Manager
}

func NewUserService(repo repository.RepositoryInterface, tokens *jwt.Manager) ServiceInterface {
	return &userService{repo: repo, tokens: tokens}
}

// Register creates a new account. Role defaults to USER when the
// request does not set one.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": created.ID,
		"email":   created.Email,
	})
	return created, nil
}

// Login verifies credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		AccessToken: token,
		User:        user,
	}, nil
}
