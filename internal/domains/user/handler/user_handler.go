package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookvault-backend/internal/domains/user/model"
	"bookvault-backend/internal/domains/user/service"
	"bookvault-backend/internal/shared/response"
	"bookvault-backend/pkg/logger"
)

type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(svc service.ServiceInterface) *UserHandler {
	return &UserHandler{service: svc}
}

// Register handles POST /auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, user)
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, result)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		response.BadRequest(c, "email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid email or password")
	case errors.As(err, &validationErrs):
		response.BadRequest(c, validationErrs.Error())
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
