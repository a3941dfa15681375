package handler

import (
	"github.com/gin-gonic/gin"

	"contactbook/src/app/http/dto"
	"contactbook/src/app/http/response"
	"contactbook/src/app/middleware"
	"contactbook/src/core/schema"
	"contactbook/src/core/usecase"
)

// UserHandler handles /api/users endpoints.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Signup creates an account.
// POST /api/users
func (h *UserHandler) Signup(c *gin.Context) {
	var in schema.UserSchema
	if !bindSchema(c, &in) {
		return
	}
	u, err := h.userService.Signup(c.Request.Context(), in)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, schema.NewUserResponse(u))
}

// GetByEmail looks an account up.
// GET /api/users?email=
func (h *UserHandler) GetByEmail(c *gin.Context) {
	var q dto.EmailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, "email", "a valid email is required", middleware.GetRequestID(c))
		return
	}
	u, err := h.userService.GetByEmail(c.Request.Context(), q.Email)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, schema.NewUserResponse(u))
}

// ConfirmEmail marks an account's email as confirmed.
// POST /api/users/confirm
func (h *UserHandler) ConfirmEmail(c *gin.Context) {
	var req dto.ConfirmEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}
	u, err := h.userService.ConfirmEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, schema.NewUserResponse(u))
}

// UpdateAvatar stores a new avatar URL.
// PATCH /api/users/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}
	u, err := h.userService.UpdateAvatar(c.Request.Context(), req.Email, req.URL)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, schema.NewUserResponse(u))
}
