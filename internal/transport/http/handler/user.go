package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/logger"
	"exercise-tracker/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
	logger      *logger.Logger
}

type CreateUserRequest struct {
	Username formValue `json:"username" form:"username"`
}

type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

func NewUserHandler(userService *app.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: log}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.userService.Register(c.Request.Context(), app.RegisterInput{Username: string(req.Username)})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrValidation), errors.Is(err, app.ErrConflict):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("register user failed", "error", err)
			response.Error(c, http.StatusInternalServerError, "Could not create user")
		}
		return
	}

	response.OK(c, UserResponse{Username: user.Username, ID: user.ID})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("list users failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not retrieve users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{Username: u.Username, ID: u.ID})
	}
	response.OK(c, out)
}
