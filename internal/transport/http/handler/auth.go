package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-hub/internal/app"
	"gamestore-hub/internal/transport/http/middleware"
	"gamestore-hub/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.authService.Register(app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{
		"token":   result.Token,
		"user":    result.User.Sanitize(),
		"message": "Registration successful",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"token":   result.Token,
		"user":    result.User.Sanitize(),
		"message": "Login successful",
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	userID, ok := userIDAny.(uint)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.authService.Profile(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"user": user.Sanitize(),
	})
}

// respondAuthError maps the service error taxonomy to status codes and
// client messages in one place. Unexpected errors are logged and
// withheld from the client.
func respondAuthError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	var conflictErr *app.ConflictError

	switch {
	case errors.As(err, &validationErr):
		response.Error(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &conflictErr):
		response.Error(c, http.StatusConflict, fmt.Sprintf("User with this %s already exists", conflictErr.Field))
	case errors.Is(err, app.ErrInvalidCredential):
		response.Error(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, app.ErrAccountDeactivated):
		response.Error(c, http.StatusUnauthorized, "Account is deactivated")
	case errors.Is(err, app.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	default:
		log.Printf("auth request failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
	}
}
