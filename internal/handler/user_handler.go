package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devconnect/internal/auth"
	"devconnect/internal/errors"
	"devconnect/internal/service"
)

// UserHandler handles registration, login and current-user endpoints.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("register: %v", err)
		}
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// Login godoc
// @Summary Login with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("login: %v", err)
		}
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// CurrentUser godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {object} model.User
// @Failure 401 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/current [get]
func (h *UserHandler) CurrentUser(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), claims.UserID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("current user: %v", err)
		}
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user)
}
