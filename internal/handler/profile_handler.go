package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devconnect/internal/auth"
	"devconnect/internal/errors"
	"devconnect/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest represents a profile create-or-update request. The owner
// is always the authenticated caller; no user id is accepted here.
type ProfileRequest struct {
	Handle    string `json:"handle" validate:"required,min=2,max=40"`
	Username  string `json:"username" validate:"required"`
	Bio       string `json:"bio" validate:"required"`
	YouTube   string `json:"youtube" validate:"omitempty,url"`
	Twitter   string `json:"twitter" validate:"omitempty,url"`
	Facebook  string `json:"facebook" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
	Snapchat  string `json:"snapchat" validate:"omitempty,url"`
}

// GetCurrent godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetCurrent(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return h.respond(c, func() (interface{}, error) {
		return h.profileService.GetByUserID(c.Request().Context(), claims.UserID)
	})
}

// List godoc
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} model.Profile
// @Router /profile/all [get]
func (h *ProfileHandler) List(c echo.Context) error {
	return h.respond(c, func() (interface{}, error) {
		return h.profileService.List(c.Request().Context())
	})
}

// GetByHandle godoc
// @Summary Get a profile by handle
// @Tags profile
// @Produce json
// @Param handle path string true "Profile handle"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/handle/{handle} [get]
func (h *ProfileHandler) GetByHandle(c echo.Context) error {
	return h.respond(c, func() (interface{}, error) {
		return h.profileService.GetByHandle(c.Request().Context(), c.Param("handle"))
	})
}

// GetByUserID godoc
// @Summary Get a profile by user id
// @Tags profile
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/user/{user_id} [get]
func (h *ProfileHandler) GetByUserID(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return h.respond(c, func() (interface{}, error) {
		return h.profileService.GetByUserID(c.Request().Context(), userID)
	})
}

// Upsert godoc
// @Summary Create or update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ProfileRequest true "Profile fields"
// @Success 200 {object} model.Profile
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 409 {object} errors.ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	input := service.ProfileInput{
		Handle:    req.Handle,
		Username:  req.Username,
		Bio:       req.Bio,
		YouTube:   req.YouTube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		LinkedIn:  req.LinkedIn,
		Instagram: req.Instagram,
		Snapchat:  req.Snapchat,
	}
	return h.respond(c, func() (interface{}, error) {
		return h.profileService.Upsert(c.Request().Context(), claims.UserID, input)
	})
}

// DeleteAccount godoc
// @Summary Delete the caller's profile and account
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /profile [delete]
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	if err := h.profileService.DeleteAccount(c.Request().Context(), claims.UserID); err != nil {
		he := errors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("delete account: %v", err)
		}
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// respond runs a service call and writes either the JSON result or the
// mapped domain error.
func (h *ProfileHandler) respond(c echo.Context, fn func() (interface{}, error)) error {
	result, err := fn()
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("profile: %v", err)
		}
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}
