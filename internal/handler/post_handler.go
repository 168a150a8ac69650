package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devconnect/internal/auth"
	"devconnect/internal/errors"
	"devconnect/internal/service"
)

// PostHandler handles feed endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRequest represents a post creation request.
type PostRequest struct {
	Text   string `json:"text" validate:"required,min=10"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// CommentRequest represents a comment creation request.
type CommentRequest struct {
	Text   string `json:"text" validate:"required"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// List godoc
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	return h.respond(c, http.StatusOK, func() (interface{}, error) {
		return h.postService.List(c.Request().Context())
	})
}

// Get godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	return h.respond(c, http.StatusOK, func() (interface{}, error) {
		return h.postService.Get(c.Request().Context(), id)
	})
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body PostRequest true "Post content"
// @Success 201 {object} model.Post
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	input := service.PostInput{Text: req.Text, Name: req.Name, Avatar: req.Avatar}
	return h.respond(c, http.StatusCreated, func() (interface{}, error) {
		return h.postService.Create(c.Request().Context(), claims, input)
	})
}

// Delete godoc
// @Summary Delete a post (owner only)
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	if err := h.postService.Delete(c.Request().Context(), claims, id); err != nil {
		he := errors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("delete post: %v", err)
		}
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/like/{id} [post]
func (h *PostHandler) Like(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	return h.respond(c, http.StatusOK, func() (interface{}, error) {
		return h.postService.Like(c.Request().Context(), claims, id)
	})
}

// Unlike godoc
// @Summary Remove a like from a post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/unlike/{id} [post]
func (h *PostHandler) Unlike(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	return h.respond(c, http.StatusOK, func() (interface{}, error) {
		return h.postService.Unlike(c.Request().Context(), claims, id)
	})
}

// Comment godoc
// @Summary Add a comment to a post
// @Tags posts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Param request body CommentRequest true "Comment content"
// @Success 200 {object} model.Post
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/comment/{id} [post]
func (h *PostHandler) Comment(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	input := service.PostInput{Text: req.Text, Name: req.Name, Avatar: req.Avatar}
	return h.respond(c, http.StatusOK, func() (interface{}, error) {
		return h.postService.AddComment(c.Request().Context(), claims, id, input)
	})
}

// DeleteComment godoc
// @Summary Remove a comment from a post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} model.Post
// @Failure 401 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/comment/{id}/{comment_id} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}
	return h.respond(c, http.StatusOK, func() (interface{}, error) {
		return h.postService.DeleteComment(c.Request().Context(), claims, id, commentID)
	})
}

// respond runs a service call and writes either the JSON result or the
// mapped domain error.
func (h *PostHandler) respond(c echo.Context, status int, fn func() (interface{}, error)) error {
	result, err := fn()
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("posts: %v", err)
		}
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(status, result)
}
