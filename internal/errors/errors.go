package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("there is no profile for this user")
	// ErrHandleTaken is returned when the requested handle belongs to another profile.
	ErrHandleTaken = errors.New("that handle already exists")
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("no post found")
	// ErrCommentNotFound is returned when a comment is not found on the post.
	ErrCommentNotFound = errors.New("comment does not exist")
	// ErrAlreadyLiked is returned when a user likes a post twice.
	ErrAlreadyLiked = errors.New("user already liked this post")
	// ErrNotLiked is returned when a user unlikes a post they have not liked.
	ErrNotLiked = errors.New("post has not been liked yet")
	// ErrNotPostOwner is returned when a non-owner tries to delete a post.
	ErrNotPostOwner = errors.New("user not authorized")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to a 500 with a generic message; details stay in server logs.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrProfileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case errors.Is(err, ErrHandleTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "HANDLE_TAKEN")
	case errors.Is(err, ErrPostNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "POST_NOT_FOUND")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case errors.Is(err, ErrAlreadyLiked):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_LIKED")
	case errors.Is(err, ErrNotLiked):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_LIKED")
	case errors.Is(err, ErrNotPostOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_POST_OWNER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
