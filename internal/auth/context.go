package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKey is where the auth middleware stores the verified token.
const ContextKey = "user"

// ErrNoClaims is returned when no verified identity is attached to the
// request, which means the route was registered outside the auth gate.
var ErrNoClaims = errors.New("no identity claims in request context")

// ClaimsFromContext returns the identity attached by the auth middleware.
// The claims were signature-checked; the referenced user may no longer
// exist.
func ClaimsFromContext(c echo.Context) (*Claims, error) {
	token, ok := c.Get(ContextKey).(*jwt.Token)
	if !ok {
		return nil, ErrNoClaims
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}
