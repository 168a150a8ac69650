package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"devconnect/internal/auth"
	"devconnect/internal/handler"
)

// TokenHeader is the single header carrying the signed token.
const TokenHeader = "x-auth-token"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userHandler *handler.UserHandler,
	profileHandler *handler.ProfileHandler,
	postHandler *handler.PostHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/profile/all", profileHandler.List)
	api.GET("/profile/handle/:handle", profileHandler.GetByHandle)
	api.GET("/profile/user/:user_id", profileHandler.GetByUserID)
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)

	// Private routes behind the auth gate
	secured := api.Group("", AuthGate(jwtService))

	secured.GET("/users/current", userHandler.CurrentUser)

	secured.GET("/profile", profileHandler.GetCurrent)
	secured.POST("/profile", profileHandler.Upsert)
	secured.DELETE("/profile", profileHandler.DeleteAccount)

	secured.POST("/posts", postHandler.Create)
	secured.DELETE("/posts/:id", postHandler.Delete)
	secured.POST("/posts/like/:id", postHandler.Like)
	secured.POST("/posts/unlike/:id", postHandler.Unlike)
	secured.POST("/posts/comment/:id", postHandler.Comment)
	secured.DELETE("/posts/comment/:id/:comment_id", postHandler.DeleteComment)
}

// AuthGate verifies the token from the x-auth-token header and attaches the
// decoded identity claims to the request context. A missing header and a
// failed verification produce distinct 401 responses; the verification
// failure reason is logged server-side only.
func AuthGate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  jwtService.Secret(),
		TokenLookup: "header:" + TokenHeader,
		ContextKey:  auth.ContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractionErr *echojwt.TokenExtractionError
			if errors.As(err, &extractionErr) {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"msg": "no token, authorization denied",
				})
			}
			c.Logger().Warnf("auth: token rejected: %v", err)
			return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
				"msg": "token is not valid",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
