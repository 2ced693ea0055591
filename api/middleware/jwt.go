package middleware

import (
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/statattack/statattack/internal/user"
)

func SetupJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.JwtCustomClaims)
		},
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	})
}

// UserID returns the authenticated user's ID on a route guarded by
// SetupJWTMiddleware, or 0 if the token is missing from the context.
func UserID(c echo.Context) uint {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.Id
}

// OptionalUserID parses a bearer token if the request carries one.
// Guessing is open to anonymous players, so a missing or invalid token
// yields nil instead of an error.
func OptionalUserID(c echo.Context) *uint {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil
	}

	claims := new(user.JwtCustomClaims)
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	id := claims.Id
	return &id
}
