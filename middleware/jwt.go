package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/utils"
)

// RoleAllows is the single authorization rule: a holder passes when no
// role is required, when roles match, or when they are an admin.
func RoleAllows(actual, required string) bool {
	return required == "" || actual == required || actual == "admin"
}

// JWTMiddleware authenticates the bearer token and, when requiredRole is
// non-empty, enforces it. Missing or bad tokens are 401; a valid token
// with the wrong role is 403 — callers can tell the two apart.
func JWTMiddleware(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Unauthorized",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Unauthorized",
				})
			}

			claims, err := utils.ValidateJWT(tokenParts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Unauthorized",
				})
			}

			if !RoleAllows(claims.Role, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{
					"message": "Forbidden",
				})
			}

			c.Set("user_id", claims.Subject)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}
