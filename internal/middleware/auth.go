package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/calendar-booking/internal/config"
	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
)

const (
	ContextAdmin    = "admin"
	ContextUserRole = "userRole"

	RoleAdmin = "admin"
)

// AdminAuth accepts HS256 bearer tokens whose role claim is admin.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Invalid authorization header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_claims", "Invalid token")
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if sub == "" {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_payload", "Invalid token")
			return
		}
		if role != RoleAdmin {
			httperr.Abort(c, http.StatusForbidden, "forbidden", "Admin role required")
			return
		}

		c.Set(ContextAdmin, sub)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}
