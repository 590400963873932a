package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub-backend/internal/response"
	"github.com/learnhub/learnhub-backend/internal/service"
)

// ContextKeyAccountID is the Gin context key for the authenticated principal.
const ContextKeyAccountID = "account_id"

// RequireRole validates a role-scoped JWT from the Authorization header and
// stores the principal's account id in the context. Both role gates are the
// same component parameterized by role; only the verifying secret differs.
//
// The client sends the raw token string in the Authorization header; a
// conventional "Bearer " prefix is tolerated and stripped.
func RequireRole(auth *service.AuthService, role service.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromHeader(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := auth.ValidateToken(tokenStr, role)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyAccountID, claims.Subject)
		c.Next()
	}
}

// RequireUser gates a route behind a valid user token.
func RequireUser(auth *service.AuthService) gin.HandlerFunc {
	return RequireRole(auth, service.RoleUser)
}

// RequireAdmin gates a route behind a valid admin token.
func RequireAdmin(auth *service.AuthService) gin.HandlerFunc {
	return RequireRole(auth, service.RoleAdmin)
}

// AccountID retrieves the authenticated principal id from the Gin context.
func AccountID(c *gin.Context) string {
	id, _ := c.Get(ContextKeyAccountID)
	s, _ := id.(string)
	return s
}

func tokenFromHeader(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
