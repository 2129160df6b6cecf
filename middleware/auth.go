package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"food4u-api/logger"
	"food4u-api/models"
	"food4u-api/token"

	"github.com/gin-gonic/gin"
)

const (
	ctxAccountID  = "accountID"
	ctxRoles      = "roles"
	ctxActiveRole = "activeRole"
)

// TokenParser verifies bearer tokens
type TokenParser interface {
	Parse(tokenStr string) (*token.Claims, error)
}

// SessionChecker confirms that a verified token still belongs to the account's open session
type SessionChecker interface {
	Authorize(ctx context.Context, claims *token.Claims) (*models.Account, error)
}

// BearerToken extracts the token from the Authorization header
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return tok, tok != ""
}

// AuthRequired validates the token, checks its session is still open and
// injects its claims into context
func AuthRequired(tokens TokenParser, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization header required (Bearer <token>)",
			})
			return
		}
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": models.ErrInvalidToken.Error(),
			})
			return
		}
		if _, err := sessions.Authorize(c.Request.Context(), claims); err != nil {
			if !errors.Is(err, models.ErrInvalidToken) {
				logger.Errorf("authorize account %s: %v", claims.AccountID, err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": models.ErrInvalidToken.Error(),
			})
			return
		}
		c.Set(ctxAccountID, claims.AccountID)
		c.Set(ctxRoles, claims.Roles)
		c.Set(ctxActiveRole, claims.ActiveRole)
		c.Next()
	}
}

// RoleRequired enforces that the session runs under one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		active, ok := GetActiveRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Role not found in context"})
			return
		}
		for _, r := range roles {
			if active == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied. Required active role(s): " + rolesString(roles),
		})
	}
}

func rolesString(roles []models.UserRole) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// GetAccountID extracts the caller's account id from context
func GetAccountID(c *gin.Context) string {
	return c.GetString(ctxAccountID)
}

// GetActiveRole extracts the role the caller's session runs under
func GetActiveRole(c *gin.Context) (models.UserRole, bool) {
	val, ok := c.Get(ctxActiveRole)
	if !ok {
		return "", false
	}
	role, ok := val.(models.UserRole)
	return role, ok
}
