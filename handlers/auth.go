package handlers

import (
	"errors"
	"net/http"

	"food4u-api/middleware"
	"food4u-api/models"
	"food4u-api/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Register creates an account or adds roles to the one already using the phone
func (h *AuthHandler) Register(c *gin.Context) {
	var req session.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.sessions.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	switch res.Status {
	case session.StatusCreated:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Account created successfully",
			"userId":  res.AccountID,
			"roles":   res.Roles,
			"created": true,
		})
	case session.StatusRolesAdded:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Roles added to existing account",
			"userId":  res.AccountID,
			"roles":   res.Roles,
			"added":   res.Added,
			"created": false,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No new roles added",
			"userId":  res.AccountID,
			"roles":   res.Roles,
			"created": false,
		})
	}
}

// Login authenticates and opens a session under the requested role
func (h *AuthHandler) Login(c *gin.Context) {
	var req session.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.sessions.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Login successful",
		"token":      res.Token,
		"userId":     res.AccountID,
		"activeRole": res.ActiveRole,
		"roles":      res.Roles,
		"expiresAt":  res.ExpiresAt,
	})
}

// Logout releases the active role held by the token's account
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenStr, ok := middleware.BearerToken(c)
	if !ok {
		respondError(c, models.ErrInvalidToken)
		return
	}
	if err := h.sessions.Logout(c.Request.Context(), tokenStr); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// GetProfile returns the authenticated account with its flat extra data
func (h *AuthHandler) GetProfile(c *gin.Context) {
	acc, err := h.sessions.Account(c.Request.Context(), middleware.GetAccountID(c))
	if errors.Is(err, models.ErrAccountNotFound) {
		respondError(c, models.ErrInvalidToken)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         acc.ID,
			"name":       acc.Name,
			"phone":      acc.Phone,
			"roles":      acc.Roles,
			"activeRole": acc.ActiveRole,
			"extraData":  acc.Profiles.Data().ExtraData(),
			"createdAt":  acc.CreatedAt,
		},
	})
}
