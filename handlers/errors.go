package handlers

import (
	"errors"
	"net/http"

	"food4u-api/logger"
	"food4u-api/models"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to status codes. Anything unknown is a 500.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Error(), "field": verr.Field})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": models.ErrInvalidCredentials.Error()})
	case errors.Is(err, models.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": models.ErrInvalidToken.Error()})
	case errors.Is(err, models.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": models.ErrInvalidRole.Error()})
	case errors.Is(err, models.ErrSessionConflict):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": models.ErrSessionConflict.Error()})
	case errors.Is(err, models.ErrDuplicateFood):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": models.ErrDuplicateFood.Error()})
	case errors.Is(err, models.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	default:
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
}
