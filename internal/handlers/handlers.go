package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/services"
)

// currentPrincipal builds the principal from what the auth middleware
// resolved. Requests that never went through the middleware, or went
// through the optional variant without a token, come out anonymous.
func currentPrincipal(c *gin.Context) services.Principal {
	if v, ok := c.Get("userId"); ok {
		if userID, ok := v.(uint); ok {
			return services.Principal{UserID: userID, Authenticated: true}
		}
	}
	return services.Anonymous
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrPermissionDenied):
		c.JSON(403, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrValidation):
		c.JSON(400, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": "Internal server error"})
	}
}
