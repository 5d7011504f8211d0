package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/staynest/staynest-backend/internal/models"
	"gorm.io/gorm"
)

// GetProfile returns the caller's profile. Profile mutation belongs to the
// identity service, so this stays read-only.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"username":    user.Username,
			"phoneNumber": user.PhoneNumber,
		})
	}
}
