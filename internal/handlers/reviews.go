package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/staynest/staynest-backend/internal/services"
)

// ListReviews returns reviews, optionally restricted to one listing via
// the "listing" query parameter
func ListReviews(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listingID uint
		if raw := c.Query("listing"); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid listing"})
				return
			}
			listingID = uint(v)
		}

		reviews, err := svc.List(c.Request.Context(), listingID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, reviews)
	}
}

// GetReview returns a single review by id
func GetReview(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		review, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, review)
	}
}

// CreateReview creates a review with the reviewer forced to the caller
func CreateReview(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ListingID uint   `json:"listingId" binding:"required"`
			Rating    int    `json:"rating" binding:"required,min=1,max=5"`
			Comment   string `json:"comment"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		review, err := svc.Create(c.Request.Context(), currentPrincipal(c), services.CreateReviewInput{
			ListingID: input.ListingID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(201, review)
	}
}

// UpdateReview updates a review. Reviewer only.
func UpdateReview(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var input struct {
			Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
			Comment *string `json:"comment"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		review, err := svc.Update(c.Request.Context(), currentPrincipal(c), id, services.UpdateReviewInput{
			Rating:  input.Rating,
			Comment: input.Comment,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, review)
	}
}

// DeleteReview deletes a review. Reviewer only.
func DeleteReview(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), currentPrincipal(c), id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": "Review successfully deleted"})
	}
}
