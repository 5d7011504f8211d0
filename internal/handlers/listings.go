package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/services"
)

// listingFilterFromQuery maps the search query parameters onto the typed
// filter. Absent parameters impose no constraint.
func listingFilterFromQuery(c *gin.Context) (models.ListingFilter, bool) {
	filter := models.ListingFilter{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid min_price"})
			return filter, false
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid max_price"})
			return filter, false
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("guests"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid guests"})
			return filter, false
		}
		filter.Guests = &v
	}

	return filter, true
}

// ListListings returns active listings matching the query filters
func ListListings(svc *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := listingFilterFromQuery(c)
		if !ok {
			return
		}

		listings, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, listings)
	}
}

// GetListing returns a single listing by id
func GetListing(svc *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		listing, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, listing)
	}
}

// CreateListing creates a listing owned by the authenticated caller
func CreateListing(svc *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Title         string             `json:"title" binding:"required"`
			Description   string             `json:"description"`
			Location      string             `json:"location" binding:"required"`
			ListingType   models.ListingType `json:"listingType" binding:"required,oneof=apartment house villa cabin room"`
			PricePerNight float64            `json:"pricePerNight" binding:"required,gt=0"`
			MaxGuests     int                `json:"maxGuests" binding:"required,gt=0"`
			IsActive      *bool              `json:"isActive"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		listing, err := svc.Create(c.Request.Context(), currentPrincipal(c), services.CreateListingInput{
			Title:         input.Title,
			Description:   input.Description,
			Location:      input.Location,
			ListingType:   input.ListingType,
			PricePerNight: input.PricePerNight,
			MaxGuests:     input.MaxGuests,
			IsActive:      input.IsActive,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(201, listing)
	}
}

// UpdateListing updates a listing. Owner only.
func UpdateListing(svc *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var input struct {
			Title         *string             `json:"title"`
			Description   *string             `json:"description"`
			Location      *string             `json:"location"`
			ListingType   *models.ListingType `json:"listingType" binding:"omitempty,oneof=apartment house villa cabin room"`
			PricePerNight *float64            `json:"pricePerNight" binding:"omitempty,gt=0"`
			MaxGuests     *int                `json:"maxGuests" binding:"omitempty,gt=0"`
			IsActive      *bool               `json:"isActive"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		listing, err := svc.Update(c.Request.Context(), currentPrincipal(c), id, services.UpdateListingInput{
			Title:         input.Title,
			Description:   input.Description,
			Location:      input.Location,
			ListingType:   input.ListingType,
			PricePerNight: input.PricePerNight,
			MaxGuests:     input.MaxGuests,
			IsActive:      input.IsActive,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, listing)
	}
}

// DeleteListing deletes a listing. Owner only.
func DeleteListing(svc *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), currentPrincipal(c), id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": "Listing successfully deleted"})
	}
}

// GetListingReviews returns all reviews for a listing
func GetListingReviews(svc *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		reviews, err := svc.Reviews(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, reviews)
	}
}

// GetListingBookings returns all bookings for a listing. Owner only.
func GetListingBookings(svc *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		bookings, err := svc.Bookings(c.Request.Context(), currentPrincipal(c), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, bookings)
	}
}
