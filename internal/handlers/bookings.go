package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/staynest/staynest-backend/internal/services"
)

// CreateBooking creates a booking with the guest forced to the caller
func CreateBooking(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ListingID  uint      `json:"listingId" binding:"required"`
			CheckIn    time.Time `json:"checkIn" binding:"required"`
			CheckOut   time.Time `json:"checkOut" binding:"required"`
			NumGuests  int       `json:"numGuests"`
			TotalPrice float64   `json:"totalPrice"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		booking, err := svc.Create(c.Request.Context(), currentPrincipal(c), services.CreateBookingInput{
			ListingID:  input.ListingID,
			CheckIn:    input.CheckIn,
			CheckOut:   input.CheckOut,
			NumGuests:  input.NumGuests,
			TotalPrice: input.TotalPrice,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(201, booking)
	}
}

// ListBookings returns the bookings visible to the caller: own bookings
// plus bookings on owned listings. Anonymous callers get an empty list.
func ListBookings(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.List(c.Request.Context(), currentPrincipal(c))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, bookings)
	}
}

// GetBooking returns a booking. Guest or listing owner only.
func GetBooking(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		booking, err := svc.Get(c.Request.Context(), currentPrincipal(c), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, booking)
	}
}

// UpdateBooking updates booking details. Guest or listing owner only.
func UpdateBooking(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var input struct {
			CheckIn    *time.Time `json:"checkIn"`
			CheckOut   *time.Time `json:"checkOut"`
			NumGuests  *int       `json:"numGuests" binding:"omitempty,gt=0"`
			TotalPrice *float64   `json:"totalPrice"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		booking, err := svc.Update(c.Request.Context(), currentPrincipal(c), id, services.UpdateBookingInput{
			CheckIn:    input.CheckIn,
			CheckOut:   input.CheckOut,
			NumGuests:  input.NumGuests,
			TotalPrice: input.TotalPrice,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, booking)
	}
}

// DeleteBooking deletes a booking. Guest or listing owner only.
func DeleteBooking(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), currentPrincipal(c), id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": "Booking successfully deleted"})
	}
}

// UpdateBookingStatus updates the status of a booking. Listing owner only;
// the status must be one of pending, confirmed, cancelled, completed.
func UpdateBookingStatus(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		booking, err := svc.UpdateStatus(c.Request.Context(), currentPrincipal(c), id, input.Status)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, booking)
	}
}
