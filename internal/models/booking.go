package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsValidBookingStatus reports whether s is one of the four accepted
// booking statuses. Transitions between valid statuses are unconstrained;
// only the value set is enforced.
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	gorm.Model
	ListingID  uint          `json:"listingId" gorm:"not null;index"`
	Listing    Listing       `json:"listing"`
	GuestID    uint          `json:"guestId" gorm:"not null;index"`
	Guest      User          `json:"guest"`
	CheckIn    time.Time     `json:"checkIn" gorm:"not null"`
	CheckOut   time.Time     `json:"checkOut" gorm:"not null"`
	NumGuests  int           `json:"numGuests" gorm:"not null;default:1"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status" gorm:"not null;default:'pending'"`
}
