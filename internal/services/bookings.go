package services

import (
	"context"
	"fmt"
	"time"

	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/repository"
)

type CreateBookingInput struct {
	ListingID  uint
	CheckIn    time.Time
	CheckOut   time.Time
	NumGuests  int
	TotalPrice float64
}

type UpdateBookingInput struct {
	CheckIn    *time.Time
	CheckOut   *time.Time
	NumGuests  *int
	TotalPrice *float64
}

type BookingService struct {
	bookings repository.BookingRepository
	listings repository.ListingRepository
}

func NewBookingService(bookings repository.BookingRepository, listings repository.ListingRepository) *BookingService {
	return &BookingService{bookings: bookings, listings: listings}
}

// Create creates a booking on the listing with the guest forced to the
// calling principal. New bookings always start out pending.
func (s *BookingService) Create(ctx context.Context, principal Principal, input CreateBookingInput) (*models.Booking, error) {
	listing, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	if !input.CheckOut.After(input.CheckIn) {
		return nil, fmt.Errorf("check_out must be after check_in: %w", models.ErrValidation)
	}

	numGuests := input.NumGuests
	if numGuests <= 0 {
		numGuests = 1
	}

	booking := &models.Booking{
		ListingID:  listing.ID,
		GuestID:    principal.UserID,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		NumGuests:  numGuests,
		TotalPrice: input.TotalPrice,
		Status:     models.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// List returns the bookings visible to the principal: those it made as a
// guest plus those on listings it owns, deduplicated. Anonymous callers get
// an empty result rather than an error.
func (s *BookingService) List(ctx context.Context, principal Principal) ([]models.Booking, error) {
	if !principal.Authenticated {
		return []models.Booking{}, nil
	}
	return s.bookings.ListForUser(ctx, principal.UserID)
}

func (s *BookingService) Get(ctx context.Context, principal Principal, id uint) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.Is(booking.GuestID) && !principal.Is(booking.Listing.OwnerID) {
		return nil, fmt.Errorf("booking is only visible to its guest or the listing owner: %w", models.ErrPermissionDenied)
	}
	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, principal Principal, id uint, input UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.Is(booking.GuestID) && !principal.Is(booking.Listing.OwnerID) {
		return nil, fmt.Errorf("you can only update your own bookings: %w", models.ErrPermissionDenied)
	}

	if input.CheckIn != nil {
		booking.CheckIn = *input.CheckIn
	}
	if input.CheckOut != nil {
		booking.CheckOut = *input.CheckOut
	}
	if !booking.CheckOut.After(booking.CheckIn) {
		return nil, fmt.Errorf("check_out must be after check_in: %w", models.ErrValidation)
	}
	if input.NumGuests != nil {
		booking.NumGuests = *input.NumGuests
	}
	if input.TotalPrice != nil {
		booking.TotalPrice = *input.TotalPrice
	}

	if err := s.bookings.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, principal Principal, id uint) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !principal.Is(booking.GuestID) && !principal.Is(booking.Listing.OwnerID) {
		return fmt.Errorf("you can only delete your own bookings: %w", models.ErrPermissionDenied)
	}

	return s.bookings.Delete(ctx, booking)
}

// UpdateStatus sets the booking status. Only the owner of the booked
// listing may transition a booking, and only to one of the four valid
// statuses. Transitions among valid statuses are otherwise unconstrained.
func (s *BookingService) UpdateStatus(ctx context.Context, principal Principal, id uint, status string) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.Is(booking.Listing.OwnerID) {
		return nil, fmt.Errorf("only the listing owner can update booking status: %w", models.ErrPermissionDenied)
	}

	if !models.IsValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, models.ErrValidation)
	}

	booking.Status = models.BookingStatus(status)
	if err := s.bookings.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
