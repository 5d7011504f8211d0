package services

import (
	"context"
	"testing"

	"github.com/staynest/staynest-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newListingService(listings *MockListingRepository, reviews *MockReviewRepository, bookings *MockBookingRepository) *ListingService {
	return NewListingService(listings, reviews, bookings)
}

func TestListingService_Create_ForcesOwner(t *testing.T) {
	listings := &MockListingRepository{}
	svc := newListingService(listings, &MockReviewRepository{}, &MockBookingRepository{})

	listings.On("Create", mock.Anything, mock.AnythingOfType("*models.Listing")).Return(nil)

	listing, err := svc.Create(context.Background(), Principal{UserID: 7, Authenticated: true}, CreateListingInput{
		Title:         "Cozy loft",
		Location:      "Austin",
		ListingType:   models.ListingTypeApartment,
		PricePerNight: 100,
		MaxGuests:     2,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), listing.OwnerID)
	assert.True(t, listing.IsActive)
	listings.AssertExpectations(t)
}

func TestListingService_Update_NotOwner(t *testing.T) {
	listings := &MockListingRepository{}
	svc := newListingService(listings, &MockReviewRepository{}, &MockBookingRepository{})

	existing := &models.Listing{OwnerID: 1, Title: "Original"}
	listings.On("GetByID", mock.Anything, uint(5)).Return(existing, nil)

	title := "Hijacked"
	_, err := svc.Update(context.Background(), Principal{UserID: 2, Authenticated: true}, 5, UpdateListingInput{Title: &title})

	assert.ErrorIs(t, err, models.ErrPermissionDenied)
	assert.Equal(t, "Original", existing.Title)
	listings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestListingService_Update_Owner(t *testing.T) {
	listings := &MockListingRepository{}
	svc := newListingService(listings, &MockReviewRepository{}, &MockBookingRepository{})

	existing := &models.Listing{OwnerID: 1, Title: "Original", PricePerNight: 100}
	listings.On("GetByID", mock.Anything, uint(5)).Return(existing, nil)
	listings.On("Save", mock.Anything, existing).Return(nil)

	price := 120.0
	updated, err := svc.Update(context.Background(), Principal{UserID: 1, Authenticated: true}, 5, UpdateListingInput{PricePerNight: &price})

	assert.NoError(t, err)
	assert.Equal(t, 120.0, updated.PricePerNight)
	assert.Equal(t, "Original", updated.Title)
	listings.AssertExpectations(t)
}

func TestListingService_Delete_NotOwner(t *testing.T) {
	listings := &MockListingRepository{}
	svc := newListingService(listings, &MockReviewRepository{}, &MockBookingRepository{})

	listings.On("GetByID", mock.Anything, uint(3)).Return(&models.Listing{OwnerID: 9}, nil)

	err := svc.Delete(context.Background(), Principal{UserID: 2, Authenticated: true}, 3)

	assert.ErrorIs(t, err, models.ErrPermissionDenied)
	listings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListingService_Delete_Anonymous(t *testing.T) {
	listings := &MockListingRepository{}
	svc := newListingService(listings, &MockReviewRepository{}, &MockBookingRepository{})

	listings.On("GetByID", mock.Anything, uint(3)).Return(&models.Listing{OwnerID: 9}, nil)

	err := svc.Delete(context.Background(), Anonymous, 3)

	assert.ErrorIs(t, err, models.ErrPermissionDenied)
}

func TestListingService_List_PassesFilter(t *testing.T) {
	listings := &MockListingRepository{}
	svc := newListingService(listings, &MockReviewRepository{}, &MockBookingRepository{})

	min := 50.0
	filter := models.ListingFilter{Location: "austin", MinPrice: &min}
	expected := []models.Listing{{Title: "Cozy loft"}}
	listings.On("ListActive", mock.Anything, filter).Return(expected, nil)

	result, err := svc.List(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	listings.AssertExpectations(t)
}

func TestListingService_Reviews_AnyCaller(t *testing.T) {
	listings := &MockListingRepository{}
	reviews := &MockReviewRepository{}
	svc := newListingService(listings, reviews, &MockBookingRepository{})

	listings.On("GetByID", mock.Anything, uint(4)).Return(&models.Listing{OwnerID: 1}, nil)
	reviews.On("List", mock.Anything, uint(4)).Return([]models.Review{{Rating: 5}}, nil)

	result, err := svc.Reviews(context.Background(), 4)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestListingService_Bookings_OwnerOnly(t *testing.T) {
	listings := &MockListingRepository{}
	bookings := &MockBookingRepository{}
	svc := newListingService(listings, &MockReviewRepository{}, bookings)

	listings.On("GetByID", mock.Anything, uint(4)).Return(&models.Listing{OwnerID: 1}, nil)

	_, err := svc.Bookings(context.Background(), Principal{UserID: 2, Authenticated: true}, 4)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)
	bookings.AssertNotCalled(t, "ListForListing", mock.Anything, mock.Anything)

	bookings.On("ListForListing", mock.Anything, uint(4)).Return([]models.Booking{{GuestID: 8}}, nil)
	result, err := svc.Bookings(context.Background(), Principal{UserID: 1, Authenticated: true}, 4)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
