package services

import (
	"context"
	"fmt"
	"log"

	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/repository"
)

type CreateListingInput struct {
	Title         string
	Description   string
	Location      string
	ListingType   models.ListingType
	PricePerNight float64
	MaxGuests     int
	IsActive      *bool
}

type UpdateListingInput struct {
	Title         *string
	Description   *string
	Location      *string
	ListingType   *models.ListingType
	PricePerNight *float64
	MaxGuests     *int
	IsActive      *bool
}

type ListingService struct {
	listings repository.ListingRepository
	reviews  repository.ReviewRepository
	bookings repository.BookingRepository
}

func NewListingService(
	listings repository.ListingRepository,
	reviews repository.ReviewRepository,
	bookings repository.BookingRepository,
) *ListingService {
	return &ListingService{
		listings: listings,
		reviews:  reviews,
		bookings: bookings,
	}
}

// List returns active listings matching the filter. Results are served
// from the redis cache when a fresh entry exists for the same filter
// combination; a cold or unavailable cache falls through to the database.
func (s *ListingService) List(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	if cached, err := GetCachedListingSearch(ctx, filter.CacheKey()); err == nil {
		return cached, nil
	}

	listings, err := s.listings.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := CacheListingSearch(ctx, filter.CacheKey(), listings); err != nil {
		log.Printf("Failed to cache listing search: %v", err)
	}
	return listings, nil
}

func (s *ListingService) Get(ctx context.Context, id uint) (*models.Listing, error) {
	if cached, err := GetCachedListing(ctx, id); err == nil {
		return cached, nil
	}

	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := CacheListing(ctx, listing); err != nil {
		log.Printf("Failed to cache listing %d: %v", id, err)
	}
	return listing, nil
}

// Create creates a listing owned by the calling principal. Any owner sent
// by the client is ignored.
func (s *ListingService) Create(ctx context.Context, principal Principal, input CreateListingInput) (*models.Listing, error) {
	listing := &models.Listing{
		OwnerID:       principal.UserID,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		ListingType:   input.ListingType,
		PricePerNight: input.PricePerNight,
		MaxGuests:     input.MaxGuests,
		IsActive:      true,
	}
	if input.IsActive != nil {
		listing.IsActive = *input.IsActive
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx, listing.ID)
	return listing, nil
}

func (s *ListingService) Update(ctx context.Context, principal Principal, id uint, input UpdateListingInput) (*models.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.Is(listing.OwnerID) {
		return nil, fmt.Errorf("you can only update your own listings: %w", models.ErrPermissionDenied)
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.ListingType != nil {
		listing.ListingType = *input.ListingType
	}
	if input.PricePerNight != nil {
		listing.PricePerNight = *input.PricePerNight
	}
	if input.MaxGuests != nil {
		listing.MaxGuests = *input.MaxGuests
	}
	if input.IsActive != nil {
		listing.IsActive = *input.IsActive
	}

	if err := s.listings.Save(ctx, listing); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx, listing.ID)
	return listing, nil
}

func (s *ListingService) Delete(ctx context.Context, principal Principal, id uint) error {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !principal.Is(listing.OwnerID) {
		return fmt.Errorf("you can only delete your own listings: %w", models.ErrPermissionDenied)
	}

	if err := s.listings.Delete(ctx, listing); err != nil {
		return err
	}

	s.invalidateCaches(ctx, listing.ID)
	return nil
}

// Reviews returns all reviews for a listing, regardless of caller.
func (s *ListingService) Reviews(ctx context.Context, id uint) ([]models.Review, error) {
	if _, err := s.listings.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.reviews.List(ctx, id)
}

// Bookings returns all bookings for a listing. Owner only.
func (s *ListingService) Bookings(ctx context.Context, principal Principal, id uint) ([]models.Booking, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.Is(listing.OwnerID) {
		return nil, fmt.Errorf("only the listing owner can view its bookings: %w", models.ErrPermissionDenied)
	}

	return s.bookings.ListForListing(ctx, id)
}

func (s *ListingService) invalidateCaches(ctx context.Context, listingID uint) {
	if err := InvalidateListing(ctx, listingID); err != nil {
		log.Printf("Failed to invalidate listing cache: %v", err)
	}
	if err := InvalidateListingSearches(ctx); err != nil {
		log.Printf("Failed to invalidate listing search cache: %v", err)
	}
}
