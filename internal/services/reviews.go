package services

import (
	"context"
	"fmt"

	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/repository"
)

type CreateReviewInput struct {
	ListingID uint
	Rating    int
	Comment   string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type ReviewService struct {
	reviews  repository.ReviewRepository
	listings repository.ListingRepository
}

func NewReviewService(reviews repository.ReviewRepository, listings repository.ListingRepository) *ReviewService {
	return &ReviewService{reviews: reviews, listings: listings}
}

// List returns all reviews, restricted to one listing when listingID is
// non-zero. Open to any caller.
func (s *ReviewService) List(ctx context.Context, listingID uint) ([]models.Review, error) {
	return s.reviews.List(ctx, listingID)
}

func (s *ReviewService) Get(ctx context.Context, id uint) (*models.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

// Create creates a review with the reviewer forced to the calling
// principal.
func (s *ReviewService) Create(ctx context.Context, principal Principal, input CreateReviewInput) (*models.Review, error) {
	listing, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", models.ErrValidation)
	}

	review := &models.Review{
		ListingID:  listing.ID,
		ReviewerID: principal.UserID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, principal Principal, id uint, input UpdateReviewInput) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.Is(review.ReviewerID) {
		return nil, fmt.Errorf("you can only update your own reviews: %w", models.ErrPermissionDenied)
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, fmt.Errorf("rating must be between 1 and 5: %w", models.ErrValidation)
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := s.reviews.Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, principal Principal, id uint) error {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !principal.Is(review.ReviewerID) {
		return fmt.Errorf("you can only delete your own reviews: %w", models.ErrPermissionDenied)
	}

	return s.reviews.Delete(ctx, review)
}
