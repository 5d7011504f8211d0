package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/staynest/staynest-backend/internal/models"
	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id uint) (*models.Listing, error)
	ListActive(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	Save(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, listing *models.Listing) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetByID(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.WithContext(ctx).Preload("Owner").First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("listing %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &listing, nil
}

// ListActive applies the filter the same way ListingFilter.Matches does:
// AND across filter kinds, OR across title/description/location for search.
func (r *listingRepository) ListActive(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	query := r.db.WithContext(ctx).Preload("Owner").Where("is_active = ?", true)

	if filter.Type != "" {
		query = query.Where("listing_type = ?", filter.Type)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price_per_night >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price_per_night <= ?", *filter.MaxPrice)
	}
	if filter.Guests != nil {
		query = query.Where("max_guests >= ?", *filter.Guests)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var listings []models.Listing
	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Save(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *listingRepository) Delete(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Delete(listing).Error
}
