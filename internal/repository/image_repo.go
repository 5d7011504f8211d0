package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/staynest/staynest-backend/internal/models"
	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(ctx context.Context, image *models.ListingImage) error
	GetByID(ctx context.Context, id uint) (*models.ListingImage, error)
	// List returns all images, restricted to one listing when listingID is
	// non-zero.
	List(ctx context.Context, listingID uint) ([]models.ListingImage, error)
	Save(ctx context.Context, image *models.ListingImage) error
	Delete(ctx context.Context, image *models.ListingImage) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.ListingImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) GetByID(ctx context.Context, id uint) (*models.ListingImage, error) {
	var image models.ListingImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("listing image %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) List(ctx context.Context, listingID uint) ([]models.ListingImage, error) {
	query := r.db.WithContext(ctx)
	if listingID != 0 {
		query = query.Where("listing_id = ?", listingID)
	}

	var images []models.ListingImage
	if err := query.Order("id ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) Save(ctx context.Context, image *models.ListingImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *imageRepository) Delete(ctx context.Context, image *models.ListingImage) error {
	return r.db.WithContext(ctx).Delete(image).Error
}
