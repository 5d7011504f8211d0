package services

import (
	"context"

	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/repository"
)

type CreateImageInput struct {
	ListingID uint
	Image     string
	Caption   string
}

type UpdateImageInput struct {
	Image   *string
	Caption *string
}

// ImageService attaches images to listings. Mutations require an
// authenticated caller but deliberately no ownership check: any
// authenticated principal may attach an image to any listing, matching the
// original open-write policy.
type ImageService struct {
	images   repository.ImageRepository
	listings repository.ListingRepository
}

func NewImageService(images repository.ImageRepository, listings repository.ListingRepository) *ImageService {
	return &ImageService{images: images, listings: listings}
}

func (s *ImageService) List(ctx context.Context, listingID uint) ([]models.ListingImage, error) {
	return s.images.List(ctx, listingID)
}

func (s *ImageService) Get(ctx context.Context, id uint) (*models.ListingImage, error) {
	return s.images.GetByID(ctx, id)
}

func (s *ImageService) Create(ctx context.Context, input CreateImageInput) (*models.ListingImage, error) {
	listing, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	image := &models.ListingImage{
		ListingID: listing.ID,
		Image:     input.Image,
		Caption:   input.Caption,
	}

	if err := s.images.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ImageService) Update(ctx context.Context, id uint, input UpdateImageInput) (*models.ListingImage, error) {
	image, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Image != nil {
		image.Image = *input.Image
	}
	if input.Caption != nil {
		image.Caption = *input.Caption
	}

	if err := s.images.Save(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ImageService) Delete(ctx context.Context, id uint) error {
	image, err := s.images.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.images.Delete(ctx, image)
}
