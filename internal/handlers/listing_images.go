package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/staynest/staynest-backend/internal/services"
)

// ListListingImages returns images, optionally restricted to one listing
// via the "listing" query parameter
func ListListingImages(svc *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listingID uint
		if raw := c.Query("listing"); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid listing"})
				return
			}
			listingID = uint(v)
		}

		images, err := svc.List(c.Request.Context(), listingID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, images)
	}
}

// GetListingImage returns a single image record by id
func GetListingImage(svc *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		image, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, image)
	}
}

// CreateListingImage attaches an image to the listing given in the
// request. Multipart requests carry the file itself, which is uploaded to
// storage first; JSON requests carry an image URL. Any authenticated
// caller may attach images to any listing.
func CreateListingImage(svc *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			listingID, err := strconv.ParseUint(c.PostForm("listing"), 10, 32)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid listing"})
				return
			}

			file, err := c.FormFile("image")
			if err != nil {
				c.JSON(400, gin.H{"error": "Image file required"})
				return
			}

			imagePath, err := services.UploadImage(file, "listings")
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to upload image"})
				return
			}

			image, err := svc.Create(c.Request.Context(), services.CreateImageInput{
				ListingID: uint(listingID),
				Image:     services.GetImageURL(imagePath),
				Caption:   c.PostForm("caption"),
			})
			if err != nil {
				respondError(c, err)
				return
			}

			c.JSON(201, image)
			return
		}

		var input struct {
			ListingID uint   `json:"listingId" binding:"required"`
			Image     string `json:"image" binding:"required"`
			Caption   string `json:"caption"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		image, err := svc.Create(c.Request.Context(), services.CreateImageInput{
			ListingID: input.ListingID,
			Image:     input.Image,
			Caption:   input.Caption,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(201, image)
	}
}

// UpdateListingImage updates an image record
func UpdateListingImage(svc *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var input struct {
			Image   *string `json:"image"`
			Caption *string `json:"caption"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		image, err := svc.Update(c.Request.Context(), id, services.UpdateImageInput{
			Image:   input.Image,
			Caption: input.Caption,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, image)
	}
}

// DeleteListingImage deletes an image record and its stored file
func DeleteListingImage(svc *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		image, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		// Record is gone either way; an orphaned object in storage is
		// preferable to a dangling database row
		if err := services.DeleteImage(image.Image); err != nil {
			log.Printf("Failed to delete stored image %s: %v", image.Image, err)
		}

		c.JSON(200, gin.H{"message": "Image successfully deleted"})
	}
}
