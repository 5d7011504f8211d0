package database

import (
	"github.com/staynest/staynest-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.ListingImage{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		return err
	}

	// Enforce the listing type set at the storage boundary
	if db.Migrator().HasTable(&models.Listing{}) {
		db.Exec(`ALTER TABLE listings DROP CONSTRAINT IF EXISTS listings_listing_type_check`)
		if err := db.Exec(`ALTER TABLE listings ADD CONSTRAINT listings_listing_type_check CHECK (listing_type IN ('apartment', 'house', 'villa', 'cabin', 'room'))`).Error; err != nil {
			return err
		}
	}

	// Enforce the booking status set at the storage boundary
	if db.Migrator().HasTable(&models.Booking{}) {
		db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_status_check`)
		if err := db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_status_check CHECK (status IN ('pending', 'confirmed', 'cancelled', 'completed'))`).Error; err != nil {
			return err
		}
	}

	// Caption was added after the first deployments; AutoMigrate covers new
	// installs, existing tables get the column backfilled here
	if db.Migrator().HasTable(&models.ListingImage{}) {
		if err := db.Exec(`ALTER TABLE listing_images ADD COLUMN IF NOT EXISTS caption text DEFAULT ''`).Error; err != nil {
			return err
		}
	}

	return nil
}
