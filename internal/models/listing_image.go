package models

import "gorm.io/gorm"

type ListingImage struct {
	gorm.Model
	ListingID uint    `json:"listingId" gorm:"not null;index"`
	Listing   Listing `json:"listing" gorm:"foreignKey:ListingID"`
	Image     string  `json:"image" gorm:"not null"`
	Caption   string  `json:"caption"`
}
