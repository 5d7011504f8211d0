package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	ListingID  uint    `json:"listingId" gorm:"not null;index"`
	Listing    Listing `json:"listing"`
	ReviewerID uint    `json:"reviewerId" gorm:"not null;index"`
	Reviewer   User    `json:"reviewer"`
	Rating     int     `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string  `json:"comment" gorm:"type:text"`
}
