package models

import (
	"gorm.io/gorm"
)

type ListingType string

const (
	ListingTypeApartment ListingType = "apartment"
	ListingTypeHouse     ListingType = "house"
	ListingTypeVilla     ListingType = "villa"
	ListingTypeCabin     ListingType = "cabin"
	ListingTypeRoom      ListingType = "room"
)

type Listing struct {
	gorm.Model
	OwnerID       uint        `json:"ownerId" gorm:"not null;index"`
	Owner         User        `json:"owner"`
	Title         string      `json:"title" gorm:"not null"`
	Description   string      `json:"description" gorm:"type:text"`
	Location      string      `json:"location" gorm:"not null;index"`
	ListingType   ListingType `json:"listingType" gorm:"not null;default:'apartment'"`
	PricePerNight float64     `json:"pricePerNight" gorm:"not null"`
	MaxGuests     int         `json:"maxGuests" gorm:"not null;default:1"`
	IsActive      bool        `json:"isActive" gorm:"not null;default:true"`
}
