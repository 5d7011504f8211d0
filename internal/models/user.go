package models

import (
	"gorm.io/gorm"
)

// User rows are provisioned by the identity service that issues the JWTs
// this API verifies. They exist here so listings, bookings and reviews can
// reference their principals.
type User struct {
	gorm.Model
	Username    string `json:"username" gorm:"column:username;unique;not null"`
	Email       string `json:"email" gorm:"column:email;unique;not null"`
	PhoneNumber string `json:"phoneNumber" gorm:"column:phone_number"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}
