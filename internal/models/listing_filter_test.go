package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func austinLoft() Listing {
	return Listing{
		Title:         "Cozy downtown loft",
		Description:   "Walkable, near the river",
		Location:      "Austin",
		ListingType:   ListingTypeApartment,
		PricePerNight: 100,
		MaxGuests:     4,
		IsActive:      true,
	}
}

func TestListingFilter_Matches(t *testing.T) {
	tests := []struct {
		name    string
		filter  ListingFilter
		mutate  func(*Listing)
		matches bool
	}{
		{name: "empty filter matches active listing", filter: ListingFilter{}, matches: true},
		{
			name:    "inactive listing never matches",
			filter:  ListingFilter{},
			mutate:  func(l *Listing) { l.IsActive = false },
			matches: false,
		},
		{
			name:    "price window includes boundary listing",
			filter:  ListingFilter{MinPrice: floatPtr(50), MaxPrice: floatPtr(150), Location: "austin"},
			matches: true,
		},
		{
			name:    "max price below listing excludes it",
			filter:  ListingFilter{MinPrice: floatPtr(50), MaxPrice: floatPtr(80), Location: "austin"},
			matches: false,
		},
		{
			name:    "price bounds are inclusive",
			filter:  ListingFilter{MinPrice: floatPtr(100), MaxPrice: floatPtr(100)},
			matches: true,
		},
		{
			name:    "location is case-insensitive substring",
			filter:  ListingFilter{Location: "AUST"},
			matches: true,
		},
		{
			name:    "type must match exactly",
			filter:  ListingFilter{Type: "villa"},
			matches: false,
		},
		{
			name:    "guest capacity at least requested",
			filter:  ListingFilter{Guests: intPtr(4)},
			matches: true,
		},
		{
			name:    "guest capacity below requested excludes",
			filter:  ListingFilter{Guests: intPtr(5)},
			matches: false,
		},
		{
			name:    "search matches title",
			filter:  ListingFilter{Search: "LOFT"},
			matches: true,
		},
		{
			name:    "search matches description",
			filter:  ListingFilter{Search: "river"},
			matches: true,
		},
		{
			name:    "search matches location",
			filter:  ListingFilter{Search: "austin"},
			matches: true,
		},
		{
			name:    "search misses all three fields",
			filter:  ListingFilter{Search: "beachfront"},
			matches: false,
		},
		{
			name:    "filter kinds combine with AND",
			filter:  ListingFilter{Location: "austin", Guests: intPtr(6)},
			matches: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := austinLoft()
			if tt.mutate != nil {
				tt.mutate(&listing)
			}
			assert.Equal(t, tt.matches, tt.filter.Matches(listing))
		})
	}
}

func TestListingFilter_CacheKey(t *testing.T) {
	a := ListingFilter{Location: "Austin", MinPrice: floatPtr(50)}
	b := ListingFilter{Location: "austin", MinPrice: floatPtr(50)}
	c := ListingFilter{Location: "austin", MinPrice: floatPtr(60)}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled", "completed"} {
		assert.True(t, IsValidBookingStatus(valid), valid)
	}
	for _, invalid := range []string{"", "approved", "PENDING", "done"} {
		assert.False(t, IsValidBookingStatus(invalid), invalid)
	}
}
