package models

import (
	"fmt"
	"strings"
)

// ListingFilter is the typed form of the listing search query parameters.
// Zero-value fields impose no constraint. Distinct filter kinds combine
// with AND; Search alone is an OR across title, description and location.
type ListingFilter struct {
	Type     string
	Location string
	MinPrice *float64
	MaxPrice *float64
	Guests   *int
	Search   string
}

// Matches reports whether l satisfies the filter. It mirrors the SQL the
// listing repository generates, so the filter semantics stay testable
// without a database. Inactive listings never match.
func (f ListingFilter) Matches(l Listing) bool {
	if !l.IsActive {
		return false
	}
	if f.Type != "" && string(l.ListingType) != f.Type {
		return false
	}
	if f.Location != "" && !containsFold(l.Location, f.Location) {
		return false
	}
	if f.MinPrice != nil && l.PricePerNight < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.PricePerNight > *f.MaxPrice {
		return false
	}
	if f.Guests != nil && l.MaxGuests < *f.Guests {
		return false
	}
	if f.Search != "" &&
		!containsFold(l.Title, f.Search) &&
		!containsFold(l.Description, f.Search) &&
		!containsFold(l.Location, f.Search) {
		return false
	}
	return true
}

// CacheKey is a stable redis key suffix for the filter combination.
func (f ListingFilter) CacheKey() string {
	var b strings.Builder
	b.WriteString("type=" + f.Type)
	b.WriteString("|location=" + strings.ToLower(f.Location))
	if f.MinPrice != nil {
		fmt.Fprintf(&b, "|min=%.2f", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		fmt.Fprintf(&b, "|max=%.2f", *f.MaxPrice)
	}
	if f.Guests != nil {
		fmt.Fprintf(&b, "|guests=%d", *f.Guests)
	}
	b.WriteString("|search=" + strings.ToLower(f.Search))
	return b.String()
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
