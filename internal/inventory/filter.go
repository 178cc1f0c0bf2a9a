// Package inventory translates catalog filter state into database queries.
package inventory

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Sentinel values mean "no constraint" for their field and contribute no
// predicate. They match the values the storefront filter widgets send.
const (
	AllMakes = "All Makes"
	AllTypes = "All Types"
	All      = "All"
)

// Sort keys accepted by the catalog listing.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortMileage   = "mileage"
	SortYear      = "year"
)

// Filter is the full filter/sort state of a catalog listing. Blank or
// sentinel fields are unconstrained; supplied fields are ANDed together.
type Filter struct {
	Search       string
	Make         string
	BodyType     string
	Transmission string
	FuelType     string
	Condition    string
	Status       string
	MinPrice     string
	MaxPrice     string
	SortBy       string
}

// ParseQuery builds a Filter from listing query parameters. Status
// defaults to "available": sold and reserved vehicles must be asked for
// explicitly, and "All" lifts the constraint.
func ParseQuery(q url.Values) Filter {
	f := Filter{
		Search:       strings.TrimSpace(q.Get("search")),
		Make:         q.Get("make"),
		BodyType:     q.Get("body_type"),
		Transmission: q.Get("transmission"),
		FuelType:     q.Get("fuel_type"),
		Condition:    q.Get("condition"),
		Status:       q.Get("status"),
		MinPrice:     strings.TrimSpace(q.Get("min_price")),
		MaxPrice:     strings.TrimSpace(q.Get("max_price")),
		SortBy:       q.Get("sort"),
	}
	if f.Status == "" {
		f.Status = "available"
	}
	if f.SortBy == "" {
		f.SortBy = SortNewest
	}
	return f
}

// Apply composes the filter into the query: the conjunction of every
// non-sentinel field, then the sort order.
func (f Filter) Apply(db *gorm.DB) *gorm.DB {
	q := db
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(make) LIKE ? OR LOWER(model) LIKE ?", pattern, pattern)
	}
	if f.Make != "" && f.Make != AllMakes {
		q = q.Where("make = ?", f.Make)
	}
	if f.BodyType != "" && f.BodyType != AllTypes {
		q = q.Where("body_type = ?", f.BodyType)
	}
	if f.Transmission != "" && f.Transmission != All {
		q = q.Where("transmission = ?", f.Transmission)
	}
	if f.FuelType != "" && f.FuelType != All {
		q = q.Where("fuel_type = ?", f.FuelType)
	}
	if f.Condition != "" && f.Condition != All {
		q = q.Where("condition = ?", f.Condition)
	}
	if f.Status != "" && f.Status != All {
		q = q.Where("status = ?", f.Status)
	}
	if min, ok := parsePrice(f.MinPrice); ok {
		q = q.Where("price >= ?", min)
	}
	if max, ok := parsePrice(f.MaxPrice); ok {
		q = q.Where("price <= ?", max)
	}
	switch f.SortBy {
	case SortPriceLow:
		q = q.Order("price asc")
	case SortPriceHigh:
		q = q.Order("price desc")
	case SortMileage:
		q = q.Order("mileage asc")
	case SortYear:
		q = q.Order("year desc")
	default:
		q = q.Order("created_at desc")
	}
	return q
}

// CacheKey is the full ordered tuple of filter values; identical filter
// states map to identical keys.
func (f Filter) CacheKey() string {
	return strings.Join([]string{
		"inventory",
		f.Search, f.Make, f.BodyType, f.Transmission, f.FuelType,
		f.Condition, f.Status, f.MinPrice, f.MaxPrice, f.SortBy,
	}, "|")
}

// parsePrice returns the bound and whether it applies. Blank or
// unparseable input means unbounded, mirroring the free-text inputs the
// storefront sends.
func parsePrice(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
