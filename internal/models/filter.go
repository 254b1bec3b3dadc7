package models

import (
	"net/url"
	"strconv"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterCriteria describes one requested view of the catalog. It is pure
// input parsed from query parameters and never persisted.
type FilterCriteria struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Sort     string
	Page     int
}

// ParseFilterCriteria reads the view-facing query parameters. Unparseable
// numbers are ignored rather than rejected, matching lenient query handling;
// page defaults to 1.
func ParseFilterCriteria(values url.Values) FilterCriteria {
	criteria := FilterCriteria{
		Category: values.Get("category"),
		Search:   values.Get("search"),
		Page:     1,
	}

	if min, err := strconv.ParseFloat(values.Get("minPrice"), 64); err == nil {
		criteria.MinPrice = &min
	}

	if max, err := strconv.ParseFloat(values.Get("maxPrice"), 64); err == nil {
		criteria.MaxPrice = &max
	}

	if sort := values.Get("sort"); sort == SortAsc || sort == SortDesc {
		criteria.Sort = sort
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		criteria.Page = page
	}

	return criteria
}
