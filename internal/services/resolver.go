package service

import (
	"sort"
	"strings"

	"github.com/storepro/storefront/internal/models"
)

// Products shown per catalog page.
const PageSize = 12

// ResolvePage derives one page of a catalog view from the full product list.
// Filters and sort are applied before pagination, so the returned total and
// page count always describe the filtered set. An out-of-range page yields
// an empty page rather than clamping to the last one.
func ResolvePage(products []models.Product, criteria models.FilterCriteria) *models.CatalogPage {

	filtered := make([]models.Product, 0, len(products))

	search := strings.ToLower(criteria.Search)

	for _, p := range products {

		if criteria.Category != "" && !strings.EqualFold(p.Category, criteria.Category) {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}

		if criteria.MinPrice != nil && p.Price < *criteria.MinPrice {
			continue
		}

		if criteria.MaxPrice != nil && p.Price > *criteria.MaxPrice {
			continue
		}

		filtered = append(filtered, p)
	}

	// Absent sort preserves catalog order; stable so equal prices keep it too.
	switch criteria.Sort {
	case models.SortAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case models.SortDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	}

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	page := criteria.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize

	items := []models.Product{}
	if start < total {
		end := start + PageSize
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return &models.CatalogPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}
}
