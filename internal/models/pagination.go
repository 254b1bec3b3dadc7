package models

// CatalogPage is one page of a filtered catalog view. Total counts the
// filtered set, not the raw catalog.
type CatalogPage struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
