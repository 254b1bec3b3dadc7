package models

// Product mirrors the remote catalog's JSON shape. Products are immutable
// once fetched; nothing here is ever persisted.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}
