package fakestore

import "github.com/storepro/storefront/internal/models"

// Fixed sample catalog served when the remote API is unreachable. Shapes and
// categories match the live API so downstream filtering behaves the same.
var fallbackProducts = []models.Product{
	{
		ID:          1,
		Title:       "Fjallraven Foldsack No. 1 Backpack",
		Price:       109.95,
		Description: "Your perfect pack for everyday use and walks in the forest. Stash your laptop (up to 15 inches) in the padded sleeve.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		Rating:      &models.Rating{Rate: 3.9, Count: 120},
	},
	{
		ID:          2,
		Title:       "Mens Casual Premium Slim Fit T-Shirts",
		Price:       22.3,
		Description: "Slim-fitting style, contrast raglan long sleeve, three-button henley placket, lightweight and soft fabric.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
		Rating:      &models.Rating{Rate: 4.1, Count: 259},
	},
	{
		ID:          3,
		Title:       "Mens Cotton Jacket",
		Price:       55.99,
		Description: "Great outerwear jackets for spring, autumn and winter. Suitable for many occasions such as working, hiking and camping.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/71li-ujtlUL._AC_UX679_.jpg",
		Rating:      &models.Rating{Rate: 4.7, Count: 500},
	},
	{
		ID:          4,
		Title:       "John Hardy Legends Naga Bracelet",
		Price:       695,
		Description: "From our Legends Collection, the Naga was inspired by the mythical water dragon that protects the ocean's pearl.",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/71pWzhdJNwL._AC_UL640_QL65_ML3_.jpg",
		Rating:      &models.Rating{Rate: 4.6, Count: 400},
	},
	{
		ID:          5,
		Title:       "Solid Gold Petite Micropave Ring",
		Price:       168,
		Description: "Satisfaction guaranteed. Return or exchange any order within 30 days. Designed and sold by Hafeez Center in the United States.",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/61sbMiUnoGL._AC_UL640_QL65_ML3_.jpg",
		Rating:      &models.Rating{Rate: 3.9, Count: 70},
	},
	{
		ID:          6,
		Title:       "White Gold Plated Princess Ring",
		Price:       9.99,
		Description: "Classic created wedding engagement solitaire diamond promise ring for her. Gifts to spoil your love more.",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/71YAIFU48IL._AC_UL640_QL65_ML3_.jpg",
		Rating:      &models.Rating{Rate: 3, Count: 400},
	},
	{
		ID:          7,
		Title:       "WD 2TB Elements Portable External Hard Drive",
		Price:       64,
		Description: "USB 3.0 and USB 2.0 compatibility. Fast data transfers. Improve PC performance. High capacity.",
		Category:    "electronics",
		Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg",
		Rating:      &models.Rating{Rate: 3.3, Count: 203},
	},
	{
		ID:          8,
		Title:       "SanDisk SSD PLUS 1TB Internal SSD",
		Price:       109,
		Description: "Easy upgrade for faster boot up, shutdown, application load and response. Read/write speeds of up to 535MB/s and 450MB/s.",
		Category:    "electronics",
		Image:       "https://fakestoreapi.com/img/61U7T1koQqL._AC_SX679_.jpg",
		Rating:      &models.Rating{Rate: 2.9, Count: 470},
	},
	{
		ID:          9,
		Title:       "Acer SB220Q 21.5 inch Full HD IPS Monitor",
		Price:       599,
		Description: "21.5 inch Full HD widescreen IPS display, radeon free sync technology, 75 hertz refresh rate.",
		Category:    "electronics",
		Image:       "https://fakestoreapi.com/img/81QpkIctqPL._AC_SX679_.jpg",
		Rating:      &models.Rating{Rate: 2.9, Count: 250},
	},
	{
		ID:          10,
		Title:       "BIYLACLESEN Women's 3-in-1 Snowboard Jacket",
		Price:       56.99,
		Description: "Detachable liner fleece jacket with stand collar, warm and windproof for winter outdoor sports.",
		Category:    "women's clothing",
		Image:       "https://fakestoreapi.com/img/51Y5NI-I5jL._AC_UX679_.jpg",
		Rating:      &models.Rating{Rate: 2.6, Count: 235},
	},
	{
		ID:          11,
		Title:       "Lock and Love Women's Removable Hooded Faux Leather Jacket",
		Price:       29.95,
		Description: "Faux leather material for style and comfort, removable hood and detachable faux fur collar.",
		Category:    "women's clothing",
		Image:       "https://fakestoreapi.com/img/81XH0e8fefL._AC_UY879_.jpg",
		Rating:      &models.Rating{Rate: 2.9, Count: 340},
	},
	{
		ID:          12,
		Title:       "MBJ Women's Solid Short Sleeve Boat Neck V Top",
		Price:       9.85,
		Description: "Lightweight fabric with great stretch for comfort, double stitching on the bottom hem.",
		Category:    "women's clothing",
		Image:       "https://fakestoreapi.com/img/71z3kpMAYsL._AC_UY879_.jpg",
		Rating:      &models.Rating{Rate: 4.7, Count: 130},
	},
}

var fallbackCategories = []string{
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}

// FallbackProducts returns a fresh copy so callers can filter and sort
// without touching the shared dataset.
func FallbackProducts() []models.Product {
	products := make([]models.Product, len(fallbackProducts))
	copy(products, fallbackProducts)

	return products
}

func FallbackCategories() []string {
	categories := make([]string, len(fallbackCategories))
	copy(categories, fallbackCategories)

	return categories
}
