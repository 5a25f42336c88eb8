package models

// Tris supportés par le moteur de filtrage.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Filters — critères de filtrage du catalogue. La valeur zéro d'un champ
// signifie "pas de contrainte". PriceRange est un prix plafond, pas un
// intervalle.
type Filters struct {
	Category   string  `json:"category" form:"category"`
	Search     string  `json:"search" form:"search"`
	PriceRange float64 `json:"priceRange" form:"priceRange"`
	Rating     float64 `json:"rating" form:"rating"`
	InStock    bool    `json:"inStock" form:"inStock"`
	SortBy     string  `json:"sortBy" form:"sortBy"`
}
