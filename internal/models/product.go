package models

type Product struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"originalPrice,omitempty"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"inStock"`
	StockCount     int               `json:"stockCount"`
	Features       []string          `json:"features"`
	Tags           []string          `json:"tags"`
	Colors         []string          `json:"colors"`
	Specifications map[string]string `json:"specifications"`
	Brand          string            `json:"brand"`
	Images         []string          `json:"images"`
}
