package models

// CartItem est un instantané du produit au moment de l'ajout, plus la quantité.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type Cart struct {
	Items    []CartItem `json:"items"`
	Shipping float64    `json:"shipping"`
	Discount float64    `json:"discount"`
}

// DefaultShipping — frais de port fixes de la démo.
const DefaultShipping = 5.99
