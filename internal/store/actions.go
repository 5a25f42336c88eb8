package store

import "vitrine_back_end/internal/models"

// domain indique quelles tranches persistées une action a touchées.
// Le dispatch s'en sert pour déclencher les écritures durables.
type domain uint8

const (
	domainNone domain = 0
	domainAuth domain = 1 << iota
	domainCart
	domainWishlist
)

// Action — variante typée du protocole d'actions. Chaque action sait
// s'appliquer à exactement la tranche qui la concerne : pas de fan-out
// aveugle vers tous les reducers.
type Action interface {
	apply(s *Store) domain
}

// --- Auth ---

type loginAction struct{ user models.User }

type logoutAction struct{}

type registerAction struct{ user models.User }

type updateProfileAction struct{ update models.ProfileUpdate }

// --- Panier ---

type addToCartAction struct{ product models.Product }

type removeFromCartAction struct{ productID int64 }

type updateQuantityAction struct {
	productID int64
	quantity  int
}

type clearCartAction struct{}

type loadCartAction struct{ items []models.CartItem }

// --- Wishlist ---

type addToWishlistAction struct{ productID int64 }

type removeFromWishlistAction struct{ productID int64 }

type loadWishlistAction struct{ ids []int64 }

// --- Catalogue ---

type filterProductsAction struct{ filters models.Filters }

type addProductAction struct{ product models.Product }

type updateProductAction struct{ product models.Product }

type deleteProductAction struct{ productID int64 }

// --- Commandes ---

type appendOrderAction struct{ order models.Order }
