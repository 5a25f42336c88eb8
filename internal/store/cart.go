package store

import "vitrine_back_end/internal/models"

// AddToCart ajoute un produit au panier : quantité +1 s'il y est déjà,
// sinon nouvelle ligne à quantité 1. Au plus une ligne par produit.
func (s *Store) AddToCart(product models.Product) {
	s.dispatch(addToCartAction{product: product})
}

func (s *Store) RemoveFromCart(productID int64) {
	s.dispatch(removeFromCartAction{productID: productID})
}

// UpdateQuantity fixe la quantité d'une ligne ; une quantité ≤ 0
// supprime la ligne au lieu de la garder à zéro.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	s.dispatch(updateQuantityAction{productID: productID, quantity: quantity})
}

func (s *Store) ClearCart() {
	s.dispatch(clearCartAction{})
}

// CartTotal — Σ prix × quantité, calculé à la demande.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() float64 {
	total := 0.0
	for _, item := range s.cart.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CartItemsCount — Σ quantités.
func (s *Store) CartItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.cart.Items {
		count += item.Quantity
	}
	return count
}

func (a addToCartAction) apply(s *Store) domain {
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == a.product.ID {
			s.cart.Items[i].Quantity++
			return domainCart
		}
	}
	s.cart.Items = append(s.cart.Items, models.CartItem{Product: a.product, Quantity: 1})
	return domainCart
}

func (a removeFromCartAction) apply(s *Store) domain {
	items := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.ID != a.productID {
			items = append(items, item)
		}
	}
	s.cart.Items = items
	return domainCart
}

func (a updateQuantityAction) apply(s *Store) domain {
	items := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.ID == a.productID {
			item.Quantity = a.quantity
		}
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	s.cart.Items = items
	return domainCart
}

func (clearCartAction) apply(s *Store) domain {
	s.cart.Items = []models.CartItem{}
	return domainCart
}

func (a loadCartAction) apply(s *Store) domain {
	items := a.items
	if items == nil {
		items = []models.CartItem{}
	}
	s.cart.Items = items
	return domainCart
}
