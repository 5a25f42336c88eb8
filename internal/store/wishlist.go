package store

// AddToWishlist — insertion idempotente.
func (s *Store) AddToWishlist(productID int64) {
	s.dispatch(addToWishlistAction{productID: productID})
}

// RemoveFromWishlist — suppression idempotente.
func (s *Store) RemoveFromWishlist(productID int64) {
	s.dispatch(removeFromWishlistAction{productID: productID})
}

func (s *Store) IsInWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

func (a addToWishlistAction) apply(s *Store) domain {
	for _, id := range s.wishlist {
		if id == a.productID {
			return domainWishlist
		}
	}
	s.wishlist = append(s.wishlist, a.productID)
	return domainWishlist
}

func (a removeFromWishlistAction) apply(s *Store) domain {
	ids := s.wishlist[:0]
	for _, id := range s.wishlist {
		if id != a.productID {
			ids = append(ids, id)
		}
	}
	s.wishlist = ids
	return domainWishlist
}

func (a loadWishlistAction) apply(s *Store) domain {
	ids := a.ids
	if ids == nil {
		ids = []int64{}
	}
	s.wishlist = ids
	return domainWishlist
}
