package store

import (
	"fmt"
	"time"

	"vitrine_back_end/internal/models"
)

// CreateOrder construit une commande depuis le panier courant :
// instantané des lignes, total = panier + frais de port, statut
// processing, numéro de suivi TRK<timestamp>. La commande est ajoutée à
// l'historique et le compteur de commandes de l'utilisateur incrémenté.
// Le panier n'est pas vidé ici, c'est à l'appelant de décider.
func (s *Store) CreateOrder() (models.Order, error) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return models.Order{}, ErrNotAuthenticated
	}
	id := s.nextIDLocked()
	order := models.Order{
		ID:             id,
		UserID:         s.user.ID,
		Items:          append([]models.CartItem(nil), s.cart.Items...),
		Total:          s.cartTotalLocked() + s.cart.Shipping,
		Status:         models.OrderProcessing,
		Date:           time.Now().Format("2006-01-02"),
		TrackingNumber: fmt.Sprintf("TRK%d", id),
	}
	s.mu.Unlock()

	s.dispatch(appendOrderAction{order: order})
	return order, nil
}

func (a appendOrderAction) apply(s *Store) domain {
	s.orders = append(s.orders, a.order)
	if s.user != nil && s.user.ID == a.order.UserID {
		s.user.Orders++
		for i := range s.users {
			if s.users[i].ID == s.user.ID {
				s.users[i].Orders = s.user.Orders
				break
			}
		}
		// le compteur fait partie de l'enregistrement persisté
		return domainAuth
	}
	return domainNone
}
