package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/store"
)

type OrderHandler struct {
	Store *store.Store
}

func NewOrderHandler(s *store.Store) *OrderHandler {
	return &OrderHandler{Store: s}
}

// CreateOrder transforme le panier courant en commande.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	order, err := h.Store.CreateOrder()
	if err != nil {
		if errors.Is(err, store.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	log.Printf("📦 Commande %d créée (suivi %s)", order.ID, order.TrackingNumber)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande créée",
		"order":   order,
	})
}

// GetOrders liste les commandes de l'utilisateur du token.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID := c.GetInt64("user_id")
	c.JSON(http.StatusOK, gin.H{"orders": h.Store.OrdersByUser(userID)})
}
