package user

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/models"
	"vitrine_back_end/internal/store"
)

type WishlistHandler struct {
	Store *store.Store
}

func NewWishlistHandler(s *store.Store) *WishlistHandler {
	return &WishlistHandler{Store: s}
}

// GetWishlist retourne les identifiants et le détail des produits
// encore présents au catalogue.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	ids := h.Store.Wishlist()
	items := []models.Product{}
	for _, id := range ids {
		if product, ok := h.Store.ProductByID(id); ok {
			items = append(items, product)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"ids":   ids,
		"items": items,
	})
}

// AddToWishlist ajoute un produit à la wishlist (idempotent)
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if _, ok := h.Store.ProductByID(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.Store.AddToWishlist(req.ProductID)
	log.Printf("⭐ Produit %d ajouté à la wishlist", req.ProductID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Produit ajouté à la wishlist",
		"product_id": req.ProductID,
	})
}

// RemoveFromWishlist retire un produit de la wishlist (idempotent)
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	h.Store.RemoveFromWishlist(productID)
	log.Printf("🗑️ Produit %d retiré de la wishlist", productID)

	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
}
