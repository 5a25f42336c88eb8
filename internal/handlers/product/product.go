package product

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/models"
	"vitrine_back_end/internal/store"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// GetProducts applique les critères passés en query string et retourne
// la vue filtrée. Les critères deviennent les critères actifs du store,
// tous les consommateurs voient le même filtre appliqué.
func (h *Handler) GetProducts(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Critères invalides"})
		return
	}

	filtered := h.Store.FilterProducts(filters)
	c.JSON(http.StatusOK, gin.H{
		"products": filtered,
		"filters":  h.Store.Filters(),
		"count":    len(filtered),
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	product, ok := h.Store.ProductByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetCategories — compteurs recalculés en direct depuis le catalogue.
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Categories())
}
