package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/store"
)

type CartHandler struct {
	Store *store.Store
}

func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{Store: s}
}

func (h *CartHandler) cartResponse() gin.H {
	cart := h.Store.Cart()
	return gin.H{
		"items":    cart.Items,
		"shipping": cart.Shipping,
		"discount": cart.Discount,
		"total":    h.Store.CartTotal(),
		"count":    h.Store.CartItemsCount(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

//
// 🟢 POST /api/cart/add
//
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID int64 `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, ok := h.Store.ProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.Store.AddToCart(product)
	resp := h.cartResponse()
	resp["message"] = "Produit ajouté au panier"
	c.JSON(http.StatusOK, resp)
}

//
// 🔁 PUT /api/cart/:productId
//
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// quantité ≤ 0 : la ligne est retirée du panier
	h.Store.UpdateQuantity(productID, input.Quantity)
	c.JSON(http.StatusOK, h.cartResponse())
}

//
// ❌ DELETE /api/cart/:productId
//
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	h.Store.RemoveFromCart(productID)
	resp := h.cartResponse()
	resp["message"] = "Produit supprimé du panier"
	c.JSON(http.StatusOK, resp)
}

//
// 🧹 DELETE /api/cart
//
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.Store.ClearCart()
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
