package admin

import (
	"log"
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

// knownCategory vérifie que la catégorie référence une catégorie
// existante (la sentinelle "all" n'est pas une vraie catégorie).
func (h *Handler) knownCategory(id string) bool {
	for _, cat := range h.Store.Categories() {
		if cat.ID != "all" && cat.ID == id {
			return true
		}
	}
	return false
}

// CreateProduct — les mutations admin du catalogue vivent le temps de
// la session, la fixture reste la source de vérité au redémarrage.
func (h *Handler) CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}
	if p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix doit être positif"})
		return
	}
	if !h.knownCategory(p.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie introuvable"})
		return
	}

	created := h.Store.AddProduct(p)
	log.Printf("✅ Produit %d créé: %s", created.ID, created.Name)
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = id

	if !h.Store.UpdateProduct(p) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if !h.Store.DeleteProduct(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	log.Printf("🗑️ Produit %d supprimé du catalogue", id)
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}

// GetUsers liste les comptes (sans les mots de passe).
func (h *Handler) GetUsers(c *gin.Context) {
	users := h.Store.Users()
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	c.JSON(http.StatusOK, out)
}
