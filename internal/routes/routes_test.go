package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"vitrine_back_end/internal/fixture"
	"vitrine_back_end/internal/models"
	"vitrine_back_end/internal/routes"
	"vitrine_back_end/internal/storage"
	"vitrine_back_end/internal/store"
)

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *store.Store
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	data := fixture.Data{
		Users: []models.User{
			{ID: 1, Name: "Admin", Email: "admin@example.com", Password: "secret", Role: models.RoleAdmin},
			{ID: 2, Name: "John Doe", Email: "user@example.com", Password: "password", Role: models.RoleUser},
		},
		Products: []models.Product{
			{ID: 1, Name: "Casque Bluetooth", Price: 129.99, Category: "electronics", Rating: 4.5, InStock: true, Brand: "AudioPro"},
			{ID: 3, Name: "T-shirt bio", Price: 29.99, Category: "clothing", Rating: 4.2, InStock: true, Brand: "EcoWear"},
		},
		Categories: []models.Category{
			{ID: "all", Name: "All Products"},
			{ID: "electronics", Name: "Electronics"},
			{ID: "clothing", Name: "Clothing"},
		},
	}

	s.store = store.New(data, storage.NewMemory(), 0)
	s.store.Hydrate()

	s.router = gin.New()
	routes.RegisterRoutes(s.router, s.store)
}

func (s *APITestSuite) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) login(email, password string) string {
	w := s.request(http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": password}, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (s *APITestSuite) TestLogin() {
	s.login("user@example.com", "password")

	w := s.request(http.MethodPost, "/api/auth/login", gin.H{"email": "user@example.com", "password": "wrong"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestRegisterThenConflict() {
	body := gin.H{"name": "A", "email": "dup@example.com", "password": "x"}
	w := s.request(http.MethodPost, "/api/auth/register", body, "")
	s.Equal(http.StatusCreated, w.Code)

	body = gin.H{"name": "B", "email": "dup@example.com", "password": "y"}
	w = s.request(http.MethodPost, "/api/auth/register", body, "")
	s.Equal(http.StatusConflict, w.Code)
}

func (s *APITestSuite) TestCartRequiresToken() {
	w := s.request(http.MethodGet, "/api/cart", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestCartFlow() {
	token := s.login("user@example.com", "password")

	w := s.request(http.MethodPost, "/api/cart/add", gin.H{"productId": 1}, token)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPost, "/api/cart/add", gin.H{"productId": 1}, token)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Items []models.CartItem `json:"items"`
		Count int               `json:"count"`
	}
	w = s.request(http.MethodGet, "/api/cart", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Items, 1)
	s.Equal(2, resp.Count)

	// quantité nulle = ligne supprimée
	w = s.request(http.MethodPut, "/api/cart/1", gin.H{"quantity": 0}, token)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Empty(s.store.Cart().Items)

	// produit inconnu
	w = s.request(http.MethodPost, "/api/cart/add", gin.H{"productId": 424242}, token)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestWishlistFlow() {
	token := s.login("user@example.com", "password")

	w := s.request(http.MethodPost, "/api/wishlist/add", gin.H{"product_id": 3}, token)
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(s.store.IsInWishlist(3))

	w = s.request(http.MethodDelete, "/api/wishlist/3", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)
	s.False(s.store.IsInWishlist(3))
}

func (s *APITestSuite) TestProductsAndCategories() {
	w := s.request(http.MethodGet, "/api/products?category=clothing", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Products []models.Product `json:"products"`
		Count    int              `json:"count"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(1, resp.Count)
	s.Equal("clothing", resp.Products[0].Category)

	w = s.request(http.MethodGet, "/api/products/424242", nil, "")
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/api/categories", nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestAdminGuard() {
	userToken := s.login("user@example.com", "password")
	adminToken := s.login("admin@example.com", "secret")

	product := gin.H{"name": "Webcam", "price": 59.99, "category": "electronics"}

	w := s.request(http.MethodPost, "/api/admin/products", product, userToken)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPost, "/api/admin/products", product, adminToken)
	s.Equal(http.StatusCreated, w.Code)

	// catégorie inconnue refusée
	w = s.request(http.MethodPost, "/api/admin/products", gin.H{"name": "X", "price": 1, "category": "inconnue"}, adminToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestCheckout() {
	token := s.login("user@example.com", "password")
	s.request(http.MethodPost, "/api/cart/add", gin.H{"productId": 1}, token)

	w := s.request(http.MethodPost, "/api/orders", nil, token)
	s.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		Order models.Order `json:"order"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(models.OrderProcessing, resp.Order.Status)

	w = s.request(http.MethodGet, "/api/orders", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
