package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine_back_end/internal/models"
)

func TestLoadSeed(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	assert.Len(t, data.Users, 2)
	assert.Len(t, data.Products, 8)
	assert.Len(t, data.Categories, 5)
	assert.Len(t, data.Orders, 1)

	// le compte de démo attendu par la page de connexion
	var demo *models.User
	for i := range data.Users {
		if data.Users[i].Email == "user@example.com" {
			demo = &data.Users[i]
		}
	}
	require.NotNil(t, demo)
	assert.Equal(t, models.RoleUser, demo.Role)
	assert.Equal(t, "password", demo.Password)

	// chaque produit référence une catégorie connue
	known := map[string]bool{}
	for _, c := range data.Categories {
		known[c.ID] = true
	}
	for _, p := range data.Products {
		assert.True(t, known[p.Category], "catégorie inconnue: %s", p.Category)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
}
