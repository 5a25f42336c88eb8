package storage

import (
	"encoding/json"
	"fmt"
	"log"
)

// Clés de persistance utilisées par le store unifié.
// Mêmes noms que le localStorage de la version web.
const (
	KeyUser     = "ecommerce_user"
	KeyCart     = "ecommerce_cart"
	KeyWishlist = "ecommerce_wishlist"
)

// Adapter — surface clé/valeur durable. Les valeurs sont des documents JSON.
type Adapter interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string) error
}

// LoadJSON charge et décode la valeur d'une clé. Une clé absente ou des
// données corrompues donnent false, jamais d'erreur : le store repart
// alors sur la fixture.
func LoadJSON(a Adapter, key string, dest any) bool {
	raw, ok := a.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("⚠️ Données corrompues pour la clé %s, ignorées: %v", key, err)
		return false
	}
	return true
}

// SaveJSON encode et écrit la valeur d'une clé. Écriture synchrone,
// une mutation = une écriture.
func SaveJSON(a Adapter, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("sérialisation %s: %w", key, err)
	}
	return a.Set(key, raw)
}
