// Package fixture fournit les données d'amorçage du catalogue : la démo
// n'a pas de base de données de référence, la fixture fait office de
// source de vérité entre deux démarrages.
package fixture

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"vitrine_back_end/internal/models"
)

//go:embed seed.json
var seedJSON []byte

type Data struct {
	Users      []models.User     `json:"users"`
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
	Orders     []models.Order    `json:"orders"`
}

// Load décode la fixture embarquée. Une fixture invalide est une erreur
// de build, pas un cas à rattraper au runtime.
func Load() (Data, error) {
	var data Data
	if err := json.Unmarshal(seedJSON, &data); err != nil {
		return Data{}, fmt.Errorf("fixture seed.json invalide: %w", err)
	}
	return data, nil
}
