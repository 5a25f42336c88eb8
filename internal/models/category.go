package models

// Category — le champ Count est recalculé à la volée depuis la liste
// de produits courante, jamais servi tel quel depuis la fixture.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}
