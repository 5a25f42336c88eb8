// Package catalog contient le moteur de filtrage/tri du catalogue.
// Fonction pure : ne touche jamais à la liste d'entrée.
package catalog

import (
	"sort"
	"strings"

	"vitrine_back_end/internal/models"
)

// Apply filtre puis trie une liste de produits selon les critères.
// Chaque étape réduit l'ensemble courant, jamais l'inverse. Un champ de
// critère à sa valeur zéro = pas de contrainte. Retourne toujours une
// nouvelle slice.
func Apply(products []models.Product, f models.Filters) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, f.SortBy)
	return filtered
}

func matches(p models.Product, f models.Filters) bool {
	// "all" est la sentinelle de la catégorie "tous les produits"
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	// PriceRange est un plafond inclusif
	if f.PriceRange > 0 && p.Price > f.PriceRange {
		return false
	}
	if f.InStock && !p.InStock {
		return false
	}
	if f.Rating > 0 && p.Rating < f.Rating {
		return false
	}
	return true
}

// matchesSearch — sous-chaîne insensible à la casse sur le nom, la
// description, les tags et la marque (OU entre les champs).
func matchesSearch(p models.Product, search string) bool {
	term := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case models.SortNewest:
		// les IDs sont des timestamps de création : plus grand = plus récent
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	default:
		// tri inconnu ou vide : ordre d'insertion conservé
	}
}
