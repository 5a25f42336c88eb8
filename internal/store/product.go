package store

import (
	"vitrine_back_end/internal/catalog"
	"vitrine_back_end/internal/models"
)

// FilterProducts applique les critères sur la liste maîtresse, mémorise
// la vue filtrée et les critères actifs, et retourne la vue. Les
// critères ne sont jamais persistés.
func (s *Store) FilterProducts(filters models.Filters) []models.Product {
	s.dispatch(filterProductsAction{filters: filters})
	return s.FilteredProducts()
}

// AddProduct (admin) : assigne un identifiant de création et ajoute le
// produit à la liste maîtresse ET à la vue filtrée courante. Les
// mutations du catalogue vivent le temps de la session, la fixture
// reste la source de vérité au rechargement.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	p.ID = s.nextIDLocked()
	s.mu.Unlock()
	s.dispatch(addProductAction{product: p})
	return p
}

// UpdateProduct (admin) remplace le produit par identifiant dans les
// deux vues. Retourne false si l'identifiant est inconnu.
func (s *Store) UpdateProduct(p models.Product) bool {
	if _, ok := s.ProductByID(p.ID); !ok {
		return false
	}
	s.dispatch(updateProductAction{product: p})
	return true
}

// DeleteProduct (admin) supprime le produit des deux vues. Retourne
// false si l'identifiant est inconnu.
func (s *Store) DeleteProduct(id int64) bool {
	if _, ok := s.ProductByID(id); !ok {
		return false
	}
	s.dispatch(deleteProductAction{productID: id})
	return true
}

func (a filterProductsAction) apply(s *Store) domain {
	s.filtered = catalog.Apply(s.products, a.filters)
	s.filters = a.filters
	return domainNone
}

func (a addProductAction) apply(s *Store) domain {
	s.products = append(s.products, a.product)
	s.filtered = append(s.filtered, a.product)
	return domainNone
}

func (a updateProductAction) apply(s *Store) domain {
	for i := range s.products {
		if s.products[i].ID == a.product.ID {
			s.products[i] = a.product
		}
	}
	for i := range s.filtered {
		if s.filtered[i].ID == a.product.ID {
			s.filtered[i] = a.product
		}
	}
	return domainNone
}

func (a deleteProductAction) apply(s *Store) domain {
	products := s.products[:0]
	for _, p := range s.products {
		if p.ID != a.productID {
			products = append(products, p)
		}
	}
	s.products = products

	filtered := s.filtered[:0]
	for _, p := range s.filtered {
		if p.ID != a.productID {
			filtered = append(filtered, p)
		}
	}
	s.filtered = filtered
	return domainNone
}
