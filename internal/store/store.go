// Package store implémente le cœur d'état de la vitrine : un store
// unique qui compose les tranches auth, panier, wishlist et catalogue
// derrière un seul point de dispatch, persiste les tranches durables et
// publie chaque nouvel état composé aux abonnés.
package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"vitrine_back_end/internal/fixture"
	"vitrine_back_end/internal/models"
	"vitrine_back_end/internal/storage"
)

// DefaultLatency — latence réseau simulée des appels login/register,
// comme le setTimeout de la version web.
const DefaultLatency = 1 * time.Second

// Store détient exclusivement tout l'état mutable de l'application.
// Les dispatches sont sérialisés par le mutex : jamais deux mutations
// entrelacées, le modèle boucle d'événements.
type Store struct {
	mu      sync.Mutex
	adapter storage.Adapter
	latency time.Duration

	user       *models.User
	users      []models.User
	products   []models.Product
	filtered   []models.Product
	filters    models.Filters
	categories []models.Category
	orders     []models.Order
	cart       models.Cart
	wishlist   []int64

	lastID int64

	subMu sync.Mutex
	subs  map[string]chan Snapshot
}

// Snapshot — état composé immuable publié aux abonnés. Les mots de
// passe n'y figurent jamais.
type Snapshot struct {
	User             *models.User      `json:"user"`
	Users            []models.User     `json:"users"`
	Products         []models.Product  `json:"products"`
	FilteredProducts []models.Product  `json:"filteredProducts"`
	Filters          models.Filters    `json:"currentFilters"`
	Categories       []models.Category `json:"categories"`
	Orders           []models.Order    `json:"orders"`
	Cart             models.Cart       `json:"cart"`
	Wishlist         []int64           `json:"wishlist"`
}

// New construit le store depuis la fixture. L'appelant le crée une fois
// au démarrage et l'injecte dans la couche de présentation.
func New(data fixture.Data, adapter storage.Adapter, latency time.Duration) *Store {
	return &Store{
		adapter:    adapter,
		latency:    latency,
		users:      append([]models.User(nil), data.Users...),
		products:   append([]models.Product(nil), data.Products...),
		filtered:   append([]models.Product(nil), data.Products...),
		categories: append([]models.Category(nil), data.Categories...),
		orders:     append([]models.Order(nil), data.Orders...),
		cart: models.Cart{
			Items:    []models.CartItem{},
			Shipping: models.DefaultShipping,
			Discount: 0,
		},
		wishlist: []int64{},
		subs:     make(map[string]chan Snapshot),
	}
}

// Hydrate rejoue l'état persisté de la session précédente : utilisateur
// courant, panier, wishlist. Données absentes ou corrompues = on repart
// sur la fixture, jamais d'échec au démarrage.
func (s *Store) Hydrate() {
	var user models.User
	if storage.LoadJSON(s.adapter, storage.KeyUser, &user) {
		s.dispatch(loginAction{user: user})
	}
	var items []models.CartItem
	if storage.LoadJSON(s.adapter, storage.KeyCart, &items) {
		s.dispatch(loadCartAction{items: items})
	}
	var ids []int64
	if storage.LoadJSON(s.adapter, storage.KeyWishlist, &ids) {
		s.dispatch(loadWishlistAction{ids: ids})
	}
}

// dispatch applique une action, déclenche les écritures durables des
// tranches touchées puis publie le nouvel état composé.
func (s *Store) dispatch(a Action) {
	s.mu.Lock()
	touched := a.apply(s)
	s.persistLocked(touched)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

func (s *Store) persistLocked(touched domain) {
	if touched&domainAuth != 0 {
		if s.user == nil {
			if err := s.adapter.Remove(storage.KeyUser); err != nil {
				log.Printf("⚠️ Erreur suppression utilisateur persisté: %v", err)
			}
		} else if err := storage.SaveJSON(s.adapter, storage.KeyUser, s.user); err != nil {
			log.Printf("⚠️ Erreur persistance utilisateur: %v", err)
		}
	}
	if touched&domainCart != 0 {
		if err := storage.SaveJSON(s.adapter, storage.KeyCart, s.cart.Items); err != nil {
			log.Printf("⚠️ Erreur persistance panier: %v", err)
		}
	}
	if touched&domainWishlist != 0 {
		if err := storage.SaveJSON(s.adapter, storage.KeyWishlist, s.wishlist); err != nil {
			log.Printf("⚠️ Erreur persistance wishlist: %v", err)
		}
	}
}

// nextIDLocked — identifiant timestamp (ms) strictement croissant, même
// quand deux créations tombent dans la même milliseconde.
func (s *Store) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Users:            make([]models.User, len(s.users)),
		Products:         append([]models.Product(nil), s.products...),
		FilteredProducts: append([]models.Product(nil), s.filtered...),
		Filters:          s.filters,
		Categories:       s.categoriesLocked(),
		Orders:           append([]models.Order(nil), s.orders...),
		Cart: models.Cart{
			Items:    append([]models.CartItem(nil), s.cart.Items...),
			Shipping: s.cart.Shipping,
			Discount: s.cart.Discount,
		},
		Wishlist: append([]int64(nil), s.wishlist...),
	}
	for i, u := range s.users {
		snap.Users[i] = u.Public()
	}
	if s.user != nil {
		u := s.user.Public()
		snap.User = &u
	}
	return snap
}

// categoriesLocked recalcule les compteurs depuis la liste de produits
// courante : le compteur figé de la fixture divergerait après la
// première mutation admin.
func (s *Store) categoriesLocked() []models.Category {
	out := make([]models.Category, len(s.categories))
	for i, cat := range s.categories {
		cat.Count = 0
		if cat.ID == "all" {
			cat.Count = len(s.products)
		} else {
			for _, p := range s.products {
				if p.Category == cat.ID {
					cat.Count++
				}
			}
		}
		out[i] = cat
	}
	return out
}

// --- Abonnements ---

// Subscribe enregistre un abonné et retourne son identifiant et le
// canal d'états. Un abonné trop lent perd des trames, il ne bloque
// jamais un dispatch.
func (s *Store) Subscribe() (string, <-chan Snapshot) {
	id := uuid.NewString()
	ch := make(chan Snapshot, 8)
	s.subMu.Lock()
	s.subs[id] = ch
	s.subMu.Unlock()
	return id, ch
}

func (s *Store) Unsubscribe(id string) {
	s.subMu.Lock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
	s.subMu.Unlock()
}

func (s *Store) publish(snap Snapshot) {
	s.subMu.Lock()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// abonné saturé : trame perdue
		}
	}
	s.subMu.Unlock()
}

// --- Lecture ---

// Snapshot retourne l'état composé courant.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// CurrentUser retourne l'utilisateur de session, ok=false si personne
// n'est connecté.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) FilteredProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.filtered...)
}

func (s *Store) Filters() models.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoriesLocked()
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *Store) OrdersByUser(userID int64) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) Cart() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Cart{
		Items:    append([]models.CartItem(nil), s.cart.Items...),
		Shipping: s.cart.Shipping,
		Discount: s.cart.Discount,
	}
}

func (s *Store) Wishlist() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.wishlist...)
}

// ProductByID — lecture par identifiant, ok=false si le produit
// n'existe pas (jamais de panique).
func (s *Store) ProductByID(id int64) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
