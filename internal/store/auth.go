package store

import (
	"context"
	"strings"
	"time"

	"vitrine_back_end/internal/models"
)

// simulateNetwork fait patienter l'appelant le temps de la latence
// réseau simulée. Annulable par le contexte ; l'état n'est pas touché
// pendant l'attente.
func (s *Store) simulateNetwork(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login authentifie contre la fixture : correspondance exacte
// email + mot de passe. Aucun changement d'état en cas d'échec.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := s.simulateNetwork(ctx); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	var found *models.User
	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Password == password {
			found = &s.users[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return models.User{}, ErrInvalidCredentials
	}
	user := *found
	s.mu.Unlock()

	s.dispatch(loginAction{user: user})
	return user, nil
}

// Register crée un compte si l'email est libre (comparaison insensible
// à la casse), le connecte et le persiste.
func (s *Store) Register(ctx context.Context, name, email, password string) (models.User, error) {
	if err := s.simulateNetwork(ctx); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			s.mu.Unlock()
			return models.User{}, ErrUserExists
		}
	}
	user := models.User{
		ID:       s.nextIDLocked(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.RoleUser,
		Avatar:   "👤",
		Joined:   time.Now().Format("2006-01-02"),
		Orders:   0,
	}
	s.mu.Unlock()

	s.dispatch(registerAction{user: user})
	return user, nil
}

// Logout déconnecte et supprime l'enregistrement persisté. Synchrone.
func (s *Store) Logout() {
	s.dispatch(logoutAction{})
}

// UpdateProfile fusionne les champs fournis dans l'utilisateur de
// session ET dans l'enregistrement canonique de la liste, même
// dispatch. Sans session, c'est un no-op.
func (s *Store) UpdateProfile(update models.ProfileUpdate) {
	s.dispatch(updateProfileAction{update: update})
}

func (a loginAction) apply(s *Store) domain {
	user := a.user
	s.user = &user
	return domainAuth
}

func (logoutAction) apply(s *Store) domain {
	s.user = nil
	return domainAuth
}

func (a registerAction) apply(s *Store) domain {
	user := a.user
	s.users = append(s.users, user)
	s.user = &user
	return domainAuth
}

func (a updateProfileAction) apply(s *Store) domain {
	if s.user == nil {
		return domainNone
	}
	merge := func(u *models.User) {
		if a.update.Name != nil {
			u.Name = *a.update.Name
		}
		if a.update.Email != nil {
			u.Email = *a.update.Email
		}
		if a.update.Avatar != nil {
			u.Avatar = *a.update.Avatar
		}
	}
	merge(s.user)
	for i := range s.users {
		if s.users[i].ID == s.user.ID {
			merge(&s.users[i])
			break
		}
	}
	return domainAuth
}
