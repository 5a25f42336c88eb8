package store

import "errors"

// Erreurs sentinelles du store. Les messages sont ceux montrés à
// l'utilisateur final.
var (
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	ErrUserExists         = errors.New("un compte avec cet email existe déjà")
	ErrNotAuthenticated   = errors.New("non authentifié")
)
