package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // mot de passe en clair — fixture de démo, pas de vraie auth
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Joined   string `json:"joined"`
	Orders   int    `json:"orders"`
}

// ProfileUpdate regroupe les champs modifiables du profil.
// Un pointeur nil = champ non modifié.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// Public retourne une copie sans le mot de passe (pour les réponses API).
func (u User) Public() User {
	u.Password = ""
	return u
}
