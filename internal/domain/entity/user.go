package entity

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID       int64    `json:"id"`
	Name     string   `json:"nombre"`
	Username string   `json:"nombreUsuario"`
	Email    string   `json:"correo"`
	ImageURL string   `json:"imagen,omitempty"`
	Role     UserRole `json:"rol"`
	Balance  Money    `json:"saldo"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Profile carries the self-editable fields of a user account.
type Profile struct {
	Name     string `json:"nombre"`
	Username string `json:"nombreUsuario"`
	Email    string `json:"correo"`
	ImageURL string `json:"imagen,omitempty"`
}
