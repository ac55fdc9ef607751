package entity

import "time"

// Favorite marks a product as favorited by a user. Uniqueness of
// (UserID, ProductID) is enforced server-side.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"idUsuario"`
	ProductID int64     `json:"idProducto"`
	CreatedAt time.Time `json:"fechaCreacion,omitempty"`
}
