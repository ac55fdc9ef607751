package entity

import "time"

type ProductStatus string

const (
	StatusForSale ProductStatus = "en venta"
	StatusSold    ProductStatus = "vendido"
)

// Product is a marketplace article. Status and BuyerID are server
// authoritative: the client never computes a transition, it only filters
// on the values the backend reports.
type Product struct {
	ID          int64         `json:"id"`
	Name        string        `json:"nombre"`
	Description string        `json:"descripcion,omitempty"`
	ImageURL    string        `json:"imagen,omitempty"`
	Price       Money         `json:"precio"`
	Status      ProductStatus `json:"estado"`
	SellerID    int64         `json:"idUsuarioVendedor"`
	BuyerID     *int64        `json:"idUsuarioComprador,omitempty"`
	CreatedAt   time.Time     `json:"fechaCreacion,omitempty"`
}

// Sold reports whether the product has a buyer assigned.
func (p Product) Sold() bool { return p.BuyerID != nil }

// ProductDraft carries the writable fields of a product for create and
// update calls.
type ProductDraft struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	ImageURL    string `json:"imagen,omitempty"`
	Price       Money  `json:"precio"`
}
