package entity

import "time"

// ChatSession links a buyer and a seller around one product. Sessions are
// created or recovered idempotently per (product, seller, buyer) triple.
type ChatSession struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"idProducto"`
	SellerID  int64     `json:"idUsuarioVendedor"`
	BuyerID   int64     `json:"idUsuarioComprador"`
	CreatedAt time.Time `json:"fechaCreacion,omitempty"`
}

// ChatMessage is append-only and ordered by SentAt.
type ChatMessage struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"idSesion"`
	SenderID  int64     `json:"idUsuarioEmisor"`
	Text      string    `json:"texto"`
	SentAt    time.Time `json:"fechaEnvio"`
}
