package service

import (
	"time"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

// NATS subjects for the domain events published after successful
// mutations. Publishing is best-effort and disabled without a broker.
const (
	SubjectProductCreated   = "quicksales.product.created"
	SubjectProductUpdated   = "quicksales.product.updated"
	SubjectProductDeleted   = "quicksales.product.deleted"
	SubjectProductPurchased = "quicksales.product.purchased"
	SubjectFavoriteAdded    = "quicksales.favorite.added"
	SubjectFavoriteRemoved  = "quicksales.favorite.removed"
	SubjectWalletDeposit    = "quicksales.wallet.deposit"
	SubjectWalletWithdraw   = "quicksales.wallet.withdraw"
	SubjectChatMessageSent  = "quicksales.chat.message.sent"
)

type ProductEvent struct {
	ProductID  int64     `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type FavoriteEvent struct {
	ProductID  int64     `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type WalletEvent struct {
	UserID     int64        `json:"user_id"`
	Amount     entity.Money `json:"amount"`
	Balance    entity.Money `json:"balance"`
	OccurredAt time.Time    `json:"occurred_at"`
}

type ChatMessageEvent struct {
	SessionID  int64     `json:"session_id"`
	MessageID  int64     `json:"message_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
