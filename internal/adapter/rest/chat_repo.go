package rest

import (
	"context"
	"fmt"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

type ChatRepository struct {
	client *Client
}

func NewChatRepository(client *Client) *ChatRepository {
	return &ChatRepository{client: client}
}

type openSessionRequest struct {
	ProductID int64 `json:"idProducto"`
	SellerID  int64 `json:"idUsuarioVendedor"`
	BuyerID   int64 `json:"idUsuarioComprador"`
}

func (r *ChatRepository) OpenSession(ctx context.Context, productID, sellerID, buyerID int64) (*entity.ChatSession, error) {
	var sess entity.ChatSession
	req := openSessionRequest{ProductID: productID, SellerID: sellerID, BuyerID: buyerID}
	if err := r.client.post(ctx, "/chat/sesiones", req, &sess); err != nil {
		return nil, fmt.Errorf("failed to open chat session for product %d: %w", productID, err)
	}
	return &sess, nil
}

func (r *ChatRepository) Sessions(ctx context.Context) ([]entity.ChatSession, error) {
	var sessions []entity.ChatSession
	if err := r.client.get(ctx, "/chat/sesiones", &sessions); err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}

func (r *ChatRepository) Messages(ctx context.Context, sessionID int64) ([]entity.ChatMessage, error) {
	var messages []entity.ChatMessage
	if err := r.client.get(ctx, fmt.Sprintf("/chat/sesiones/%d/mensajes", sessionID), &messages); err != nil {
		return nil, fmt.Errorf("failed to list messages for session %d: %w", sessionID, err)
	}
	return messages, nil
}

type sendMessageRequest struct {
	Text string `json:"texto"`
}

func (r *ChatRepository) Send(ctx context.Context, sessionID int64, text string) (*entity.ChatMessage, error) {
	var message entity.ChatMessage
	if err := r.client.post(ctx, fmt.Sprintf("/chat/sesiones/%d/mensajes", sessionID), sendMessageRequest{Text: text}, &message); err != nil {
		return nil, fmt.Errorf("failed to send message to session %d: %w", sessionID, err)
	}
	return &message, nil
}
