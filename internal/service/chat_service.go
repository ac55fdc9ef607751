package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Dmungal1308/QuickSales-sub000/internal/adapter/nats"
	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
	"github.com/Dmungal1308/QuickSales-sub000/internal/platform/logger"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
	"github.com/Dmungal1308/QuickSales-sub000/internal/session"
)

// ProductCache is the optional detail cache used when assembling the
// session list; the redis adapter provides the production implementation.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Set(ctx context.Context, product *entity.Product) error
}

// SessionSummary is a chat session enriched with its product. Product may
// be nil when the product could not be fetched (for example, deleted).
type SessionSummary struct {
	Session entity.ChatSession
	Product *entity.Product
}

type ChatService struct {
	chats     repository.ChatRepository
	products  repository.ProductRepository
	cache     ProductCache
	sessions  session.Store
	publisher nats.MessagePublisher
	log       logger.Logger
}

func NewChatService(
	chats repository.ChatRepository,
	products repository.ProductRepository,
	cache ProductCache,
	sessions session.Store,
	publisher nats.MessagePublisher,
	log logger.Logger,
) *ChatService {
	if publisher == nil {
		publisher = nats.NewNoopPublisher()
	}
	if log == nil {
		log = logger.NoOp()
	}
	return &ChatService{
		chats:     chats,
		products:  products,
		cache:     cache,
		sessions:  sessions,
		publisher: publisher,
		log:       log,
	}
}

// OpenWith creates or recovers the chat session between the current user
// (as buyer) and the product's seller. The backend call is idempotent.
func (s *ChatService) OpenWith(ctx context.Context, product entity.Product) (*entity.ChatSession, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info("ChatService.OpenWith: opening session", "product_id", product.ID, "seller_id", product.SellerID)
	return s.chats.OpenSession(ctx, product.ID, product.SellerID, sess.UserID)
}

// Sessions lists the user's chat sessions enriched with product details,
// one lookup per session through the cache when one is wired.
func (s *ChatService) Sessions(ctx context.Context) ([]SessionSummary, error) {
	sessions, err := s.chats.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]SessionSummary, 0, len(sessions))
	for _, chatSession := range sessions {
		product := s.lookupProduct(ctx, chatSession.ProductID)
		summaries = append(summaries, SessionSummary{Session: chatSession, Product: product})
	}
	return summaries, nil
}

// Messages returns the session history ordered by send time.
func (s *ChatService) Messages(ctx context.Context, sessionID int64) ([]entity.ChatMessage, error) {
	messages, err := s.chats.Messages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SentAt.Before(messages[j].SentAt)
	})
	return messages, nil
}

func (s *ChatService) Send(ctx context.Context, sessionID int64, text string) (*entity.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	message, err := s.chats.Send(ctx, sessionID, text)
	if err != nil {
		return nil, err
	}

	event := ChatMessageEvent{SessionID: sessionID, MessageID: message.ID, OccurredAt: time.Now().UTC()}
	if err := s.publisher.Publish(ctx, SubjectChatMessageSent, event); err != nil {
		s.log.Warnf("ChatService.Send: failed to publish event: %v", err)
	}
	return message, nil
}

func (s *ChatService) lookupProduct(ctx context.Context, productID int64) *entity.Product {
	if s.cache != nil {
		if product, err := s.cache.Get(ctx, productID); err == nil {
			return product
		}
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		// A session whose product is gone is still a valid inbox entry.
		s.log.Warnf("ChatService.lookupProduct: failed to fetch product %d: %v", productID, err)
		return nil
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			s.log.Warnf("ChatService.lookupProduct: failed to cache product %d: %v", productID, err)
		}
	}
	return product
}
