// Package repository declares the ports the services depend on. The REST
// adapter provides the production implementations; tests provide mocks.
package repository

import (
	"context"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

// LoginResult is what the backend returns on a successful login.
type LoginResult struct {
	Token string      `json:"token"`
	User  entity.User `json:"usuario"`
}

// RegisterRequest carries a new account's profile plus its password.
type RegisterRequest struct {
	Name     string `json:"nombre"`
	Username string `json:"nombreUsuario"`
	Email    string `json:"correo"`
	Password string `json:"contrasena"`
	ImageURL string `json:"imagen,omitempty"`
}

type AuthRepository interface {
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// ProductRepository translates the single remote product collection into
// purpose-specific subsets. List operations return an error instead of
// degrading to an empty slice, so callers can tell "no items" from
// "could not load".
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	ListOwned(ctx context.Context) ([]entity.Product, error)
	ListAvailable(ctx context.Context) ([]entity.Product, error)
	ListPurchased(ctx context.Context) ([]entity.Product, error)
	ListSold(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error)
	Update(ctx context.Context, id int64, draft entity.ProductDraft) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
	Purchase(ctx context.Context, id int64) (*entity.Product, error)
}

type FavoriteRepository interface {
	List(ctx context.Context) ([]entity.Favorite, error)
	Add(ctx context.Context, productID int64) (*entity.Favorite, error)
	Remove(ctx context.Context, productID int64) error
}

type UserRepository interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	Self(ctx context.Context) (*entity.User, error)
	UpdateSelf(ctx context.Context, profile entity.Profile) (*entity.User, error)
	ChangePassword(ctx context.Context, newPassword string) error
	ListAll(ctx context.Context) ([]entity.User, error)
	Delete(ctx context.Context, id int64) error
}

type WalletRepository interface {
	Balance(ctx context.Context, userID int64) (entity.Money, error)
	Deposit(ctx context.Context, userID int64, amount entity.Money) (entity.Money, error)
	Withdraw(ctx context.Context, userID int64, amount entity.Money) (entity.Money, error)
}

type ChatRepository interface {
	// OpenSession creates or recovers the session for the triple; the call
	// is idempotent on the backend.
	OpenSession(ctx context.Context, productID, sellerID, buyerID int64) (*entity.ChatSession, error)
	Sessions(ctx context.Context) ([]entity.ChatSession, error)
	Messages(ctx context.Context, sessionID int64) ([]entity.ChatMessage, error)
	Send(ctx context.Context, sessionID int64, text string) (*entity.ChatMessage, error)
}
