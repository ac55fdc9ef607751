package rest

import (
	"context"
	"fmt"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
)

type AuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Register(ctx context.Context, req repository.RegisterRequest) (*entity.User, error) {
	var user entity.User
	if err := r.client.post(ctx, "/auth/registro", req, &user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return &user, nil
}

type loginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contrasena"`
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*repository.LoginResult, error) {
	var result repository.LoginResult
	if err := r.client.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &result); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	return &result, nil
}
