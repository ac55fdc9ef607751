package rest

import (
	"context"
	"fmt"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	if err := r.client.get(ctx, fmt.Sprintf("/usuarios/%d", id), &user); err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *UserRepository) Self(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := r.client.get(ctx, "/usuarios/yo", &user); err != nil {
		return nil, fmt.Errorf("failed to get own profile: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateSelf(ctx context.Context, profile entity.Profile) (*entity.User, error) {
	var user entity.User
	if err := r.client.put(ctx, "/usuarios/yo", profile, &user); err != nil {
		return nil, fmt.Errorf("failed to update own profile: %w", err)
	}
	return &user, nil
}

type changePasswordRequest struct {
	NewPassword string `json:"contrasenaNueva"`
}

func (r *UserRepository) ChangePassword(ctx context.Context, newPassword string) error {
	if err := r.client.put(ctx, "/usuarios/yo/contrasena", changePasswordRequest{NewPassword: newPassword}, nil); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.client.get(ctx, "/usuarios", &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.delete(ctx, fmt.Sprintf("/usuarios/%d", id)); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
