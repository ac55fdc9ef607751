package rest

import (
	"context"
	"fmt"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

type FavoriteRepository struct {
	client *Client
}

func NewFavoriteRepository(client *Client) *FavoriteRepository {
	return &FavoriteRepository{client: client}
}

func (r *FavoriteRepository) List(ctx context.Context) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	if err := r.client.get(ctx, "/favoritos", &favorites); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

type favoriteRequest struct {
	ProductID int64 `json:"idProducto"`
}

func (r *FavoriteRepository) Add(ctx context.Context, productID int64) (*entity.Favorite, error) {
	var favorite entity.Favorite
	if err := r.client.post(ctx, "/favoritos", favoriteRequest{ProductID: productID}, &favorite); err != nil {
		return nil, fmt.Errorf("failed to add favorite for product %d: %w", productID, err)
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, productID int64) error {
	if err := r.client.delete(ctx, fmt.Sprintf("/favoritos/%d", productID)); err != nil {
		return fmt.Errorf("failed to remove favorite for product %d: %w", productID, err)
	}
	return nil
}
