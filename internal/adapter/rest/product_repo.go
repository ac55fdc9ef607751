package rest

import (
	"context"
	"fmt"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
)

// ProductRepository fetches the whole remote collection on every list call
// (the backend offers no pagination) and applies the client-side
// derivations on top.
type ProductRepository struct {
	client *Client
}

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.client.get(ctx, "/productos", &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.get(ctx, fmt.Sprintf("/productos/%d", id), &product); err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

func (r *ProductRepository) ListOwned(ctx context.Context) ([]entity.Product, error) {
	return r.derive(ctx, repository.Owned)
}

func (r *ProductRepository) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	return r.derive(ctx, repository.Available)
}

func (r *ProductRepository) ListPurchased(ctx context.Context) ([]entity.Product, error) {
	return r.derive(ctx, repository.Purchased)
}

func (r *ProductRepository) ListSold(ctx context.Context) ([]entity.Product, error) {
	return r.derive(ctx, repository.Sold)
}

func (r *ProductRepository) derive(ctx context.Context, project func([]entity.Product, int64) []entity.Product) ([]entity.Product, error) {
	me, err := r.client.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return project(products, me), nil
}

func (r *ProductRepository) Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.post(ctx, "/productos", draft, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, draft entity.ProductDraft) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.put(ctx, fmt.Sprintf("/productos/%d", id), draft, &product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.delete(ctx, fmt.Sprintf("/productos/%d", id)); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

func (r *ProductRepository) Purchase(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.post(ctx, fmt.Sprintf("/productos/%d/comprar", id), nil, &product); err != nil {
		return nil, fmt.Errorf("failed to purchase product %d: %w", id, err)
	}
	return &product, nil
}
