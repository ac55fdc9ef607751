package rest

import (
	"context"
	"fmt"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

type WalletRepository struct {
	client *Client
}

func NewWalletRepository(client *Client) *WalletRepository {
	return &WalletRepository{client: client}
}

type balanceResponse struct {
	Balance entity.Money `json:"saldo"`
}

type amountRequest struct {
	Amount entity.Money `json:"cantidad"`
}

func (r *WalletRepository) Balance(ctx context.Context, userID int64) (entity.Money, error) {
	var resp balanceResponse
	if err := r.client.get(ctx, fmt.Sprintf("/usuarios/%d/saldo", userID), &resp); err != nil {
		return 0, fmt.Errorf("failed to get balance for user %d: %w", userID, err)
	}
	return resp.Balance, nil
}

func (r *WalletRepository) Deposit(ctx context.Context, userID int64, amount entity.Money) (entity.Money, error) {
	var resp balanceResponse
	if err := r.client.post(ctx, fmt.Sprintf("/usuarios/%d/saldo/ingresar", userID), amountRequest{Amount: amount}, &resp); err != nil {
		return 0, fmt.Errorf("failed to deposit for user %d: %w", userID, err)
	}
	return resp.Balance, nil
}

func (r *WalletRepository) Withdraw(ctx context.Context, userID int64, amount entity.Money) (entity.Money, error) {
	var resp balanceResponse
	if err := r.client.post(ctx, fmt.Sprintf("/usuarios/%d/saldo/retirar", userID), amountRequest{Amount: amount}, &resp); err != nil {
		return 0, fmt.Errorf("failed to withdraw for user %d: %w", userID, err)
	}
	return resp.Balance, nil
}
