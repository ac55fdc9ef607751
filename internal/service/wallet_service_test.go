package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dmungal1308/QuickSales-sub000/internal/adapter/rest"
	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

func TestWalletService_BalanceUsesSessionIdentity(t *testing.T) {
	wallet := new(MockWalletRepository)
	wallet.On("Balance", mock.Anything, int64(7)).Return(entity.Cents(2500), nil)
	svc := NewWalletService(wallet, storeWithRole(t, 7, entity.RoleUser), nil, nil)

	balance, err := svc.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Cents(2500), balance)
}

func TestWalletService_DepositRejectsNonPositiveAmount(t *testing.T) {
	wallet := new(MockWalletRepository)
	svc := NewWalletService(wallet, storeWithRole(t, 7, entity.RoleUser), nil, nil)

	_, err := svc.Deposit(context.Background(), entity.Cents(0))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = svc.Deposit(context.Background(), entity.Cents(-100))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	wallet.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletService_WithdrawNormalizesInsufficientBalance(t *testing.T) {
	wallet := new(MockWalletRepository)
	apiErr := &rest.APIError{Status: http.StatusBadRequest, Message: "Saldo insuficiente"}
	wallet.On("Withdraw", mock.Anything, int64(7), entity.Cents(5000)).Return(entity.Cents(0), apiErr)
	svc := NewWalletService(wallet, storeWithRole(t, 7, entity.RoleUser), nil, nil)

	_, err := svc.Withdraw(context.Background(), entity.Cents(5000))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, "No tienes saldo suficiente", err.Error())
}

func TestWalletService_PublishesEvents(t *testing.T) {
	wallet := new(MockWalletRepository)
	wallet.On("Deposit", mock.Anything, int64(7), entity.Cents(1000)).Return(entity.Cents(3500), nil)
	pub := &recordingPublisher{}
	svc := NewWalletService(wallet, storeWithRole(t, 7, entity.RoleUser), pub, nil)

	balance, err := svc.Deposit(context.Background(), entity.Cents(1000))
	require.NoError(t, err)
	assert.Equal(t, entity.Cents(3500), balance)
	assert.Equal(t, []string{SubjectWalletDeposit}, pub.published())
}
