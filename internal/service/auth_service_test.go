package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
	"github.com/Dmungal1308/QuickSales-sub000/internal/session"
)

func TestAuthService_LoginBlankEmailNoNetworkCall(t *testing.T) {
	auth := new(MockAuthRepository)
	svc := NewAuthService(auth, session.NewMemoryStore(), nil)

	_, err := svc.Login(context.Background(), "   ", "secret")
	assert.ErrorIs(t, err, ErrEmailRequired)
	auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_LoginInvalidEmail(t *testing.T) {
	auth := new(MockAuthRepository)
	svc := NewAuthService(auth, session.NewMemoryStore(), nil)

	_, err := svc.Login(context.Background(), "no-arroba", "secret")
	assert.ErrorIs(t, err, ErrEmailInvalid)
	auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_LoginSavesSession(t *testing.T) {
	ctx := context.Background()
	auth := new(MockAuthRepository)
	auth.On("Login", mock.Anything, "ana@correo.es", "secret").Return(&repository.LoginResult{
		Token: "tok",
		User:  entity.User{ID: 7, Username: "ana", Role: entity.RoleAdmin},
	}, nil)
	store := session.NewMemoryStore()
	svc := NewAuthService(auth, store, nil)

	user, err := svc.Login(ctx, "ana@correo.es", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	sess, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, entity.RoleAdmin, sess.Role)
	assert.True(t, svc.IsLoggedIn(ctx))
}

func TestAuthService_RegisterPasswordMismatchNoNetworkCall(t *testing.T) {
	auth := new(MockAuthRepository)
	svc := NewAuthService(auth, session.NewMemoryStore(), nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:           "Ana",
		Username:       "ana",
		Email:          "ana@correo.es",
		Password:       "uno",
		RepeatPassword: "dos",
	})
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, "Las contraseñas no coinciden", err.Error())
	auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthService_LogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, session.Session{Token: "tok", UserID: 7}))
	svc := NewAuthService(new(MockAuthRepository), store, nil)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsLoggedIn(ctx))
}
