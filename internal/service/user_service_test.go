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

func storeWithRole(t *testing.T, userID int64, role entity.UserRole) session.Store {
	t.Helper()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), session.Session{Token: "tok", UserID: userID, Role: role}))
	return store
}

func TestUserService_ListUsersRequiresAdmin(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, storeWithRole(t, 7, entity.RoleUser), nil)

	_, err := svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, repository.ErrForbidden)
	users.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestUserService_ListUsersAsAdmin(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ListAll", mock.Anything).Return([]entity.User{{ID: 1}, {ID: 2}}, nil)
	svc := NewUserService(users, storeWithRole(t, 7, entity.RoleAdmin), nil)

	list, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserService_DeleteUserGuards(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Delete", mock.Anything, int64(2)).Return(nil)
	svc := NewUserService(users, storeWithRole(t, 7, entity.RoleAdmin), nil)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 7), ErrCannotDeleteSelf)
	require.NoError(t, svc.DeleteUser(context.Background(), 2))
	users.AssertCalled(t, "Delete", mock.Anything, int64(2))
}

func TestUserService_UpdateProfileValidation(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, storeWithRole(t, 7, entity.RoleUser), nil)

	_, err := svc.UpdateProfile(context.Background(), entity.Profile{Username: "ana", Email: "ana@correo.es"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.UpdateProfile(context.Background(), entity.Profile{Name: "Ana", Username: "ana", Email: "mal"})
	assert.ErrorIs(t, err, ErrEmailInvalid)
	users.AssertNotCalled(t, "UpdateSelf", mock.Anything, mock.Anything)
}

func TestUserService_ChangePasswordRequired(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, storeWithRole(t, 7, entity.RoleUser), nil)

	assert.ErrorIs(t, svc.ChangePassword(context.Background(), ""), ErrPasswordRequired)
	users.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything)
}
