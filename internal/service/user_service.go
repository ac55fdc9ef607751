package service

import (
	"context"
	"strings"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
	"github.com/Dmungal1308/QuickSales-sub000/internal/platform/logger"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
	"github.com/Dmungal1308/QuickSales-sub000/internal/session"
)

// UserService covers profile operations plus the admin-only user
// administration. The role gate is a client-side convenience check, not a
// security boundary: the backend enforces the real one.
type UserService struct {
	users    repository.UserRepository
	sessions session.Store
	log      logger.Logger
}

func NewUserService(users repository.UserRepository, sessions session.Store, log logger.Logger) *UserService {
	if log == nil {
		log = logger.NoOp()
	}
	return &UserService{users: users, sessions: sessions, log: log}
}

func (s *UserService) Self(ctx context.Context) (*entity.User, error) {
	return s.users.Self(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, profile entity.Profile) (*entity.User, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Username = strings.TrimSpace(profile.Username)
	profile.Email = strings.TrimSpace(profile.Email)

	if profile.Name == "" {
		return nil, ErrNameRequired
	}
	if profile.Username == "" {
		return nil, ErrUsernameRequired
	}
	if err := validateEmail(profile.Email); err != nil {
		return nil, err
	}

	s.log.Info("UserService.UpdateProfile: updating own profile", "username", profile.Username)
	return s.users.UpdateSelf(ctx, profile)
}

func (s *UserService) ChangePassword(ctx context.Context, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}
	s.log.Info("UserService.ChangePassword: changing password")
	return s.users.ChangePassword(ctx, newPassword)
}

func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.users.ListAll(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if sess.Role != entity.RoleAdmin {
		return repository.ErrForbidden
	}
	if sess.UserID == id {
		return ErrCannotDeleteSelf
	}
	s.log.Info("UserService.DeleteUser: deleting user", "user_id", id)
	return s.users.Delete(ctx, id)
}

func (s *UserService) requireAdmin(ctx context.Context) error {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if sess.Role != entity.RoleAdmin {
		return repository.ErrForbidden
	}
	return nil
}
