package service

import (
	"context"
	"strings"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
	"github.com/Dmungal1308/QuickSales-sub000/internal/platform/logger"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
	"github.com/Dmungal1308/QuickSales-sub000/internal/session"
)

// AuthService validates credentials client-side before any network call,
// and owns the session slot lifecycle: created at login, destroyed at
// logout.
type AuthService struct {
	auth     repository.AuthRepository
	sessions session.Store
	log      logger.Logger
}

func NewAuthService(auth repository.AuthRepository, sessions session.Store, log logger.Logger) *AuthService {
	if log == nil {
		log = logger.NoOp()
	}
	return &AuthService{auth: auth, sessions: sessions, log: log}
}

type RegisterInput struct {
	Name           string
	Username       string
	Email          string
	Password       string
	RepeatPassword string
	ImageURL       string
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return ErrEmailInvalid
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	s.log.Info("AuthService.Login: logging in", "email", email)
	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.log.Warnf("AuthService.Login: login failed for %s: %v", email, err)
		return nil, err
	}

	sess := session.Session{Token: result.Token, UserID: result.User.ID, Role: result.User.Role}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return &result.User, nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Username == "" {
		return nil, ErrUsernameRequired
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}
	if input.Password != input.RepeatPassword {
		return nil, ErrPasswordMismatch
	}

	s.log.Info("AuthService.Register: registering user", "username", input.Username)
	user, err := s.auth.Register(ctx, repository.RegisterRequest{
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		s.log.Warnf("AuthService.Register: registration failed for %s: %v", input.Username, err)
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	s.log.Info("AuthService.Logout: clearing session")
	return s.sessions.Clear(ctx)
}

// Restore rebuilds the session slot from a previously persisted token.
func (s *AuthService) Restore(ctx context.Context, token string) (session.Session, error) {
	sess, err := session.FromToken(token)
	if err != nil {
		return session.Session{}, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

func (s *AuthService) IsLoggedIn(ctx context.Context) bool {
	return session.IsLoggedIn(ctx, s.sessions)
}
