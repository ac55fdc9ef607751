package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

var ErrTokenExpired = errors.New("session token expired")

type tokenClaims struct {
	Role string `json:"rol,omitempty"`
	jwt.RegisteredClaims
}

// FromToken rebuilds a Session from a previously issued bearer token by
// reading its claims. The signature is NOT verified: the backend is the
// authority, this only restores the user id and role a persisted token
// already carries. An expired token is rejected so the caller can force a
// fresh login instead of failing on the first request.
func FromToken(token string) (Session, error) {
	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Session{}, fmt.Errorf("failed to parse session token: %w", err)
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return Session{}, ErrTokenExpired
	}

	var userID int64
	if claims.Subject != "" {
		if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil {
			return Session{}, fmt.Errorf("failed to parse subject claim %q: %w", claims.Subject, err)
		}
	}

	role := entity.RoleUser
	if claims.Role == string(entity.RoleAdmin) {
		role = entity.RoleAdmin
	}

	return Session{Token: token, UserID: userID, Role: role}, nil
}
