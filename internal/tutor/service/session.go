package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/edunest/tutord/internal/tutor/store"
)

// SessionService resolves and revokes opaque session tokens. A user's session
// moves between logged-out (no token) and logged-in (token set); a fresh login
// silently replaces the previous token.
type SessionService struct {
	Store store.Store
}

// Verify resolves a token to the user holding it. Read-only; no side effects.
func (s *SessionService) Verify(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, fmt.Errorf("lookup token: %w", err)
	}

	return user, nil
}

// Invalidate logs out whichever user holds the token. Idempotent: unknown or
// already-cleared tokens are a no-op, never an error.
func (s *SessionService) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Store.Users().ClearToken(ctx, token)
}
