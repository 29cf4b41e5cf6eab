package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/edunest/tutord/internal/tutor/store"
	"github.com/edunest/tutord/pkg/cryptox"
)

// UserService is the credential store: user creation and password
// authentication. Passwords are stored as peppered argon2id hashes and never
// leave this package in plain form.
type UserService struct {
	Store store.Store
}

// Register creates a new user. The display name defaults to the username.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     username,
		DisplayName:  username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair and issues a fresh session
// token, replacing any previously issued token for that user. The old token
// becomes invalid immediately (single active session per user).
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Burn the same hashing work as a real check so unknown
				// usernames are not detectable by timing.
				cryptox.DummyVerify(password)
				return ErrInvalidCredentials
			}
			return fmt.Errorf("lookup user: %w", err)
		}

		if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
			return ErrInvalidCredentials
		}

		return tx.Users().UpdateToken(ctx, user.ID, token)
	})
	if err != nil {
		return "", err
	}

	return token, nil
}
