package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAuthenticateVerifyRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	sessions := &SessionService{Store: st}

	user, err := users.Register(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice", user.DisplayName)
	require.Empty(t, user.Token)

	token, err := users.Authenticate(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := sessions.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
	require.Equal(t, "alice", resolved.Username)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}

	t.Run("empty username", func(t *testing.T) {
		_, err := users.Register(ctx, "   ", "password")
		require.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := users.Register(ctx, "bob", "")
		require.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}

	first, err := users.Register(ctx, "carol", "original-password")
	require.NoError(t, err)

	_, err = users.Register(ctx, "carol", "different-password")
	require.ErrorIs(t, err, ErrUsernameTaken)

	// The original account is untouched and still authenticates.
	token, err := users.Authenticate(ctx, "carol", "original-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := st.Users().GetUserByUsername(ctx, "carol")
	require.NoError(t, err)
	require.Equal(t, first.ID, resolved.ID)
}

func TestAuthenticateFailuresLookAlike(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}

	_, err := users.Register(ctx, "dave", "correct-password")
	require.NoError(t, err)

	// Wrong password for an existing user and a nonexistent user produce the
	// same error, so callers cannot probe for valid usernames.
	_, err = users.Authenticate(ctx, "dave", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Authenticate(ctx, "no-such-user", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Authenticate(ctx, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateReplacesPreviousToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	sessions := &SessionService{Store: st}

	_, err := users.Register(ctx, "erin", "password123")
	require.NoError(t, err)

	first, err := users.Authenticate(ctx, "erin", "password123")
	require.NoError(t, err)

	second, err := users.Authenticate(ctx, "erin", "password123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Only the most recent token resolves.
	_, err = sessions.Verify(ctx, first)
	require.ErrorIs(t, err, ErrInvalidToken)

	resolved, err := sessions.Verify(ctx, second)
	require.NoError(t, err)
	require.Equal(t, "erin", resolved.Username)
}

func TestInvalidateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	sessions := &SessionService{Store: st}

	_, err := users.Register(ctx, "frank", "password123")
	require.NoError(t, err)

	token, err := users.Authenticate(ctx, "frank", "password123")
	require.NoError(t, err)

	require.NoError(t, sessions.Invalidate(ctx, token))

	_, err = sessions.Verify(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Second invalidation of the same token, and of garbage, are no-ops.
	require.NoError(t, sessions.Invalidate(ctx, token))
	require.NoError(t, sessions.Invalidate(ctx, "never-issued"))
	require.NoError(t, sessions.Invalidate(ctx, ""))
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sessions := &SessionService{Store: st}

	_, err := sessions.Verify(ctx, "")
	require.ErrorIs(t, err, ErrInvalidToken)
}
