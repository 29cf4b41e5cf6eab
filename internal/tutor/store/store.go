package store

import (
	"context"
	"errors"

	"github.com/edunest/tutord/internal/tutor/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. It exposes sub-repositories to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Chats() Chats

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns it with the store-assigned id.
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername is used during password authentication.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByToken returns the user whose active session token exactly
	// matches. Tokens are unique across users.
	GetUserByToken(ctx context.Context, token string) (domain.User, error)

	// UpdateToken overwrites the user's active session token, invalidating
	// any previously issued token for that user.
	UpdateToken(ctx context.Context, userID int64, token string) error

	// ClearToken logs out whichever user holds the token. Clearing an
	// unknown token is a no-op.
	ClearToken(ctx context.Context, token string) error
}

type Chats interface {
	// AppendEntry inserts a history entry and returns its store-assigned id.
	// Ids are monotonically increasing in insertion order.
	AppendEntry(ctx context.Context, e domain.ChatEntry) (int64, error)

	// ListByUser returns up to limit entries for the user, most recent first.
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatEntry, error)
}
