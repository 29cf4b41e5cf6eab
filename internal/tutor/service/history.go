package service

import (
	"context"
	"fmt"

	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/edunest/tutord/internal/tutor/store"
)

// DefaultHistoryLimit caps a history listing when the caller does not ask for
// a specific size.
const DefaultHistoryLimit = 200

// HistoryService is the append-only per-user chat ledger. Entries are written
// once on chat completion and never mutated or deleted.
type HistoryService struct {
	Store store.Store
}

// Append records one interaction and returns the store-assigned id.
func (s *HistoryService) Append(ctx context.Context, entry domain.ChatEntry) (int64, error) {
	id, err := s.Store.Chats().AppendEntry(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("append chat entry: %w", err)
	}
	return id, nil
}

// List returns the user's entries, most recent first. A non-positive limit
// means DefaultHistoryLimit.
func (s *HistoryService) List(ctx context.Context, userID int64, limit int) ([]domain.ChatEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	entries, err := s.Store.Chats().ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat entries: %w", err)
	}
	return entries, nil
}
