package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/edunest/tutord/internal/tutor/domain"
)

type chatsRepo struct {
	q querier
}

func (r *chatsRepo) AppendEntry(ctx context.Context, e domain.ChatEntry) (int64, error) {
	sources, err := marshalList(e.Sources)
	if err != nil {
		return 0, err
	}
	videos, err := marshalList(e.Videos)
	if err != nil {
		return 0, err
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := r.q.ExecContext(ctx,
		`INSERT INTO chats (user_id, subject, question, answer, sources, videos, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.Subject, e.Question, e.Answer, sources, videos, createdAt,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *chatsRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatEntry, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, subject, question, answer, sources, videos, created_at
		 FROM chats WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ChatEntry, 0, limit)
	for rows.Next() {
		var (
			e       domain.ChatEntry
			sources sql.NullString
			videos  sql.NullString
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Subject, &e.Question, &e.Answer,
			&sources, &videos, &e.CreatedAt,
		); err != nil {
			return nil, err
		}

		if e.Sources, err = unmarshalList[domain.Source](sources); err != nil {
			return nil, err
		}
		if e.Videos, err = unmarshalList[domain.Video](videos); err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// marshalList serializes a slice to JSON text, normalizing nil to "[]".
func marshalList[T any](list []T) (string, error) {
	if list == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// unmarshalList deserializes a JSON text column. NULL or empty columns become
// empty (never nil) slices so API responses serialize as [].
func unmarshalList[T any](col sql.NullString) ([]T, error) {
	out := make([]T, 0)
	if !col.Valid || col.String == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(col.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}
