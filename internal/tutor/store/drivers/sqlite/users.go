package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/edunest/tutord/internal/tutor/domain"
)

type usersRepo struct {
	q querier
}

// userColumns is shared by every user SELECT. display_name falls back to the
// username for rows created before the column existed.
const userColumns = `id, username, COALESCE(display_name, username), password_hash, token, created_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := r.q.ExecContext(ctx,
		`INSERT INTO users (username, display_name, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.Username, u.DisplayName, u.PasswordHash, createdAt,
	)
	if err != nil {
		return domain.User{}, mapConflict(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	u.ID = id
	u.CreatedAt = createdAt
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetUserByToken(ctx context.Context, token string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE token = ?`, token)
	return scanUser(row)
}

func (r *usersRepo) UpdateToken(ctx context.Context, userID int64, token string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET token = ? WHERE id = ?`, mapStringNull(token), userID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *usersRepo) ClearToken(ctx context.Context, token string) error {
	// Idempotent: clearing a token nobody holds affects zero rows and that
	// is fine.
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET token = NULL WHERE token = ?`, token)
	return err
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u     domain.User
		token sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.PasswordHash, &token, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Token = mapNullString(token)
	return u, nil
}
