// internal/storage/postgres/users.go
package postgres

import (
	"context"
	"fmt"
	"purchase-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *Storage) FindUser(ctx context.Context, id int) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (s *Storage) CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns, in.Name, in.Email, in.PasswordHash))
	if err != nil {
		return nil, wrapErr("create user", err)
	}
	return u, nil
}

func (s *Storage) UpdateUser(ctx context.Context, id int, in domain.UserUpdate) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			password = COALESCE($4, password),
			updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, in.Name, in.Email, in.PasswordHash))
	if err != nil {
		if noRows(err) {
			return nil, fmt.Errorf("update user %d: %w", id, domain.ErrNotFound)
		}
		return nil, wrapErr("update user", err)
	}
	return u, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id int) (bool, error) {
	result, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, wrapDeleteErr("delete user", err)
	}
	return result.RowsAffected() > 0, nil
}
