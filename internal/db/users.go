package db

import (
	"context"

	"github.com/samadhaan/backend/internal/models"
)

const userCols = `id, name, email, phone, address, bio, role, password_hash, created_at`

func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.Pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.Bio, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// EmailTaken reports whether another user already owns the address.
func (s *Store) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var n int
	err := s.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE lower(email) = lower($1) AND id <> $2`,
		email, excludeID).Scan(&n)
	return n > 0, err
}

func (s *Store) UpdateUserProfile(ctx context.Context, u models.User) (models.User, error) {
	var out models.User
	err := s.Pool.QueryRow(ctx,
		`UPDATE users SET name = $2, email = $3, phone = $4, address = $5, bio = $6
		 WHERE id = $1
		 RETURNING `+userCols,
		u.ID, u.Name, u.Email, u.Phone, u.Address, u.Bio).
		Scan(&out.ID, &out.Name, &out.Email, &out.Phone, &out.Address, &out.Bio, &out.Role, &out.PasswordHash, &out.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	_, err := s.Pool.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	return err
}
