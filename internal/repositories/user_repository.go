package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"becak/internal/domain"
	"becak/internal/domain/models"
)

// UserRepository reads admin and driver accounts.
type UserRepository struct {
	DB *sql.DB
}

// FindByEmail looks a user up by email (case-insensitive).
func (r UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "Email wajib diisi."}
	}
	if r.DB == nil {
		return models.User{}, domain.InternalError{Msg: "database belum terhubung"}
	}

	var (
		u     models.User
		phone sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, phone, password_hash, role, status, created_at
		FROM users
		WHERE LOWER(email) = ?
		LIMIT 1`, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&phone,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, domain.InternalError{Msg: "gagal query user", Err: err}
	}
	u.Phone = phone.String
	return u, nil
}
