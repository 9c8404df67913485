package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"becak/internal/domain"
	"becak/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const msgBadCredentials = "Email atau password salah."

// ErrInvalidToken is returned by ParseToken for any unusable token.
var ErrInvalidToken = errors.New("token tidak valid")

// UserFinder looks up accounts for login.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// AuthService issues and checks the bearer tokens of admin and driver accounts.
type AuthService struct {
	Users  UserFinder
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

type Claims struct {
	UserID int64
	Role   string
}

// Login checks email/password and returns a signed HS256 token.
func (s AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", models.User{}, domain.ValidationError{Field: "email", Msg: "Email dan password wajib diisi."}
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, domain.ValidationError{Field: "email", Msg: msgBadCredentials}
		}
		return "", models.User{}, err
	}
	if !strings.EqualFold(user.Status, "active") {
		return "", models.User{}, domain.ConflictError{Resource: "akun", Msg: "akun tidak aktif"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, domain.ValidationError{Field: "password", Msg: msgBadCredentials}
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     s.now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "gagal membuat token", Err: err}
	}
	return signed, user, nil
}

// ParseToken validates a bearer token and extracts its claims.
func (s AuthService) ParseToken(raw string) (Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Claims{}, ErrInvalidToken
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	var c Claims
	if v, ok := mc["user_id"].(float64); ok {
		c.UserID = int64(v)
	}
	c.Role, _ = mc["role"].(string)
	if c.Role == "" {
		return Claims{}, ErrInvalidToken
	}
	return c, nil
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
