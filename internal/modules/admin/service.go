package admin

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

type tokenIssuer interface {
	GenerateToken(role string) (string, error)
}

// Service checks the shared admin credential and issues session tokens. The
// password is stored only as a bcrypt hash; the login response keeps the
// historical {success, token} shape but the token is a signed, expiring JWT
// rather than a static string.
type Service struct {
	passwordHash []byte
	jwt          tokenIssuer
}

func NewService(passwordHash string, jwt tokenIssuer) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		jwt:          jwt,
	}
}

// Login verifies the password and returns a fresh admin token.
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if len(s.passwordHash) == 0 {
		return "", ErrNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken("admin")
}
