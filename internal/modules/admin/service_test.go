package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtsvc "tongavip/internal/pkg/jwt"
)

func newTestService(t *testing.T, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService(string(hash), jwtsvc.New("test-secret", time.Hour))
}

func TestService_Login_Success(t *testing.T) {
	svc := newTestService(t, "hunter2")

	token, err := svc.Login(context.Background(), "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// The issued token must be verifiable, not a static string.
	claims, err := jwtsvc.New("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc := newTestService(t, "hunter2")

	_, err := svc.Login(context.Background(), "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_NotConfigured(t *testing.T) {
	svc := NewService("", jwtsvc.New("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
