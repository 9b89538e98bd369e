package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testService(exp time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey:   "test-secret",
		Expiration:  exp,
		TokenIssuer: "idrive.test",
	})
}

func TestSessionRoundTrip(t *testing.T) {
	svc := testService(time.Hour)

	perms := []string{"usuarios:leer", "clases:crear"}
	token, expiresIn, err := svc.Generate(7, "Ana", 1, perms, "backend-token")
	assert.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, int64(1), claims.RoleID)
	assert.Equal(t, perms, claims.Permissions)
	assert.Equal(t, "backend-token", claims.BackendToken)
}

func TestSessionRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)

	token, _, err := svc.Generate(7, "Ana", 1, nil, "backend-token")
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.True(t, errors.Is(err, ErrExpiredToken), "want ErrExpiredToken, got %v", err)
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).Generate(7, "Ana", 1, nil, "backend-token")
	assert.NoError(t, err)

	other := NewSessionService(SessionConfig{SecretKey: "different", Expiration: time.Hour})
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestSessionRejectsEmptyBackendToken(t *testing.T) {
	svc := testService(time.Hour)

	token, _, err := svc.Generate(7, "Ana", 1, nil, "")
	assert.NoError(t, err)

	// A session without a backend credential is useless downstream
	_, err = svc.Validate(token)
	assert.True(t, errors.Is(err, ErrInvalidToken), "want ErrInvalidToken, got %v", err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)

	token, err = ExtractBearerToken("abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = ExtractBearerToken("")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}
