package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session errors
var (
	ErrInvalidToken  = errors.New("invalid session token")
	ErrExpiredToken  = errors.New("session expired")
	ErrInvalidFormat = errors.New("invalid authorization header")
)

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey   string
	Expiration  time.Duration
	TokenIssuer string
}

// SessionService mints and validates the gateway's own session tokens. A
// session wraps the backend credential together with the user's identity and
// permission list, so request handling never reaches into shared storage.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a session service
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{config: config}
}

// Claims defines session token content. BackendToken is the bearer
// credential the iDrive backend issued at login; it rides inside the signed
// session so every outbound call can carry it explicitly.
type Claims struct {
	UserID       int64    `json:"userId"`
	Name         string   `json:"name"`
	RoleID       int64    `json:"roleId"`
	Permissions  []string `json:"permissions"`
	BackendToken string   `json:"backendToken"`
	jwt.RegisteredClaims
}

// Generate creates a signed session token
func (s *SessionService) Generate(userID int64, name string, roleID int64, permissions []string, backendToken string) (token string, expiresIn int, err error) {
	expiry := time.Now().Add(s.config.Expiration)

	claims := &Claims{
		UserID:       userID,
		Name:         name,
		RoleID:       roleID,
		Permissions:  permissions,
		BackendToken: backendToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, int(s.config.Expiration.Seconds()), nil
}

// Validate parses and verifies a session token
func (s *SessionService) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 || claims.BackendToken == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return authHeader, nil
}
