package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	accessTokenTTL  = 12 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated user id alongside the registered
// JWT claims (exp, iat).
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates access and refresh tokens. The two
// token families are signed with distinct secrets so a refresh token can
// never pass as an access token.
type TokenManager struct {
	secret        []byte
	refreshSecret []byte
}

func NewTokenManager(secret, refreshSecret string) *TokenManager {
	return &TokenManager{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
	}
}

func (m *TokenManager) GenerateAccessToken(userID string) (string, error) {
	return m.generate(userID, accessTokenTTL, m.secret)
}

func (m *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	return m.generate(userID, refreshTokenTTL, m.refreshSecret)
}

func (m *TokenManager) ValidateAccessToken(token string) (*Claims, error) {
	return m.validate(token, m.secret)
}

func (m *TokenManager) ValidateRefreshToken(token string) (*Claims, error) {
	return m.validate(token, m.refreshSecret)
}

func (m *TokenManager) generate(userID string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (m *TokenManager) validate(token string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
