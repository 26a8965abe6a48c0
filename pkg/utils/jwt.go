package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken covers bad signature, bad format and expiry alike. The
// caller only ever learns the token was not acceptable.
var ErrInvalidToken = errors.New("Token inválido ou expirado.")

// JWTManager issues and validates the bearer tokens used by the API.
// Tokens carry the user email as subject and expire after the configured
// number of minutes (30 by default).
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

func NewJWTManager(cfg JWTConfig) *JWTManager {
	return &JWTManager{
		secret: []byte(cfg.Secret),
		expiry: time.Duration(cfg.ExpiryMinutes) * time.Minute,
	}
}

// Issue signs a new HS256 token for the given subject.
func (m *JWTManager) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(m.expiry).Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies signature and expiry and returns the subject claim.
func (m *JWTManager) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", ErrInvalidToken
	}

	return subject, nil
}

// Refresh re-issues a token from the subject of a still-valid token.
// A token past its expiry is rejected, this is not a grace refresh.
func (m *JWTManager) Refresh(tokenString string) (string, error) {
	subject, err := m.Validate(tokenString)
	if err != nil {
		return "", err
	}
	return m.Issue(subject)
}
