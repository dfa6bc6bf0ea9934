package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// TokenManager issues and verifies HS256 ID tokens. The subject carries the
// user id and the "name" claim the display name.
type TokenManager struct {
	secret []byte
	issuer string
}

// NewTokenManager creates a new token manager.
// secret must be at least 32 characters for HS256 security.
func NewTokenManager(secret string, issuer string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

type idClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

// GenerateIDToken creates a signed token for user valid for ttl.
func (m *TokenManager) GenerateIDToken(user domain.User, ttl time.Duration) (string, error) {
	if user.UID == "" {
		return "", domain.NewValidationError("uid", "required")
	}

	now := time.Now()
	claims := idClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: user.DisplayName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ParseIDToken validates an ID token and returns the user it names.
// Every failure wraps domain.ErrUnauthorized.
func (m *TokenManager) ParseIDToken(tokenString string) (domain.User, error) {
	if tokenString == "" {
		return domain.User{}, fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(tokenString, &idClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: parse token: %w", domain.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*idClaims)
	if !ok || !token.Valid {
		return domain.User{}, fmt.Errorf("%w: invalid token claims", domain.ErrUnauthorized)
	}

	if claims.Subject == "" {
		return domain.User{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, errors.New("token has no subject"))
	}

	return domain.User{UID: claims.Subject, DisplayName: claims.Name}, nil
}
