package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/PaulBilal/Edunova-School-System/internal/usecase"
)

// DefaultTTL is the lifetime of an issued token.
const DefaultTTL = 30 * 24 * time.Hour

var (
	// ErrInvalidToken wraps every verification failure.
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrEmptySecret  = errors.New("jwt secret must not be empty")
)

// Claims carries the user ID under "id" plus the registered claims.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens with a single process-wide secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ usecase.TokenService = (*JWTManager)(nil)

// NewJWTManager refuses to build a manager without a signing key.
// A non-positive ttl falls back to DefaultTTL.
func NewJWTManager(secret string, ttl time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for userID.
func (m *JWTManager) Issue(userID string) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the user ID.
func (m *JWTManager) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
