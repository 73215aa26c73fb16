package helpers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and validates the bearer tokens used on protected routes.
// Tokens carry the user id as subject and an absolute expiry; there is no
// refresh and no server-side revocation.
type JWTManager struct {
	Secret []byte
	Method jwt.SigningMethod
	TTL    time.Duration
}

// NewJWTManager builds a manager for the configured HMAC algorithm.
// Only the HS256/HS384/HS512 family is accepted; the secret is shared
// deployment configuration.
func NewJWTManager(secret, algorithm string, ttl time.Duration) (*JWTManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown jwt algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q: only HMAC variants are allowed", algorithm)
	}
	return &JWTManager{Secret: []byte(secret), Method: method, TTL: ttl}, nil
}

// GenerateAccessToken signs a token with subject = user id and the configured expiry.
func (m *JWTManager) GenerateAccessToken(userID int64) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(m.Method, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseAccessToken verifies signature and expiry and returns the subject user id.
func (m *JWTManager) ParseAccessToken(tokenStr string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != m.Method.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !tkn.Valid {
		return 0, errors.New("invalid token")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.New("invalid token subject")
	}
	return userID, nil
}
