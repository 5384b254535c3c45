package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UIDTokenManager signs the auxiliary "uid" identity cookie so the value a
// browser sends back cannot be forged. The cookie duplicates the session's
// user id and nothing server-side depends on it.
type UIDTokenManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewUIDTokenManager(secret string, ttl time.Duration) *UIDTokenManager {
	return &UIDTokenManager{Secret: []byte(secret), TTL: ttl}
}

type uidClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (m *UIDTokenManager) Generate(userID string) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL)
	claims := &uidClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse returns the user id carried by a token.
func (m *UIDTokenManager) Parse(tokenStr string) (string, error) {
	claims := &uidClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return "", err
	}
	if !tkn.Valid {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}
