package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents admin session claims structure
type Claims struct {
	Username string `json:"username"`
	Nonce    string `json:"nonce"`
	jwt.RegisteredClaims
}

// Manager issues and validates signed admin session tokens.
// Token là HS256 JWT có issued-at + expiry, thay cho shared-secret tĩnh.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates new session manager
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// CreateSession issues a signed token for the admin identity.
// The username is embedded in the claims so the cookie can be audited.
func (m *Manager) CreateSession(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Nonce:    uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateSession verifies signature and expiry.
func (m *Manager) ValidateSession(tokenString string) bool {
	_, err := m.parse(tokenString)
	return err == nil
}

// Username returns the identity carried by a valid token.
func (m *Manager) Username(tokenString string) (string, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

func (m *Manager) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
