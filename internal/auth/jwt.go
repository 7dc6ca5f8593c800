// Package auth verifies bearer tokens and carries the caller's identity
// through the request context.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the token payload. ID is the owner's UUID.
type Claims struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller. OwnerID scopes every query.
type Identity struct {
	OwnerID uuid.UUID
	Name    string
	Email   string
}

// Manager signs and validates HS256 tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, issuer string) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// Sign issues a token for identity that expires after the manager's TTL.
func (m *Manager) Sign(identity Identity) (string, error) {
	now := m.now()
	claims := Claims{
		ID:    identity.OwnerID.String(),
		Name:  identity.Name,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.OwnerID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature and expiry and returns the identity.
func (m *Manager) Validate(token string) (Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	rawID := claims.ID
	if rawID == "" {
		rawID = claims.Subject
	}
	ownerID, err := uuid.FromString(rawID)
	if err != nil || ownerID == uuid.Nil {
		return Identity{}, fmt.Errorf("%w: token has no usable owner id", ErrInvalidToken)
	}

	return Identity{OwnerID: ownerID, Name: claims.Name, Email: claims.Email}, nil
}
