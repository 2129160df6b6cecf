// Package token signs and verifies the bearer tokens handed out at login.
package token

import (
	"errors"
	"fmt"
	"time"

	"food4u-api/models"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "food4u-api"

// Claims binds a token to an account, its roles and the role the session runs under
type Claims struct {
	AccountID  string            `json:"account_id"`
	Roles      []models.UserRole `json:"roles"`
	ActiveRole models.UserRole   `json:"active_role"`
	jwt.RegisteredClaims
}

// Codec issues and parses HS256 tokens
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the codec reading time from now
func (c *Codec) WithClock(now func() time.Time) *Codec {
	cp := *c
	cp.now = now
	return &cp
}

// Issue creates a signed token and returns it with its expiry
func (c *Codec) Issue(accountID string, roles []models.UserRole, activeRole models.UserRole) (string, time.Time, error) {
	issuedAt := c.now()
	expiresAt := issuedAt.Add(c.ttl)
	claims := Claims{
		AccountID:  accountID,
		Roles:      roles,
		ActiveRole: activeRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies signature, algorithm, issuer and expiry. Every failure is ErrInvalidToken.
func (c *Codec) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return nil, errors.Join(models.ErrInvalidToken, err)
	}
	if claims.AccountID == "" {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}
