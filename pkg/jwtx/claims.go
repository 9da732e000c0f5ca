package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
// Short-lived for security - typical range is 15m to 1h.
const DefaultAccessTokenTTL = 15 * time.Minute

// Claims is the canonical access-token payload: subject, role label and
// expiry. The exp claim is epoch milliseconds, and every response field that
// echoes the expiry uses the same unit. Claims are immutable once built and
// only exist for the duration of a sign or verify call.
type Claims struct {
	Subject   uuid.UUID `json:"sub"`
	Role      string    `json:"role"`
	ExpiresAt int64     `json:"exp"`
}

// NewClaims builds claims expiring ttl after now.
func NewClaims(subject uuid.UUID, role string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		Subject:   subject,
		Role:      role,
		ExpiresAt: now.Add(ttl).UnixMilli(),
	}
}

// ValidateExpiry ensures the token hasn't expired relative to now.
func (c Claims) ValidateExpiry(now time.Time) error {
	if now.UnixMilli() >= c.ExpiresAt {
		return ErrExpired
	}
	return nil
}

/* jwt.Claims interface. Only sub and exp are populated. The exp claim is
   stored in milliseconds, so the conversion to the library's NumericDate
   happens here. */

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.UnixMilli(c.ExpiresAt)), nil
}

func (c Claims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c Claims) GetIssuer() (string, error)              { return "", nil }
func (c Claims) GetSubject() (string, error)             { return c.Subject.String(), nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }
