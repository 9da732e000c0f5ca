package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSecret   = errors.New("jwtx: empty signing secret")
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
)

// Signer is our interface for anything that can sign access-token claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
// Verify checks signature and structure only; expiry is the caller's call
// via Claims.ValidateExpiry so verification instants stay explicit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS512 signs and verifies tokens with a single shared HMAC-SHA512 secret.
// The secret is fixed at construction and read-only afterwards, so one
// instance is safe for concurrent use across requests.
type HS512 struct {
	secret []byte
}

// NewHS512 wraps the shared secret. An empty secret is refused here so the
// process can fail at startup instead of minting unverifiable tokens.
func NewHS512(secret []byte) (*HS512, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &HS512{secret: secret}, nil
}

func (h *HS512) Alg() string { return jwt.SigningMethodHS512.Alg() }

// Sign produces a compact signed token carrying the claims.
func (h *HS512) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString(h.secret)
}

// Verify parses the compact token and checks its signature. Claims
// validation is deliberately skipped here; see Verifier.
func (h *HS512) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, h.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return Claims{}, ErrInvalidSig
		}
		return Claims{}, ErrMalformed
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	return claims, nil
}

func (h *HS512) keyfunc(*jwt.Token) (any, error) {
	return h.secret, nil
}
