package service

import "errors"

// Every failure the auth core can produce is classified into exactly one of
// these kinds at the boundary where it occurs. The HTTP layer maps each kind
// to a status code and a structured error body; nothing is retried here.
var (
	// ErrMissingCredentials: empty or malformed clientId/clientSecret,
	// raised before the credential store is ever contacted.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrWrongCredentials: the store rejected the credential or refresh
	// token. Deliberately undifferentiated so callers can't probe which
	// field was wrong.
	ErrWrongCredentials = errors.New("wrong credentials")

	// ErrInvalidRefreshToken: the refresh token is structurally invalid.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrTokenCreation: the signing operation failed. Fatal, never retried.
	ErrTokenCreation = errors.New("unable to create token")

	// ErrValidation: request payload fails structural validation beyond
	// credentials (e.g. malformed registration input).
	ErrValidation = errors.New("validation error")
)
