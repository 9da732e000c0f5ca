package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// TokenService issues signed access tokens for authenticated identities.
// It never persists anything: refresh tokens are minted and rotated by the
// credential store, and this service only packages the result into a session.
type TokenService struct {
	Signer    jwtx.Signer
	AccessTTL time.Duration
}

func NewTokenService(signer jwtx.Signer, accessTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = jwtx.DefaultAccessTokenTTL
	}
	return &TokenService{Signer: signer, AccessTTL: accessTTL}
}

// Issue signs a fresh access token for the identity. Signing failures are
// classified as ErrTokenCreation.
func (s *TokenService) Issue(identity domain.Identity) (string, jwtx.Claims, error) {
	claims := jwtx.NewClaims(identity.SubjectID, string(identity.Role), s.AccessTTL, time.Now().UTC())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", jwtx.Claims{}, fmt.Errorf("%w: %v", ErrTokenCreation, err)
	}

	return token, claims, nil
}

// IssueSession builds the full bearer session for a grant returned by the
// credential store: a signed access token plus the grant's refresh token.
func (s *TokenService) IssueSession(grant domain.Grant) (domain.Session, error) {
	token, claims, err := s.Issue(grant.Identity())
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		TokenType:           "Bearer",
		AccessToken:         token,
		ExpiresIn:           claims.ExpiresAt,
		RefreshToken:        grant.RefreshToken,
		RefreshTokenExpires: grant.RefreshTokenExpires.UnixMilli(),
	}, nil
}
