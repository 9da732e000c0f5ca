package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a verified subject and its role, as asserted by the credential
// store. It exists only to hand off to the token issuer.
type Identity struct {
	SubjectID uuid.UUID
	Role      Role
}

// Grant is what the credential store returns for a successful authenticate or
// refresh-token validation: the identity plus the (possibly rotated) refresh
// token the store minted for it.
type Grant struct {
	UserID              uuid.UUID
	Role                string // raw label from storage
	RefreshToken        uuid.UUID
	RefreshTokenExpires time.Time
}

// Identity splits the grant into the part the token issuer consumes.
func (g Grant) Identity() Identity {
	return Identity{SubjectID: g.UserID, Role: ParseRole(g.Role)}
}

// Session is the response body for a successful authorize or revalidate call.
// ExpiresIn and RefreshTokenExpires are epoch milliseconds, matching the exp
// claim inside the access token.
type Session struct {
	TokenType           string    `json:"tokenType"`
	AccessToken         string    `json:"accessToken"`
	ExpiresIn           int64     `json:"expiresIn"`
	RefreshToken        uuid.UUID `json:"refreshToken"`
	RefreshTokenExpires int64     `json:"refreshTokenExpires"`
}
