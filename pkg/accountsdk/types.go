package accountsdk

import "time"

// ErrorResponse is the body every failed request carries.
type ErrorResponse struct {
	// Error is a short human-readable message, e.g. "Wrong credentials".
	Error string `json:"error"`
}

// AuthorizeRequest is the body for POST /v1/accounts/authorize.
type AuthorizeRequest struct {
	// ClientID is the account email address.
	ClientID string `json:"clientId"`

	// ClientSecret is the account password.
	ClientSecret string `json:"clientSecret"`
}

// RevalidateRequest is the body for POST /v1/accounts/revalidate.
type RevalidateRequest struct {
	// RefreshToken is the opaque token from a previous session response.
	RefreshToken string `json:"refreshToken"`
}

// Session is the response for a successful authorize or revalidate call.
// ExpiresIn and RefreshTokenExpires are epoch milliseconds; ExpiresIn equals
// the exp claim inside the access token.
type Session struct {
	TokenType           string `json:"tokenType"`
	AccessToken         string `json:"accessToken"`
	ExpiresIn           int64  `json:"expiresIn"`
	RefreshToken        string `json:"refreshToken"`
	RefreshTokenExpires int64  `json:"refreshTokenExpires"`
}

// RegisterRequest is the body for POST /v1/accounts/register.
type RegisterRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
}

// RegisterResponse is the created account. The password never comes back.
type RegisterResponse struct {
	ID        string     `json:"id"`
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// User is a single account record from the users endpoints.
type User struct {
	ID        string     `json:"id"`
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
