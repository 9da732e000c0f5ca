package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// AuthorizeHandler serves POST /v1/accounts/authorize.
type AuthorizeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Authorize Endpoint
//	@Description	Exchanges an email and password for a bearer session: a signed access token plus an opaque single-use refresh token.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.AuthorizeRequest	true	"Account credentials"
//	@Success		200		{object}	accountsdk.Session			"tokenType, accessToken, expiresIn, refreshToken, refreshTokenExpires"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing credentials"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Wrong credentials"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"error"
//	@Router			/v1/accounts/authorize [post].
func (h *AuthorizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.AuthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Missing credentials")
		return
	}

	sess, err := h.AuthService.Authorize(r.Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(sess))
}

func toSessionResponse(sess domain.Session) accountsdk.Session {
	return accountsdk.Session{
		TokenType:           sess.TokenType,
		AccessToken:         sess.AccessToken,
		ExpiresIn:           sess.ExpiresIn,
		RefreshToken:        sess.RefreshToken.String(),
		RefreshTokenExpires: sess.RefreshTokenExpires,
	}
}
