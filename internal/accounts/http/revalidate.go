package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// RevalidateHandler serves POST /v1/accounts/revalidate.
type RevalidateHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Revalidate Endpoint
//	@Description	Redeems a refresh token for a fresh bearer session. The presented token is consumed whether or not it was valid; a replacement token comes back in the response.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RevalidateRequest	true	"Refresh token"
//	@Success		200		{object}	accountsdk.Session				"tokenType, accessToken, expiresIn, refreshToken, refreshTokenExpires"
//	@Failure		401		{object}	accountsdk.ErrorResponse		"Invalid refresh token / Wrong credentials"
//	@Failure		500		{object}	accountsdk.ErrorResponse		"error"
//	@Router			/v1/accounts/revalidate [post].
func (h *RevalidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RevalidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	sess, err := h.AuthService.Revalidate(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(sess))
}
