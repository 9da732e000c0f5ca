package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// RegisterHandler serves POST /v1/accounts/register.
type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Creates a new account. Passwords must be at least 8 characters and are stored only as an Argon2id hash.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RegisterRequest	true	"New account details"
//	@Success		200		{object}	accountsdk.RegisterResponse	"id, firstName, lastName, createdAt, updatedAt"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Validation error"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"error"
//	@Router			/v1/accounts/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Validation error")
		return
	}

	user, err := h.AccountService.Register(r.Context(), domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.RegisterResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}
