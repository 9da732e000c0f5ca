package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/google/uuid"
)

// UsersHandler serves the bearer-protected account read endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList godoc
//
//	@Summary		List Users Endpoint
//	@Description	Returns all accounts ordered by creation date.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		accountsdk.User				"accounts"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid token"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"error"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]accountsdk.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get User Endpoint
//	@Description	Returns a single account by id.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Account id (uuid)"
//	@Success		200	{object}	accountsdk.User				"account"
//	@Failure		400	{object}	accountsdk.ErrorResponse	"Validation error"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid token"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"Not found"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Validation error")
		return
	}

	user, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(u domain.User) accountsdk.User {
	return accountsdk.User{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
