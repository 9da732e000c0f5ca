package accountsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFakeService(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/accounts/authorize", func(w http.ResponseWriter, r *http.Request) {
		var req AuthorizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.ClientID != "elton.john@gmail.com" || req.ClientSecret != "R0ck3t.M4n!Secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Wrong credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(Session{
			TokenType:    "Bearer",
			AccessToken:  "signed.access.token",
			RefreshToken: "3f1f0ca0-4f44-4c6f-9c0d-1a2b3c4d5e6f",
		})
	})
	mux.HandleFunc("GET /v1/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer signed.access.token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode([]User{{ID: "u-1", Email: "elton.john@gmail.com"}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientAuthorize(t *testing.T) {
	srv := newFakeService(t)
	client := NewClient(srv.URL)

	sess, err := client.Authorize(context.Background(), "elton.john@gmail.com", "R0ck3t.M4n!Secret")
	require.NoError(t, err)
	require.Equal(t, "Bearer", sess.TokenType)
	require.Equal(t, "signed.access.token", sess.AccessToken)
}

func TestClientAuthorizeFailure(t *testing.T) {
	srv := newFakeService(t)
	client := NewClient(srv.URL)

	_, err := client.Authorize(context.Background(), "elton.john@gmail.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Wrong credentials", apiErr.Message)
}

func TestClientUsers(t *testing.T) {
	srv := newFakeService(t)
	client := NewClient(srv.URL)

	users, err := client.Users(context.Background(), "signed.access.token")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "elton.john@gmail.com", users[0].Email)

	_, err = client.Users(context.Background(), "bogus")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
