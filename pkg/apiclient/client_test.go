package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeblog-backend/internal/domains/user"
	"recipeblog-backend/internal/shared/response"
)

func writeJSON(w http.ResponseWriter, status int, body response.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/users/login", r.URL.Path)
		writeJSON(w, http.StatusOK, response.Response{
			Success: true,
			Data: user.AuthResponse{
				Token: "issued-token",
				User:  user.UserDTO{ID: uuid.New(), Username: "alice"},
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	require.False(t, client.LoggedIn())

	dto, err := client.Login(context.Background(), "alice@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Username)
	assert.True(t, client.LoggedIn())
}

func TestProtectedCall_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, response.Response{
			Success: true,
			Data:    user.UserDTO{Username: "alice"},
		})
	}))
	defer srv.Close()

	tokens := NewMemoryTokenStore()
	require.NoError(t, tokens.Save("stored-token"))

	client := New(srv.URL, tokens)
	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", gotAuth)
}

func TestProtectedCall_WithoutSession(t *testing.T) {
	client := New("http://unused.invalid", nil)

	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestRejectedToken_ClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, response.Response{
			Success: false,
			Error:   &response.Error{Code: "UNAUTHORIZED", Message: "token has expired"},
		})
	}))
	defer srv.Close()

	tokens := NewMemoryTokenStore()
	require.NoError(t, tokens.Save("stale-token"))

	client := New(srv.URL, tokens)

	// First call: server rejects the token, client drops it
	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, client.LoggedIn())

	// Second call fails locally, no stored session anymore
	_, err = client.Me(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestServerError_SurfacesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, response.Response{
			Success: false,
			Error:   &response.Error{Code: "NOT_FOUND", Message: "blog not found"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.GetBlog(context.Background(), uuid.New())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")
	store := NewFileTokenStore(path)

	// Empty slot reads as no session
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("persisted-token"))

	// A fresh store over the same path sees the session
	token, err = NewFileTokenStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is a no-op
	require.NoError(t, store.Clear())
}
