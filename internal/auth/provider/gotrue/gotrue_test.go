package gotrue

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"staff-service/internal/supabase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0b8c2f0e-5d2a-4a8e-9f39-4c2b1d7e9a10"

func newTestProvider(t *testing.T, h http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(supabase.New(srv.URL, "service-key"))
}

func TestCreateUser_Success(t *testing.T) {
	var body map[string]any

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + testUserID + `","aud":"authenticated","role":"authenticated","email":"a@b.com","email_confirmed_at":"2024-01-01T00:00:00Z"}`))
	})

	user, err := p.CreateUser(context.Background(), "a@b.com", "pw123", true)
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, testUserID, user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "a@b.com", body["email"])
	assert.Equal(t, "pw123", body["password"])
	assert.Equal(t, true, body["email_confirm"])
}

func TestCreateUser_NoUserInResponse(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	user, err := p.CreateUser(context.Background(), "a@b.com", "pw123", true)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateUser_ProviderError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"error_code":"email_exists","msg":"A user with this email address has already been registered"}`))
	})

	user, err := p.CreateUser(context.Background(), "a@b.com", "pw123", true)
	assert.Nil(t, user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "A user with this email address has already been registered")
}

func TestCreateUser_NotConfigured(t *testing.T) {
	p := New(supabase.New("", ""))

	user, err := p.CreateUser(context.Background(), "a@b.com", "pw123", true)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, supabase.ErrMissingURL))
}

func TestCreateUser_CanceledContextSendsNothing(t *testing.T) {
	called := false
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	user, err := p.CreateUser(ctx, "a@b.com", "pw123", true)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
