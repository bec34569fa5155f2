package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairsplit-admin/internal/authstore"
	apperrors "github.com/fairsplit-admin/internal/errors"
)

func signedInStore(t *testing.T) *authstore.Store {
	t.Helper()
	store := authstore.New(authstore.NewMemoryKV())
	require.NoError(t, store.Save(context.Background(), &authstore.Credentials{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))
	return store
}

func TestRequestWithoutTokensNeverHitsTheNetwork(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer srv.Close()

	gw := New(authstore.New(authstore.NewMemoryKV()), Options{})

	resp, err := gw.Request(context.Background(), http.MethodGet, srv.URL, nil, nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNoTokens)
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits))
}

func TestRequestMergesAuthHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	gw := New(signedInStore(t), Options{})

	resp, err := gw.Request(context.Background(), http.MethodGet, srv.URL, nil, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, []string{"Bearer access-token"}, got.Values("Authorization"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestRequestCallerHeadersOverrideDefaults(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	gw := New(signedInStore(t), Options{})

	extra := http.Header{}
	extra.Set("Content-Type", "text/plain")
	resp, err := gw.Request(context.Background(), http.MethodGet, srv.URL, nil, extra)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"text/plain"}, got.Values("Content-Type"))
	assert.Equal(t, []string{"Bearer access-token"}, got.Values("Authorization"))
}

func TestUnauthorizedClearsTokensAndRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := signedInStore(t)
	var redirectedTo string
	gw := New(store, Options{Navigate: func(route string) { redirectedTo = route }})

	resp, err := gw.Request(context.Background(), http.MethodGet, srv.URL, nil, nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrAuthExpired)
	assert.Equal(t, LoginRoute, redirectedTo)
	assert.False(t, store.IsAuthenticated(context.Background()),
		"a 401 must leave the store signed out")
}

func TestNonAuthFailuresPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := signedInStore(t)
	gw := New(store, Options{})

	resp, err := gw.Request(context.Background(), http.MethodGet, srv.URL, nil, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, store.IsAuthenticated(context.Background()),
		"only a 401 may clear the session")
}
