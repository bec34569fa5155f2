// Package gateway wraps HTTP calls to the fairsplit server with bearer-token
// authentication. It is the only component allowed to read the stored tokens,
// clear them, or force navigation to the login route when a call comes back
// unauthorized.
package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/fairsplit-admin/internal/authstore"
	apperrors "github.com/fairsplit-admin/internal/errors"
)

// LoginRoute is where the navigation hook is sent after a 401.
const LoginRoute = "/login"

// NavigateFunc is invoked to redirect the operator after authentication
// expires. The default implementation only logs; cmd/admin installs one that
// tells the operator to sign in again.
type NavigateFunc func(route string)

// Gateway issues authenticated requests against the admin API.
type Gateway struct {
	store    *authstore.Store
	client   *http.Client
	limiter  *rate.Limiter
	navigate NavigateFunc
}

// Options configures a Gateway.
type Options struct {
	// Client defaults to a plain http.Client with no timeout; the original
	// dashboard configured none either.
	Client *http.Client
	// RequestsPerSecond throttles calls when > 0.
	RequestsPerSecond float64
	Navigate          NavigateFunc
}

// New creates a gateway over the given token store.
func New(store *authstore.Store, opts Options) *Gateway {
	g := &Gateway{
		store:    store,
		client:   opts.Client,
		navigate: opts.Navigate,
	}
	if g.client == nil {
		g.client = &http.Client{}
	}
	if g.navigate == nil {
		g.navigate = func(route string) {
			slog.Warn("authentication expired", "redirect", route)
		}
	}
	if opts.RequestsPerSecond > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return g
}

// Request performs an authenticated HTTP call. Without a stored token pair it
// fails with ErrNoTokens before any network traffic. On a 401 response it
// clears the token store, invokes the navigation hook, and fails with
// ErrAuthExpired. Every other response is returned unmodified; interpreting
// the envelope's embedded status is the caller's job.
//
// extra headers, when supplied, override the defaults.
func (g *Gateway) Request(ctx context.Context, method, url string, body io.Reader, extra http.Header) (*http.Response, error) {
	creds := g.store.Read(ctx)
	if creds == nil {
		return nil, apperrors.ErrNoTokens
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	req.Header.Set("X-Request-ID", uuid.NewString())
	for key, values := range extra {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		g.store.Clear(ctx)
		g.navigate(LoginRoute)
		return nil, apperrors.ErrAuthExpired
	}

	return resp, nil
}
