// Package adapter provides the typed client for the fairsplit admin REST API.
// Every call goes through the authenticated gateway; this package only knows
// the endpoint paths, query parameters, and payload shapes.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fairsplit-admin/internal/gateway"
	"github.com/fairsplit-admin/internal/models"

	apperrors "github.com/fairsplit-admin/internal/errors"
)

const apiPrefix = "/api/v1/admin"

// Client talks to the fairsplit admin API.
type Client struct {
	baseURL string
	gw      *gateway.Gateway
	// httpClient is used only for login, which runs before any token exists
	// and therefore cannot go through the gateway.
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, gw *gateway.Gateway) *Client {
	return &Client{
		baseURL:    baseURL,
		gw:         gw,
		httpClient: &http.Client{},
	}
}

// ListParams are the shared query parameters of the list endpoints. A blank
// Search is omitted from the query string entirely.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	return values
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// call issues a request through the gateway and decodes the envelope into out.
// fallback is the message used when the server reports a failure without one.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, payload any, out any, fallback string) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	resp, err := c.gw.Request(ctx, method, c.endpoint(path, query), body, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: HTTP %d", fallback, resp.StatusCode)
	}

	return decodeEnvelope(resp.Body, out, fallback)
}

// decodeEnvelope parses the {message, status, data} wrapper, surfacing an
// embedded non-200 status as an APIError and otherwise unmarshalling data
// into out (which may be nil when the caller ignores the payload).
func decodeEnvelope(r io.Reader, out any, fallback string) error {
	var envelope models.Envelope[json.RawMessage]
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if !envelope.OK() {
		return apperrors.NewAPIError(envelope.Status, envelope.Message, fallback)
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}
