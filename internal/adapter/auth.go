package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fairsplit-admin/internal/authstore"
	"github.com/fairsplit-admin/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginData struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	Admin        models.AdminInfo `json:"admin"`
}

// Login exchanges admin credentials for a token pair and identity record.
// It bypasses the gateway because no tokens exist yet; persisting the returned
// credentials is the caller's job.
func (c *Client) Login(ctx context.Context, email, password string) (*authstore.Credentials, error) {
	raw, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/login", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login failed: HTTP %d", resp.StatusCode)
	}

	var data loginData
	if err := decodeEnvelope(resp.Body, &data, "login failed"); err != nil {
		return nil, err
	}

	admin := data.Admin
	return &authstore.Credentials{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		Admin:        &admin,
	}, nil
}

// Logout tells the server to record the logout. Clearing the local session is
// the caller's job and should happen even when this call fails.
func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/logout", nil, nil, nil, "logout failed")
}
