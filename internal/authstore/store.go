// Package authstore persists the admin session: an access/refresh token pair
// and the signed-in administrator's identity record. Storage sits behind a
// small key-value interface so tests can substitute an in-memory binding;
// production binds it to a JSON file or a shared redis instance.
package authstore

import (
	"context"
	"encoding/json"

	"github.com/fairsplit-admin/internal/models"
)

// Storage keys. These mirror the three localStorage entries of the original
// dashboard.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyAdminInfo    = "adminInfo"
)

// KV is the injectable key-value contract the store runs on.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes a key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Credentials is the stored session: the token pair plus the admin identity.
// The refresh token is persisted but never exchanged; no refresh flow exists
// in this design.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	Admin        *models.AdminInfo
}

// Store reads and writes the admin session through a KV binding.
type Store struct {
	kv KV
}

// New creates a store on the given binding.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Read returns the stored credentials, or nil when either token is missing or
// the backend is unavailable. It never fails: an unreachable or corrupt
// backend reads as signed-out.
func (s *Store) Read(ctx context.Context) *Credentials {
	access, err := s.kv.Get(ctx, KeyAccessToken)
	if err != nil || access == "" {
		return nil
	}
	refresh, err := s.kv.Get(ctx, KeyRefreshToken)
	if err != nil || refresh == "" {
		return nil
	}

	creds := &Credentials{AccessToken: access, RefreshToken: refresh}

	// The identity record is optional; an unparsable one reads as absent.
	if raw, err := s.kv.Get(ctx, KeyAdminInfo); err == nil && raw != "" {
		var admin models.AdminInfo
		if err := json.Unmarshal([]byte(raw), &admin); err == nil {
			creds.Admin = &admin
		}
	}

	return creds
}

// Save persists a session after login.
func (s *Store) Save(ctx context.Context, creds *Credentials) error {
	if err := s.kv.Set(ctx, KeyAccessToken, creds.AccessToken); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyRefreshToken, creds.RefreshToken); err != nil {
		return err
	}
	if creds.Admin == nil {
		return s.kv.Remove(ctx, KeyAdminInfo)
	}
	raw, err := json.Marshal(creds.Admin)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, KeyAdminInfo, string(raw))
}

// Clear removes all three keys. It is idempotent: clearing an already empty
// store is a no-op.
func (s *Store) Clear(ctx context.Context) {
	_ = s.kv.Remove(ctx, KeyAccessToken)
	_ = s.kv.Remove(ctx, KeyRefreshToken)
	_ = s.kv.Remove(ctx, KeyAdminInfo)
}

// IsAuthenticated reports whether a complete token pair is stored.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Read(ctx) != nil
}
