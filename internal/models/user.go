package models

import "time"

// Verification states reported by the server.
const (
	VerifiedUser   = "verified"
	UnverifiedUser = "unverified"
)

// OAuthLink holds the provider-side identifier for a linked OAuth account.
// The server does not guarantee a closed schema beyond the ID field.
type OAuthLink struct {
	GoogleID string `json:"googleId,omitempty"`
}

// PrivacySettings mirrors a user's privacy preferences.
type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility"`
	FriendRequests    string `json:"friendRequests"`
}

// User represents a fairsplit account as seen by the admin API.
type User struct {
	ID               string          `json:"_id"`
	Username         string          `json:"username"`
	Email            string          `json:"email"`
	Phone            *string         `json:"phone"`
	AvatarURL        *string         `json:"avatarUrl"`
	Verify           string          `json:"verify"`
	VerificationType string          `json:"verificationType"`
	Groups           []string        `json:"groups"`
	Friends          []string        `json:"friends"`
	BlockedUsers     []string        `json:"blockedUsers,omitempty"`
	DateOfBirth      *string         `json:"dateOfBirth"`
	Google           *OAuthLink      `json:"google,omitempty"`
	Facebook         map[string]any  `json:"facebook,omitempty"`
	Twitter          map[string]any  `json:"twitter,omitempty"`
	PrivacySettings  PrivacySettings `json:"privacySettings"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	LastLoginTime    *time.Time      `json:"lastLoginTime,omitempty"`
}

// LoginProvider derives the display name of the account's login provider.
func (u *User) LoginProvider() string {
	switch {
	case u.Google != nil && u.Google.GoogleID != "":
		return "Google"
	case u.Facebook != nil:
		return "Facebook"
	case u.Twitter != nil:
		return "Twitter"
	default:
		return "Email"
	}
}

// IsVerified reports whether the account passed verification.
func (u *User) IsVerified() bool {
	return u.Verify == VerifiedUser
}
