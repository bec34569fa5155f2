package models

import "time"

// Group member roles. A group has at most one owner at any time; the server
// enforces this, the console only displays it.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Group status values accepted by the status-change endpoint.
const (
	GroupActive   = "active"
	GroupInactive = "inactive"
	GroupArchived = "archived"
)

// GroupMember is one entry of a group's member list.
type GroupMember struct {
	UserID    string     `json:"userId"`
	Role      string     `json:"role"`
	JoinedAt  time.Time  `json:"joinedAt"`
	Nickname  *string    `json:"nickname"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// GroupSettings mirrors a group's configuration.
type GroupSettings struct {
	AllowMembersInvite  bool   `json:"allowMembersInvite"`
	AllowMembersAddList bool   `json:"allowMembersAddList"`
	DefaultSplitMethod  string `json:"defaultSplitMethod"`
	Currency            string `json:"currency"`
}

// Group represents a bill-splitting group as seen by the admin API.
type Group struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	AvatarURL   *string       `json:"avatarUrl"`
	Members     []GroupMember `json:"members"`
	IsArchived  bool          `json:"isArchived"`
	Settings    GroupSettings `json:"settings"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Owner returns the member holding the owner role, or nil when absent.
func (g *Group) Owner() *GroupMember {
	for i := range g.Members {
		if g.Members[i].Role == RoleOwner {
			return &g.Members[i]
		}
	}
	return nil
}
