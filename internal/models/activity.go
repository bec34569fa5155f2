package models

import "time"

// Admin activity action kinds.
const (
	ActionLogin  = "login"
	ActionLogout = "logout"
	ActionDelete = "delete"
	ActionUpdate = "update"
)

// Activity is a read-only admin activity log entry. Details is an open
// string-keyed map; the server does not guarantee a closed schema for it.
type Activity struct {
	ID        string         `json:"_id"`
	Action    string         `json:"action"`
	AdminID   string         `json:"adminId"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ProjectUsage holds the aggregate usage counters of the dashboard landing page.
type ProjectUsage struct {
	UserCount         int `json:"userCount"`
	GroupCount        int `json:"groupCount"`
	BillCount         int `json:"billCount"`
	ShoppingListCount int `json:"shoppingListCount"`
	TransactionCount  int `json:"transactionCount"`
}
