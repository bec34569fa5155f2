package models

// AdminInfo is the identity record of the signed-in administrator, persisted
// alongside the token pair by the auth store.
type AdminInfo struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
