package entities

// AuthUser is the identity extracted from a verified bearer token.
type AuthUser struct {
	UserID string   `json:"user_id"`
	Email  *string  `json:"email"`
	Roles  []string `json:"roles"`
}
