package models

// User is a registered editor account. Provider is "email" or "google".
type User struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Provider  string `json:"provider"`
	IsActive  bool   `json:"is_active"`
}

// AuthSession records a minted bearer token. Nothing in this system verifies
// these tokens; the record exists for audit and future revocation.
type AuthSession struct {
	UserID    string `json:"user_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Device    string `json:"device,omitempty"`
}
