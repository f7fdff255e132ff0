package models

import "time"

// Session is an operator's authenticated back-office session. Token is the
// backend bearer token; ID is the gateway's opaque handle for it.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Subject   string    `json:"subject,omitempty"`
	Username  string    `json:"username,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Profile is the backend's view of the token holder.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// IsSuperAdmin reports whether the session may manage staff users.
func (s *Session) IsSuperAdmin() bool {
	return s != nil && s.Role == RoleSuperAdmin
}
