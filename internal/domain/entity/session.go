package entity

// Role determines which portal surfaces a session may use.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session holds the authenticated identity for the current portal user.
// Durable storage of the session is a caller responsibility.
type Session struct {
	LoggedIn bool   `json:"loggedIn"`
	Role     Role   `json:"role"`
	ID       int    `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Token    string `json:"token,omitempty"`
}

// IsAdmin checks if the session carries the admin role
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
