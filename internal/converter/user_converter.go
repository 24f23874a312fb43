package converter

import (
	"encoding/json"
	"fmt"

	"medibook-portal/internal/domain/entity"
)

// UserRecord is the backend's user shape as returned by the auth endpoints.
type UserRecord struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UserFromJSON decodes a user record.
func UserFromJSON(raw json.RawMessage) (*UserRecord, error) {
	var user UserRecord
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// SessionFromUser builds a portal session from a user record and its token.
func SessionFromUser(user *UserRecord, jwt string) entity.Session {
	role := entity.RoleUser
	if user.IsAdmin {
		role = entity.RoleAdmin
	}
	return entity.Session{
		LoggedIn: true,
		Role:     role,
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Token:    jwt,
	}
}
