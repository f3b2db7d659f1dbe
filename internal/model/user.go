package model

import "time"

// Known roles. Built-in demo accounts use RoleAdministrator, RoleUser and
// RoleGuest; registration additionally offers RoleEditor.
const (
	RoleAdministrator = "Administrator"
	RoleUser          = "User"
	RoleEditor        = "Editor"
	RoleGuest         = "Guest"
)

// User represents a locally registered account.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session represents the active login, persisted between invocations.
type Session struct {
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Active reports whether a user is logged in.
func (s Session) Active() bool {
	return s.Username != ""
}
