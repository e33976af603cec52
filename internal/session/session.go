package session

import (
	"crypto/subtle"
	"errors"
	"time"
)

// Role is what the current user is allowed to do.
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the single logged-in identity of the club manager.
type Session struct {
	Role       Role      `json:"role"`
	PlayerID   string    `json:"playerId,omitempty"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// IsAdmin reports whether s carries administrator rights.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// Admin checks the shared password and returns an administrator session.
func Admin(password, want string, now time.Time) (*Session, error) {
	if want == "" || subtle.ConstantTimeCompare([]byte(password), []byte(want)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return &Session{Role: RoleAdmin, LoggedInAt: now}, nil
}

// Player returns a session for a player who picked their own record.
func Player(playerID string, now time.Time) *Session {
	return &Session{Role: RolePlayer, PlayerID: playerID, LoggedInAt: now}
}
