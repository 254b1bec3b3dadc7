package models

import "time"

// AuthSession is the persisted login state. Authenticated is true iff a
// token was obtained and logout has not since been called; a failed login
// keeps its message in Error but reads as not authenticated.
type AuthSession struct {
	Token         string    `json:"token,omitempty"`
	UserID        string    `json:"user_id,omitempty"`
	Authenticated bool      `json:"authenticated"`
	Error         string    `json:"error,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the remote auth endpoint's success body.
type LoginResponse struct {
	Token string `json:"token"`
}
