package api

import (
	"weather-dashboard/internal/domain/model/external"
)

// SessionEventType identifies a change in the authentication session state.
type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "SIGNED_IN"
	SessionSignedOut SessionEventType = "SIGNED_OUT"
)

// SessionEvent is published on the session-change stream whenever a sign-in or
// sign-out completes against the provider.
type SessionEvent struct {
	Type    SessionEventType
	Session *external.Session
}

// AuthGateway defines the interface for the external authentication provider.
// Identity and session lifecycle live entirely in the provider; this gateway
// only consumes them and surfaces the stable user identifier used by the
// saved-cities operations.
type AuthGateway interface {
	// SignUp registers a new user with email and password
	SignUp(email string, password string) (*external.Session, error)

	// SignInWithPassword exchanges email and password for a session
	SignInWithPassword(email string, password string) (*external.Session, error)

	// SignOut revokes the session bound to the access token
	SignOut(accessToken string) error

	// GetUser retrieves the identity bound to the access token
	GetUser(accessToken string) (*external.AuthUser, error)

	// Subscribe returns a channel receiving session-change notifications
	Subscribe() <-chan SessionEvent
}
