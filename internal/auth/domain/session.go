package domain

import (
	"context"
	"errors"
	"fmt"
)

// State is the progressive-disclosure position of one visitor session.
// Later states include everything revealed by earlier ones.
type State int

const (
	StateCollecting State = iota
	StateReviewsShown
	StateAdminLoginPrompted
	StateAdminAuthenticated
)

var stateNames = map[State]string{
	StateCollecting:         "collecting",
	StateReviewsShown:       "reviews_shown",
	StateAdminLoginPrompted: "admin_login_prompted",
	StateAdminAuthenticated: "admin_authenticated",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ParseState is the inverse of State.String.
func ParseState(name string) (State, error) {
	for state, n := range stateNames {
		if n == name {
			return state, nil
		}
	}
	return StateCollecting, fmt.Errorf("unknown session state %q", name)
}

// Event is a user action that may move a session to another state.
type Event string

const (
	EventShowReviews    Event = "show_reviews"
	EventOpenAdminLogin Event = "open_admin_login"
	EventLoginSucceeded Event = "login_succeeded"
	EventLoginFailed    Event = "login_failed"
	EventLogout         Event = "logout"
)

var ErrInvalidTransition = errors.New("invalid session transition")

// Next returns the state reached by applying e to s.
func (s State) Next(e Event) (State, error) {
	switch e {
	case EventShowReviews:
		if s == StateCollecting {
			return StateReviewsShown, nil
		}
		return s, nil
	case EventOpenAdminLogin:
		switch s {
		case StateReviewsShown:
			return StateAdminLoginPrompted, nil
		case StateAdminLoginPrompted, StateAdminAuthenticated:
			return s, nil
		}
	case EventLoginSucceeded:
		if s >= StateAdminLoginPrompted {
			return StateAdminAuthenticated, nil
		}
	case EventLoginFailed:
		// A failed retry never revokes an existing admin session.
		if s >= StateAdminLoginPrompted {
			return s, nil
		}
	case EventLogout:
		if s == StateAdminAuthenticated {
			return StateReviewsShown, nil
		}
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}

// Session is the per-visitor presentation state.
type Session struct {
	ID    string
	State State
}

// Apply moves the session forward; on error the state is left untouched.
func (s *Session) Apply(e Event) error {
	next, err := s.State.Next(e)
	if err != nil {
		return err
	}
	s.State = next
	return nil
}

func (s *Session) ReviewsVisible() bool {
	return s.State >= StateReviewsShown
}

func (s *Session) AdminLoginVisible() bool {
	return s.State >= StateAdminLoginPrompted
}

func (s *Session) IsAdmin() bool {
	return s.State == StateAdminAuthenticated
}

type sessionKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored by NewContext, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
