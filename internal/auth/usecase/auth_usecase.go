package usecase

import (
	"errors"
	"fmt"
	"sync"
	"time"

	authdomain "tweetmood/internal/auth/domain"
	"tweetmood/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrAccessDenied   = errors.New("invalid credentials")
	ErrInvalidSession = errors.New("invalid session token")
)

// AuthUsecase owns visitor sessions and the admin gate.
type AuthUsecase interface {
	// NewSession starts a session in the Collecting state
	NewSession() *authdomain.Session

	// StartAdminLogin starts a session with the admin login form already revealed
	StartAdminLogin() *authdomain.Session

	// IssueToken signs the session into a token for a cookie or Bearer header
	IssueToken(session *authdomain.Session) (string, error)

	// ParseToken verifies a token and restores its session
	ParseToken(token string) (*authdomain.Session, error)

	// Login checks the credentials and advances the session. A mismatch
	// returns ErrAccessDenied and leaves the session where it was.
	Login(session *authdomain.Session, email, password string) error

	// Logout drops admin rights but keeps the reviews revealed. Tokens issued
	// for the session before logout stop parsing; the session gets a new ID.
	Logout(session *authdomain.Session) error

	SessionTTL() time.Duration
}

type sessionClaims struct {
	State string `json:"state"`
	jwt.RegisteredClaims
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	authenticator Authenticator
	config        *config.Config
	now           func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // session ID -> latest expiry of its tokens
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(authenticator Authenticator, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		authenticator: authenticator,
		config:        cfg,
		now:           time.Now,
		revoked:       make(map[string]time.Time),
	}
}

func (u *authUsecase) NewSession() *authdomain.Session {
	return &authdomain.Session{
		ID:    uuid.New().String(),
		State: authdomain.StateCollecting,
	}
}

func (u *authUsecase) StartAdminLogin() *authdomain.Session {
	session := u.NewSession()
	session.State = authdomain.StateAdminLoginPrompted
	return session
}

func (u *authUsecase) IssueToken(session *authdomain.Session) (string, error) {
	now := u.now()
	claims := sessionClaims{
		State: session.State.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.config.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.SessionSecret))
}

func (u *authUsecase) ParseToken(tokenString string) (*authdomain.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.SessionSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing session id", ErrInvalidSession)
	}
	if u.isRevoked(claims.ID) {
		return nil, fmt.Errorf("%w: session ended", ErrInvalidSession)
	}
	state, err := authdomain.ParseState(claims.State)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	return &authdomain.Session{
		ID:    claims.ID,
		State: state,
	}, nil
}

func (u *authUsecase) Login(session *authdomain.Session, email, password string) error {
	granted := u.authenticator.Authenticate(email, password)

	event := authdomain.EventLoginFailed
	if granted {
		event = authdomain.EventLoginSucceeded
	}
	if err := session.Apply(event); err != nil {
		return err
	}

	if !granted {
		return ErrAccessDenied
	}
	return nil
}

func (u *authUsecase) Logout(session *authdomain.Session) error {
	if err := session.Apply(authdomain.EventLogout); err != nil {
		return err
	}

	u.revoke(session.ID)
	session.ID = uuid.New().String()
	return nil
}

func (u *authUsecase) revoke(id string) {
	now := u.now()

	u.mu.Lock()
	defer u.mu.Unlock()
	for sid, until := range u.revoked {
		if !now.Before(until) {
			delete(u.revoked, sid)
		}
	}
	u.revoked[id] = now.Add(u.config.SessionTTL)
}

func (u *authUsecase) isRevoked(id string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	until, ok := u.revoked[id]
	return ok && u.now().Before(until)
}

func (u *authUsecase) SessionTTL() time.Duration {
	return u.config.SessionTTL
}
