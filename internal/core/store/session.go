package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
	"github.com/workerhousing/housing-client/internal/infrastructure/api"
	"github.com/workerhousing/housing-client/internal/payload"
)

// SessionState is the gate's position in its lifecycle.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateHydrating       SessionState = "hydrating"
	StateReady           SessionState = "ready"
)

// Session gates bulk hydration on authentication and owns the authenticated
// user. Hydration runs at most once per session: Start is idempotent until
// Logout clears the dataFetched flag.
type Session struct {
	tx       ports.Transport
	tokens   ports.TokenStore
	hydrator *Hydrator
	log      zerolog.Logger

	mu          sync.Mutex
	current     *domain.User
	state       SessionState
	dataFetched bool
}

func NewSession(tx ports.Transport, tokens ports.TokenStore, hydrator *Hydrator, log zerolog.Logger) *Session {
	return &Session{
		tx:       tx,
		tokens:   tokens,
		hydrator: hydrator,
		log:      log,
		state:    StateUnauthenticated,
	}
}

// State returns the gate's current position.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// DataFetched reports whether hydration has already run this session.
func (s *Session) DataFetched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataFetched
}

// Current returns the authenticated user, or nil.
func (s *Session) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Login authenticates against the backend, persists the returned token and
// records the authenticated user, then hydrates.
func (s *Session) Login(ctx context.Context, username, password string) (*domain.User, error) {
	body, err := s.tx.Post(ctx, api.PathLogin, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	token := payload.ExtractString(body, "token")
	if token == "" {
		return nil, fmt.Errorf("login: %w", &domain.ServerError{Message: "no token in server response"})
	}
	if err := s.tokens.Save(token); err != nil {
		return nil, fmt.Errorf("login: persist token: %w", err)
	}

	user := payload.DecodeField[domain.User](body, "user")
	if user == nil {
		return nil, fmt.Errorf("login: %w", &domain.ServerError{Message: "no user in server response"})
	}

	s.mu.Lock()
	s.current = user
	s.dataFetched = false
	s.mu.Unlock()

	s.log.Info().Str("username", user.Username).Str("type", user.Type).Msg("logged in")
	s.Start(ctx)
	return user, nil
}

// CurrentUser refreshes the authenticated user from /auth/me.
func (s *Session) CurrentUser(ctx context.Context) (*domain.User, error) {
	body, err := s.tx.Get(ctx, api.PathMe, nil)
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}
	user := payload.DecodeField[domain.User](body, "user")
	if user == nil {
		return nil, fmt.Errorf("load current user: %w", &domain.ServerError{Message: "no user in server response"})
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return user, nil
}

// Start runs hydration when a usable persisted token exists and no fetch has
// happened yet this session. Re-entering is suppressed by the dataFetched
// flag, so calling Start on every app foreground is safe.
func (s *Session) Start(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.setState(StateUnauthenticated)
		return
	}
	if expired(token) {
		s.log.Info().Msg("stored token expired, clearing")
		if err := s.tokens.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear expired token")
		}
		s.setState(StateUnauthenticated)
		return
	}

	s.mu.Lock()
	if s.dataFetched {
		s.mu.Unlock()
		return
	}
	s.state = StateHydrating
	s.mu.Unlock()

	s.hydrator.FetchAll(ctx)

	s.mu.Lock()
	s.dataFetched = true
	s.state = StateReady
	s.mu.Unlock()
}

// Logout tells the server best-effort, then always clears the local token,
// resets every store to its empty initial state and re-arms hydration so
// the next login starts from empty, not stale, state.
func (s *Session) Logout(ctx context.Context) {
	if _, err := s.tx.Post(ctx, api.PathLogout, nil); err != nil {
		s.log.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
	}
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear stored token")
	}

	s.hydrator.Reset()

	s.mu.Lock()
	s.current = nil
	s.dataFetched = false
	s.state = StateUnauthenticated
	s.mu.Unlock()

	s.log.Info().Msg("logged out")
}

func (s *Session) setState(st SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// expired reports whether token is a JWT whose exp claim is in the past.
// Signature verification is the server's job; the client only reads the
// expiry to skip hydration that would 401 on every resource. Opaque
// (non-JWT) tokens are assumed usable.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
