// Package session owns the client's authentication state: the bearer
// token and the profile record of the signed-in user. Every operation
// maps to exactly one call on the API gateway; there are no retries here.
//
// A Session is not safe for concurrent use. The CLI drives it from a
// single goroutine, which is the intended model.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	"github.com/dmitrijs2005/accountkeeper/internal/client/storage"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
)

// stateKey is the fixed storage key the session record lives under.
const stateKey = "session"

// persistedState is the durable shape of the session: the token and the
// user, and nothing else. Written through on every mutation, restored
// once at construction.
type persistedState struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Session holds the current token and user.
//
// Invariant: an empty token implies a zero user. Every transition that
// clears the token clears the user in the same step.
type Session struct {
	api   api.Client
	store storage.Repository
	log   logging.Logger

	token    string
	user     models.User
	userSubs []func(models.User)
}

// New constructs the one Session instance for the process and restores
// the persisted record, if any. A missing or unreadable record means
// starting unauthenticated; that is logged, never fatal.
func New(ctx context.Context, client api.Client, store storage.Repository, log logging.Logger) *Session {
	s := &Session{api: client, store: store, log: log}
	s.restore(ctx)
	return s
}

// Token returns the current bearer token; empty means unauthenticated.
func (s *Session) Token() string { return s.token }

// User returns the currently held profile record.
func (s *Session) User() models.User { return s.user }

// IsAuthenticated reports whether a token is held.
func (s *Session) IsAuthenticated() bool { return s.token != "" }

// OnUserChange registers fn to be called whenever the held user record
// changes (after a fetch, edit, logout or delete). Subscriptions are
// explicit and permanent; the profile form uses this to re-seed itself.
func (s *Session) OnUserChange(fn func(models.User)) {
	s.userSubs = append(s.userSubs, fn)
}

// Authenticate exchanges credentials for a token. On success the token is
// stored and persisted; the user record is left untouched, callers fetch
// the profile separately. Failures propagate unchanged.
func (s *Session) Authenticate(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.token = token
	if err := s.persist(ctx); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// Register creates a new account. It does not authenticate: the caller
// logs in afterwards if it wants a session.
func (s *Session) Register(ctx context.Context, name, email, password, confirmPassword string) error {
	return s.api.Register(ctx, api.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
}

// FetchProfile replaces the held user wholesale with the server's copy.
// Without a token it fails locally with api.ErrNotAuthenticated and no
// request is made.
func (s *Session) FetchProfile(ctx context.Context) error {
	if !s.IsAuthenticated() {
		return api.ErrNotAuthenticated
	}

	user, err := s.api.FetchUser(ctx, s.token)
	if err != nil {
		return err
	}
	return s.setUser(ctx, user)
}

// EditProfile patches the remote profile and, on success, mirrors the new
// name and email into the held user. Empty password fields in req are
// omitted from the outgoing request by the gateway.
func (s *Session) EditProfile(ctx context.Context, req api.UpdateUserRequest) error {
	if !s.IsAuthenticated() {
		return api.ErrNotAuthenticated
	}

	if err := s.api.UpdateUser(ctx, s.token, req); err != nil {
		return err
	}

	updated := s.user
	updated.Name = req.Name
	updated.Email = req.Email
	return s.setUser(ctx, updated)
}

// DeleteAccount removes the remote account and logs out locally. On any
// failure the session is left exactly as it was; the delete never
// partially applies.
func (s *Session) DeleteAccount(ctx context.Context) error {
	if !s.IsAuthenticated() {
		return api.ErrNotAuthenticated
	}

	if err := s.api.DeleteUser(ctx, s.token); err != nil {
		return err
	}

	s.Logout(ctx)
	return nil
}

// ListUsers returns every account known to the service.
func (s *Session) ListUsers(ctx context.Context) ([]models.User, error) {
	if !s.IsAuthenticated() {
		return nil, api.ErrNotAuthenticated
	}
	return s.api.ListUsers(ctx, s.token)
}

// Logout clears the token and the user in the same step and drops the
// persisted record. It is a purely local transition and cannot fail:
// persistence trouble is logged and swallowed.
func (s *Session) Logout(ctx context.Context) {
	s.token = ""
	s.user = models.User{}

	if err := s.store.Delete(ctx, stateKey); err != nil {
		s.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
	s.notifyUserChange()
}

func (s *Session) setUser(ctx context.Context, user models.User) error {
	s.user = user
	err := s.persist(ctx)
	s.notifyUserChange()
	if err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (s *Session) notifyUserChange() {
	for _, fn := range s.userSubs {
		fn(s.user)
	}
}

func (s *Session) persist(ctx context.Context) error {
	data, err := json.Marshal(persistedState{Token: s.token, User: s.user})
	if err != nil {
		return err
	}
	return s.store.Set(ctx, stateKey, data)
}

func (s *Session) restore(ctx context.Context) {
	data, err := s.store.Get(ctx, stateKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted session, starting clean", "error", err)
		return
	}
	if data == nil {
		return
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn(ctx, "corrupt persisted session, starting clean", "error", err)
		return
	}

	// A record without a token must not smuggle a user in.
	if state.Token == "" {
		return
	}

	s.token = state.Token
	s.user = state.User
	s.log.Debug(ctx, "session restored", "email", s.user.Email)
}
