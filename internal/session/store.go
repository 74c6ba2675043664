// Package session owns the dashboard operator session: who is signed in,
// whether the startup restore has finished, and the durable record that
// carries the session across process restarts.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
	"github.com/spec-kit/ppe-dashboard/internal/events"
	"github.com/spec-kit/ppe-dashboard/internal/session/storage"
	apperrors "github.com/spec-kit/ppe-dashboard/pkg/util"
)

// State is an immutable read-view of the session. IsAuthenticated is derived
// from User here so consumers can never observe an inconsistent pair.
type State struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
	Loading         bool         `json:"loading"`
}

// Store is the single source of truth for the signed-in operator. One Store
// exists per process; every consumer holds a reference, never a copy.
type Store struct {
	mu       sync.RWMutex
	user     *domain.User
	loading  bool
	recorder storage.Recorder
	key      string
	logger   *zap.Logger
	events   events.Dispatcher
}

// NewStore builds a store in the loading state. Callers must run Restore
// once at startup before gate decisions are meaningful.
func NewStore(recorder storage.Recorder, key string, logger *zap.Logger, dispatcher events.Dispatcher) *Store {
	return &Store{
		loading:  true,
		recorder: recorder,
		key:      key,
		logger:   logger,
		events:   dispatcher,
	}
}

// Restore repopulates the session from the persisted record, if any. A
// missing, unreadable, or malformed record is treated as signed-out rather
// than surfaced: startup must never be blocked by a corrupt local record.
// Always concludes by clearing the loading flag.
func (s *Store) Restore(ctx context.Context) {
	user := s.readRecord(ctx)

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()

	if user != nil {
		s.logger.Info("session restored", zap.String("username", user.Username))
		s.publish(ctx, events.EventSessionRestored, events.SessionRestoredPayload{Username: user.Username})
	}
}

func (s *Store) readRecord(ctx context.Context) *domain.User {
	data, ok, err := s.recorder.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("session record unreadable, treating as signed out", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Warn("session record corrupt, discarding", zap.Error(err))
		return nil
	}
	if _, err := domain.ParseRole(string(user.Role)); err != nil || user.Username == "" {
		s.logger.Warn("session record invalid, discarding", zap.String("role", string(user.Role)))
		return nil
	}
	return &user
}

// Login establishes a session for any non-empty username/password pair.
// There is no backing identity store; the profile is derived from the
// username alone. Only the success path writes to persistent storage.
func (s *Store) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewInvalidCredentials()
	}

	user := domain.ProfileForUsername(username)

	stored := user
	s.mu.Lock()
	s.user = &stored
	s.mu.Unlock()

	if data, err := json.Marshal(user); err != nil {
		s.logger.Warn("session record not persisted", zap.Error(err))
	} else if err := s.recorder.Set(ctx, s.key, data); err != nil {
		// The session stays valid in memory; it just will not survive a restart.
		s.logger.Warn("session record not persisted", zap.Error(err))
	}

	s.logger.Info("operator logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)
	s.publish(ctx, events.EventUserLoggedIn, events.UserLoggedInPayload{Username: user.Username, Role: user.Role})

	return &user, nil
}

// Logout clears the session and erases the persisted record. Idempotent;
// logging out while signed out is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	previous := s.user
	s.user = nil
	s.mu.Unlock()

	if err := s.recorder.Remove(ctx, s.key); err != nil {
		s.logger.Warn("session record not removed", zap.Error(err))
	}

	if previous != nil {
		s.logger.Info("operator logged out", zap.String("username", previous.Username))
		s.publish(ctx, events.EventUserLoggedOut, events.UserLoggedOutPayload{Username: previous.Username})
	}
}

// HasRole reports whether a user is signed in with the given role. Never
// errors; false for every role when signed out.
func (s *Store) HasRole(role domain.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == role
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var user *domain.User
	if s.user != nil {
		copied := *s.user
		user = &copied
	}
	return State{
		User:            user,
		IsAuthenticated: user != nil,
		Loading:         s.loading,
	}
}

func (s *Store) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
