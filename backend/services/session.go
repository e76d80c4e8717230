// ABOUTME: Editor session service for server-side manual path editing
// ABOUTME: Stores path editors with their config and results in the TTL cache

package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/markalston/led-wall-calculator/backend/cache"
	"github.com/markalston/led-wall-calculator/backend/models"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session ids
	ErrSessionNotFound = errors.New("session not found")
	// ErrPathNotFound is returned when selecting a path that does not exist
	ErrPathNotFound = errors.New("path not found")
	// ErrInvalidView is returned for view names other than data and power
	ErrInvalidView = errors.New("view must be \"data\" or \"power\"")
	// ErrInvalidConfig wraps screen config validation failures
	ErrInvalidConfig = errors.New("invalid config")
)

// EditorSession is one user's manual editing state. All access goes through mu.
type EditorSession struct {
	ID string

	mu          sync.Mutex
	config      models.ScreenConfig
	results     models.CalculationResults
	breakerAmps int
	editor      *PathEditor
	createdAt   time.Time
	updatedAt   time.Time
}

// SessionService manages editor sessions
type SessionService struct {
	cache   *cache.Cache
	deriver *Deriver
	ttl     time.Duration
}

// NewSessionService creates a session service; sessions idle longer than ttl expire.
// The cache should be dedicated to sessions.
func NewSessionService(c *cache.Cache, calc *DerivationCalculator, ttl time.Duration) *SessionService {
	return &SessionService{cache: c, deriver: NewDeriver(calc), ttl: ttl}
}

// Create validates cfg, derives its results, and stores a new session with empty paths
func (s *SessionService) Create(cfg models.ScreenConfig, breakerAmps int) (models.SessionState, error) {
	if err := cfg.Validate(); err != nil {
		return models.SessionState{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	now := time.Now()
	session := &EditorSession{
		ID:        uuid.NewString(),
		editor:    NewPathEditor(cfg.CabinetsVertical, cfg.CabinetsHorizontal),
		createdAt: now,
	}
	s.apply(session, cfg, breakerAmps, now)
	s.cache.SetWithTTL(sessionKey(session.ID), session, s.ttl)

	return session.snapshot(), nil
}

// Get returns a snapshot of a session
func (s *SessionService) Get(id string) (models.SessionState, error) {
	return s.with(id, func(*EditorSession) error { return nil })
}

// Delete removes a session
func (s *SessionService) Delete(id string) {
	s.cache.Clear(sessionKey(id))
}

// UpdateConfig replaces a session's config. A grid size change discards all paths.
func (s *SessionService) UpdateConfig(id string, cfg models.ScreenConfig, breakerAmps int) (models.SessionState, error) {
	if err := cfg.Validate(); err != nil {
		return models.SessionState{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return s.with(id, func(session *EditorSession) error {
		s.apply(session, cfg, breakerAmps, time.Now())
		return nil
	})
}

// AddPath starts a new empty path in view and makes it active
func (s *SessionService) AddPath(id string, view models.View) (models.SessionState, error) {
	if _, ok := models.ParseView(string(view)); !ok {
		return models.SessionState{}, ErrInvalidView
	}
	return s.with(id, func(session *EditorSession) error {
		session.editor.AddPath(view)
		return nil
	})
}

// SelectPath activates an existing path
func (s *SessionService) SelectPath(id string, view models.View, pathID int) (models.SessionState, error) {
	if _, ok := models.ParseView(string(view)); !ok {
		return models.SessionState{}, ErrInvalidView
	}
	return s.with(id, func(session *EditorSession) error {
		if !session.editor.SelectPath(view, pathID) {
			return fmt.Errorf("%w: %s path %d", ErrPathNotFound, view, pathID)
		}
		return nil
	})
}

// ClearPaths drops every path of view
func (s *SessionService) ClearPaths(id string, view models.View) (models.SessionState, error) {
	if _, ok := models.ParseView(string(view)); !ok {
		return models.SessionState{}, ErrInvalidView
	}
	return s.with(id, func(session *EditorSession) error {
		session.editor.Clear(view)
		return nil
	})
}

// Toggle adds or removes a cabinet on the active path
func (s *SessionService) Toggle(id string, row, col int) (models.SessionState, models.ToggleOutcome, error) {
	outcome := models.ToggleRejected
	state, err := s.with(id, func(session *EditorSession) error {
		outcome = session.editor.Toggle(row, col)
		return nil
	})
	return state, outcome, err
}

// Count returns the number of live sessions
func (s *SessionService) Count() int {
	return s.cache.Len()
}

// with loads a session, runs fn under its lock, refreshes its TTL, and snapshots it
func (s *SessionService) with(id string, fn func(*EditorSession) error) (models.SessionState, error) {
	val, ok := s.cache.Get(sessionKey(id))
	if !ok {
		return models.SessionState{}, ErrSessionNotFound
	}
	session, ok := val.(*EditorSession)
	if !ok {
		return models.SessionState{}, fmt.Errorf("invalid session data for %s", id)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := fn(session); err != nil {
		return models.SessionState{}, err
	}
	session.updatedAt = time.Now()
	s.cache.Touch(sessionKey(id), s.ttl)
	return session.snapshotLocked(), nil
}

// apply recomputes results and capacities for cfg. Caller holds session.mu or owns session.
func (s *SessionService) apply(session *EditorSession, cfg models.ScreenConfig, breakerAmps int, now time.Time) {
	results := s.deriver.Derive(cfg)
	session.config = cfg
	session.results = results
	session.breakerAmps = breakerAmps
	session.updatedAt = now

	dataCap, _ := ViewCapacity(results, models.ViewData, 0)
	powerCap, _ := ViewCapacity(results, models.ViewPower, breakerAmps)
	session.editor.SetLayout(cfg.CabinetsVertical, cfg.CabinetsHorizontal)
	session.editor.SetCapacity(models.ViewData, dataCap)
	session.editor.SetCapacity(models.ViewPower, powerCap)
}

func (s *EditorSession) snapshot() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *EditorSession) snapshotLocked() models.SessionState {
	_, amps := ViewCapacity(s.results, models.ViewPower, s.breakerAmps)
	state := models.SessionState{
		ID:          s.ID,
		Config:      s.config,
		Results:     s.results,
		BreakerAmps: amps,
		Rows:        s.editor.Rows(),
		Cols:        s.editor.Cols(),
		View:        s.editor.View(),
		Capacity: models.ViewCapacities{
			Data:  s.editor.Capacity(models.ViewData),
			Power: s.editor.Capacity(models.ViewPower),
		},
		DataPaths:  s.editor.Polylines(models.ViewData),
		PowerPaths: s.editor.Polylines(models.ViewPower),
		CreatedAt:  s.createdAt,
		UpdatedAt:  s.updatedAt,
	}
	if view, id, ok := s.editor.Active(); ok {
		state.Active = &models.ActivePath{View: view, PathID: id}
	}
	return state
}

// sessionKey returns the cache key for a session ID
func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
