package session

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"

	"github.com/niksmo/elegance-storefront/internal/core/port"
	"github.com/niksmo/elegance-storefront/internal/core/service"
)

var _ port.SessionStates = (*Store)(nil)

// Store keeps one view-state holder per browser session, in memory
// only. State dies with the process, there is no persistence.
type Store struct {
	mu        sync.Mutex
	states    map[string]*service.ViewState
	catalog   port.CatalogProvider
	publisher port.ViewPublisher
}

func NewStore(
	catalog port.CatalogProvider, publisher port.ViewPublisher,
) *Store {
	return &Store{
		states:    make(map[string]*service.ViewState),
		catalog:   catalog,
		publisher: publisher,
	}
}

// State returns the session's view state, creating a fresh one with
// default filters and an empty cart on first touch.
func (s *Store) State(sessionID string) port.ViewState {
	const op = "Store.State"

	s.mu.Lock()
	defer s.mu.Unlock()

	vs, ok := s.states[sessionID]
	if !ok {
		vs = service.NewViewState(sessionID, s.catalog, s.publisher)
		s.states[sessionID] = vs
		slog.With("op", op).Debug("session created", "sessionID", sessionID)
	}
	return vs
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// NewID returns a random 128-bit hex session identifier.
func NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
