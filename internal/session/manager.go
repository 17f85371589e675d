package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
)

// Snapshot is the public view of a session's calculator state.
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	Display   string    `json:"display"`
	Error     string    `json:"error,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
}

func snapshotOf(id uuid.UUID, s calculator.State) Snapshot {
	snap := Snapshot{ID: id, Display: s.Display}
	if s.Err != nil {
		snap.Error = s.Err.Error()
		snap.ErrorKind = apperr.KindOf(s.Err)
	}
	return snap
}

// ResultHook is called with the evaluated expression after every "=" press.
// It runs while the session is locked and must not dispatch to the manager.
type ResultHook func(ctx context.Context, expression string)

type entry struct {
	mu    sync.Mutex
	state calculator.State
}

// Manager keeps one calculator per session. Events for the same session are
// applied one at a time.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*entry
	reducer   *calculator.Reducer
	publisher Publisher
	onResult  ResultHook
}

type Option func(*Manager)

func WithPublisher(p Publisher) Option {
	return func(m *Manager) {
		m.publisher = p
	}
}

func WithResultHook(h ResultHook) Option {
	return func(m *Manager) {
		m.onResult = h
	}
}

func NewManager(reducer *calculator.Reducer, opts ...Option) *Manager {
	m := &Manager{
		sessions:  make(map[uuid.UUID]*entry),
		reducer:   reducer,
		publisher: NopPublisher{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Create() Snapshot {
	id := uuid.New()

	m.mu.Lock()
	m.sessions[id] = &entry{}
	m.mu.Unlock()

	m.publisher.Open(id)
	slog.Debug("Session created", "id", id)

	return snapshotOf(id, calculator.State{})
}

func (m *Manager) Get(id uuid.UUID) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshotOf(id, e.state), nil
}

// Dispatch applies event to the session and publishes the new state. The
// result hook and the publisher see the events of one session in the order
// they were applied.
func (m *Manager) Dispatch(ctx context.Context, id uuid.UUID, event calculator.Event) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.state
	e.state = m.reducer.Reduce(prev, event)
	snap := snapshotOf(id, e.state)

	if event.Kind == calculator.Result && !prev.Failed() && m.onResult != nil {
		m.onResult(ctx, strings.TrimSpace(prev.Display))
	}

	m.publisher.Publish(id, snap)
	return snap, nil
}

func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return apperr.NewNotFound("session", id.String())
	}
	m.publisher.Close(id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) lookup(id uuid.UUID) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, apperr.NewNotFound("session", id.String())
	}
	return e, nil
}
