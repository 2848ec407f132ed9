package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu        sync.Mutex
	viewports map[string]ViewportState
	saves     int
	closed    bool
	getErr    error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{viewports: make(map[string]ViewportState)}
}

func (m *Mock) SaveViewport(state ViewportState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewports[state.Path] = state
	m.saves++
}

func (m *Mock) GetViewport(path string) (*ViewportState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	state, ok := m.viewports[path]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &state, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SetGetError makes GetViewport fail with err.
func (m *Mock) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// Saves returns the number of SaveViewport calls.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
