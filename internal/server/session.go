// Package server exposes the planning pipeline over HTTP: session-based
// stepwise endpoints, a one-shot pipeline endpoint, batch execution, and a
// websocket event stream per session.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"reelplan/internal/core"
	"reelplan/internal/vrd"
)

const eventBuffer = 32

// Event is one stage outcome pushed to session subscribers.
type Event struct {
	Stage  string           `json:"stage"`
	At     time.Time        `json:"at"`
	Result core.StageResult `json:"result"`
}

// Session binds one orchestrator run to an ID and an event feed. Stage
// methods on the orchestrator are serialized through mu.
type Session struct {
	ID        string
	Mode      vrd.Mode
	Project   string
	CreatedAt time.Time

	mu   sync.Mutex
	orch *core.Orchestrator
	doc  *vrd.Document

	subMu sync.Mutex
	subs  map[chan Event]struct{}
}

func newSession(mode vrd.Mode, project string, orch *core.Orchestrator) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		Project:   project,
		CreatedAt: time.Now().UTC(),
		orch:      orch,
		subs:      make(map[chan Event]struct{}),
	}
}

// Do runs one stage transition under the session lock and publishes the
// outcome to subscribers.
func (s *Session) Do(stage string, fn func(*core.Orchestrator) core.StageResult) core.StageResult {
	s.mu.Lock()
	result := fn(s.orch)
	s.mu.Unlock()

	s.publish(Event{Stage: stage, At: time.Now().UTC(), Result: result})
	return result
}

// Status reads the orchestrator's progress.
func (s *Session) Status() core.PipelineStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orch.Status()
}

// SetDocument remembers the requirements document for later persistence.
func (s *Session) SetDocument(doc vrd.Document) {
	s.mu.Lock()
	s.doc = &doc
	s.mu.Unlock()
}

// Document returns the stored requirements document, or nil.
func (s *Session) Document() *vrd.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Artifacts snapshots the generated outputs for persistence.
func (s *Session) Artifacts() (status core.PipelineStatus, script, shots, plan any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orch.Status(), s.orch.Script(), s.orch.ShotList(), s.orch.Plan()
}

// Subscribe attaches an event channel. The returned cancel detaches it.
// Slow subscribers drop events rather than block stage execution.
func (s *Session) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, eventBuffer)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		delete(s.subs, ch)
		s.subMu.Unlock()
	}
	return ch, cancel
}

func (s *Session) publish(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SessionStore holds live sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func (st *SessionStore) Add(s *Session) {
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return s, nil
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
