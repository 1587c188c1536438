// Package conversation provides the in-memory session store: per-session
// conversation history and flow state with per-session mutual exclusion.
// Sessions live for the process lifetime; there is no persistence.
package conversation

import (
	"sync"

	"github.com/laichithien/chatbot-customer-service/internal/chat"
)

// Store owns all sessions, keyed by session id. Distinct sessions may be
// read and written concurrently; turns on the same session are serialized
// by the session lock held between Acquire and Release.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu      sync.Mutex
	history []chat.Message
	flow    chat.FlowState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

// Acquire locks the session with the given id, creating it if absent, and
// returns a handle for reading and committing its state. The caller must
// call Release exactly once, after which the handle must not be used.
func (s *Store) Acquire(id string) *Session {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	return &Session{sess: sess}
}

// Len returns the current history length for a session, or 0 if the
// session does not exist. It does not wait for an in-flight turn.
func (s *Store) Len(id string) int {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return len(sess.history)
}

// Session is an exclusive handle on one session's state. History and Flow
// return snapshots; nothing is written back until Commit. A handle whose
// turn fails can simply Release without committing, leaving the stored
// state untouched.
type Session struct {
	sess     *session
	released bool
}

// History returns a copy of the session's conversation history.
func (h *Session) History() []chat.Message {
	out := make([]chat.Message, len(h.sess.history))
	for i, m := range h.sess.history {
		out[i] = m.Clone()
	}
	return out
}

// Flow returns the session's current flow state.
func (h *Session) Flow() chat.FlowState {
	return h.sess.flow
}

// Commit atomically replaces the session's history and flow state.
// History is append-only within a session: a commit that would shrink the
// history is rejected.
func (h *Session) Commit(history []chat.Message, flow chat.FlowState) error {
	if len(history) < len(h.sess.history) {
		return ErrHistoryTruncated
	}
	h.sess.history = history
	h.sess.flow = flow
	return nil
}

// Release unlocks the session. Safe to call once per handle.
func (h *Session) Release() {
	if h.released {
		return
	}
	h.released = true
	h.sess.mu.Unlock()
}
