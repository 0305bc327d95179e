package chat

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/llm"
	"github.com/kisanmitra/kisanmitra/internal/speech"
	"go.uber.org/zap"
)

// Session binds one conversation engine, its input composer and its voice
// capture to one view lifetime. Nothing here is persisted: deleting the
// session is the teardown signal and discards all of it.
type Session struct {
	ID       string
	Engine   *Engine
	Composer *Composer
	Capture  *speech.Capture
}

// Manager is the in-memory registry of live chat sessions
type Manager struct {
	backend    llm.Client
	recognizer func() speech.Recognizer
	logger     *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager. The recognizer factory supplies a
// fresh speech capability per session; pass one returning
// speech.Unsupported{} when the environment has no capture.
func NewManager(backend llm.Client, recognizer func() speech.Recognizer, logger *zap.Logger) *Manager {
	return &Manager{
		backend:    backend,
		recognizer: recognizer,
		logger:     logger,
		sessions:   make(map[string]*Session),
	}
}

// Create starts a new session with a fresh, empty conversation
func (m *Manager) Create() *Session {
	composer := NewComposer()
	sess := &Session{
		ID:       uuid.New().String(),
		Engine:   NewEngine(m.backend, m.logger),
		Composer: composer,
		Capture:  speech.NewCapture(m.recognizer(), composer.AppendTranscript, m.logger),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.logger.Info("chat session created", zap.String("session_id", sess.ID))
	return sess
}

// Get returns a live session by ID
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sess, nil
}

// Delete tears a session down: capture stops, the engine closes, and any
// stream still in flight finishes into the void
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return domain.ErrNotFound
	}

	sess.Capture.Stop()
	sess.Engine.Close()
	m.logger.Info("chat session deleted", zap.String("session_id", id))
	return nil
}
