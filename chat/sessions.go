package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/axelse03-gif/reybanpac/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or closed sessions.
var ErrSessionNotFound = errors.New("chat session not found")

// Sessions owns the conversations of every mounted chatbot screen.
type Sessions struct {
	completer Completer
	logger    *zap.Logger

	mu    sync.RWMutex
	convs map[string]*Conversation
}

func NewSessions(completer Completer, logger *zap.Logger) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sessions{
		completer: completer,
		logger:    logger,
		convs:     make(map[string]*Conversation),
	}
}

// Create opens a new conversation and returns its id.
func (s *Sessions) Create() (string, *Conversation) {
	id := uuid.NewString()
	conv := NewConversation(s.completer, s.logger.With(zap.String("session_id", id)))

	s.mu.Lock()
	s.convs[id] = conv
	s.mu.Unlock()

	metrics.ChatSessions.Inc()
	return id, conv
}

func (s *Sessions) Get(id string) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.convs[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return conv, nil
}

// Close discards a conversation. A reply still in flight completes against
// the detached conversation and is then dropped with it.
func (s *Sessions) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.convs[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.convs, id)
	metrics.ChatSessions.Dec()
	return nil
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.convs)
}

// Sweep closes conversations idle for longer than idle, skipping those
// waiting on a reply. It returns how many were closed.
func (s *Sessions) Sweep(now time.Time, idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	closed := 0
	for id, conv := range s.convs {
		if conv.State() == StateAwaiting || now.Sub(conv.LastActive()) < idle {
			continue
		}
		delete(s.convs, id)
		closed++
	}
	if closed > 0 {
		metrics.ChatSessions.Sub(float64(closed))
		s.logger.Info("swept idle chat sessions", zap.Int("closed", closed), zap.Int("open", len(s.convs)))
	}
	return closed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Sessions) RunSweeper(ctx context.Context, interval, idle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			s.Sweep(now, idle)
		}
	}
}
