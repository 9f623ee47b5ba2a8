package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pfhealth/vitality-engine/internal/model/chat"
)

// Service owns the in-memory message log. Id assignment reads the
// current length, so the read and the append share one critical
// section and ids stay gapless under concurrent requests.
type Service struct {
	mu          sync.RWMutex
	messages    []chat.Message
	subscribers map[string]chan chat.Message
}

// NewService bootstraps an empty message store suitable for early iterations.
func NewService() *Service {
	return &Service{
		messages:    make([]chat.Message, 0, 16),
		subscribers: make(map[string]chan chat.Message),
	}
}

// List returns every stored message in insertion order.
func (s *Service) List(_ context.Context) []chat.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]chat.Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

// Create appends a message and returns the stored record. The store
// only ever grows; records are immutable once appended.
func (s *Service) Create(_ context.Context, content, sender string) chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := chat.Message{
		ID:        fmt.Sprintf("msg_%d", len(s.messages)+1),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	}
	s.messages = append(s.messages, message)

	// Fan out under the lock: Unsubscribe closes channels under the same
	// lock, so no send can race a close. Sends never block.
	for _, ch := range s.subscribers {
		select {
		case ch <- message:
		default:
			// Slow consumer; dropping beats stalling the append path.
		}
	}

	return message
}

// Count reports how many messages have been stored.
func (s *Service) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Subscribe registers a live-feed consumer and returns its key plus the
// channel newly appended messages arrive on.
func (s *Service) Subscribe() (string, <-chan chat.Message) {
	ch := make(chan chat.Message, 32)
	key := uuid.NewString()

	s.mu.Lock()
	s.subscribers[key] = ch
	s.mu.Unlock()

	return key, ch
}

// Unsubscribe removes a live-feed consumer and closes its channel. The
// close happens under the lock so Create can never send afterwards.
func (s *Service) Unsubscribe(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[key]; ok {
		delete(s.subscribers, key)
		close(ch)
	}
}
