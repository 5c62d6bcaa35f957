package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message wraps a payload with an identifier and creation time.
type Message[T any] struct {
	ID        string
	CreatedAt time.Time
	Data      T
}

// NewMessage stamps data with a fresh ID.
func NewMessage[T any](data T) Message[T] {
	return Message[T]{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Data:      data,
	}
}

// Subscriber receives published messages until closed.
type Subscriber[T any] interface {
	Receive(ctx context.Context) <-chan Message[T]
	// Close is idempotent.
	Close() error
}

// Broadcaster publishes messages to every active subscriber.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber that is removed when ctx is done.
	Subscribe(ctx context.Context) Subscriber[T]
	Broadcast(ctx context.Context, msg Message[T]) error
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan Message[T], bufferSize)}
}

func (s *subscriber[T]) Receive(context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
