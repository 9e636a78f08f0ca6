package session

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the authenticated identity held in memory for the lifetime of
// a sign-in. A nil *Session means signed out.
type Session struct {
	UserID       uuid.UUID
	Email        string
	AccessToken  string
	RefreshToken string
}

type Handler func(s *Session)

// Store holds the current session and notifies subscribers on every change.
// Delivery is synchronous: Set and Clear return only after every subscriber
// has observed the change, and a single dispatch mutex guarantees each
// subscriber sees changes in the order they were issued.
type Store struct {
	mu       sync.RWMutex
	current  *Session
	handlers map[int]Handler
	nextID   int

	dispatchMu sync.Mutex
}

func NewStore() *Store {
	return &Store{
		handlers: make(map[int]Handler),
	}
}

// Current returns the session as of the last completed Set or Clear.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the current session and delivers it to all subscribers
// before returning.
func (s *Store) Set(sess *Session) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.current = sess
	handlers := make([]Handler, 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(sess)
	}
}

// Clear drops the current session, notifying subscribers with nil.
func (s *Store) Clear() {
	s.Set(nil)
}

// Subscribe registers a change handler and returns a function that removes
// it. A handler unsubscribed during a dispatch may still receive that
// in-flight change, never a later one.
func (s *Store) Subscribe(h Handler) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.handlers[id] = h
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.handlers, id)
		s.mu.Unlock()
	}
}
