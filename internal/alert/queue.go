package alert

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Store keeps values between requests. Get removes the value, Peek does not.
type Store interface {
	Put(key string, value []byte)
	Get(key string) ([]byte, bool)
	Peek(key string) ([]byte, bool)
}

// Queue appends alerts to a Store under TempKey.
type Queue struct {
	store Store
	mu    sync.Mutex
}

// NewQueue creates a queue backed by store.
func NewQueue(store Store) *Queue {
	return &Queue{store: store}
}

// Push appends a to the pending alerts.
func (q *Queue) Push(a Alert) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	alerts, err := q.decode(q.store.Peek(TempKey))
	if err != nil {
		return err
	}
	alerts = append(alerts, a)

	b, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("encode alerts: %w", err)
	}
	q.store.Put(TempKey, b)
	return nil
}

// Drain returns the pending alerts in insertion order and clears them.
func (q *Queue) Drain() ([]Alert, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.decode(q.store.Get(TempKey))
}

// Peek returns the pending alerts without clearing them.
func (q *Queue) Peek() ([]Alert, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.decode(q.store.Peek(TempKey))
}

func (q *Queue) decode(b []byte, ok bool) ([]Alert, error) {
	if !ok || len(b) == 0 {
		return nil, nil
	}
	var alerts []Alert
	if err := json.Unmarshal(b, &alerts); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	return alerts, nil
}

func (q *Queue) push(style Style, message, heading string, dismissable bool) error {
	return q.Push(Alert{Style: style, Heading: heading, Message: message, Dismissable: dismissable})
}

func (q *Queue) Primary(message, heading string) error {
	return q.push(StylePrimary, message, heading, true)
}

func (q *Queue) Secondary(message, heading string) error {
	return q.push(StyleSecondary, message, heading, true)
}

func (q *Queue) Success(message, heading string) error {
	return q.push(StyleSuccess, message, heading, true)
}

func (q *Queue) Danger(message, heading string) error {
	return q.push(StyleDanger, message, heading, true)
}

func (q *Queue) Warning(message, heading string) error {
	return q.push(StyleWarning, message, heading, true)
}

func (q *Queue) Info(message, heading string) error {
	return q.push(StyleInfo, message, heading, true)
}

func (q *Queue) Light(message, heading string) error {
	return q.push(StyleLight, message, heading, true)
}

func (q *Queue) Dark(message, heading string) error {
	return q.push(StyleDark, message, heading, true)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Put(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	delete(s.values, key)
	return v, ok
}

func (s *MemoryStore) Peek(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}
