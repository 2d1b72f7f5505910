package session

import "sync"

// MemoryStore keeps carts in a two-level map guarded by one RWMutex. Requests
// run concurrently, so every access goes through the lock.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uint]map[uint]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uint]map[uint]int)}
}

func (s *MemoryStore) Set(userID, productID uint, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = make(map[uint]int)
		s.carts[userID] = cart
	}
	cart[productID] = quantity
	return nil
}

func (s *MemoryStore) Delete(userID, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[userID]; ok {
		delete(cart, productID)
		if len(cart) == 0 {
			delete(s.carts, userID)
		}
	}
	return nil
}

func (s *MemoryStore) Entries(userID uint) (map[uint]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make(map[uint]int, len(s.carts[userID]))
	for productID, quantity := range s.carts[userID] {
		entries[productID] = quantity
	}
	return entries, nil
}

func (s *MemoryStore) ClearUser(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
