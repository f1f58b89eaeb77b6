package cart

import (
	"sync"

	"platter-guest/internal/domain"
)

// Store keeps one cart per (tenant, session token) in memory. Carts are never
// persisted: a session that goes away takes its cart with it, and two
// restaurants visited by the same guest get independent carts.
type Store struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]domain.Cart)}
}

// Get returns the current cart for the session, an empty cart if none exists.
func (s *Store) Get(tenant, token string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[cartKey(tenant, token)]; ok {
		return c
	}
	return domain.Cart{Lines: []domain.CartLine{}}
}

// Dispatch applies an action to the session's cart and returns the new state.
// Clearing drops the map entry instead of keeping an empty cart around.
func (s *Store) Dispatch(tenant, token string, action Action) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := cartKey(tenant, token)
	current, ok := s.carts[key]
	if !ok {
		current = domain.Cart{Lines: []domain.CartLine{}}
	}

	next := Apply(current, action)
	if len(next.Lines) == 0 {
		delete(s.carts, key)
	} else {
		s.carts[key] = next
	}
	return next
}

func cartKey(tenant, token string) string {
	return tenant + "/" + token
}
