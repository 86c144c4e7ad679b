package users

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store, used by tests and single-run tools.
// Snapshots are copied on the way in and out so callers cannot mutate the
// stored state behind the store's back.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: map[string]*User{}}
}

func (s *MemoryStore) Load(ctx context.Context) (map[string]*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copySnapshot(s.users), nil
}

func (s *MemoryStore) Save(ctx context.Context, users map[string]*User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = copySnapshot(users)
	return nil
}

func copySnapshot(src map[string]*User) map[string]*User {
	dst := make(map[string]*User, len(src))
	for k, v := range src {
		u := *v
		dst[k] = &u
	}
	return dst
}
