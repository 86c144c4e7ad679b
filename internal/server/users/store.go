package users

import "context"

// Store persists the mapping from normalized email to user record with
// whole-snapshot semantics: Load returns the full prior state (or an empty
// map when nothing has been stored yet) and Save replaces the full state.
//
// Implementations do not coordinate concurrent writers; the last Save wins.
// Register's load-check-save sequence is therefore a known race under
// concurrent requests with the same email.
type Store interface {
	// Load returns the current email → record mapping. A backing resource
	// that does not exist yet yields an empty map. A resource that exists
	// but cannot be parsed yields common.ErrStorageCorrupt.
	Load(ctx context.Context) (map[string]*User, error)

	// Save atomically replaces the persisted state with the given mapping.
	Save(ctx context.Context, users map[string]*User) error
}
