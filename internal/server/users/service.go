// Package users implements the credential store and the three auth
// operations on top of it: Register, Login and WhoAmI.
package users

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kshitij230106/weather-dashboard-backend/internal/common"
	"github.com/kshitij230106/weather-dashboard-backend/internal/cryptox"
	"github.com/kshitij230106/weather-dashboard-backend/internal/server/auth"
)

const minPasswordLength = 6

// Service orchestrates store, hasher and token service into the user-facing
// auth operations. All errors callers should act on are sentinels from the
// common package; anything else is an internal failure.
type Service struct {
	store  Store
	hasher cryptox.Hasher
	tokens *auth.TokenService
}

func NewService(store Store, hasher cryptox.Hasher, tokens *auth.TokenService) *Service {
	return &Service{store: store, hasher: hasher, tokens: tokens}
}

// NormalizeEmail produces the store key for an email: trimmed and
// lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and returns the record along with a fresh
// bearer token. The name defaults to the normalized email when blank.
//
// Note: the load-check-save sequence is not transactionally isolated; two
// concurrent registrations for the same email can both pass the presence
// check and the later Save wins.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, string, error) {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if email == "" || password == "" {
		return nil, "", common.ErrCredentialsRequired
	}
	if len(password) < minPasswordLength {
		return nil, "", common.ErrPasswordTooShort
	}

	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	if _, exists := all[email]; exists {
		return nil, "", common.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	if name == "" {
		name = email
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	// Persist only after the hash and id are fully computed, so no partial
	// record ever hits the store.
	all[email] = user
	if err := s.store.Save(ctx, all); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login checks the credentials and returns the record plus a fresh token.
// An unknown email and a wrong password yield distinct errors on purpose
// (product decision inherited from the original frontend).
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	email = NormalizeEmail(email)

	if email == "" || password == "" {
		return nil, "", common.ErrCredentialsRequired
	}

	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	user, ok := all[email]
	if !ok {
		return nil, "", common.ErrNoAccount
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// WhoAmI resolves a verified token's user id back to a record. The store is
// keyed by email, so this scans values; the id may no longer exist if the
// store was reset after the token was issued.
func (s *Service) WhoAmI(ctx context.Context, userID string) (*User, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if u.ID == userID {
			return u, nil
		}
	}

	return nil, common.ErrUserNotFound
}

// VerifyToken exposes token verification to transports so the bearer
// middleware does not need its own handle on the token service.
func (s *Service) VerifyToken(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}
