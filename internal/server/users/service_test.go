package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitij230106/weather-dashboard-backend/internal/common"
	"github.com/kshitij230106/weather-dashboard-backend/internal/cryptox"
	"github.com/kshitij230106/weather-dashboard-backend/internal/server/auth"
)

// --- helpers ---

// fakeHasher avoids bcrypt cost in service-level tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "h:" + password, nil }
func (fakeHasher) Verify(password, digest string) bool  { return digest == "h:"+password }

func newTestService(t *testing.T) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewService(store, fakeHasher{}, tokens), store
}

// failingStore returns the configured errors from Load/Save.
type failingStore struct {
	loadErr error
	saveErr error
	users   map[string]*User
}

func (f *failingStore) Load(ctx context.Context) (map[string]*User, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.users == nil {
		return map[string]*User{}, nil
	}
	return f.users, nil
}

func (f *failingStore) Save(ctx context.Context, users map[string]*User) error {
	return f.saveErr
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Alice", "a@b.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	all, err := store.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, all, "a@b.com")
	assert.Equal(t, user.ID, all["a@b.com"].ID)
}

func TestRegister_NormalizesEmailKey(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "", "  A@B.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)

	all, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, all, "a@b.com")
}

func TestRegister_NameDefaultsToEmail(t *testing.T) {
	svc, _ := newTestService(t)

	user, _, err := svc.Register(context.Background(), "   ", "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Name)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"missing email", "", "secret1", common.ErrCredentialsRequired},
		{"blank email", "   ", "secret1", common.ErrCredentialsRequired},
		{"missing password", "a@b.com", "", common.ErrCredentialsRequired},
		{"short password", "a@b.com", "12345", common.ErrPasswordTooShort},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, "", tc.email, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "", "a@b.com", "secret1")
	require.NoError(t, err)

	// Same key after normalization, different password.
	_, _, err = svc.Register(ctx, "", " A@B.COM ", "another-password")
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestRegister_StoreErrorsPropagate(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	ctx := context.Background()

	loadErr := errors.New("disk on fire")
	svc := NewService(&failingStore{loadErr: loadErr}, fakeHasher{}, tokens)
	_, _, err := svc.Register(ctx, "", "a@b.com", "secret1")
	assert.ErrorIs(t, err, loadErr)

	saveErr := errors.New("disk full")
	svc = NewService(&failingStore{saveErr: saveErr}, fakeHasher{}, tokens)
	_, _, err = svc.Register(ctx, "", "a@b.com", "secret1")
	assert.ErrorIs(t, err, saveErr)
}

// --- Login ---

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Alice", "a@b.com", "secret1")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "nobody@b.com", "secret1")
	assert.ErrorIs(t, err, common.ErrNoAccount)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "", "a@b.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@b.com", "wrong-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "", "secret1")
	assert.ErrorIs(t, err, common.ErrCredentialsRequired)

	_, _, err = svc.Login(ctx, "a@b.com", "")
	assert.ErrorIs(t, err, common.ErrCredentialsRequired)
}

// --- WhoAmI ---

func TestWhoAmI_FindsUserByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Alice", "a@b.com", "secret1")
	require.NoError(t, err)

	user, err := svc.WhoAmI(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestWhoAmI_UnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.WhoAmI(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

// --- real hasher integration ---

func TestRegisterLogin_WithBcrypt(t *testing.T) {
	store := NewMemoryStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	svc := NewService(store, cryptox.NewBcryptHasher(4), tokens)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "", "u@x.com", "secret1")
	require.NoError(t, err)

	user, _, err := svc.Login(ctx, "u@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, _, err = svc.Login(ctx, "u@x.com", "secret2")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}
