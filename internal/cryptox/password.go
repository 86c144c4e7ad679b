// Package cryptox implements password hashing for the credential store.
//
// Hashing is bcrypt: a salted, adaptive one-way digest. bcrypt embeds a
// per-call random salt in the digest, and comparison is constant-time, so no
// extra salt bookkeeping is needed here.
package cryptox

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies one-way password digests. The interface
// exists so services can take a fast fake in tests.
type Hasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext matches the digest. Malformed
	// digests verify as false rather than erroring.
	Verify(password, digest string) bool
}

// BcryptHasher is the production Hasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a Hasher with the given cost factor. Costs below
// bcrypt's minimum fall back to the default cost (10), which keeps hashing
// deliberately slow.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
