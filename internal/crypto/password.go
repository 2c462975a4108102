// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt work factor used when none is
// configured. Roughly 50-100ms per hash on commodity hardware.
const DefaultPasswordHashCost = 10

// MaxPasswordBytes is the longest input bcrypt reads. Longer passwords are
// refused by Hash and never verify.
const MaxPasswordBytes = 72

var (
	// ErrInvalidHashCost is returned by [NewBcryptHasher] for a cost outside
	// bcrypt's supported range.
	ErrInvalidHashCost = errors.New("invalid password hash cost")

	// ErrPasswordHashingFailed wraps any failure of the underlying hash
	// function (e.g. input longer than 72 bytes).
	ErrPasswordHashingFailed = errors.New("password hashing failed")
)

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a [PasswordHasher] that produces bcrypt digests
// with the given work factor. A zero cost selects [DefaultPasswordHashCost].
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = DefaultPasswordHashCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidHashCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher]. bcrypt recomputes the digest with
// the salt and cost embedded in digest and compares in constant time.
// bcrypt ignores everything past [MaxPasswordBytes], so a longer password
// is rejected before comparing.
func (h *bcryptHasher) Verify(password, digest string) bool {
	if len(password) > MaxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
