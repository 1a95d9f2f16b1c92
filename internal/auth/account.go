// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/samber/oops"

	"github.com/taskvault/taskvault/pkg/fault"
)

// Login validation constraints.
const (
	MinLoginLength = 3
	MaxLoginLength = 64
)

// loginRegex matches logins that:
// - Start with a letter (a-z, A-Z)
// - Contain only letters, numbers, and underscores
var loginRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// Account represents a registered account. Login is unique and immutable
// after creation; PasswordHash holds the argon2id digest, never plaintext.
type Account struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}

// AuthToken is a signed bearer credential with its absolute expiry.
// Tokens are stateless: validity is purely a function of signature and
// expiry at parse time, and there is no server-side revocation.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
}

// ValidateLogin validates a login against the account naming rules.
// Login requirements:
// - Length: MinLoginLength to MaxLoginLength characters
// - Must start with a letter
// - Can contain only letters (a-z, A-Z), numbers (0-9), and underscores (_)
func ValidateLogin(login string) error {
	if login == "" {
		return oops.Code("AUTH_INVALID_LOGIN").
			Wrapf(fault.ErrNotApplicable, "login cannot be empty")
	}
	if len(login) < MinLoginLength {
		return oops.Code("AUTH_INVALID_LOGIN").
			With("min", MinLoginLength).
			Wrapf(fault.ErrNotApplicable, "login must be at least %d characters", MinLoginLength)
	}
	if len(login) > MaxLoginLength {
		return oops.Code("AUTH_INVALID_LOGIN").
			With("max", MaxLoginLength).
			Wrapf(fault.ErrNotApplicable, "login must be at most %d characters", MaxLoginLength)
	}
	if !loginRegex.MatchString(login) {
		return oops.Code("AUTH_INVALID_LOGIN").
			Wrapf(fault.ErrNotApplicable, "login must start with a letter and contain only letters, numbers, and underscores")
	}
	return nil
}

// AccountRepository manages account persistence.
type AccountRepository interface {
	// Create stores a new account with the given login and password hash
	// and returns the stored account with its generated ID and timestamp.
	Create(ctx context.Context, login, passwordHash string) (*Account, error)

	// GetByID retrieves an account by ID.
	GetByID(ctx context.Context, id int64) (*Account, error)

	// GetByLogin retrieves an account by login.
	GetByLogin(ctx context.Context, login string) (*Account, error)
}
