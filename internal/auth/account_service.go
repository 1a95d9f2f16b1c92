// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/taskvault/taskvault/pkg/fault"
)

// dummyPasswordHash is used when a login doesn't exist to prevent timing
// attacks. Verification still runs so response time stays consistent.
// This is NOT a real credential - it's a fake hash that will never match any password.
//
//nolint:gosec // G101: This is an intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// AccountService orchestrates registration, login, and token authorization.
// It is stateless; every operation is a request-scoped computation over its
// collaborators and is safe for concurrent use.
type AccountService struct {
	accounts AccountRepository
	hasher   PasswordHasher
	tokens   TokenCodec
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts AccountRepository, hasher PasswordHasher, tokens TokenCodec) (*AccountService, error) {
	return NewAccountServiceWithLogger(accounts, hasher, tokens, slog.Default())
}

// NewAccountServiceWithLogger creates a new AccountService with a custom logger.
func NewAccountServiceWithLogger(accounts AccountRepository, hasher PasswordHasher, tokens TokenCodec, logger *slog.Logger) (*AccountService, error) {
	if accounts == nil {
		return nil, oops.Errorf("accounts repository is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	if tokens == nil {
		return nil, oops.Errorf("token codec is required")
	}
	if logger == nil {
		return nil, oops.Errorf("logger is required")
	}
	return &AccountService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Register creates an account for the login and returns a bearer token for
// it. The plaintext password is hashed before it reaches storage and is
// never logged. A login-uniqueness violation surfaces from the repository
// as an unclassified failure.
func (s *AccountService) Register(ctx context.Context, login, password string) (AuthToken, error) {
	if err := ValidateLogin(login); err != nil {
		return AuthToken{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, fault.ErrNotApplicable) {
			return AuthToken{}, err
		}
		return AuthToken{}, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	account, err := s.accounts.Create(ctx, login, hash)
	if err != nil {
		return AuthToken{}, err
	}

	token, err := s.tokens.Issue(account.ID, s.now())
	if err != nil {
		return AuthToken{}, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "issue token").
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "account registered", "account_id", account.ID, "login", login)
	return token, nil
}

// Login authenticates the credentials and returns a fresh bearer token.
// A missing login and a wrong password produce the same invalid-credentials
// failure so callers cannot enumerate registered logins, and verification
// runs against a dummy hash when the login is absent to keep response time
// consistent.
func (s *AccountService) Login(ctx context.Context, login, password string) (AuthToken, error) {
	account, lookupErr := s.accounts.GetByLogin(ctx, login)

	targetHash := dummyPasswordHash
	accountExists := false

	if lookupErr != nil {
		if !errors.Is(lookupErr, fault.ErrNotFound) {
			return AuthToken{}, oops.Code("AUTH_LOGIN_FAILED").
				With("operation", "get account by login").
				Wrap(lookupErr)
		}
	} else {
		targetHash = account.PasswordHash
		accountExists = true
	}

	valid, verifyErr := s.hasher.Verify(password, targetHash)
	if verifyErr != nil {
		// Dummy hash verification errors just mean invalid credentials.
		if !accountExists {
			return AuthToken{}, invalidCredentials()
		}
		return AuthToken{}, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(verifyErr)
	}

	if !accountExists || !valid {
		return AuthToken{}, invalidCredentials()
	}

	token, err := s.tokens.Issue(account.ID, s.now())
	if err != nil {
		return AuthToken{}, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "issue token").
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "account logged in", "account_id", account.ID)
	return token, nil
}

// Authorize validates a bearer token and returns the account ID it was
// issued for. Invalid and expired tokens fail as authorization errors.
func (s *AccountService) Authorize(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, oops.Code("TOKEN_EMPTY").Wrap(fault.ErrForbidden)
	}
	accountID, err := s.tokens.Parse(token, s.now())
	if err != nil {
		return 0, err
	}
	return accountID, nil
}

func invalidCredentials() error {
	return oops.Code("AUTH_INVALID_CREDENTIALS").
		Wrapf(fault.ErrForbidden, "invalid login or password")
}
