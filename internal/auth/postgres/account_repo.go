// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package postgres implements auth.AccountRepository using PostgreSQL.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/pkg/fault"
)

// poolIface abstracts query execution so the repository works with both
// *pgxpool.Pool and pgxmock in tests.
type poolIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccountRepository implements auth.AccountRepository using PostgreSQL.
type AccountRepository struct {
	pool poolIface
}

// NewAccountRepository creates a new PostgreSQL account repository.
func NewAccountRepository(pool poolIface) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, login, password_hash, created_at`

// Create stores a new account and re-fetches it so the returned account
// carries the generated ID and timestamp. Login uniqueness is enforced by
// the schema; a violation surfaces with its own code but stays
// unclassified in the fault taxonomy.
func (r *AccountRepository) Create(ctx context.Context, login, passwordHash string) (*auth.Account, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, login, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, oops.Code("ACCOUNT_LOGIN_TAKEN").
				With("login", login).
				Wrap(err)
		}
		return nil, oops.Code("ACCOUNT_CREATE_FAILED").
			With("login", login).
			Wrap(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*auth.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("id", id).
			Wrap(fault.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_FAILED").
			With("id", id).
			Wrap(err)
	}
	return account, nil
}

// GetByLogin retrieves an account by login.
func (r *AccountRepository) GetByLogin(ctx context.Context, login string) (*auth.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE login = $1`, login)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("login", login).
			Wrap(fault.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_FAILED").
			With("login", login).
			Wrap(err)
	}
	return account, nil
}

func scanAccount(row pgx.Row) (*auth.Account, error) {
	var account auth.Account
	if err := row.Scan(
		&account.ID,
		&account.Login,
		&account.PasswordHash,
		&account.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}
