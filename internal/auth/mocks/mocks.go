// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package mocks provides testify mocks for auth collaborator interfaces.
package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault/internal/auth"
)

// MockAccountRepository is a testify mock for auth.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a MockAccountRepository whose
// expectations are asserted on test cleanup.
func NewMockAccountRepository(t *testing.T) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, login, passwordHash string) (*auth.Account, error) {
	args := m.Called(ctx, login, passwordHash)
	var account *auth.Account
	if v := args.Get(0); v != nil {
		account = v.(*auth.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*auth.Account, error) {
	args := m.Called(ctx, id)
	var account *auth.Account
	if v := args.Get(0); v != nil {
		account = v.(*auth.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) GetByLogin(ctx context.Context, login string) (*auth.Account, error) {
	args := m.Called(ctx, login)
	var account *auth.Account
	if v := args.Get(0); v != nil {
		account = v.(*auth.Account)
	}
	return account, args.Error(1)
}

// MockPasswordHasher is a testify mock for auth.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a MockPasswordHasher whose expectations are
// asserted on test cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, hash string) (bool, error) {
	args := m.Called(password, hash)
	return args.Bool(0), args.Error(1)
}

// MockTokenCodec is a testify mock for auth.TokenCodec.
type MockTokenCodec struct {
	mock.Mock
}

// NewMockTokenCodec creates a MockTokenCodec whose expectations are
// asserted on test cleanup.
func NewMockTokenCodec(t *testing.T) *MockTokenCodec {
	m := &MockTokenCodec{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTokenCodec) Issue(accountID int64, now time.Time) (auth.AuthToken, error) {
	args := m.Called(accountID, now)
	return args.Get(0).(auth.AuthToken), args.Error(1)
}

func (m *MockTokenCodec) Parse(token string, now time.Time) (int64, error) {
	args := m.Called(token, now)
	return args.Get(0).(int64), args.Error(1)
}
