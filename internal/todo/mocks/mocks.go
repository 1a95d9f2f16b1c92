// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package mocks provides testify mocks for todo storage capabilities.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault/internal/todo"
)

// MockTodoStore is a testify mock implementing all five storage
// capabilities. Tests wire the same instance into every ServiceConfig
// field, mirroring how a single repository implements them in production.
type MockTodoStore struct {
	mock.Mock
}

// NewMockTodoStore creates a MockTodoStore whose expectations are asserted
// on test cleanup.
func NewMockTodoStore(t *testing.T) *MockTodoStore {
	m := &MockTodoStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTodoStore) Create(ctx context.Context, ownerID int64, title, description string) (*todo.TodoItem, error) {
	args := m.Called(ctx, ownerID, title, description)
	var item *todo.TodoItem
	if v := args.Get(0); v != nil {
		item = v.(*todo.TodoItem)
	}
	return item, args.Error(1)
}

func (m *MockTodoStore) Count(ctx context.Context, filters todo.Filters) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTodoStore) List(ctx context.Context, filters todo.Filters) ([]*todo.TodoItem, error) {
	args := m.Called(ctx, filters)
	var items []*todo.TodoItem
	if v := args.Get(0); v != nil {
		items = v.([]*todo.TodoItem)
	}
	return items, args.Error(1)
}

func (m *MockTodoStore) Get(ctx context.Context, id int64) (*todo.TodoItem, error) {
	args := m.Called(ctx, id)
	var item *todo.TodoItem
	if v := args.Get(0); v != nil {
		item = v.(*todo.TodoItem)
	}
	return item, args.Error(1)
}

func (m *MockTodoStore) UpdateStatus(ctx context.Context, id int64, status todo.Status) (*todo.TodoItem, error) {
	args := m.Called(ctx, id, status)
	var item *todo.TodoItem
	if v := args.Get(0); v != nil {
		item = v.(*todo.TodoItem)
	}
	return item, args.Error(1)
}
