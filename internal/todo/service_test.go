// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package todo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault/internal/todo"
	"github.com/taskvault/taskvault/internal/todo/mocks"
	"github.com/taskvault/taskvault/pkg/fault"
)

func newService(t *testing.T) (*todo.Service, *mocks.MockTodoStore) {
	t.Helper()
	store := mocks.NewMockTodoStore(t)
	svc, err := todo.NewService(todo.ServiceConfig{
		Creator: store,
		Counter: store,
		Lister:  store,
		Getter:  store,
		Updater: store,
	})
	require.NoError(t, err)
	return svc, store
}

func TestNewService_NilCapabilities(t *testing.T) {
	store := mocks.NewMockTodoStore(t)

	tests := []struct {
		name        string
		cfg         todo.ServiceConfig
		expectError string
	}{
		{
			name:        "nil creator",
			cfg:         todo.ServiceConfig{Counter: store, Lister: store, Getter: store, Updater: store},
			expectError: "creator capability is required",
		},
		{
			name:        "nil counter",
			cfg:         todo.ServiceConfig{Creator: store, Lister: store, Getter: store, Updater: store},
			expectError: "counter capability is required",
		},
		{
			name:        "nil lister",
			cfg:         todo.ServiceConfig{Creator: store, Counter: store, Getter: store, Updater: store},
			expectError: "lister capability is required",
		},
		{
			name:        "nil getter",
			cfg:         todo.ServiceConfig{Creator: store, Counter: store, Lister: store, Updater: store},
			expectError: "getter capability is required",
		},
		{
			name:        "nil updater",
			cfg:         todo.ServiceConfig{Creator: store, Counter: store, Lister: store, Getter: store},
			expectError: "updater capability is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := todo.NewService(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("created item comes back as draft", func(t *testing.T) {
		svc, store := newService(t)

		stored := &todo.TodoItem{
			ID:      1,
			OwnerID: 7,
			Title:   "buy milk",
			Status:  todo.StatusDraft,
		}
		store.On("Create", ctx, int64(7), "buy milk", "").Return(stored, nil)

		item, err := svc.Create(ctx, 7, "buy milk", "")
		require.NoError(t, err)
		assert.Equal(t, todo.StatusDraft, item.Status)
		assert.Equal(t, int64(7), item.OwnerID)
	})

	t.Run("invalid title fails before storage", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Create(ctx, 7, "", "desc")
		require.Error(t, err)
		assert.Equal(t, fault.KindNotApplicable, fault.KindOf(err))
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		svc, store := newService(t)

		store.On("Create", ctx, int64(7), "buy milk", "").Return(nil, errors.New("insert failed"))

		_, err := svc.Create(ctx, 7, "buy milk", "")
		require.Error(t, err)
		assert.Equal(t, fault.KindUnknown, fault.KindOf(err))
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("count and list receive the identical filter value", func(t *testing.T) {
		svc, store := newService(t)

		status := todo.StatusInProgress
		limit := int32(10)
		offset := int32(20)
		filters := todo.Filters{Status: &status, Limit: &limit, Offset: &offset}

		items := []*todo.TodoItem{{ID: 3, Status: todo.StatusInProgress}}
		store.On("Count", ctx, filters).Return(int64(41), nil)
		store.On("List", ctx, filters).Return(items, nil)

		got, total, err := svc.List(ctx, filters)
		require.NoError(t, err)
		assert.Equal(t, int64(41), total)
		assert.Equal(t, items, got)
	})

	t.Run("count failure aborts before listing", func(t *testing.T) {
		svc, store := newService(t)

		store.On("Count", ctx, todo.Filters{}).Return(int64(0), errors.New("count failed"))

		_, _, err := svc.List(ctx, todo.Filters{})
		require.Error(t, err)
		store.AssertNotCalled(t, "List")
	})

	t.Run("list failure propagates", func(t *testing.T) {
		svc, store := newService(t)

		store.On("Count", ctx, todo.Filters{}).Return(int64(2), nil)
		store.On("List", ctx, todo.Filters{}).Return(nil, errors.New("query failed"))

		_, _, err := svc.List(ctx, todo.Filters{})
		assert.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored item", func(t *testing.T) {
		svc, store := newService(t)

		stored := &todo.TodoItem{ID: 9, OwnerID: 7}
		store.On("Get", ctx, int64(9)).Return(stored, nil)

		item, err := svc.Get(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, stored, item)
	})

	t.Run("not found propagates verbatim", func(t *testing.T) {
		svc, store := newService(t)

		notFound := oops.Code("TODO_NOT_FOUND").With("id", 9).Wrap(fault.ErrNotFound)
		store.On("Get", ctx, int64(9)).Return(nil, notFound)

		_, err := svc.Get(ctx, 9)
		require.Error(t, err)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	draftItem := func() *todo.TodoItem {
		return &todo.TodoItem{ID: 5, OwnerID: 7, Title: "buy milk", Status: todo.StatusDraft}
	}

	t.Run("owner can apply a legal transition", func(t *testing.T) {
		svc, store := newService(t)

		updated := &todo.TodoItem{ID: 5, OwnerID: 7, Status: todo.StatusInProgress}
		store.On("Get", ctx, int64(5)).Return(draftItem(), nil)
		store.On("UpdateStatus", ctx, int64(5), todo.StatusInProgress).Return(updated, nil)

		item, err := svc.Update(ctx, 7, 5, todo.StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, todo.StatusInProgress, item.Status)
	})

	t.Run("non-owner is forbidden regardless of transition validity", func(t *testing.T) {
		svc, store := newService(t)

		// Once for a legal transition, once for an illegal one: the
		// outcome must not reveal which it was.
		store.On("Get", ctx, int64(5)).Return(draftItem(), nil).Twice()

		_, err := svc.Update(ctx, 2, 5, todo.StatusInProgress)
		require.Error(t, err)
		assert.Equal(t, fault.KindForbidden, fault.KindOf(err))

		_, err = svc.Update(ctx, 2, 5, todo.StatusCompleted)
		require.Error(t, err)
		assert.Equal(t, fault.KindForbidden, fault.KindOf(err))

		store.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("illegal transition names the from and to statuses", func(t *testing.T) {
		svc, store := newService(t)

		store.On("Get", ctx, int64(5)).Return(draftItem(), nil)

		_, err := svc.Update(ctx, 7, 5, todo.StatusCompleted)
		require.Error(t, err)
		assert.Equal(t, fault.KindNotApplicable, fault.KindOf(err))
		assert.Contains(t, err.Error(), "draft")
		assert.Contains(t, err.Error(), "completed")
		store.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("self-transition is rejected", func(t *testing.T) {
		svc, store := newService(t)

		inProgress := &todo.TodoItem{ID: 5, OwnerID: 7, Status: todo.StatusInProgress}
		store.On("Get", ctx, int64(5)).Return(inProgress, nil)

		_, err := svc.Update(ctx, 7, 5, todo.StatusInProgress)
		require.Error(t, err)
		assert.Equal(t, fault.KindNotApplicable, fault.KindOf(err))
	})

	t.Run("terminal statuses reject every transition", func(t *testing.T) {
		svc, store := newService(t)

		for _, terminal := range []todo.Status{todo.StatusCompleted, todo.StatusRejected} {
			item := &todo.TodoItem{ID: 5, OwnerID: 7, Status: terminal}
			for _, next := range []todo.Status{todo.StatusDraft, todo.StatusInProgress, todo.StatusCompleted, todo.StatusRejected} {
				store.On("Get", ctx, int64(5)).Return(item, nil).Once()
				_, err := svc.Update(ctx, 7, 5, next)
				require.Error(t, err, "%s -> %s", terminal, next)
				assert.Equal(t, fault.KindNotApplicable, fault.KindOf(err))
			}
		}
	})

	t.Run("missing item propagates not found", func(t *testing.T) {
		svc, store := newService(t)

		store.On("Get", ctx, int64(5)).
			Return(nil, oops.Code("TODO_NOT_FOUND").Wrap(fault.ErrNotFound))

		_, err := svc.Update(ctx, 7, 5, todo.StatusInProgress)
		require.Error(t, err)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})
}

// TestService_Update_LastWriterWins documents the accepted race on the
// fetch-check-write sequence: two updates that both observe the same
// current status both pass validation, and the second write overwrites the
// first without error.
func TestService_Update_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	draft := &todo.TodoItem{ID: 5, OwnerID: 7, Status: todo.StatusDraft}

	// Both requests read the item before either writes.
	store.On("Get", ctx, int64(5)).Return(draft, nil).Twice()
	store.On("UpdateStatus", ctx, int64(5), todo.StatusInProgress).
		Return(&todo.TodoItem{ID: 5, OwnerID: 7, Status: todo.StatusInProgress}, nil).Once()
	store.On("UpdateStatus", ctx, int64(5), todo.StatusRejected).
		Return(&todo.TodoItem{ID: 5, OwnerID: 7, Status: todo.StatusRejected}, nil).Once()

	first, err := svc.Update(ctx, 7, 5, todo.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, todo.StatusInProgress, first.Status)

	// The second update validated against the stale draft snapshot and
	// still wins, even though in_progress -> rejected via draft was never
	// a single legal step sequence observed by storage.
	second, err := svc.Update(ctx, 7, 5, todo.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, todo.StatusRejected, second.Status)
}

func TestService_ListFilterScenario(t *testing.T) {
	// Three items with statuses draft, in_progress, completed; filtering
	// by in_progress returns exactly the one matching item and count 1.
	ctx := context.Background()
	svc, store := newService(t)

	status := todo.StatusInProgress
	filters := todo.Filters{Status: &status}

	now := time.Now()
	match := &todo.TodoItem{ID: 2, OwnerID: 7, Status: todo.StatusInProgress, CreatedAt: now}
	store.On("Count", ctx, filters).Return(int64(1), nil)
	store.On("List", ctx, filters).Return([]*todo.TodoItem{match}, nil)

	items, total, err := svc.List(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, todo.StatusInProgress, items[0].Status)
}
