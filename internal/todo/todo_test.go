// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package todo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault/internal/todo"
	"github.com/taskvault/taskvault/pkg/fault"
)

func TestParseStatus(t *testing.T) {
	t.Run("parses all known statuses", func(t *testing.T) {
		for _, s := range []string{"draft", "in_progress", "completed", "rejected"} {
			status, err := todo.ParseStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, string(status))
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "Draft", "done", "DRAFT", "in progress"} {
			_, err := todo.ParseStatus(s)
			require.Error(t, err, "expected error for %q", s)
			assert.Equal(t, fault.KindNotApplicable, fault.KindOf(err))
		}
	})
}

func TestStatusTransitions(t *testing.T) {
	all := []todo.Status{todo.StatusDraft, todo.StatusInProgress, todo.StatusCompleted, todo.StatusRejected}

	allowed := map[todo.Status][]todo.Status{
		todo.StatusDraft:      {todo.StatusInProgress, todo.StatusRejected},
		todo.StatusInProgress: {todo.StatusCompleted, todo.StatusRejected},
		todo.StatusCompleted:  {},
		todo.StatusRejected:   {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, todo.StatusDraft.Terminal())
	assert.False(t, todo.StatusInProgress.Terminal())
	assert.True(t, todo.StatusCompleted.Terminal())
	assert.True(t, todo.StatusRejected.Terminal())
	assert.False(t, todo.Status("bogus").Terminal())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, todo.StatusDraft.Valid())
	assert.False(t, todo.Status("bogus").Valid())
}

func TestValidateTitle(t *testing.T) {
	t.Run("accepts normal titles", func(t *testing.T) {
		assert.NoError(t, todo.ValidateTitle("buy milk"))
		assert.NoError(t, todo.ValidateTitle(strings.Repeat("x", todo.MaxTitleLength)))
	})

	t.Run("rejects empty title", func(t *testing.T) {
		err := todo.ValidateTitle("")
		require.Error(t, err)
		assert.Equal(t, fault.KindNotApplicable, fault.KindOf(err))
	})

	t.Run("rejects oversized title", func(t *testing.T) {
		err := todo.ValidateTitle(strings.Repeat("x", todo.MaxTitleLength+1))
		require.Error(t, err)
		assert.Equal(t, fault.KindNotApplicable, fault.KindOf(err))
	})
}
