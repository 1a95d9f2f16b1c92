// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package todo

import (
	"time"

	"github.com/samber/oops"

	"github.com/taskvault/taskvault/pkg/fault"
)

// Status is the lifecycle state of a todo item.
type Status string

// Todo item statuses. Items always start as StatusDraft; StatusCompleted
// and StatusRejected are terminal.
const (
	StatusDraft      Status = "draft"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

// transitions is the full status state machine. Absent entries (including
// self-transitions and anything out of a terminal status) are rejected.
var transitions = map[Status][]Status{
	StatusDraft:      {StatusInProgress, StatusRejected},
	StatusInProgress: {StatusCompleted, StatusRejected},
	StatusCompleted:  {},
	StatusRejected:   {},
}

// ParseStatus parses a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", oops.Code("TODO_INVALID_STATUS").
			With("status", s).
			Wrapf(fault.ErrNotApplicable, "invalid status: %s", s)
	}
	return status, nil
}

// Valid reports whether the status is one of the four known states.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no transitions lead out of the status.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Title validation constraint.
const MaxTitleLength = 200

// ValidateTitle validates a todo item title.
func ValidateTitle(title string) error {
	if title == "" {
		return oops.Code("TODO_INVALID_TITLE").
			Wrapf(fault.ErrNotApplicable, "title cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return oops.Code("TODO_INVALID_TITLE").
			With("max", MaxTitleLength).
			Wrapf(fault.ErrNotApplicable, "title must be at most %d characters", MaxTitleLength)
	}
	return nil
}

// TodoItem is a task owned by exactly one account. OwnerID is immutable
// after creation and items are never physically deleted; the only mutation
// path is a status transition.
type TodoItem struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filters narrows listing and counting. The status predicate applies to
// both; Limit and Offset bound listing only. Nil fields are unset.
type Filters struct {
	Status *Status
	Limit  *int32
	Offset *int32
}
