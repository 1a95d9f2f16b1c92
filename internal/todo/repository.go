// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package todo

import "context"

// Storage is split into one narrow interface per operation so each service
// method depends on the minimum persistence surface. A single repository
// type typically implements all five.

// Creator persists new todo items.
type Creator interface {
	// Create stores a new item with status forced to StatusDraft and
	// returns the stored item with its generated ID and timestamps.
	Create(ctx context.Context, ownerID int64, title, description string) (*TodoItem, error)
}

// Counter counts todo items matching a filter.
type Counter interface {
	// Count returns the number of items matching the filter's status
	// predicate. Limit and Offset are ignored.
	Count(ctx context.Context, filters Filters) (int64, error)
}

// Lister retrieves todo items matching a filter.
type Lister interface {
	// List returns items matching the filter's status predicate, bounded
	// by Limit and Offset, in stable ID order.
	List(ctx context.Context, filters Filters) ([]*TodoItem, error)
}

// Getter retrieves a single todo item.
type Getter interface {
	// Get retrieves an item by ID.
	Get(ctx context.Context, id int64) (*TodoItem, error)
}

// Updater mutates a todo item's status.
type Updater interface {
	// UpdateStatus sets the item's status and returns the updated item.
	// Callers must validate the transition before calling this method.
	UpdateStatus(ctx context.Context, id int64, status Status) (*TodoItem, error)
}
