// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package todo

import (
	"context"
	"log/slog"

	"github.com/samber/oops"

	"github.com/taskvault/taskvault/pkg/fault"
)

// ServiceConfig holds the storage capabilities for Service.
type ServiceConfig struct {
	Creator Creator
	Counter Counter
	Lister  Lister
	Getter  Getter
	Updater Updater
	Logger  *slog.Logger
}

// Service composes the storage capabilities into the todo workflow,
// enforcing the status state machine and the ownership rule before any
// mutation reaches storage. It is stateless and safe for concurrent use.
type Service struct {
	creator Creator
	counter Counter
	lister  Lister
	getter  Getter
	updater Updater
	logger  *slog.Logger
}

// NewService creates a new Service with the given configuration.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Creator == nil {
		return nil, oops.Errorf("creator capability is required")
	}
	if cfg.Counter == nil {
		return nil, oops.Errorf("counter capability is required")
	}
	if cfg.Lister == nil {
		return nil, oops.Errorf("lister capability is required")
	}
	if cfg.Getter == nil {
		return nil, oops.Errorf("getter capability is required")
	}
	if cfg.Updater == nil {
		return nil, oops.Errorf("updater capability is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		creator: cfg.Creator,
		counter: cfg.Counter,
		lister:  cfg.Lister,
		getter:  cfg.Getter,
		updater: cfg.Updater,
		logger:  logger,
	}, nil
}

// Create stores a new item for the owner. Status is always StatusDraft;
// the stored item comes back with its generated ID and timestamps.
func (s *Service) Create(ctx context.Context, ownerID int64, title, description string) (*TodoItem, error) {
	if err := ValidateTitle(title); err != nil {
		recordOperation("create", OutcomeNotApplicable)
		return nil, err
	}

	item, err := s.creator.Create(ctx, ownerID, title, description)
	if err != nil {
		recordOperation("create", OutcomeError)
		return nil, err
	}

	recordOperation("create", OutcomeSuccess)
	s.logger.InfoContext(ctx, "todo item created", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

// List returns the page of items matching the filters together with the
// total count. Both calls receive the same Filters value, so the reported
// total always matches the predicate that produced the page; Limit and
// Offset bound the page only.
func (s *Service) List(ctx context.Context, filters Filters) ([]*TodoItem, int64, error) {
	total, err := s.counter.Count(ctx, filters)
	if err != nil {
		recordOperation("list", OutcomeError)
		return nil, 0, err
	}

	items, err := s.lister.List(ctx, filters)
	if err != nil {
		recordOperation("list", OutcomeError)
		return nil, 0, err
	}

	recordOperation("list", OutcomeSuccess)
	return items, total, nil
}

// Get retrieves an item by ID. A missing item propagates as not found.
func (s *Service) Get(ctx context.Context, id int64) (*TodoItem, error) {
	item, err := s.getter.Get(ctx, id)
	if err != nil {
		recordOperation("get", outcomeFor(err))
		return nil, err
	}
	recordOperation("get", OutcomeSuccess)
	return item, nil
}

// Update transitions an item to a new status on behalf of ownerID. The
// ownership check runs before the transition check, so a non-owner never
// learns whether the transition would have been legal.
//
// The fetch-check-write sequence is not atomic against a concurrent update
// of the same item; the last writer wins. Accepted as a known limitation
// rather than guarded with an optimistic version check.
func (s *Service) Update(ctx context.Context, ownerID, itemID int64, next Status) (*TodoItem, error) {
	stored, err := s.getter.Get(ctx, itemID)
	if err != nil {
		recordOperation("update", outcomeFor(err))
		return nil, err
	}

	if stored.OwnerID != ownerID {
		recordOperation("update", OutcomeForbidden)
		return nil, oops.Code("TODO_FORBIDDEN").
			With("item_id", itemID).
			Wrapf(fault.ErrForbidden, "owner is %d, but received request from %d", stored.OwnerID, ownerID)
	}

	if !stored.Status.CanTransitionTo(next) {
		recordOperation("update", OutcomeNotApplicable)
		return nil, oops.Code("TODO_INVALID_TRANSITION").
			With("item_id", itemID).
			With("from", string(stored.Status)).
			With("to", string(next)).
			Wrapf(fault.ErrNotApplicable, "can't update from %s to %s", stored.Status, next)
	}

	updated, err := s.updater.UpdateStatus(ctx, itemID, next)
	if err != nil {
		recordOperation("update", OutcomeError)
		return nil, err
	}

	recordOperation("update", OutcomeSuccess)
	recordTransition(stored.Status, next)
	s.logger.InfoContext(ctx, "todo status updated",
		"item_id", itemID,
		"owner_id", ownerID,
		"from", string(stored.Status),
		"to", string(next),
	)
	return updated, nil
}

func outcomeFor(err error) string {
	switch fault.KindOf(err) {
	case fault.KindNotFound:
		return OutcomeNotFound
	case fault.KindForbidden:
		return OutcomeForbidden
	case fault.KindNotApplicable:
		return OutcomeNotApplicable
	default:
		return OutcomeError
	}
}
