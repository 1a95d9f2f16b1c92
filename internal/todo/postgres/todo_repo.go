// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package postgres implements the todo storage capabilities using PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/taskvault/taskvault/internal/todo"
	"github.com/taskvault/taskvault/pkg/fault"
)

// poolIface abstracts query execution so the repository works with both
// *pgxpool.Pool and pgxmock in tests.
type poolIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TodoRepository implements all five todo storage capabilities
// (todo.Creator, todo.Counter, todo.Lister, todo.Getter, todo.Updater)
// using PostgreSQL.
type TodoRepository struct {
	pool poolIface
}

// NewTodoRepository creates a new PostgreSQL todo repository.
func NewTodoRepository(pool poolIface) *TodoRepository {
	return &TodoRepository{pool: pool}
}

const todoColumns = `id, owner_id, title, description, status, created_at, updated_at`

// Create stores a new item with status forced to draft, then re-fetches it
// so the returned item carries the generated ID and timestamps.
func (r *TodoRepository) Create(ctx context.Context, ownerID int64, title, description string) (*todo.TodoItem, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO todo_items (owner_id, title, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, ownerID, title, description, string(todo.StatusDraft)).Scan(&id)
	if err != nil {
		return nil, oops.Code("TODO_CREATE_FAILED").
			With("owner_id", ownerID).
			Wrap(err)
	}
	return r.Get(ctx, id)
}

// Count returns the number of items matching the filter's status
// predicate. The predicate is built by the same helper List uses, so the
// two can never drift apart.
func (r *TodoRepository) Count(ctx context.Context, filters todo.Filters) (int64, error) {
	where, args := filterPredicate(filters)

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM todo_items`+where, args...).Scan(&count)
	if err != nil {
		return 0, oops.Code("TODO_COUNT_FAILED").Wrap(err)
	}
	return count, nil
}

// List returns items matching the filter in ID order. Limit and Offset
// bound the page; the status predicate is shared with Count.
func (r *TodoRepository) List(ctx context.Context, filters todo.Filters) ([]*todo.TodoItem, error) {
	where, args := filterPredicate(filters)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + todoColumns + ` FROM todo_items`)
	sb.WriteString(where)
	sb.WriteString(` ORDER BY id`)
	if filters.Limit != nil {
		args = append(args, *filters.Limit)
		fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))
	}
	if filters.Offset != nil {
		args = append(args, *filters.Offset)
		fmt.Fprintf(&sb, ` OFFSET $%d`, len(args))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, oops.Code("TODO_LIST_FAILED").Wrap(err)
	}
	defer rows.Close()

	var items []*todo.TodoItem
	for rows.Next() {
		item, err := scanTodoItem(rows)
		if err != nil {
			return nil, oops.Code("TODO_LIST_FAILED").
				With("operation", "scan row").
				Wrap(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("TODO_LIST_FAILED").
			With("operation", "iterate rows").
			Wrap(err)
	}
	return items, nil
}

// Get retrieves an item by ID.
func (r *TodoRepository) Get(ctx context.Context, id int64) (*todo.TodoItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+todoColumns+` FROM todo_items WHERE id = $1`, id)

	item, err := scanTodoItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("TODO_NOT_FOUND").
			With("id", id).
			Wrap(fault.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("TODO_GET_FAILED").
			With("id", id).
			Wrap(err)
	}
	return item, nil
}

// UpdateStatus sets the item's status and refreshes updated_at, then
// re-fetches the row. Transition legality is the service's concern.
func (r *TodoRepository) UpdateStatus(ctx context.Context, id int64, status todo.Status) (*todo.TodoItem, error) {
	result, err := r.pool.Exec(ctx, `
		UPDATE todo_items SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, string(status))
	if err != nil {
		return nil, oops.Code("TODO_UPDATE_FAILED").
			With("id", id).
			With("status", string(status)).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return nil, oops.Code("TODO_NOT_FOUND").
			With("id", id).
			Wrap(fault.ErrNotFound)
	}
	return r.Get(ctx, id)
}

// filterPredicate builds the WHERE clause shared by Count and List.
func filterPredicate(filters todo.Filters) (string, []any) {
	if filters.Status == nil {
		return "", nil
	}
	return ` WHERE status = $1`, []any{string(*filters.Status)}
}

// scanTodoItem scans a row into a TodoItem, converting the stored status
// string back to its domain type.
func scanTodoItem(row pgx.Row) (*todo.TodoItem, error) {
	var item todo.TodoItem
	var status string
	if err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Title,
		&item.Description,
		&status,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := todo.ParseStatus(status)
	if err != nil {
		return nil, oops.With("operation", "parse stored status").With("status", status).Wrap(err)
	}
	item.Status = parsed
	return &item, nil
}
