// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskvault/internal/todo"
)

// defaultListLimit bounds GET /todo when the client sends no limit.
const defaultListLimit = int32(10)

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	token, err := s.accounts.Register(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, response{Data: newTokenResponse(token, s.now())})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	token, err := s.accounts.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, response{Data: newTokenResponse(token, s.now())})
}

func (s *Server) handleCreateTodo(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	item, err := s.todos.Create(c.Request().Context(), accountIDFrom(c), req.Title, req.Description)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, response{Data: newTodoItemData(item)})
}

func (s *Server) handleListTodos(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return badRequest(c)
	}

	items, total, err := s.todos.List(c.Request().Context(), filters)
	if err != nil {
		return s.writeError(c, err)
	}

	data := make([]todoItemData, 0, len(items))
	for _, item := range items {
		data = append(data, newTodoItemData(item))
	}
	return c.JSON(http.StatusOK, response{Data: data, Meta: &meta{Total: total}})
}

func (s *Server) handleGetTodo(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c)
	}

	item, err := s.todos.Get(c.Request().Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, response{Data: newTodoItemData(item)})
}

func (s *Server) handleUpdateTodo(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c)
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	status, err := todo.ParseStatus(req.Status)
	if err != nil {
		return s.writeError(c, err)
	}

	item, err := s.todos.Update(c.Request().Context(), accountIDFrom(c), id, status)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, response{Data: newTodoItemData(item)})
}

// parseFilters reads the status, limit, and offset query parameters.
// Limit defaults when absent; offset stays unset.
func parseFilters(c echo.Context) (todo.Filters, error) {
	var filters todo.Filters

	if raw := c.QueryParam("status"); raw != "" {
		status, err := todo.ParseStatus(raw)
		if err != nil {
			return todo.Filters{}, err
		}
		filters.Status = &status
	}

	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			return todo.Filters{}, echo.ErrBadRequest
		}
		limit = int32(parsed)
	}
	filters.Limit = &limit

	if raw := c.QueryParam("offset"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			return todo.Filters{}, echo.ErrBadRequest
		}
		offset := int32(parsed)
		filters.Offset = &offset
	}

	return filters, nil
}
