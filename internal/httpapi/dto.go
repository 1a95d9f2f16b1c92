// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package httpapi

import (
	"time"

	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/internal/todo"
)

type registerRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func newTokenResponse(token auth.AuthToken, now time.Time) tokenResponse {
	return tokenResponse{
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresIn:   int64(token.ExpiresAt.Sub(now).Seconds()),
	}
}

type createTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTodoRequest struct {
	Status string `json:"status"`
}

type todoItemData struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTodoItemData(item *todo.TodoItem) todoItemData {
	return todoItemData{
		ID:          item.ID,
		Title:       item.Title,
		Status:      string(item.Status),
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// response is the envelope for successful payloads. Meta carries the
// total match count on list responses and is omitted elsewhere.
type response struct {
	Data any   `json:"data"`
	Meta *meta `json:"meta,omitempty"`
}

type meta struct {
	Total int64 `json:"total"`
}

type errorResponse struct {
	Error errorData `json:"error"`
}

type errorData struct {
	Code string `json:"code"`
}
