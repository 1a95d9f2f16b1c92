// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package httpapi

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const accountIDKey = "account_id"

// requireAuth validates the bearer token and stores the authenticated
// account ID on the request context. Missing or invalid credentials are
// both answered with 401 so callers learn nothing about token state.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return unauthorized(c)
		}

		accountID, err := s.accounts.Authorize(c.Request().Context(), token)
		if err != nil {
			return unauthorized(c)
		}

		c.Set(accountIDKey, accountID)
		return next(c)
	}
}

// accountIDFrom returns the account ID stored by requireAuth.
func accountIDFrom(c echo.Context) int64 {
	id, _ := c.Get(accountIDKey).(int64)
	return id
}
