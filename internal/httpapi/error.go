// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskvault/pkg/fault"
)

// writeError maps a service failure to an HTTP status and a stable error
// code. Unclassified failures get a generic body so internals never leak.
func (s *Server) writeError(c echo.Context, err error) error {
	fault.LogError(s.logger, "request failed", err)

	var status int
	var code string
	switch fault.KindOf(err) {
	case fault.KindNotFound:
		status, code = http.StatusNotFound, "not_found"
	case fault.KindForbidden:
		status, code = http.StatusForbidden, "forbidden"
	case fault.KindNotApplicable:
		status, code = http.StatusUnprocessableEntity, "operation_not_applicable"
	default:
		status, code = http.StatusInternalServerError, "internal_server_error"
	}
	return c.JSON(status, errorResponse{Error: errorData{Code: code}})
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: errorData{Code: "unauthorized"}})
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: errorData{Code: "bad_request"}})
}
