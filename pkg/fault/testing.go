// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package fault

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorCode asserts that err is an oops error with the given code.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	assert.Equal(t, code, oopsErr.Code())
}

// AssertKind asserts that err classifies as the given fault kind.
func AssertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	assert.Equal(t, kind, KindOf(err))
}
