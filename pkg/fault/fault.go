// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package fault defines the error taxonomy shared by all TaskVault services.
//
// Every error leaving a service or repository is classified into one of four
// kinds: NotFound (entity absent), Forbidden (authenticated but not
// authorized), NotApplicable (semantically invalid transition or request
// shape), and Unknown (infrastructure or unexpected failure). Services wrap
// the sentinel errors below with oops for codes and context; transports call
// KindOf to map an error chain back to a kind.
package fault

import "errors"

// Sentinel errors carried inside wrapped error chains.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the caller is not authorized for the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotApplicable indicates a semantically invalid operation,
	// such as an illegal status transition or malformed request shape.
	ErrNotApplicable = errors.New("operation not applicable")
)

// Kind classifies an error for transport-level mapping.
type Kind int

// Error kinds, from least to most specific handling.
const (
	// KindUnknown covers infrastructure and unexpected failures.
	// Transports must not leak its details to clients.
	KindUnknown Kind = iota

	// KindNotFound maps to a client not-found response.
	KindNotFound

	// KindForbidden maps to an authorization-denied response.
	KindForbidden

	// KindNotApplicable maps to a client unprocessable-request response.
	KindNotApplicable
)

// String returns the kind name for logs and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindNotApplicable:
		return "not_applicable"
	default:
		return "unknown"
	}
}

// KindOf walks the wrapped error chain and returns the matching kind.
// Errors that carry none of the sentinels classify as KindUnknown.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrNotApplicable):
		return KindNotApplicable
	default:
		return KindUnknown
	}
}
