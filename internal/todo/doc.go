// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package todo implements the todo item workflow for TaskVault.
//
// Storage is expressed as five single-operation capability interfaces
// (Creator, Counter, Lister, Getter, Updater); Service composes them into
// the full use cases and centrally enforces the status state machine and
// the single-owner authorization rule before delegating any mutation.
package todo
