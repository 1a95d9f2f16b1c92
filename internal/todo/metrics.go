// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package todo

import "github.com/prometheus/client_golang/prometheus"

// Outcome constants for workflow operation metrics.
const (
	OutcomeSuccess       = "success"
	OutcomeNotFound      = "not_found"
	OutcomeForbidden     = "forbidden"
	OutcomeNotApplicable = "not_applicable"
	OutcomeError         = "error"
)

// WorkflowOperations is the counter for todo workflow operations.
// Use RegisterMetrics to register this with a Prometheus registry.
var WorkflowOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "taskvault_todo_operations_total",
		Help: "Total number of todo workflow operations",
	},
	[]string{"operation", "outcome"},
)

// StatusTransitions is the counter for applied status transitions.
// Use RegisterMetrics to register this with a Prometheus registry.
var StatusTransitions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "taskvault_todo_status_transitions_total",
		Help: "Total number of applied todo status transitions",
	},
	[]string{"from", "to"},
)

// RegisterMetrics registers todo package metrics with the given Prometheus
// registry. This must be called at startup to make metrics available on
// /metrics. Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(WorkflowOperations)
	reg.MustRegister(StatusTransitions)
}

// recordOperation increments the workflow operation counter.
func recordOperation(operation, outcome string) {
	WorkflowOperations.WithLabelValues(operation, outcome).Inc()
}

// recordTransition increments the status transition counter.
func recordTransition(from, to Status) {
	StatusTransitions.WithLabelValues(string(from), string(to)).Inc()
}
