// Package observability provides event logging, metrics calculation, and
// alerting for Aura. Scheduling events are persisted as JSON Lines (JSONL)
// and metrics are derived on-demand from the event log; alerts are
// evaluated against the current task registry.
package observability
