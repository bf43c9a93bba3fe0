// Package telemetry provides implementations of the telemetry port.
package telemetry

import (
	"context"

	"cratectl/internal/core/ports"
)

// Noop is a ports.Telemetry implementation that drops everything. Used in
// tests and wherever progress display is not wanted.
type Noop struct{}

// NewNoop creates a new Noop.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that ignores all calls.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Complete(error) {}

func (noopVertex) Cached() {}
