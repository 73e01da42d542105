package classix

import "github.com/hengadev/classix/internal/monitoring"

// Monitoring types re-exported so callers can plug their own implementations.
type (
	MetricsCollector  = monitoring.MetricsCollector
	ObservabilityHook = monitoring.ObservabilityHook
	Logger            = monitoring.Logger

	NoOpMetricsCollector     = monitoring.NoOpMetricsCollector
	InMemoryMetricsCollector = monitoring.InMemoryMetricsCollector
	NoOpObservabilityHook    = monitoring.NoOpObservabilityHook
)

// NewInMemoryMetricsCollector creates a collector that keeps every sample in memory.
func NewInMemoryMetricsCollector() *InMemoryMetricsCollector {
	return monitoring.NewInMemoryMetricsCollector()
}
