package monitoring

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ObservabilityHook defines hooks for monitoring cipher operations
type ObservabilityHook interface {
	// Called before a cipher runs
	OnProcessStart(ctx context.Context, operation string, metadata map[string]any)

	// Called after a cipher returns (success or failure)
	OnProcessComplete(ctx context.Context, operation string, duration time.Duration, err error, metadata map[string]any)

	// Called when errors occur
	OnError(ctx context.Context, operation string, err error, metadata map[string]any)

	// Called when a key was generated on the caller's behalf
	OnKeyGenerated(ctx context.Context, cipher string, keyLength int, metadata map[string]any)
}

// NoOpObservabilityHook is a no-op implementation of ObservabilityHook
type NoOpObservabilityHook struct{}

func (n *NoOpObservabilityHook) OnProcessStart(ctx context.Context, operation string, metadata map[string]any) {
}
func (n *NoOpObservabilityHook) OnProcessComplete(ctx context.Context, operation string, duration time.Duration, err error, metadata map[string]any) {
}
func (n *NoOpObservabilityHook) OnError(ctx context.Context, operation string, err error, metadata map[string]any) {
}
func (n *NoOpObservabilityHook) OnKeyGenerated(ctx context.Context, cipher string, keyLength int, metadata map[string]any) {
}

// Logger defines the interface for logging
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// StandardLogger wraps the standard log package
type StandardLogger struct{}

func (s *StandardLogger) Info(msg string, args ...any) {
	log.Printf("[INFO] "+msg, args...)
}

func (s *StandardLogger) Error(msg string, args ...any) {
	log.Printf("[ERROR] "+msg, args...)
}

func (s *StandardLogger) Debug(msg string, args ...any) {
	log.Printf("[DEBUG] "+msg, args...)
}

// LoggingObservabilityHook logs all operations. Texts and keys never reach the log, only
// their lengths.
type LoggingObservabilityHook struct {
	logger Logger
}

// NewLoggingObservabilityHook creates a new logging observability hook
func NewLoggingObservabilityHook(logger Logger) *LoggingObservabilityHook {
	if logger == nil {
		logger = &StandardLogger{}
	}
	return &LoggingObservabilityHook{
		logger: logger,
	}
}

func (l *LoggingObservabilityHook) OnProcessStart(ctx context.Context, operation string, metadata map[string]any) {
	l.logger.Debug("cipher started: %s, metadata: %v", operation, metadata)
}

func (l *LoggingObservabilityHook) OnProcessComplete(ctx context.Context, operation string, duration time.Duration, err error, metadata map[string]any) {
	if err != nil {
		l.logger.Error("cipher failed: %s, duration: %v, error: %v, metadata: %v", operation, duration, err, metadata)
	} else {
		l.logger.Info("cipher completed: %s, duration: %v, metadata: %v", operation, duration, metadata)
	}
}

func (l *LoggingObservabilityHook) OnError(ctx context.Context, operation string, err error, metadata map[string]any) {
	l.logger.Error("cipher error: %s, error: %v, metadata: %v", operation, err, metadata)
}

func (l *LoggingObservabilityHook) OnKeyGenerated(ctx context.Context, cipher string, keyLength int, metadata map[string]any) {
	l.logger.Info("key generated: %s, length: %d, metadata: %v", cipher, keyLength, metadata)
}

// MetricsObservabilityHook turns hook calls into classix.* metrics
type MetricsObservabilityHook struct {
	collector MetricsCollector
}

// NewMetricsObservabilityHook creates a new metrics observability hook
func NewMetricsObservabilityHook(collector MetricsCollector) *MetricsObservabilityHook {
	if collector == nil {
		collector = &NoOpMetricsCollector{}
	}
	return &MetricsObservabilityHook{
		collector: collector,
	}
}

func tagsFor(operation string, metadata map[string]any) map[string]string {
	tags := map[string]string{"operation": operation}
	if direction, ok := metadata["direction"].(string); ok {
		tags["direction"] = direction
	}
	return tags
}

func (m *MetricsObservabilityHook) OnProcessStart(ctx context.Context, operation string, metadata map[string]any) {
	m.collector.IncrementCounter("classix.process.started", tagsFor(operation, metadata))
}

func (m *MetricsObservabilityHook) OnProcessComplete(ctx context.Context, operation string, duration time.Duration, err error, metadata map[string]any) {
	tags := tagsFor(operation, metadata)
	if err != nil {
		tags["status"] = "error"
		m.collector.IncrementCounter("classix.process.failed", tags)
	} else {
		tags["status"] = "success"
		m.collector.IncrementCounter("classix.process.succeeded", tags)
		if length, ok := metadata["output_length"].(int); ok {
			m.collector.RecordValue("classix.process.output_length", float64(length), tagsFor(operation, metadata))
		}
	}

	m.collector.RecordTiming("classix.process.duration", duration, tags)
}

func (m *MetricsObservabilityHook) OnError(ctx context.Context, operation string, err error, metadata map[string]any) {
	tags := map[string]string{
		"operation": operation,
		"error":     fmt.Sprintf("%T", err),
	}
	m.collector.IncrementCounter("classix.errors", tags)
}

func (m *MetricsObservabilityHook) OnKeyGenerated(ctx context.Context, cipher string, keyLength int, metadata map[string]any) {
	m.collector.IncrementCounter("classix.keys.generated", map[string]string{"cipher": cipher})
	m.collector.RecordValue("classix.keys.length", float64(keyLength), map[string]string{"cipher": cipher})
}

// CompositeObservabilityHook combines multiple hooks
type CompositeObservabilityHook struct {
	hooks []ObservabilityHook
}

// NewCompositeObservabilityHook creates a new composite hook
func NewCompositeObservabilityHook(hooks ...ObservabilityHook) *CompositeObservabilityHook {
	return &CompositeObservabilityHook{
		hooks: hooks,
	}
}

func (c *CompositeObservabilityHook) OnProcessStart(ctx context.Context, operation string, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnProcessStart(ctx, operation, metadata)
	}
}

func (c *CompositeObservabilityHook) OnProcessComplete(ctx context.Context, operation string, duration time.Duration, err error, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnProcessComplete(ctx, operation, duration, err, metadata)
	}
}

func (c *CompositeObservabilityHook) OnError(ctx context.Context, operation string, err error, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnError(ctx, operation, err, metadata)
	}
}

func (c *CompositeObservabilityHook) OnKeyGenerated(ctx context.Context, cipher string, keyLength int, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnKeyGenerated(ctx, cipher, keyLength, metadata)
	}
}
