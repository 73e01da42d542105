package classix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	enc, err := New()
	require.NoError(t, err)

	assert.NotNil(t, enc.random())
	assert.IsType(t, &NoOpObservabilityHook{}, enc.observer())
	assert.Nil(t, enc.Dictionary())
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		option Option
	}{
		{"nil hook", WithObservabilityHook(nil)},
		{"nil metrics", WithMetricsCollector(nil)},
		{"nil logger", WithLogger(nil)},
		{"nil random source", WithRandomSource(nil)},
		{"nil dictionary", WithDictionary(nil)},
		{"empty dictionary", WithDictionary(NewDictionary(nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.option)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestNew_CombinesHooks(t *testing.T) {
	hook := &recordingHook{}
	enc, err := New(
		WithObservabilityHook(hook),
		WithMetricsCollector(NewInMemoryMetricsCollector()),
	)
	require.NoError(t, err)
	assert.NotSame(t, hook, enc.observer())

	single, err := New(WithObservabilityHook(hook))
	require.NoError(t, err)
	assert.Same(t, hook, single.observer())
}
