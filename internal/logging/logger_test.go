package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "trace", want: zerolog.TraceLevel},
		{in: "debug", want: zerolog.DebugLevel},
		{in: "warn", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestNewFromEnv_ReadsLevel(t *testing.T) {
	t.Setenv("SPLITVIEW_LOG_LEVEL", "debug")
	t.Setenv("SPLITVIEW_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	logger := New(DefaultConfig())
	ctx := WithContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Equal(t, logger.GetLevel(), got.GetLevel())
}

func TestFromContext_MissingLoggerIsDisabled(t *testing.T) {
	got := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}
