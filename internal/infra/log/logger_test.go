package logs

import (
	"log/slog"
	"testing"

	"booknow/config"
	"booknow/internal/infra/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RetainsRecords(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"
	ring := resilience.NewErrorLog(5)

	logger, err := New(Params{Config: cfg, ErrorLog: ring})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Error("kept", resilience.CategoryDatabase.Attr())

	entries := ring.Recent(5, "", slog.LevelDebug)
	require.Len(t, entries, 1)
	assert.Equal(t, resilience.CategoryDatabase, entries[0].Category)
}
