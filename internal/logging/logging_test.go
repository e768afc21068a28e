package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
		want   zerolog.Level
	}{
		{name: "debug level", level: "debug", format: FormatJSON, want: zerolog.DebugLevel},
		{name: "warn level", level: "warn", format: FormatJSON, want: zerolog.WarnLevel},
		{name: "mixed case", level: "ERROR", format: FormatJSON, want: zerolog.ErrorLevel},
		{name: "unknown level falls back to info", level: "nonsense", format: FormatJSON, want: zerolog.InfoLevel},
		{name: "empty level falls back to info", level: "", format: FormatConsole, want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New("addrsplit", tt.level, tt.format)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}
