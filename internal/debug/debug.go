package debug

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DebugHeader prints a trace header if tracing is enabled
func DebugHeader(enabled bool) {
	if enabled {
		log.Debug().Msg("=== TRACE START ===")
	}
}

// DebugFooter prints a trace footer if tracing is enabled
func DebugFooter(enabled bool) {
	if enabled {
		log.Debug().Msg("=== TRACE END ===")
	}
}

// DebugOutput prints one trace line if tracing is enabled
func DebugOutput(enabled bool, format string, args ...interface{}) {
	if enabled {
		log.Debug().Msg(fmt.Sprintf(format, args...))
	}
}

// DebugTiming measures and logs execution time if tracing is enabled
func DebugTiming(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(enabled, "Starting: %s", operation)

	return func() {
		duration := time.Since(start)
		DebugOutput(enabled, "Completed: %s (took %v)", operation, duration)
	}
}
