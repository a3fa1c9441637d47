package common

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LoggingEnabled controls whether Logf produces output.
var LoggingEnabled = true

// LogOutput receives everything written by Logf.
var LogOutput io.Writer = os.Stdout

// Logf prints a formatted message if logging is enabled.
func Logf(format string, args ...interface{}) {
	if LoggingEnabled {
		fmt.Fprintf(LogOutput, format, args...)
	}
}

// formatDuration formats a duration with 2 decimal places.
// Returns a string like "1.23 ms" (no padding).
func formatDuration(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)

	if ms >= 1000 {
		return fmt.Sprintf("%.2f s", ms/1000)
	} else if ms < 0.01 {
		return fmt.Sprintf("%.2f us", ms*1000)
	}
	return fmt.Sprintf("%.2f ms", ms)
}

// LogDuration prints a message with the elapsed time since start.
// The duration is wrapped in parens and right-padded to align messages.
func LogDuration(start time.Time, format string, args ...interface{}) {
	logElapsed(time.Since(start), format, args...)
}

func logElapsed(elapsed time.Duration, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	durStr := fmt.Sprintf("(%s)", formatDuration(elapsed))
	Logf("%-10s%s\n", durStr, msg)
}
