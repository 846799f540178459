package domain

import (
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// BuildResult is the outcome of one build tool invocation.
// A nonzero ExitCode is a normal outcome, not an error.
type BuildResult struct {
	// ExitCode is the process exit status. Negative values encode termination by
	// signal (-<signal number>), or -1 when the platform reports no status.
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Success reports whether the tool exited with status 0.
func (r *BuildResult) Success() bool {
	return r.ExitCode == 0
}

// Signaled reports whether the process terminated abnormally.
func (r *BuildResult) Signaled() bool {
	return r.ExitCode < 0
}

// StdoutText returns stdout decoded as UTF-8, with invalid sequences replaced by U+FFFD.
func (r *BuildResult) StdoutText() string {
	return DecodeLenient(r.Stdout)
}

// StderrText returns stderr decoded as UTF-8, with invalid sequences replaced by U+FFFD.
func (r *BuildResult) StderrText() string {
	return DecodeLenient(r.Stderr)
}

// DecodeLenient converts b to a valid UTF-8 string. It never fails.
func DecodeLenient(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out, _, err := transform.Bytes(runes.ReplaceIllFormed(), b)
	if err != nil {
		// ReplaceIllFormed does not produce errors; keep the input rather than drop it.
		return string(b)
	}
	return string(out)
}
