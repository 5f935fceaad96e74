package domain

import "errors"

// Lifecycle errors. The engine itself reports misses through
// TransitionResult skips; handlers return these when a whole operation was
// a no-op because the target id is unknown, and the global error handler
// maps them to 404.
var (
	ErrLogNotFound     = errors.New("maintenance log not found")
	ErrRequestNotFound = errors.New("request not found")
)
