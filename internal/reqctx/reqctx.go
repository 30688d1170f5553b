package reqctx

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type key int

const runKey key = 0

// RunContext identifies one search run across every request it issues
type RunContext struct {
	RunID     string
	StartTime time.Time
}

// WithRunContext attaches a fresh run ID to ctx
func WithRunContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, runKey, &RunContext{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
	})
}

// GetRunContext returns the run attached to ctx, or a placeholder
func GetRunContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runKey).(*RunContext); ok {
		return rc
	}
	return &RunContext{
		RunID:     "unknown",
		StartTime: time.Now(),
	}
}

// Logger returns the global logger tagged with the run ID from ctx
func Logger(ctx context.Context) *zerolog.Logger {
	l := log.With().Str("run_id", GetRunContext(ctx).RunID).Logger()
	return &l
}

// RunError wraps an error with the run it happened in
type RunError struct {
	RunID string
	Err   error
}

// Error implements the error interface
func (e *RunError) Error() string {
	return fmt.Sprintf("[%s] %v", e.RunID, e.Err)
}

// Unwrap returns the underlying error
func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a new RunError from context
func NewRunError(ctx context.Context, err error) error {
	return &RunError{
		RunID: GetRunContext(ctx).RunID,
		Err:   err,
	}
}
