package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Command tags ctx with the command name and returns a component logger
// that copies the command (and input, once set) onto events logged with
// .Ctx(ctx).
func Command(ctx context.Context, name string) (context.Context, zerolog.Logger) {
	return WithCommand(ctx, name), Component("commands").Hook(ContextHook{})
}
