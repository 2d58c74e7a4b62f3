package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	inputKey   contextKey = "input"
)

// WithCommand adds the running command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithInput adds the source of the points being processed (a file path or
// "stdin") to the context.
func WithInput(ctx context.Context, input string) context.Context {
	return context.WithValue(ctx, inputKey, input)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}

// GetInput retrieves the input source from the context.
// Returns empty string if not present.
func GetInput(ctx context.Context) string {
	if v, ok := ctx.Value(inputKey).(string); ok {
		return v
	}
	return ""
}
