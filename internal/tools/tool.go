package tools

import (
	"fmt"

	"github.com/Mayi21/tool-sites/internal/form"
)

// Result carries a tool's output fields. The dispatcher merges them into the
// response envelope alongside the echoed validated inputs.
type Result map[string]any

// TransformError is a tool failure on well-typed input, such as a malformed
// Base64 payload or an unparsable date string. Deterministic, never retried.
type TransformError struct {
	Tool string
	Err  error
}

func (e *TransformError) Error() string {
	return e.Tool + ": " + e.Err.Error()
}

func (e *TransformError) Unwrap() error { return e.Err }

func failf(tool, format string, args ...any) error {
	return &TransformError{Tool: tool, Err: fmt.Errorf(format, args...)}
}

// Tool couples an explicit name with its input schema and transform. The name
// is registered alongside the function and used for routing, usage counting,
// and cache keys; it is never inferred from presentation details.
type Tool struct {
	Name   string
	Title  string
	Schema form.Schema

	// Defaults supplies the initial page context for GET requests. Nil means
	// an empty form.
	Defaults func() map[string]any

	// Run executes the transform on a validated input record. It must be
	// pure apart from its own randomness source.
	Run func(form.Values) (Result, error)
}
