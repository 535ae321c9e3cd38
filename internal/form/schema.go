package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Kind identifies the value type a field accepts.
type Kind int

const (
	Text Kind = iota
	Int
	Bool
	Choice
	File
)

// Field declares one form input: its type, whether it must be present, the
// value substituted when it is omitted, numeric bounds, and the accepted
// values for enumerated fields.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Default  any
	Min, Max int
	Choices  []string
}

// Schema is the ordered field list for one tool.
type Schema []Field

// Values is a validated, typed, defaulted input record. Text and Choice
// fields map to string, Int to int, Bool to bool, File to []byte.
type Values map[string]any

// ValidationError names the first constraint a raw input violated.
// Validation is purely structural; nothing is clamped or coerced silently.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameters: field %q %s", e.Field, e.Reason)
}

// Validate maps raw form values (plus any uploaded file bytes, keyed by field
// name) onto the schema. It returns a typed record or the first violation.
func (s Schema) Validate(raw url.Values, files map[string][]byte) (Values, error) {
	out := make(Values, len(s))
	for _, f := range s {
		switch f.Kind {
		case File:
			data := files[f.Name]
			if len(data) == 0 {
				if f.Required {
					return nil, &ValidationError{f.Name, "is required"}
				}
				continue
			}
			out[f.Name] = data

		case Text:
			v := raw.Get(f.Name)
			if v == "" {
				if f.Required {
					return nil, &ValidationError{f.Name, "is required"}
				}
				if d, ok := f.Default.(string); ok {
					v = d
				}
			}
			out[f.Name] = v

		case Choice:
			v := raw.Get(f.Name)
			if v == "" {
				if d, ok := f.Default.(string); ok {
					v = d
				} else if f.Required {
					return nil, &ValidationError{f.Name, "is required"}
				}
			}
			if !contains(f.Choices, v) {
				return nil, &ValidationError{f.Name, "must be one of " + strings.Join(f.Choices, ", ")}
			}
			out[f.Name] = v

		case Int:
			v := raw.Get(f.Name)
			var n int
			if v == "" {
				if f.Required {
					return nil, &ValidationError{f.Name, "is required"}
				}
				d, ok := f.Default.(int)
				if !ok {
					continue
				}
				n = d
			} else {
				parsed, err := strconv.Atoi(v)
				if err != nil {
					return nil, &ValidationError{f.Name, "must be an integer"}
				}
				n = parsed
			}
			if f.Max != 0 && (n < f.Min || n > f.Max) {
				return nil, &ValidationError{f.Name, fmt.Sprintf("must be between %d and %d", f.Min, f.Max)}
			}
			out[f.Name] = n

		case Bool:
			// Checkbox semantics: an absent field is false, whatever its
			// page-initial value. Defaults only apply to rendered forms.
			out[f.Name] = parseBool(raw.Get(f.Name))
		}
	}
	return out, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "", "0", "false", "off":
		return false
	default:
		return true
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
