package templates

import (
	"fmt"
	"time"
)

// formatDateTime renders timestamps the way the UI shows them everywhere.
func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

// FormatDateTime is the exported variant for handlers building view models.
func FormatDateTime(t time.Time) string {
	return formatDateTime(t)
}

func valueString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
}
