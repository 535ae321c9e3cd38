package tools

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Mayi21/tool-sites/internal/form"
)

// Numeric inputs above this value are treated as millisecond timestamps.
const millisecondThreshold = 1e12

const datetimeLayout = "2006-01-02 15:04:05"

func timestampTool() Tool {
	return Tool{
		Name:  "timestamp",
		Title: "Timestamp Converter",
		Schema: form.Schema{
			{Name: "timestamp", Kind: form.Text},
			{Name: "datetime_str", Kind: form.Text},
		},
		Defaults: timestampDefaults,
		Run:      runTimestamp,
	}
}

// timestampDefaults shows the current time in both resolutions on the
// initial page load.
func timestampDefaults() map[string]any {
	now := time.Now()
	return map[string]any{
		"timestamp":    strconv.FormatInt(now.Unix(), 10),
		"datetime_str": now.Format(datetimeLayout + ".000"),
		"result": fmt.Sprintf("Current time: %s\nSeconds timestamp: %d\nMilliseconds timestamp: %d",
			now.Format(datetimeLayout+".000"), now.Unix(), now.UnixMilli()),
	}
}

func runTimestamp(v form.Values) (Result, error) {
	ts, _ := v["timestamp"].(string)
	dt, _ := v["datetime_str"].(string)

	switch {
	case strings.TrimSpace(ts) != "":
		sec, ms, err := SplitTimestamp(strings.TrimSpace(ts))
		if err != nil {
			return nil, failf("timestamp", "conversion failed: %v", err)
		}
		t := time.Unix(int64(sec), 0)
		return Result{"result": fmt.Sprintf("%s.%03d", t.Format(datetimeLayout), ms)}, nil

	case strings.TrimSpace(dt) != "":
		// time.Parse accepts a fractional second after the seconds element
		// even when the layout has none.
		t, err := time.ParseInLocation(datetimeLayout, strings.TrimSpace(dt), time.Local)
		if err != nil {
			return nil, failf("timestamp", "conversion failed: %v", err)
		}
		return Result{"result": fmt.Sprintf("Seconds timestamp: %d\nMilliseconds timestamp: %d",
			t.Unix(), t.UnixMilli())}, nil

	default:
		return nil, failf("timestamp", "no timestamp or datetime provided")
	}
}

// SplitTimestamp parses a numeric timestamp string, auto-detecting second
// versus millisecond resolution, and returns whole seconds plus the
// millisecond component.
func SplitTimestamp(s string) (seconds float64, millis int64, err error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid timestamp %q", s)
	}
	if f > millisecondThreshold {
		return f / 1000, int64(f) % 1000, nil
	}
	return f, int64((f - math.Trunc(f)) * 1000), nil
}
