package tools

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDDefaultsToV4(t *testing.T) {
	result := mustRun(t, "uuid", url.Values{})
	id, err := uuid.Parse(resultString(t, result, "result"))
	if err != nil {
		t.Fatalf("output is not a UUID: %v", err)
	}
	if id.Version() != 4 {
		t.Errorf("expected version 4, got %d", id.Version())
	}
}

func TestUUIDCount(t *testing.T) {
	result := mustRun(t, "uuid", url.Values{"version": {"4"}, "count": {"10"}})
	lines := strings.Split(resultString(t, result, "result"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 UUIDs, got %d", len(lines))
	}
	seen := make(map[string]bool)
	for _, line := range lines {
		if _, err := uuid.Parse(line); err != nil {
			t.Errorf("invalid UUID %q: %v", line, err)
		}
		if seen[line] {
			t.Errorf("duplicate UUID %q", line)
		}
		seen[line] = true
	}
}

func TestUUIDVersions(t *testing.T) {
	for _, version := range []string{"1", "3", "4", "5"} {
		result := mustRun(t, "uuid", url.Values{"version": {version}})
		id, err := uuid.Parse(resultString(t, result, "result"))
		if err != nil {
			t.Fatalf("version %s: invalid output: %v", version, err)
		}
		if got := int(id.Version()); got != int(version[0]-'0') {
			t.Errorf("requested version %s, got %d", version, got)
		}
	}
}

func TestUUIDNameBasedVersionsAreDeterministic(t *testing.T) {
	for _, version := range []string{"3", "5"} {
		a := resultString(t, mustRun(t, "uuid", url.Values{"version": {version}}), "result")
		b := resultString(t, mustRun(t, "uuid", url.Values{"version": {version}}), "result")
		if a != b {
			t.Errorf("version %s should repeat, got %q and %q", version, a, b)
		}
	}
}
