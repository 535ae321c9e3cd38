package tools

import (
	"net/url"
	"strings"
	"testing"
)

func TestPasswordLengthAndCount(t *testing.T) {
	result := mustRun(t, "password", url.Values{
		"length":     {"20"},
		"count":      {"3"},
		"use_lower":  {"1"},
		"use_digits": {"1"},
	})
	lines := strings.Split(resultString(t, result, "result"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 passwords, got %d", len(lines))
	}
	for _, pw := range lines {
		if len(pw) != 20 {
			t.Errorf("expected length 20, got %d (%q)", len(pw), pw)
		}
	}
}

func TestPasswordRespectsCharset(t *testing.T) {
	result := mustRun(t, "password", url.Values{
		"length":     {"64"},
		"use_digits": {"1"},
	})
	pw := resultString(t, result, "result")
	for _, c := range pw {
		if !strings.ContainsRune(digitChars, c) {
			t.Errorf("unexpected character %q in digits-only password", c)
		}
	}
}

func TestPasswordNoClassSelected(t *testing.T) {
	// All checkboxes unchecked means every class field arrives absent.
	_, err := runTool(t, "password", url.Values{"length": {"12"}})
	if err == nil {
		t.Fatal("expected empty charset to fail")
	}
}

func TestPasswordLengthBounds(t *testing.T) {
	reg := NewRegistry()
	tool, _ := reg.Get("password")

	for _, bad := range []string{"3", "65"} {
		if _, err := tool.Schema.Validate(url.Values{"length": {bad}}, nil); err == nil {
			t.Errorf("expected length %s to be rejected", bad)
		}
	}
}
