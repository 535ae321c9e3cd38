package tools

import (
	"net/url"
	"regexp"
	"strings"
	"testing"
)

var (
	ipv4Pattern = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})$`)
	ipv6Pattern = regexp.MustCompile(`^[0-9a-f]{1,4}(:[0-9a-f]{1,4}){7}$`)
)

func TestIPGenIPv4(t *testing.T) {
	result := mustRun(t, "ipgen", url.Values{"ip_type": {"ipv4"}, "count": {"5"}})
	lines := strings.Split(resultString(t, result, "result"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 addresses, got %d", len(lines))
	}
	for _, line := range lines {
		if !ipv4Pattern.MatchString(line) {
			t.Errorf("not an IPv4 address: %q", line)
		}
	}
}

func TestIPGenIPv6(t *testing.T) {
	result := mustRun(t, "ipgen", url.Values{"ip_type": {"ipv6"}, "count": {"5"}})
	lines := strings.Split(resultString(t, result, "result"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 addresses, got %d", len(lines))
	}
	for _, line := range lines {
		if !ipv6Pattern.MatchString(line) {
			t.Errorf("not an IPv6 address: %q", line)
		}
	}
}

func TestIPGenDefaults(t *testing.T) {
	result := mustRun(t, "ipgen", url.Values{})
	out := resultString(t, result, "result")
	if strings.Contains(out, "\n") {
		t.Errorf("expected a single address, got %q", out)
	}
	if !ipv4Pattern.MatchString(out) {
		t.Errorf("expected IPv4 by default, got %q", out)
	}
}

func TestIPGenCountBounds(t *testing.T) {
	reg := NewRegistry()
	tool, _ := reg.Get("ipgen")

	for _, bad := range []string{"0", "201", "-1"} {
		if _, err := tool.Schema.Validate(url.Values{"count": {bad}}, nil); err == nil {
			t.Errorf("expected count %s to be rejected", bad)
		}
	}
	if _, err := tool.Schema.Validate(url.Values{"count": {"200"}}, nil); err != nil {
		t.Errorf("expected count 200 to pass: %v", err)
	}
}
