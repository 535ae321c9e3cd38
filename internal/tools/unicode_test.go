package tools

import (
	"net/url"
	"testing"
)

func TestUnicodeEncode(t *testing.T) {
	result := mustRun(t, "unicode", url.Values{"text": {"你好"}, "action": {"encode"}})
	if got := resultString(t, result, "result"); got != `\u4f60\u597d` {
		t.Errorf("unexpected escape: %q", got)
	}
}

func TestUnicodeDecode(t *testing.T) {
	result := mustRun(t, "unicode", url.Values{"text": {`\u4f60\u597d`}, "action": {"decode"}})
	if got := resultString(t, result, "result"); got != "你好" {
		t.Errorf("unexpected unescape: %q", got)
	}
}

func TestUnicodeRoundTrips(t *testing.T) {
	inputs := []string{
		"hello",
		"你好，世界",
		"line one\nline two",
		"tab\there\rcr",
		"emoji 🎉 outside the BMP",
	}
	for _, in := range inputs {
		encoded := resultString(t, mustRun(t, "unicode", url.Values{"text": {in}, "action": {"encode"}}), "result")
		decoded := resultString(t, mustRun(t, "unicode", url.Values{"text": {encoded}, "action": {"decode"}}), "result")
		if decoded != in {
			t.Errorf("round trip of %q gave %q (via %q)", in, decoded, encoded)
		}
	}
}

func TestUnicodeDecodePassesThroughPlainText(t *testing.T) {
	result := mustRun(t, "unicode", url.Values{"text": {"no escapes here"}, "action": {"decode"}})
	if got := resultString(t, result, "result"); got != "no escapes here" {
		t.Errorf("plain text changed: %q", got)
	}
}

func TestUnicodeEncodeNewlineStaysReadable(t *testing.T) {
	result := mustRun(t, "unicode", url.Values{"text": {"a\nb"}, "action": {"encode"}})
	if got := resultString(t, result, "result"); got != "\\u0061\\n\n\\u0062" {
		t.Errorf("unexpected newline handling: %q", got)
	}
}
