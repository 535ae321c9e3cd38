package tools

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Mayi21/tool-sites/internal/form"
)

func unicodeTool() Tool {
	return Tool{
		Name:  "unicode",
		Title: "Unicode Escape",
		Schema: form.Schema{
			{Name: "text", Kind: form.Text, Required: true},
			{Name: "action", Kind: form.Choice, Default: "encode", Choices: []string{"encode", "decode"}},
		},
		Run: runUnicode,
	}
}

func runUnicode(v form.Values) (Result, error) {
	text := v["text"].(string)
	if v["action"].(string) == "encode" {
		return Result{"result": unicodeEscape(text)}, nil
	}
	return Result{"result": unicodeUnescape(text)}, nil
}

// unicodeEscape emits one \uXXXX escape per UTF-16 code unit. Newline,
// carriage return and tab stay readable; a newline escape is followed by an
// actual line break so long output wraps.
func unicodeEscape(s string) string {
	var b strings.Builder
	for _, u := range utf16.Encode([]rune(s)) {
		switch u {
		case '\n':
			b.WriteString("\\n\n")
		case '\r':
			b.WriteString("\\r")
		case '\t':
			b.WriteString("\\t")
		default:
			fmt.Fprintf(&b, "\\u%04x", u)
		}
	}
	return b.String()
}

// unicodeUnescape reverses unicodeEscape. Consecutive \uXXXX escapes are
// collected and decoded together so surrogate pairs survive the round trip.
// Anything that is not a recognized escape passes through untouched.
func unicodeUnescape(s string) string {
	var b strings.Builder
	var units []uint16

	flush := func() {
		if len(units) == 0 {
			return
		}
		for _, r := range utf16.Decode(units) {
			b.WriteRune(r)
		}
		units = units[:0]
	}

	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'u':
				if i+6 <= len(s) {
					if n, err := strconv.ParseUint(s[i+2:i+6], 16, 16); err == nil {
						units = append(units, uint16(n))
						i += 6
						continue
					}
				}
			case 'n':
				flush()
				b.WriteByte('\n')
				i += 2
				// Skip the readability line break the encoder appends.
				if i < len(s) && s[i] == '\n' {
					i++
				}
				continue
			case 'r':
				flush()
				b.WriteByte('\r')
				i += 2
				continue
			case 't':
				flush()
				b.WriteByte('\t')
				i += 2
				continue
			}
		}
		flush()
		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteRune(r)
		i += size
	}
	flush()
	return b.String()
}
