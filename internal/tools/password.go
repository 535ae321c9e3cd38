package tools

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/Mayi21/tool-sites/internal/form"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

func passwordTool() Tool {
	return Tool{
		Name:  "password",
		Title: "Password Generator",
		Schema: form.Schema{
			{Name: "length", Kind: form.Int, Default: 12, Min: 4, Max: 64},
			{Name: "use_upper", Kind: form.Bool, Default: true},
			{Name: "use_lower", Kind: form.Bool, Default: true},
			{Name: "use_digits", Kind: form.Bool, Default: true},
			{Name: "use_symbols", Kind: form.Bool, Default: false},
			{Name: "count", Kind: form.Int, Default: 1, Min: 1, Max: 200},
		},
		Defaults: passwordDefaults,
		Run:      runPassword,
	}
}

func passwordDefaults() map[string]any {
	return map[string]any{
		"length":      12,
		"use_upper":   true,
		"use_lower":   true,
		"use_digits":  true,
		"use_symbols": false,
		"count":       1,
	}
}

func runPassword(v form.Values) (Result, error) {
	var chars string
	if v["use_upper"].(bool) {
		chars += upperChars
	}
	if v["use_lower"].(bool) {
		chars += lowerChars
	}
	if v["use_digits"].(bool) {
		chars += digitChars
	}
	if v["use_symbols"].(bool) {
		chars += symbolChars
	}
	if chars == "" {
		return nil, failf("password", "at least one character class must be selected")
	}

	length := v["length"].(int)
	count := v["count"].(int)

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := randomString(chars, length)
		if err != nil {
			return nil, failf("password", "random source failed: %v", err)
		}
		passwords = append(passwords, pw)
	}
	return Result{"result": strings.Join(passwords, "\n")}, nil
}

// randomString draws length characters uniformly from chars using the
// cryptographic randomness source.
func randomString(chars string, length int) (string, error) {
	max := big.NewInt(int64(len(chars)))
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(chars[n.Int64()])
	}
	return b.String(), nil
}
