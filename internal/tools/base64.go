package tools

import (
	"encoding/base64"
	"strings"

	"github.com/Mayi21/tool-sites/internal/form"
)

func base64Tool() Tool {
	return Tool{
		Name:  "base64",
		Title: "Base64",
		Schema: form.Schema{
			{Name: "text", Kind: form.Text},
			{Name: "file", Kind: form.File},
			{Name: "action", Kind: form.Choice, Default: "encode", Choices: []string{"encode", "decode"}},
		},
		Run: runBase64,
	}
}

func runBase64(v form.Values) (Result, error) {
	action := v["action"].(string)

	if data, ok := v["file"].([]byte); ok {
		if action == "encode" {
			return Result{"result": base64.StdEncoding.EncodeToString(data)}, nil
		}
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, failf("base64", "decode failed: %v", err)
		}
		// Decoded file bytes may be binary, so the envelope carries them
		// re-encoded for the client to download.
		return Result{"result": base64.StdEncoding.EncodeToString(decoded)}, nil
	}

	text, _ := v["text"].(string)
	if text == "" {
		return nil, failf("base64", "no text or file provided")
	}
	if action == "encode" {
		return Result{"result": base64.StdEncoding.EncodeToString([]byte(text))}, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, failf("base64", "decode failed: %v", err)
	}
	return Result{"result": string(decoded)}, nil
}
