package tools

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/Mayi21/tool-sites/internal/form"
)

func diffTool() Tool {
	return Tool{
		Name:  "diff",
		Title: "Text Diff",
		Schema: form.Schema{
			{Name: "text1", Kind: form.Text, Required: true},
			{Name: "text2", Kind: form.Text, Required: true},
		},
		Run: runDiff,
	}
}

func runDiff(v form.Values) (Result, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(v["text1"].(string)),
		B:        difflib.SplitLines(v["text2"].(string)),
		FromFile: "text1",
		ToFile:   "text2",
		Context:  3,
	}
	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, failf("diff", "diff failed: %v", err)
	}
	return Result{"diff": strings.TrimRight(out, "\n")}, nil
}
