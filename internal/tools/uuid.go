package tools

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Mayi21/tool-sites/internal/form"
)

// Versions 3 and 5 hash a fixed demonstration name under the DNS namespace,
// so their output repeats across calls. Kept as-is pending a decision on
// accepting caller-supplied names.
const nameBasedDemo = "example.com"

func uuidTool() Tool {
	return Tool{
		Name:  "uuid",
		Title: "UUID Generator",
		Schema: form.Schema{
			{Name: "version", Kind: form.Choice, Default: "4", Choices: []string{"1", "3", "4", "5"}},
			{Name: "count", Kind: form.Int, Default: 1, Min: 1, Max: 200},
		},
		Run: runUUID,
	}
}

func runUUID(v form.Values) (Result, error) {
	version := v["version"].(string)
	count := v["count"].(int)

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var u uuid.UUID
		switch version {
		case "1":
			generated, err := uuid.NewUUID()
			if err != nil {
				return nil, failf("uuid", "generation failed: %v", err)
			}
			u = generated
		case "3":
			u = uuid.NewMD5(uuid.NameSpaceDNS, []byte(nameBasedDemo))
		case "5":
			u = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(nameBasedDemo))
		default:
			u = uuid.New()
		}
		ids = append(ids, u.String())
	}
	return Result{"result": strings.Join(ids, "\n")}, nil
}
