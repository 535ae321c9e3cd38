package tools

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Mayi21/tool-sites/internal/form"
)

func ipgenTool() Tool {
	return Tool{
		Name:  "ipgen",
		Title: "Random IP Generator",
		Schema: form.Schema{
			{Name: "ip_type", Kind: form.Choice, Default: "ipv4", Choices: []string{"ipv4", "ipv6"}},
			{Name: "count", Kind: form.Int, Default: 1, Min: 1, Max: 200},
		},
		Run: runIPGen,
	}
}

func runIPGen(v form.Values) (Result, error) {
	ipType := v["ip_type"].(string)
	count := v["count"].(int)

	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var addr string
		var err error
		if ipType == "ipv4" {
			addr, err = randomIPv4()
		} else {
			addr, err = randomIPv6()
		}
		if err != nil {
			return nil, failf("ipgen", "random source failed: %v", err)
		}
		lines = append(lines, addr)
	}
	return Result{"result": strings.Join(lines, "\n")}, nil
}

func randomIPv4() (string, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d.%d.%d", buf[0], buf[1], buf[2], buf[3]), nil
}

// randomIPv6 produces eight colon-separated lowercase hex groups, unpadded,
// purely from random bits. No real-world allocation is respected.
func randomIPv6() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%x", binary.BigEndian.Uint16(buf[i*2:]))
	}
	return strings.Join(groups, ":"), nil
}
