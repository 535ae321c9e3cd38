package templates

import (
	"github.com/Mayi21/tool-sites/internal/form"
)

// ToolLink is one entry in the tool index.
type ToolLink struct {
	Name     string
	Title    string
	Favorite bool
}

// ToolCount pairs a tool with its usage counter for popularity lists.
type ToolCount struct {
	Name  string
	Count int64
}

// HistoryItem is one rendered history row.
type HistoryItem struct {
	ToolName string
	Preview  string
	When     string
}

// IndexData feeds the landing page.
type IndexData struct {
	Lang    string
	Theme   string
	Tools   []ToolLink
	Popular []ToolCount
	Recent  []HistoryItem
}

// ToolPageData feeds an individual tool page. Values holds the echoed form
// values, Result the transform output, Error a user-facing failure message.
type ToolPageData struct {
	Name     string
	Title    string
	Lang     string
	Theme    string
	Favorite bool
	Fields   []form.Field
	Values   map[string]any
	Result   map[string]any
	Error    string
}

// HistoryPageData feeds the history page.
type HistoryPageData struct {
	Lang  string
	Theme string
	Items []HistoryItem
}
