package domain

import "time"

// ToolUsage is the process-wide invocation counter for one tool. The count
// only ever grows; the row is created on first recorded use.
type ToolUsage struct {
	ToolName   string
	UsageCount int64
	LastUsed   time.Time
}
