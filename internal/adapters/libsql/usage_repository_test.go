package libsql

import (
	"context"
	"testing"
)

func TestUsageRecordUseIncrements(t *testing.T) {
	repo := NewUsageRepository(testDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.RecordUse(ctx, "base64"); err != nil {
			t.Fatalf("RecordUse failed: %v", err)
		}
	}

	usage, err := repo.Get(ctx, "base64")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if usage == nil {
		t.Fatal("expected a usage row")
	}
	if usage.UsageCount != 3 {
		t.Errorf("expected count 3, got %d", usage.UsageCount)
	}
	if usage.LastUsed.IsZero() {
		t.Error("expected last_used to be set")
	}
}

func TestUsageGetUnknownTool(t *testing.T) {
	repo := NewUsageRepository(testDB(t))

	usage, err := repo.Get(context.Background(), "never-used")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if usage != nil {
		t.Errorf("expected nil for unused tool, got %+v", usage)
	}
}

func TestUsageTopNOrdering(t *testing.T) {
	repo := NewUsageRepository(testDB(t))
	ctx := context.Background()

	counts := map[string]int{"diff": 5, "base64": 2, "uuid": 5, "password": 1}
	for tool, n := range counts {
		for i := 0; i < n; i++ {
			if err := repo.RecordUse(ctx, tool); err != nil {
				t.Fatalf("RecordUse failed: %v", err)
			}
		}
	}

	top, err := repo.TopN(ctx, 3)
	if err != nil {
		t.Fatalf("TopN failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(top))
	}
	// Ties break on tool name ascending.
	if top[0].ToolName != "diff" || top[1].ToolName != "uuid" || top[2].ToolName != "base64" {
		t.Errorf("unexpected order: %q, %q, %q", top[0].ToolName, top[1].ToolName, top[2].ToolName)
	}
}

func TestUsageTotal(t *testing.T) {
	repo := NewUsageRepository(testDB(t))
	ctx := context.Background()

	total, err := repo.Total(ctx)
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if total != 0 {
		t.Errorf("expected empty total 0, got %d", total)
	}

	for _, tool := range []string{"base64", "base64", "diff"} {
		if err := repo.RecordUse(ctx, tool); err != nil {
			t.Fatalf("RecordUse failed: %v", err)
		}
	}

	total, err = repo.Total(ctx)
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
}
