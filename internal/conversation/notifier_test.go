package conversation

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hammamikhairi/casseroll/internal/logger"
)

func TestCLINotifier(t *testing.T) {
	var lines []string
	n := NewCLINotifier(logger.New(logger.LevelOff, nil), func(format string, a ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, a...))
	})
	ctx := context.Background()

	if err := n.Notify(ctx, "Rolled a fresh one"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyUrgent(ctx, "That slot is locked"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Rolled a fresh one") || !strings.Contains(lines[1], "That slot is locked") {
		t.Fatalf("unexpected output: %q", lines)
	}
}
