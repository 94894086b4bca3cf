package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{12*time.Millisecond + 400*time.Microsecond, "12ms"},
		{999 * time.Millisecond, "999ms"},
		{time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
	}

	for _, tt := range tests {
		if got := elapsed(tt.d); got != tt.want {
			t.Errorf("elapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestProgressStages(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, LogInfo))

	clock := prog.last
	prog.now = func() time.Time { return clock }

	clock = clock.Add(12 * time.Millisecond)
	prog.stage("Read %d rows", 3)
	clock = clock.Add(1500 * time.Millisecond)
	prog.stage("Rendered %s", "budget.csv")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	// Each stage is timed from the end of the previous one.
	if !strings.Contains(lines[0], "Read 3 rows (12ms)") {
		t.Errorf("line 1 = %q, want read stage", lines[0])
	}
	if !strings.Contains(lines[1], "Rendered budget.csv (1.50s)") {
		t.Errorf("line 2 = %q, want render stage", lines[1])
	}
}

func TestLogLevelHidesPipelineDetail(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("branch", "name", "Food")
	c.Logger.Info("read categories", "rows", 3)
	if strings.Contains(buf.String(), "branch") {
		t.Errorf("debug line logged at info level:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "read categories") {
		t.Errorf("info line missing:\n%s", buf.String())
	}

	buf.Reset()
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("branch", "name", "Food")
	if !strings.Contains(buf.String(), "name=Food") {
		t.Errorf("debug line missing after --verbose:\n%s", buf.String())
	}
}
