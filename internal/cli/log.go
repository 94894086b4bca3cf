package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the status logger shared by all commands. It writes
// short clock times such as "14:32:01.45" so stage timings line up.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times the stages of one command (read, render, write) and logs
// a line as each finishes. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	now    func() time.Time
	last   time.Time
}

func newProgress(l *log.Logger) *progress {
	p := &progress{logger: l, now: time.Now}
	p.last = p.now()
	return p
}

// stage logs a finished stage with the time since the previous stage,
// e.g. "Read 1204 rows (12ms)".
func (p *progress) stage(format string, args ...any) {
	t := p.now()
	p.logger.Infof("%s (%s)", fmt.Sprintf(format, args...), elapsed(t.Sub(p.last)))
	p.last = t
}

// elapsed prints whole milliseconds below one second and seconds above.
func elapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
