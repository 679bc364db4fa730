package report

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RunLog appends one JSON object per run event to a file. A nil *RunLog
// discards events, so callers need no guard when logging is disabled.
type RunLog struct {
	file   *os.File
	logger *slog.Logger
	now    func() time.Time
}

// RunEvent is the decoded form of one run log line.
type RunEvent struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Event     string                 `json:"event"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// OpenRunLog opens path for appending. An empty path returns a nil log.
func OpenRunLog(path string) (*RunLog, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	l := &RunLog{file: f, now: time.Now}
	l.logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: l.replaceAttr,
	}))
	return l, nil
}

// replaceAttr maps slog's built-in keys onto the RunEvent layout.
func (l *RunLog) replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.String("timestamp", l.now().UTC().Format(time.RFC3339Nano))
	case slog.MessageKey:
		return slog.String("event", a.Value.String())
	}
	return a
}

func (l *RunLog) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *RunLog) Info(event string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, event, fields)
}

func (l *RunLog) Warn(event string, fields map[string]interface{}) {
	l.log(slog.LevelWarn, event, fields)
}

func (l *RunLog) log(level slog.Level, event string, fields map[string]interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	if len(fields) == 0 {
		l.logger.LogAttrs(context.Background(), level, event)
		return
	}
	l.logger.LogAttrs(context.Background(), level, event, slog.Any("fields", fields))
}
