package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "")
	l.SetLevel(LogLevelWarn)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept warn")
	l.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("messages below level were written:\n%s", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("messages at or above level missing:\n%s", out)
	}
}

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "")
	l.SetLevel(LogLevelOff)
	l.Error("silenced")
	if buf.Len() != 0 {
		t.Errorf("LogLevelOff still wrote: %q", buf.String())
	}
}

func TestLoggerPrefixAndLevelTag(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "gain")
	l.Info("activated")

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("missing level tag: %q", out)
	}
	if !strings.Contains(out, "[gain]") {
		t.Errorf("missing prefix: %q", out)
	}
	if !strings.HasSuffix(out, "activated\n") {
		t.Errorf("missing trailing newline: %q", out)
	}
}

func TestLoggerFatalPanics(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "")

	defer func() {
		if recover() == nil {
			t.Fatal("Fatal did not panic")
		}
		if !strings.Contains(buf.String(), "[FATAL]") {
			t.Errorf("fatal message not written before panic: %q", buf.String())
		}
	}()
	l.Fatal("unrecoverable")
}

func TestLogLevelString(t *testing.T) {
	cases := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevelFatal, "FATAL"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", c.level, got, c.want)
		}
	}
}
