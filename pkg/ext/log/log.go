// Package log wraps the log extension: plugins forward their diagnostics
// to the host instead of writing to stdio, which many hosts capture or
// discard. The host side adapts any sink into the raw callback table.
package log

import (
	"fmt"

	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/framework/debug"
	"github.com/justyntemme/clapgo/pkg/plugin"
)

// HostLog is the plugin's safe wrapper over the host's log callback.
// Logging is [thread-safe] but may allocate; keep it off the audio hot path.
type HostLog struct {
	table *clap.HostLogTable
}

// FromHost negotiates the log extension with the host. It reports false
// when the host does not provide one.
func FromHost(h plugin.HostHandle) (*HostLog, bool) {
	ptr := h.Extension(clap.ExtLog)
	if ptr == nil {
		return nil, false
	}
	return &HostLog{table: (*clap.HostLogTable)(ptr)}, true
}

// Log sends one message to the host. Messages containing an interior NUL
// cannot cross the boundary and are reported as an encoding error rather
// than truncated.
func (l *HostLog) Log(h plugin.HostHandle, severity clap.LogSeverity, msg string) error {
	if l.table.Log == nil {
		return nil
	}
	p, err := clap.NewCStr(msg)
	if err != nil {
		return err
	}
	l.table.Log(h.Raw(), severity, p)
	return nil
}

// Logf formats and sends one message to the host.
func (l *HostLog) Logf(h plugin.HostHandle, severity clap.LogSeverity, format string, args ...interface{}) error {
	return l.Log(h, severity, fmt.Sprintf(format, args...))
}

// Handler is a host-side log sink.
type Handler interface {
	Log(severity clap.LogSeverity, msg string)
}

// HandlerFunc adapts a function into a Handler.
type HandlerFunc func(severity clap.LogSeverity, msg string)

func (f HandlerFunc) Log(severity clap.LogSeverity, msg string) { f(severity, msg) }

// HostTable adapts a Handler into the raw table a plugin calls. A nil
// message pointer and handler panics are swallowed; nothing may unwind
// across the boundary.
func HostTable(impl Handler) *clap.HostLogTable {
	return &clap.HostLogTable{
		Log: func(h *clap.Host, severity clap.LogSeverity, msg *byte) {
			defer func() { recover() }()
			if msg == nil {
				return
			}
			impl.Log(severity, clap.GoStr(msg))
		},
	}
}

// DebugHandler routes plugin messages into the given leveled logger, or the
// default one when l is nil. Misbehaving severities map to error level so
// contract violations stay visible.
func DebugHandler(l *debug.Logger) Handler {
	if l == nil {
		l = debug.Default()
	}
	return HandlerFunc(func(severity clap.LogSeverity, msg string) {
		switch severity {
		case clap.LogDebug:
			l.Debug("%s", msg)
		case clap.LogInfo:
			l.Info("%s", msg)
		case clap.LogWarning:
			l.Warn("%s", msg)
		case clap.LogError, clap.LogFatal:
			l.Error("%s", msg)
		case clap.LogHostMisbehaving, clap.LogPluginMisbehaving:
			l.Error("contract violation: %s", msg)
		default:
			l.Info("%s", msg)
		}
	})
}

// SeverityString names a severity for display.
func SeverityString(severity clap.LogSeverity) string {
	switch severity {
	case clap.LogDebug:
		return "debug"
	case clap.LogInfo:
		return "info"
	case clap.LogWarning:
		return "warning"
	case clap.LogError:
		return "error"
	case clap.LogFatal:
		return "fatal"
	case clap.LogHostMisbehaving:
		return "host-misbehaving"
	case clap.LogPluginMisbehaving:
		return "plugin-misbehaving"
	default:
		return "unknown"
	}
}
