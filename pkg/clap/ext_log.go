package clap

// ExtLog identifies the log extension, implemented by hosts.
const ExtLog = "clap.log\x00"

// LogSeverity grades a log message. The two misbehaving severities flag
// protocol-contract violations by the named side.
type LogSeverity int32

const (
	LogDebug   LogSeverity = 0
	LogInfo    LogSeverity = 1
	LogWarning LogSeverity = 2
	LogError   LogSeverity = 3
	LogFatal   LogSeverity = 4

	LogHostMisbehaving   LogSeverity = 5
	LogPluginMisbehaving LogSeverity = 6
)

// HostLogTable is the host-side log extension. Log is [thread-safe] and must
// not be called from allocation-sensitive contexts with a blocking sink.
type HostLogTable struct {
	Log func(h *Host, severity LogSeverity, msg *byte)
}
