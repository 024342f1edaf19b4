package clap

// ExtParams identifies the parameters extension, implemented by plugins.
const ExtParams = "clap.params\x00"

// ParamInfoFlags qualify a parameter's behavior.
type ParamInfoFlags uint32

const (
	ParamIsStepped       ParamInfoFlags = 1 << 0
	ParamIsPeriodic      ParamInfoFlags = 1 << 1
	ParamIsHidden        ParamInfoFlags = 1 << 2
	ParamIsReadonly      ParamInfoFlags = 1 << 3
	ParamIsBypass        ParamInfoFlags = 1 << 4
	ParamIsAutomatable   ParamInfoFlags = 1 << 5
	ParamRequiresProcess ParamInfoFlags = 1 << 15
)

// ParamInfoRecord describes one parameter to the host. Name and Module are
// null-terminated within their fixed buffers.
type ParamInfoRecord struct {
	ID     ID
	Flags  ParamInfoFlags
	Name   [256]byte
	Module [1024]byte

	MinValue     float64
	MaxValue     float64
	DefaultValue float64
}

// PluginParamsTable is the plugin-side parameters extension. Count and
// GetInfo are [main-thread]; Flush is [audio-thread] while the plugin is
// active, [main-thread] otherwise.
type PluginParamsTable struct {
	Count    func(p *Plugin) uint32
	GetInfo  func(p *Plugin, index uint32, info *ParamInfoRecord) bool
	GetValue func(p *Plugin, id ID, out *float64) bool

	// Flush processes a batch of parameter events outside of a Process
	// call, writing any resulting events to out.
	Flush func(p *Plugin, in *InputEvents, out *OutputEvents)
}
