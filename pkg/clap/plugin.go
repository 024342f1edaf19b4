package clap

import "unsafe"

// PluginDescriptor describes one plugin class a factory can instantiate.
// All strings are null-terminated; Features is a nil-terminated list.
type PluginDescriptor struct {
	ClapVersion Version

	ID          *byte
	Name        *byte
	Vendor      *byte
	URL         *byte
	Version     *byte
	Description *byte

	Features []*byte
}

// Plugin is the function table a plugin instance exposes to the host.
// Bracketed notes give each function's thread affinity as defined by the
// protocol; nothing here enforces them at runtime.
type Plugin struct {
	Desc *PluginDescriptor

	// PluginData is an opaque token the plugin uses to recover its own
	// state inside callbacks. Hosts must treat it as a black box.
	PluginData unsafe.Pointer

	// Init finishes construction. Everything else (except Destroy) is
	// undefined until Init returns true. [main-thread]
	Init func(p *Plugin) bool
	// Destroy frees the instance. [main-thread]
	Destroy func(p *Plugin)

	// Activate prepares audio processing. [main-thread]
	Activate func(p *Plugin, sampleRate float64, minFrames, maxFrames uint32) bool
	// Deactivate undoes Activate. [main-thread]
	Deactivate func(p *Plugin)

	// StartProcessing precedes the first Process call. [audio-thread]
	StartProcessing func(p *Plugin) bool
	// StopProcessing follows the last Process call. [audio-thread]
	StopProcessing func(p *Plugin)
	// Reset clears all playback state, e.g. on transport jumps. [audio-thread]
	Reset func(p *Plugin)

	// Process runs one block of audio and events. [audio-thread]
	Process func(p *Plugin, proc *Process) ProcessStatus

	// GetExtension resolves a plugin capability by identifier. A nil
	// result means the capability is unsupported. [thread-safe]
	GetExtension func(p *Plugin, id *byte) unsafe.Pointer

	// OnMainThread runs deferred work after the plugin called the host's
	// RequestCallback. [main-thread]
	OnMainThread func(p *Plugin)
}

// Extension resolves a plugin capability by its identifier constant,
// tolerating a plugin that left the lookup pointer unset.
func (p *Plugin) Extension(id string) unsafe.Pointer {
	if p == nil || p.GetExtension == nil {
		return nil
	}
	return p.GetExtension(p, staticID(id))
}

// Process carries everything one audio callback needs: the block extent and
// the two event lists. Both lists are exclusively owned by this call; neither
// side may retain pointers into them once Process returns.
type Process struct {
	// SteadyTime is a monotonic sample counter, or -1 if unavailable.
	SteadyTime int64
	// FramesCount is the number of sample frames in this block.
	FramesCount uint32

	InEvents  *InputEvents
	OutEvents *OutputEvents

	AudioIn  [][]float32
	AudioOut [][]float32
}

// PluginFactory creates plugin instances from descriptors. It is the
// host-facing face of a plugin bundle's registry.
type PluginFactory struct {
	FactoryData unsafe.Pointer

	GetPluginCount      func(f *PluginFactory) uint32
	GetPluginDescriptor func(f *PluginFactory, index uint32) *PluginDescriptor

	// CreatePlugin instantiates the class named by pluginID for the given
	// host. Returns nil when the ID is unknown or the host version is
	// incompatible. The instance is not initialized yet; the host must
	// call Init before anything else.
	CreatePlugin func(f *PluginFactory, host *Host, pluginID *byte) *Plugin
}
