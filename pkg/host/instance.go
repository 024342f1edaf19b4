package host

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/google/uuid"

	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/framework/debug"
)

// Instance is one live plugin instantiation. Lifecycle methods must be
// called from the host's main thread; processing methods are reached
// through an AudioThread handle minted by OnAudioThread.
type Instance struct {
	id      uuid.UUID
	token   uintptr
	raw     *clap.Plugin
	rawHost *clap.Host
	handler Handler

	// Host-side extension tables the plugin may query, declared before
	// instantiation and immutable afterwards.
	hostExts map[string]unsafe.Pointer

	activated bool

	extMu    sync.Mutex
	extCache map[string]unsafe.Pointer
}

// InstanceOption configures an instance before the plugin is created.
type InstanceOption func(*Instance)

// WithHostExtension declares a host-side extension table the plugin can
// discover through its host handle.
func WithHostExtension(id string, table unsafe.Pointer) InstanceOption {
	return func(i *Instance) {
		if table != nil {
			i.hostExts[id] = table
		}
	}
}

// NewInstance creates and initializes one plugin from the factory. The
// returned instance is initialized but not activated.
func NewInstance(factory *clap.PluginFactory, pluginID string, info Info, handler Handler, opts ...InstanceOption) (*Instance, error) {
	if factory == nil || factory.CreatePlugin == nil {
		return nil, fmt.Errorf("create %q: %w", pluginID, ErrPluginNotFound)
	}

	inst := &Instance{
		id:       instanceID(),
		handler:  handler,
		hostExts: make(map[string]unsafe.Pointer),
		extCache: make(map[string]unsafe.Pointer),
	}
	for _, opt := range opts {
		opt(inst)
	}

	token := registerInstance(inst)
	raw, err := rawHost(info, token)
	if err != nil {
		unregisterInstance(token)
		return nil, err
	}
	inst.rawHost = raw

	idPtr, err := clap.NewCStr(pluginID)
	if err != nil {
		unregisterInstance(token)
		return nil, err
	}

	plugin := factory.CreatePlugin(factory, raw, idPtr)
	if plugin == nil {
		unregisterInstance(token)
		return nil, fmt.Errorf("create %q: %w", pluginID, ErrPluginNotFound)
	}
	inst.raw = plugin

	if plugin.Init == nil || !plugin.Init(plugin) {
		if plugin.Destroy != nil {
			plugin.Destroy(plugin)
		}
		unregisterInstance(token)
		return nil, fmt.Errorf("create %q: %w", pluginID, ErrInitFailed)
	}

	debug.Info("instantiated plugin %q as %s", pluginID, inst.id)
	return inst, nil
}

// ID returns the host-assigned identity of this instantiation.
func (i *Instance) ID() uuid.UUID { return i.id }

// Descriptor returns the plugin's self-description.
func (i *Instance) Descriptor() *clap.PluginDescriptor { return i.raw.Desc }

// Destroy releases the plugin. The instance is unusable afterwards.
// [main-thread]
func (i *Instance) Destroy() {
	if i.raw != nil && i.raw.Destroy != nil {
		i.raw.Destroy(i.raw)
	}
	unregisterInstance(i.token)
	i.raw = nil
}

// Activate prepares the plugin for processing. [main-thread]
func (i *Instance) Activate(cfg AudioConfig) error {
	if i.raw == nil || i.raw.Activate == nil {
		return fmt.Errorf("activate: %w", ErrUnusable)
	}
	if !i.raw.Activate(i.raw, cfg.SampleRate, cfg.MinFrameCount, cfg.MaxFrameCount) {
		return fmt.Errorf("activate: plugin rejected configuration %+v", cfg)
	}
	i.activated = true
	return nil
}

// Deactivate undoes Activate. [main-thread]
func (i *Instance) Deactivate() {
	if i.activated && i.raw != nil && i.raw.Deactivate != nil {
		i.raw.Deactivate(i.raw)
	}
	i.activated = false
}

// AudioConfig is the processing configuration passed to Activate.
type AudioConfig struct {
	SampleRate    float64
	MinFrameCount uint32
	MaxFrameCount uint32
}

// OnMainThread hands a main-thread handle to fn. The caller asserts the
// current goroutine is the host's main thread; the handle must not escape fn.
func (i *Instance) OnMainThread(fn func(*MainThread)) {
	fn(&MainThread{inst: i})
}

// OnAudioThread hands an audio-thread handle to fn. The caller asserts the
// current goroutine is the audio thread; the handle must not escape fn.
func (i *Instance) OnAudioThread(fn func(*AudioThread)) error {
	if !i.activated {
		return ErrNotActivated
	}
	fn(&AudioThread{inst: i})
	return nil
}

func (i *Instance) lookupExtension(id *byte) unsafe.Pointer {
	for key, table := range i.hostExts {
		if clap.IDEquals(id, key) {
			return table
		}
	}
	return nil
}

// MainThread is the host's main-thread view of one instance. It exists only
// for the duration of an OnMainThread call.
type MainThread struct {
	inst *Instance
}

// Instance returns the instance this handle belongs to.
func (m *MainThread) Instance() *Instance { return m.inst }

// Extension resolves a plugin capability by identifier, caching the result:
// negotiation happens once per capability, not per call.
func (m *MainThread) Extension(id string) unsafe.Pointer {
	i := m.inst
	i.extMu.Lock()
	defer i.extMu.Unlock()
	if ptr, seen := i.extCache[id]; seen {
		return ptr
	}
	ptr := i.raw.Extension(id)
	i.extCache[id] = ptr
	return ptr
}

// Plugin returns the raw plugin table for extension wrappers.
func (m *MainThread) Plugin() *clap.Plugin { return m.inst.raw }

// OnMainThreadCallback delivers the host's deferred callback to the plugin,
// honoring an earlier RequestCallback.
func (m *MainThread) OnMainThreadCallback() {
	if m.inst.raw != nil && m.inst.raw.OnMainThread != nil {
		m.inst.raw.OnMainThread(m.inst.raw)
	}
}

// AudioThread is the host's audio-thread view of one activated instance. It
// exists only for the duration of an OnAudioThread call.
type AudioThread struct {
	inst *Instance
}

// StartProcessing begins a processing run.
func (a *AudioThread) StartProcessing() error {
	raw := a.inst.raw
	if raw.StartProcessing == nil || !raw.StartProcessing(raw) {
		return fmt.Errorf("start processing: plugin refused")
	}
	return nil
}

// StopProcessing ends a processing run.
func (a *AudioThread) StopProcessing() {
	if raw := a.inst.raw; raw.StopProcessing != nil {
		raw.StopProcessing(raw)
	}
}

// Reset drops the plugin's playback state.
func (a *AudioThread) Reset() {
	if raw := a.inst.raw; raw.Reset != nil {
		raw.Reset(raw)
	}
}

// Process runs one block. The Process structure and its event lists are
// owned by this call; the plugin must not retain pointers into them.
func (a *AudioThread) Process(proc *clap.Process) clap.ProcessStatus {
	raw := a.inst.raw
	if raw.Process == nil {
		return clap.ProcessError
	}
	return raw.Process(raw, proc)
}
