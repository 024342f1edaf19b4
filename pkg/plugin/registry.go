package plugin

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// Registry holds the plugin classes one bundle exposes and produces the raw
// factory the host discovers them through. It is an explicit object, not
// process-global state, so tests can build several independent registries.
type Registry struct {
	mu        sync.RWMutex
	factories []Factory
	rawDescs  []*clap.PluginDescriptor
	byID      map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]int)}
}

// Register adds one plugin class. It fails when the descriptor's ID is
// already taken or a descriptor string cannot cross the ABI boundary.
func (r *Registry) Register(f Factory) error {
	desc := f.Descriptor()
	if desc.ID == "" {
		return fmt.Errorf("register plugin: empty ID")
	}

	raw, err := rawDescriptor(desc)
	if err != nil {
		return fmt.Errorf("register plugin %q: %w", desc.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byID[desc.ID]; dup {
		return fmt.Errorf("register plugin: duplicate ID %q", desc.ID)
	}
	r.byID[desc.ID] = len(r.factories)
	r.factories = append(r.factories, f)
	r.rawDescs = append(r.rawDescs, raw)
	return nil
}

// Count returns the number of registered classes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Factory returns the host-facing raw factory for this registry. The
// returned table is immutable and safe to share.
func (r *Registry) Factory() *clap.PluginFactory {
	return &clap.PluginFactory{
		FactoryData: unsafe.Pointer(r),

		GetPluginCount: func(f *clap.PluginFactory) uint32 {
			reg := (*Registry)(f.FactoryData)
			return uint32(reg.Count())
		},

		GetPluginDescriptor: func(f *clap.PluginFactory, index uint32) *clap.PluginDescriptor {
			reg := (*Registry)(f.FactoryData)
			reg.mu.RLock()
			defer reg.mu.RUnlock()
			if index >= uint32(len(reg.rawDescs)) {
				return nil
			}
			return reg.rawDescs[index]
		},

		CreatePlugin: func(f *clap.PluginFactory, host *clap.Host, pluginID *byte) *clap.Plugin {
			reg := (*Registry)(f.FactoryData)
			return reg.createPlugin(host, pluginID)
		},
	}
}

func (r *Registry) createPlugin(host *clap.Host, pluginID *byte) *clap.Plugin {
	if host == nil || !host.ClapVersion.IsCompatible() {
		return nil
	}

	id := clap.GoStr(pluginID)

	r.mu.RLock()
	idx, ok := r.byID[id]
	var factory Factory
	var rawDesc *clap.PluginDescriptor
	if ok {
		factory = r.factories[idx]
		rawDesc = r.rawDescs[idx]
	}
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	inst, err := factory.Create(newHostHandle(host))
	if err != nil || inst == nil {
		return nil
	}

	w := &wrapper{
		instance: inst,
		host:     host,
		exts:     newExtensionBuilder(),
	}
	if provider, ok := inst.(ExtensionProvider); ok {
		provider.DeclareExtensions(w.exts)
	}

	return w.rawPlugin(rawDesc)
}

func rawDescriptor(d Descriptor) (*clap.PluginDescriptor, error) {
	raw := &clap.PluginDescriptor{ClapVersion: clap.CurrentVersion}

	fields := []struct {
		dst **byte
		src string
	}{
		{&raw.ID, d.ID},
		{&raw.Name, d.Name},
		{&raw.Vendor, d.Vendor},
		{&raw.URL, d.URL},
		{&raw.Version, d.Version},
		{&raw.Description, d.Description},
	}
	for _, f := range fields {
		p, err := clap.NewCStr(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = p
	}

	for _, feature := range d.Features {
		p, err := clap.NewCStr(feature)
		if err != nil {
			return nil, err
		}
		raw.Features = append(raw.Features, p)
	}
	raw.Features = append(raw.Features, nil)

	return raw, nil
}
