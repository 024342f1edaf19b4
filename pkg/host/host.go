// Package host is the host-side framework: it instantiates plugins through
// a raw factory, drives their lifecycle with typed, thread-scoped handles,
// and exposes the host's own callbacks to the plugin as raw tables.
package host

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/google/uuid"

	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/framework/debug"
)

// Info identifies the host to its plugins. All fields must be free of
// interior NUL bytes.
type Info struct {
	Name    string
	Vendor  string
	URL     string
	Version string
}

// Handler receives the plugin's request-style callbacks. They may arrive on
// any thread; implementations must be safe for concurrent use.
type Handler interface {
	// RequestRestart asks to deactivate and reactivate the plugin later.
	RequestRestart()
	// RequestProcess asks to wake the audio processing loop.
	RequestProcess()
	// RequestCallback asks to call the plugin's OnMainThread from the
	// main thread.
	RequestCallback()
}

var (
	// ErrPluginNotFound reports that the factory knows no class with the
	// requested ID.
	ErrPluginNotFound = errors.New("plugin ID not found in factory")
	// ErrInitFailed reports that the plugin instance rejected Init.
	ErrInitFailed = errors.New("plugin instance failed to initialize")
	// ErrNotActivated reports an audio-thread operation on an instance
	// that was never activated.
	ErrNotActivated = errors.New("plugin instance is not activated")
	// ErrUnusable reports a lifecycle operation on an instance that was
	// destroyed or whose plugin ships no such entry point.
	ErrUnusable = errors.New("plugin instance is not usable")
)

var (
	instancesMu sync.RWMutex
	instances   = make(map[uintptr]*Instance)
	nextID      uintptr = 1
)

func registerInstance(i *Instance) uintptr {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	id := nextID
	nextID++
	i.token = id
	instances[id] = i
	return id
}

func unregisterInstance(id uintptr) {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	delete(instances, id)
}

func instanceFromRaw(h *clap.Host) *Instance {
	if h == nil {
		return nil
	}
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	return instances[uintptr(h.HostData)]
}

// recoverFailure converts a panic escaping the host's Handler into the
// ABI's failure sentinel; an unwind must never reach the plugin.
func recoverFailure(op string, ok *bool) {
	if r := recover(); r != nil {
		debug.Error("panic in host %s callback: %v", op, r)
		if ok != nil {
			*ok = false
		}
	}
}

// rawHost builds the table handed to the plugin at creation. The request
// trampolines are any-thread and logic-free.
func rawHost(info Info, token uintptr) (*clap.Host, error) {
	raw := &clap.Host{
		ClapVersion: clap.CurrentVersion,
		HostData:    unsafe.Pointer(token),
	}

	fields := []struct {
		dst **byte
		src string
	}{
		{&raw.Name, info.Name},
		{&raw.Vendor, info.Vendor},
		{&raw.URL, info.URL},
		{&raw.Version, info.Version},
	}
	for _, f := range fields {
		p, err := clap.NewCStr(f.src)
		if err != nil {
			return nil, fmt.Errorf("host info: %w", err)
		}
		*f.dst = p
	}

	raw.GetExtension = func(h *clap.Host, id *byte) unsafe.Pointer {
		inst := instanceFromRaw(h)
		if inst == nil {
			return nil
		}
		return inst.lookupExtension(id)
	}
	raw.RequestRestart = func(h *clap.Host) {
		defer recoverFailure("request_restart", nil)
		if inst := instanceFromRaw(h); inst != nil {
			inst.handler.RequestRestart()
		}
	}
	raw.RequestProcess = func(h *clap.Host) {
		defer recoverFailure("request_process", nil)
		if inst := instanceFromRaw(h); inst != nil {
			inst.handler.RequestProcess()
		}
	}
	raw.RequestCallback = func(h *clap.Host) {
		defer recoverFailure("request_callback", nil)
		if inst := instanceFromRaw(h); inst != nil {
			inst.handler.RequestCallback()
		}
	}

	return raw, nil
}

// instanceID returns a fresh identifier for one plugin instantiation, so
// several instances of the same class stay distinguishable in logs.
func instanceID() uuid.UUID {
	return uuid.New()
}
