package plugin

import (
	"sync"
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/event"
	"github.com/justyntemme/clapgo/pkg/framework/debug"
)

// wrapper binds one safe Instance to the raw table the host calls. Raw
// callbacks carry an opaque token in PluginData; the wrapper is recovered
// from a process-wide table keyed by that token, never by casting raw
// memory back into a Go pointer.
type wrapper struct {
	instance Instance
	host     *clap.Host
	exts     *ExtensionBuilder
	id       uintptr
}

var (
	wrappersMu sync.RWMutex
	wrappers   = make(map[uintptr]*wrapper)
	nextID     uintptr = 1
)

func registerWrapper(w *wrapper) uintptr {
	wrappersMu.Lock()
	defer wrappersMu.Unlock()
	id := nextID
	nextID++
	w.id = id
	wrappers[id] = w
	return id
}

func unregisterWrapper(id uintptr) {
	wrappersMu.Lock()
	defer wrappersMu.Unlock()
	delete(wrappers, id)
}

func wrapperFromRaw(p *clap.Plugin) *wrapper {
	if p == nil {
		return nil
	}
	wrappersMu.RLock()
	defer wrappersMu.RUnlock()
	return wrappers[uintptr(p.PluginData)]
}

// recoverFailure converts a panic escaping the safe implementation into the
// ABI's failure sentinel. An unwind must never cross the boundary.
func recoverFailure(op string, ok *bool) {
	if r := recover(); r != nil {
		debug.Error("panic in plugin %s callback: %v", op, r)
		if ok != nil {
			*ok = false
		}
	}
}

// recoverStatus is recoverFailure for the Process callback, whose failure
// sentinel is ProcessError rather than false.
func recoverStatus(op string, status *clap.ProcessStatus) {
	if r := recover(); r != nil {
		debug.Error("panic in plugin %s callback: %v", op, r)
		*status = clap.ProcessError
	}
}

// rawPlugin builds the function table the host drives this instance with.
// The trampolines are deliberately logic-free: recover the wrapper, mint the
// thread handle the callback's affinity promises, delegate, translate.
func (w *wrapper) rawPlugin(desc *clap.PluginDescriptor) *clap.Plugin {
	id := registerWrapper(w)

	return &clap.Plugin{
		Desc:       desc,
		PluginData: unsafe.Pointer(id),

		Init: func(p *clap.Plugin) (ok bool) {
			defer recoverFailure("init", &ok)
			w := wrapperFromRaw(p)
			if w == nil {
				return false
			}
			return w.instance.Init(newHostMainThread(w.host)) == nil
		},

		Destroy: func(p *clap.Plugin) {
			defer recoverFailure("destroy", nil)
			w := wrapperFromRaw(p)
			if w == nil {
				return
			}
			w.instance.Destroy(newHostMainThread(w.host))
			unregisterWrapper(w.id)
		},

		Activate: func(p *clap.Plugin, sampleRate float64, minFrames, maxFrames uint32) (ok bool) {
			defer recoverFailure("activate", &ok)
			w := wrapperFromRaw(p)
			if w == nil {
				return false
			}
			cfg := AudioConfig{
				SampleRate:    sampleRate,
				MinFrameCount: minFrames,
				MaxFrameCount: maxFrames,
			}
			return w.instance.Activate(newHostMainThread(w.host), cfg) == nil
		},

		Deactivate: func(p *clap.Plugin) {
			defer recoverFailure("deactivate", nil)
			if w := wrapperFromRaw(p); w != nil {
				w.instance.Deactivate(newHostMainThread(w.host))
			}
		},

		StartProcessing: func(p *clap.Plugin) (ok bool) {
			defer recoverFailure("start_processing", &ok)
			w := wrapperFromRaw(p)
			if w == nil {
				return false
			}
			return w.instance.StartProcessing(newHostAudioThread(w.host)) == nil
		},

		StopProcessing: func(p *clap.Plugin) {
			defer recoverFailure("stop_processing", nil)
			if w := wrapperFromRaw(p); w != nil {
				w.instance.StopProcessing(newHostAudioThread(w.host))
			}
		},

		Reset: func(p *clap.Plugin) {
			defer recoverFailure("reset", nil)
			if w := wrapperFromRaw(p); w != nil {
				w.instance.Reset(newHostAudioThread(w.host))
			}
		},

		Process: func(p *clap.Plugin, proc *clap.Process) (status clap.ProcessStatus) {
			defer recoverStatus("process", &status)
			w := wrapperFromRaw(p)
			if w == nil || proc == nil {
				return clap.ProcessError
			}
			view := Process{
				SteadyTime:  proc.SteadyTime,
				FramesCount: proc.FramesCount,
				InEvents:    event.NewInput(proc.InEvents),
				OutEvents:   event.NewOutput(proc.OutEvents),
				AudioIn:     proc.AudioIn,
				AudioOut:    proc.AudioOut,
			}
			return w.instance.Process(newHostAudioThread(w.host), &view)
		},

		GetExtension: func(p *clap.Plugin, id *byte) unsafe.Pointer {
			w := wrapperFromRaw(p)
			if w == nil {
				return nil
			}
			return w.exts.lookup(id)
		},

		OnMainThread: func(p *clap.Plugin) {
			defer recoverFailure("on_main_thread", nil)
			if w := wrapperFromRaw(p); w != nil {
				w.instance.OnMainThread(newHostMainThread(w.host))
			}
		},
	}
}
