package plugin

import (
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// HostHandle is the plugin's any-thread view of its host. It carries only
// the raw host pointer; the type (and its two refinements below) encodes
// which thread category the surrounding callback is executing on, so the
// compiler rejects calls the protocol would make undefined behavior.
type HostHandle struct {
	raw *clap.Host
}

// Raw returns the underlying host table, for extension wrappers that
// marshal their own calls.
func (h HostHandle) Raw() *clap.Host { return h.raw }

// Name returns the host's display name.
func (h HostHandle) Name() string { return clap.GoStr(h.raw.Name) }

// Vendor returns the host's vendor string.
func (h HostHandle) Vendor() string { return clap.GoStr(h.raw.Vendor) }

// Version returns the host's version string.
func (h HostHandle) Version() string { return clap.GoStr(h.raw.Version) }

// Extension resolves a host capability by identifier; nil means the host
// does not support it. Query once per capability, not per call.
func (h HostHandle) Extension(id string) unsafe.Pointer {
	return h.raw.Extension(id)
}

// RequestRestart asks the host to deactivate and reactivate the plugin.
// Returning only acknowledges the request.
func (h HostHandle) RequestRestart() {
	if h.raw != nil && h.raw.RequestRestart != nil {
		h.raw.RequestRestart(h.raw)
	}
}

// RequestProcess asks the host to wake the audio processing loop.
func (h HostHandle) RequestProcess() {
	if h.raw != nil && h.raw.RequestProcess != nil {
		h.raw.RequestProcess(h.raw)
	}
}

// RequestCallback asks the host to call OnMainThread on the main thread.
func (h HostHandle) RequestCallback() {
	if h.raw != nil && h.raw.RequestCallback != nil {
		h.raw.RequestCallback(h.raw)
	}
}

// HostMainThread marks a callback context the host promised to run on the
// main thread. It is only minted by the trampolines of main-thread
// callbacks and must not outlive the callback.
type HostMainThread struct {
	HostHandle
}

// HostAudioThread marks a callback context the host promised to run on the
// audio thread. It is only minted by the trampolines of audio-thread
// callbacks and must not outlive the callback.
type HostAudioThread struct {
	HostHandle
}

func newHostHandle(raw *clap.Host) HostHandle         { return HostHandle{raw: raw} }
func newHostMainThread(raw *clap.Host) HostMainThread { return HostMainThread{HostHandle{raw: raw}} }
func newHostAudioThread(raw *clap.Host) HostAudioThread {
	return HostAudioThread{HostHandle{raw: raw}}
}
