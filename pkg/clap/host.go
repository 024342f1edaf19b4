package clap

import "unsafe"

// Host is the function table the host hands to every plugin instance it
// creates. The table and its strings are immutable for the instance's
// lifetime and may be read from any thread.
//
// RequestRestart, RequestProcess and RequestCallback are any-thread,
// request-style operations: returning only acknowledges the request, the
// actual effect is applied later by a forward call from the host.
type Host struct {
	ClapVersion Version

	// HostData is an opaque token the host uses to recover its own state
	// inside callbacks. Plugins must treat it as a black box.
	HostData unsafe.Pointer

	Name    *byte
	Vendor  *byte
	URL     *byte
	Version *byte

	// GetExtension resolves a host capability by identifier. A nil result
	// means the capability is unsupported. [thread-safe]
	GetExtension func(h *Host, id *byte) unsafe.Pointer

	// RequestRestart asks the host to deactivate and reactivate the plugin. [thread-safe]
	RequestRestart func(h *Host)
	// RequestProcess asks the host to wake the audio processing loop. [thread-safe]
	RequestProcess func(h *Host)
	// RequestCallback asks the host to call OnMainThread on the main thread. [thread-safe]
	RequestCallback func(h *Host)
}

// Extension resolves a host capability by its identifier constant, tolerating
// a host that left the lookup pointer unset.
func (h *Host) Extension(id string) unsafe.Pointer {
	if h == nil || h.GetExtension == nil {
		return nil
	}
	return h.GetExtension(h, staticID(id))
}
