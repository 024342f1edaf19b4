package clap

import "unsafe"

// ExtGUI identifies the GUI extension on both sides of the boundary.
const ExtGUI = "clap.gui\x00"

// Windowing API identifiers passed to the GUI extension.
const (
	WindowAPIX11     = "x11\x00"
	WindowAPIWin32   = "win32\x00"
	WindowAPICocoa   = "cocoa\x00"
	WindowAPIWayland = "wayland\x00"
)

// Window is a raw native window reference: the API discriminator plus an
// API-specific handle. The pointee semantics are owned by the windowing
// system, not by this layer.
type Window struct {
	API    *byte
	Handle unsafe.Pointer
}

// GuiResizeHintsRecord describes how an embedded plugin window may be
// resized. Aspect ratio fields are only meaningful when PreserveAspectRatio
// is set.
type GuiResizeHintsRecord struct {
	CanResizeHorizontally bool
	CanResizeVertically   bool
	PreserveAspectRatio   bool
	_                     [1]byte
	AspectRatioWidth      uint32
	AspectRatioHeight     uint32
}

// PluginGuiTable is the plugin-side GUI extension: the operations a host may
// invoke on a plugin that declared ExtGUI. Every pointer is optional; an
// unset pointer disables that one operation, not the extension.
// All operations are [main-thread].
type PluginGuiTable struct {
	IsAPISupported  func(p *Plugin, api *byte, isFloating bool) bool
	GetPreferredAPI func(p *Plugin, api **byte, isFloating *bool) bool

	Create  func(p *Plugin, api *byte, isFloating bool) bool
	Destroy func(p *Plugin)

	SetScale func(p *Plugin, scale float64) bool

	GetSize        func(p *Plugin, width, height *uint32) bool
	CanResize      func(p *Plugin) bool
	GetResizeHints func(p *Plugin, hints *GuiResizeHintsRecord) bool
	AdjustSize     func(p *Plugin, width, height *uint32) bool
	SetSize        func(p *Plugin, width, height uint32) bool

	SetParent    func(p *Plugin, window *Window) bool
	SetTransient func(p *Plugin, window *Window) bool
	SuggestTitle func(p *Plugin, title *byte)

	Show func(p *Plugin) bool
	Hide func(p *Plugin) bool
}

// HostGuiTable is the host-side GUI extension: the request-style callbacks a
// plugin may invoke on its host. RequestResize, RequestShow and RequestHide
// are [thread-safe] and two-phase: a true return acknowledges the request,
// the host applies (or reverts) the effect later through a forward call.
type HostGuiTable struct {
	ResizeHintsChanged func(h *Host)
	RequestResize      func(h *Host, width, height uint32) bool
	RequestShow        func(h *Host) bool
	RequestHide        func(h *Host) bool
	Closed             func(h *Host, wasDestroyed bool)
}
