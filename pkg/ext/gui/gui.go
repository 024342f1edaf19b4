// Package gui wraps the GUI extension on both sides of the boundary: the
// host-facing safe wrapper over a plugin's window operations, and the
// plugin-facing wrapper over the host's request-style callbacks.
//
// Only the negotiation shape lives here; actual rendering and windowing
// belong to whichever backend implements the operations.
package gui

import (
	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/host"
	"github.com/justyntemme/clapgo/pkg/plugin"
)

// Config selects a windowing API and whether the plugin window floats free
// of the host or embeds into a parent window.
type Config struct {
	// API is one of the clap.WindowAPI* identifier constants.
	API        string
	IsFloating bool
}

// Size is a window extent in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// ResizeHints describe how an embedded plugin window may be resized.
type ResizeHints struct {
	CanResizeHorizontally bool
	CanResizeVertically   bool
	PreserveAspectRatio   bool
	AspectRatioWidth      uint32
	AspectRatioHeight     uint32
}

// PluginGui is the host's safe wrapper over a plugin's GUI table. Obtain it
// once per instance with FromPlugin; all methods are main-thread and take
// the handle proving it.
type PluginGui struct {
	table *clap.PluginGuiTable
}

// FromPlugin negotiates the GUI extension with the plugin. It reports false
// when the plugin does not support the extension at all; individual
// operations may still be absent on a supported extension.
func FromPlugin(m *host.MainThread) (*PluginGui, bool) {
	ptr := m.Extension(clap.ExtGUI)
	if ptr == nil {
		return nil, false
	}
	return &PluginGui{table: (*clap.PluginGuiTable)(ptr)}, true
}

// IsAPISupported reports whether the plugin can drive the given windowing
// configuration. An absent operation reports false.
func (g *PluginGui) IsAPISupported(m *host.MainThread, cfg Config) bool {
	if g.table.IsAPISupported == nil {
		return false
	}
	api, err := clap.NewCStr(trimNul(cfg.API))
	if err != nil {
		return false
	}
	return g.table.IsAPISupported(m.Plugin(), api, cfg.IsFloating)
}

// GetPreferredAPI returns the configuration the plugin would rather use.
// This is only a hint; the host may still pick another one.
func (g *PluginGui) GetPreferredAPI(m *host.MainThread) (Config, bool) {
	if g.table.GetPreferredAPI == nil {
		return Config{}, false
	}
	var api *byte
	isFloating := true
	if !g.table.GetPreferredAPI(m.Plugin(), &api, &isFloating) || api == nil {
		return Config{}, false
	}
	return Config{API: clap.GoStr(api) + "\x00", IsFloating: isFloating}, true
}

// Create allocates the plugin's GUI resources for the given configuration.
func (g *PluginGui) Create(m *host.MainThread, cfg Config) error {
	if g.table.Create == nil {
		return ErrCreate
	}
	api, err := clap.NewCStr(trimNul(cfg.API))
	if err != nil {
		return err
	}
	if !g.table.Create(m.Plugin(), api, cfg.IsFloating) {
		return ErrCreate
	}
	return nil
}

// Destroy frees all resources associated with the GUI.
func (g *PluginGui) Destroy(m *host.MainThread) {
	if g.table.Destroy != nil {
		g.table.Destroy(m.Plugin())
	}
}

// SetScale overrides the GUI's absolute scaling factor.
func (g *PluginGui) SetScale(m *host.MainThread, scale float64) error {
	if g.table.SetScale == nil {
		return ErrSetScale
	}
	if !g.table.SetScale(m.Plugin(), scale) {
		return ErrSetScale
	}
	return nil
}

// GetSize returns the current window size, or false when the plugin cannot
// report one.
func (g *PluginGui) GetSize(m *host.MainThread) (Size, bool) {
	if g.table.GetSize == nil {
		return Size{}, false
	}
	var w, h uint32
	if !g.table.GetSize(m.Plugin(), &w, &h) {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

// CanResize reports whether the embedded window may be resized. An absent
// operation reports false.
func (g *PluginGui) CanResize(m *host.MainThread) bool {
	if g.table.CanResize == nil {
		return false
	}
	return g.table.CanResize(m.Plugin())
}

// GetResizeHints returns the plugin's resizing constraints, if any.
func (g *PluginGui) GetResizeHints(m *host.MainThread) (ResizeHints, bool) {
	if g.table.GetResizeHints == nil {
		return ResizeHints{}, false
	}
	var rec clap.GuiResizeHintsRecord
	if !g.table.GetResizeHints(m.Plugin(), &rec) {
		return ResizeHints{}, false
	}
	return ResizeHints{
		CanResizeHorizontally: rec.CanResizeHorizontally,
		CanResizeVertically:   rec.CanResizeVertically,
		PreserveAspectRatio:   rec.PreserveAspectRatio,
		AspectRatioWidth:      rec.AspectRatioWidth,
		AspectRatioHeight:     rec.AspectRatioHeight,
	}, true
}

// AdjustSize rounds a requested size to the closest one the plugin can
// satisfy. The result is never larger than the request.
func (g *PluginGui) AdjustSize(m *host.MainThread, size Size) (Size, bool) {
	if g.table.AdjustSize == nil {
		return Size{}, false
	}
	w, h := size.Width, size.Height
	if !g.table.AdjustSize(m.Plugin(), &w, &h) {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

// SetSize resizes the embedded window.
func (g *PluginGui) SetSize(m *host.MainThread, size Size) error {
	if g.table.SetSize == nil {
		return ErrSetSize
	}
	if !g.table.SetSize(m.Plugin(), size.Width, size.Height) {
		return ErrSetSize
	}
	return nil
}

// SetParent embeds the plugin window into the given parent. The caller must
// keep the native window alive until Destroy.
func (g *PluginGui) SetParent(m *host.MainThread, window clap.Window) error {
	if g.table.SetParent == nil {
		return ErrSetParent
	}
	if !g.table.SetParent(m.Plugin(), &window) {
		return ErrSetParent
	}
	return nil
}

// SetTransient asks a floating plugin window to stay above the given window.
func (g *PluginGui) SetTransient(m *host.MainThread, window clap.Window) error {
	if g.table.SetTransient == nil {
		return ErrSetTransient
	}
	if !g.table.SetTransient(m.Plugin(), &window) {
		return ErrSetTransient
	}
	return nil
}

// SuggestTitle offers a window title to a floating plugin window.
func (g *PluginGui) SuggestTitle(m *host.MainThread, title string) error {
	if g.table.SuggestTitle == nil {
		return nil
	}
	p, err := clap.NewCStr(title)
	if err != nil {
		return err
	}
	g.table.SuggestTitle(m.Plugin(), p)
	return nil
}

// Show makes the window visible.
func (g *PluginGui) Show(m *host.MainThread) error {
	if g.table.Show == nil || !g.table.Show(m.Plugin()) {
		return ErrShow
	}
	return nil
}

// Hide hides the window without freeing its resources.
func (g *PluginGui) Hide(m *host.MainThread) error {
	if g.table.Hide == nil || !g.table.Hide(m.Plugin()) {
		return ErrHide
	}
	return nil
}

// trimNul strips the terminator from an identifier constant so it can be
// re-encoded; plain Go strings pass through unchanged.
func trimNul(s string) string {
	if len(s) > 0 && s[len(s)-1] == 0 {
		return s[:len(s)-1]
	}
	return s
}

// HostGui is the plugin's safe wrapper over the host's GUI callbacks. Its
// request-style methods are any-thread and two-phase: a nil error only
// acknowledges the request, the host applies or reverts the effect later.
type HostGui struct {
	table *clap.HostGuiTable
}

// FromHost negotiates the host's GUI callbacks. It reports false when the
// host does not support them.
func FromHost(h plugin.HostHandle) (*HostGui, bool) {
	ptr := h.Extension(clap.ExtGUI)
	if ptr == nil {
		return nil, false
	}
	return &HostGui{table: (*clap.HostGuiTable)(ptr)}, true
}

// ResizeHintsChanged tells the host to re-query the plugin's resize hints.
func (g *HostGui) ResizeHintsChanged(h plugin.HostHandle) {
	if g.table.ResizeHintsChanged != nil {
		g.table.ResizeHintsChanged(h.Raw())
	}
}

// RequestResize asks the host to resize the parent window's client area.
// Acceptance is not completion: a rejected-later request is reverted by the
// host calling the plugin's SetSize.
func (g *HostGui) RequestResize(h plugin.HostHandle, size Size) error {
	if g.table.RequestResize == nil {
		return ErrRequestResize
	}
	if !g.table.RequestResize(h.Raw(), size.Width, size.Height) {
		return ErrRequestResize
	}
	return nil
}

// RequestShow asks the host to make the plugin window visible.
func (g *HostGui) RequestShow(h plugin.HostHandle) error {
	if g.table.RequestShow == nil || !g.table.RequestShow(h.Raw()) {
		return ErrRequestShow
	}
	return nil
}

// RequestHide asks the host to hide the plugin window.
func (g *HostGui) RequestHide(h plugin.HostHandle) error {
	if g.table.RequestHide == nil || !g.table.RequestHide(h.Raw()) {
		return ErrRequestHide
	}
	return nil
}

// Closed tells the host the floating window closed or the GUI connection
// was lost. When wasDestroyed is true the host must acknowledge with a
// Destroy call.
func (g *HostGui) Closed(h plugin.HostHandle, wasDestroyed bool) {
	if g.table.Closed != nil {
		g.table.Closed(h.Raw(), wasDestroyed)
	}
}

// HostHandler is the host's safe implementation of its GUI callbacks,
// adapted into a raw table by HostTable.
type HostHandler interface {
	ResizeHintsChanged()
	RequestResize(size Size) error
	RequestShow() error
	RequestHide() error
	Closed(wasDestroyed bool)
}

// HostTable adapts a HostHandler into the raw table a plugin calls. The
// trampolines recover panics and convert every failure into the ABI's
// failure sentinel; nothing may unwind across the boundary.
func HostTable(impl HostHandler) *clap.HostGuiTable {
	return &clap.HostGuiTable{
		ResizeHintsChanged: func(h *clap.Host) {
			defer recoverFalse(nil)
			impl.ResizeHintsChanged()
		},
		RequestResize: func(h *clap.Host, width, height uint32) (ok bool) {
			defer recoverFalse(&ok)
			return impl.RequestResize(Size{Width: width, Height: height}) == nil
		},
		RequestShow: func(h *clap.Host) (ok bool) {
			defer recoverFalse(&ok)
			return impl.RequestShow() == nil
		},
		RequestHide: func(h *clap.Host) (ok bool) {
			defer recoverFalse(&ok)
			return impl.RequestHide() == nil
		},
		Closed: func(h *clap.Host, wasDestroyed bool) {
			defer recoverFalse(nil)
			impl.Closed(wasDestroyed)
		},
	}
}

func recoverFalse(ok *bool) {
	if r := recover(); r != nil && ok != nil {
		*ok = false
	}
}
