package plugin

import (
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// ExtensionBuilder collects the extension tables one instance exposes to
// its host. Identifiers are the null-terminated constants from pkg/clap;
// tables are immutable once declared.
type ExtensionBuilder struct {
	exts map[string]unsafe.Pointer
}

func newExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{exts: make(map[string]unsafe.Pointer)}
}

// Register declares support for one extension. Registering the same
// identifier twice keeps the first table.
func (b *ExtensionBuilder) Register(id string, table unsafe.Pointer) {
	if _, dup := b.exts[id]; dup || table == nil {
		return
	}
	b.exts[id] = table
}

// RegisterParams declares the parameters extension.
func (b *ExtensionBuilder) RegisterParams(table *clap.PluginParamsTable) {
	b.Register(clap.ExtParams, unsafe.Pointer(table))
}

// RegisterGui declares the GUI extension.
func (b *ExtensionBuilder) RegisterGui(table *clap.PluginGuiTable) {
	b.Register(clap.ExtGUI, unsafe.Pointer(table))
}

func (b *ExtensionBuilder) lookup(id *byte) unsafe.Pointer {
	for key, table := range b.exts {
		if clap.IDEquals(id, key) {
			return table
		}
	}
	return nil
}
