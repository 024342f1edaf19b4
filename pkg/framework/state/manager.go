// Package state serializes plugin state: parameter values plus optional
// plugin-defined extra data, in a little-endian binary format with a
// version header.
package state

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/framework/param"
)

const magic = "CLAPGO"

// currentVersion is the newest format this package writes and reads.
const currentVersion uint32 = 1

// CustomSaveFunc writes plugin-defined state after the parameters.
type CustomSaveFunc func(w io.Writer) error

// CustomLoadFunc reads back what CustomSaveFunc wrote.
type CustomLoadFunc func(r io.Reader) error

// Manager saves and loads one plugin's state around its parameter
// registry. Unknown parameter IDs in saved state are skipped, so presets
// survive parameter removals across plugin versions.
type Manager struct {
	registry   *param.Registry
	customSave CustomSaveFunc
	customLoad CustomLoadFunc
}

// NewManager creates a state manager over the registry.
func NewManager(registry *param.Registry) *Manager {
	return &Manager{registry: registry}
}

// SetCustomState installs save and load hooks for plugin-defined state.
// Both must be set together; the load hook must consume exactly what the
// save hook wrote.
func (m *Manager) SetCustomState(save CustomSaveFunc, load CustomLoadFunc) {
	m.customSave = save
	m.customLoad = load
}

// Save writes the full state.
func (m *Manager) Save(w io.Writer) error {
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, currentVersion); err != nil {
		return err
	}

	params := m.registry.All()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(params))); err != nil {
		return err
	}
	for _, p := range params {
		if err := binary.Write(w, binary.LittleEndian, uint32(p.ID)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, p.Value()); err != nil {
			return err
		}
	}

	hasCustom := uint32(0)
	if m.customSave != nil {
		hasCustom = 1
	}
	if err := binary.Write(w, binary.LittleEndian, hasCustom); err != nil {
		return err
	}
	if m.customSave != nil {
		return m.customSave(w)
	}
	return nil
}

// Load reads state written by Save. Parameters absent from the registry
// are skipped; parameters absent from the state keep their current value.
func (m *Manager) Load(r io.Reader) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return err
	}
	if string(header) != magic {
		return fmt.Errorf("state: bad magic %q", header)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return err
	}
	if version > currentVersion {
		return fmt.Errorf("state: version %d is newer than supported %d", version, currentVersion)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		var id uint32
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return err
		}
		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		if p := m.registry.Get(clap.ID(id)); p != nil {
			p.SetValue(value)
		}
	}

	var hasCustom uint32
	if err := binary.Read(r, binary.LittleEndian, &hasCustom); err != nil {
		return err
	}
	if hasCustom != 0 {
		if m.customLoad == nil {
			return fmt.Errorf("state: custom data present but no load hook installed")
		}
		return m.customLoad(r)
	}
	return nil
}
