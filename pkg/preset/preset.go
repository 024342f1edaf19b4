// Package preset stores parameter snapshots as JSON documents, a
// human-readable companion to the binary state codec. Documents carry the
// plugin ID they were written for, so a host can refuse to load a preset
// into the wrong plugin.
package preset

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/framework/param"
)

// formatVersion is bumped when the document layout changes.
const formatVersion = 1

// Info is the preset's descriptive header.
type Info struct {
	Name        string
	PluginID    string
	Author      string
	Description string
}

// Save renders the registry's current values as a JSON document.
func Save(reg *param.Registry, info Info) ([]byte, error) {
	doc := []byte(`{}`)

	var err error
	set := func(path string, value interface{}) {
		if err == nil {
			doc, err = sjson.SetBytes(doc, path, value)
		}
	}

	set("version", formatVersion)
	set("name", info.Name)
	set("plugin_id", info.PluginID)
	if info.Author != "" {
		set("author", info.Author)
	}
	if info.Description != "" {
		set("description", info.Description)
	}

	for _, p := range reg.All() {
		key := "params." + strconv.FormatUint(uint64(p.ID), 10)
		set(key+".name", p.Name)
		set(key+".value", p.Value())
	}
	if err != nil {
		return nil, fmt.Errorf("preset: encode: %w", err)
	}
	return doc, nil
}

// Load applies a preset document to the registry and returns its header.
// Parameters the registry no longer has are skipped; parameters missing
// from the document keep their current value. The caller decides whether a
// foreign PluginID is acceptable.
func Load(reg *param.Registry, doc []byte) (Info, error) {
	if !gjson.ValidBytes(doc) {
		return Info{}, fmt.Errorf("preset: invalid JSON")
	}
	root := gjson.ParseBytes(doc)

	version := root.Get("version")
	if !version.Exists() {
		return Info{}, fmt.Errorf("preset: missing version")
	}
	if v := version.Int(); v > formatVersion {
		return Info{}, fmt.Errorf("preset: version %d is newer than supported %d", v, formatVersion)
	}

	info := Info{
		Name:        root.Get("name").String(),
		PluginID:    root.Get("plugin_id").String(),
		Author:      root.Get("author").String(),
		Description: root.Get("description").String(),
	}

	var parseErr error
	root.Get("params").ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.ParseUint(key.String(), 10, 32)
		if err != nil {
			parseErr = fmt.Errorf("preset: bad parameter key %q", key.String())
			return false
		}
		if p := reg.Get(clap.ID(id)); p != nil {
			p.SetValue(value.Get("value").Float())
		}
		return true
	})
	if parseErr != nil {
		return Info{}, parseErr
	}
	return info, nil
}

// SaveFile writes a preset document to disk.
func SaveFile(path string, reg *param.Registry, info Info) error {
	doc, err := Save(reg, info)
	if err != nil {
		return err
	}
	return os.WriteFile(path, doc, 0o644)
}

// LoadFile applies a preset document read from disk.
func LoadFile(path string, reg *param.Registry) (Info, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return Info{}, err
	}
	return Load(reg, doc)
}
