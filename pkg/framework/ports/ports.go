// Package ports declares a plugin's audio bus layout and exposes it
// through the audio ports extension. Layouts are fixed at declaration;
// changing them requires a host-driven restart.
package ports

import (
	"github.com/justyntemme/clapgo/pkg/clap"
)

// Port is one audio bus.
type Port struct {
	ID       clap.ID
	Name     string
	Channels uint32
	Main     bool
}

// Layout is a plugin's full port configuration.
type Layout struct {
	Inputs  []Port
	Outputs []Port
}

// StereoLayout is the common one-stereo-in, one-stereo-out effect layout.
func StereoLayout() Layout {
	return Layout{
		Inputs:  []Port{{ID: 0, Name: "Stereo In", Channels: 2, Main: true}},
		Outputs: []Port{{ID: 0, Name: "Stereo Out", Channels: 2, Main: true}},
	}
}

// MonoLayout is a one-mono-in, one-mono-out effect layout.
func MonoLayout() Layout {
	return Layout{
		Inputs:  []Port{{ID: 0, Name: "Mono In", Channels: 1, Main: true}},
		Outputs: []Port{{ID: 0, Name: "Mono Out", Channels: 1, Main: true}},
	}
}

// InstrumentLayout is an output-only stereo layout for synthesizers.
func InstrumentLayout() Layout {
	return Layout{
		Outputs: []Port{{ID: 0, Name: "Stereo Out", Channels: 2, Main: true}},
	}
}

func (l Layout) side(isInput bool) []Port {
	if isInput {
		return l.Inputs
	}
	return l.Outputs
}

// Table builds the raw audio ports extension for this layout.
func (l Layout) Table() *clap.PluginAudioPortsTable {
	return &clap.PluginAudioPortsTable{
		Count: func(_ *clap.Plugin, isInput bool) uint32 {
			return uint32(len(l.side(isInput)))
		},

		Get: func(_ *clap.Plugin, index uint32, isInput bool, info *clap.AudioPortInfoRecord) bool {
			side := l.side(isInput)
			if info == nil || index >= uint32(len(side)) {
				return false
			}
			side[index].fill(info)
			return true
		},
	}
}

func (p Port) fill(info *clap.AudioPortInfoRecord) {
	*info = clap.AudioPortInfoRecord{
		ID:           p.ID,
		ChannelCount: p.Channels,
		InPlacePair:  clap.InvalidID,
	}
	if p.Main {
		info.Flags |= clap.AudioPortIsMain
	}
	switch p.Channels {
	case 1:
		info.PortType = clap.StaticCStr(clap.PortTypeMono)
	case 2:
		info.PortType = clap.StaticCStr(clap.PortTypeStereo)
	}
	n := copy(info.Name[:len(info.Name)-1], p.Name)
	info.Name[n] = 0
}
