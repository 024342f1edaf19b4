package ports

import (
	"testing"

	"github.com/justyntemme/clapgo/pkg/clap"
)

func TestStereoLayoutTable(t *testing.T) {
	table := StereoLayout().Table()

	if got := table.Count(nil, true); got != 1 {
		t.Errorf("input Count = %d, want 1", got)
	}
	if got := table.Count(nil, false); got != 1 {
		t.Errorf("output Count = %d, want 1", got)
	}

	var info clap.AudioPortInfoRecord
	if !table.Get(nil, 0, true, &info) {
		t.Fatal("Get(input 0) failed")
	}
	if got := clap.GoStr(&info.Name[0]); got != "Stereo In" {
		t.Errorf("Name = %q", got)
	}
	if info.ChannelCount != 2 {
		t.Errorf("ChannelCount = %d, want 2", info.ChannelCount)
	}
	if info.Flags&clap.AudioPortIsMain == 0 {
		t.Error("main port not flagged")
	}
	if !clap.IDEquals(info.PortType, clap.PortTypeStereo) {
		t.Errorf("PortType = %q", clap.GoStr(info.PortType))
	}
	if info.InPlacePair != clap.InvalidID {
		t.Errorf("InPlacePair = %d, want InvalidID", info.InPlacePair)
	}
}

func TestInstrumentLayoutHasNoInputs(t *testing.T) {
	table := InstrumentLayout().Table()
	if got := table.Count(nil, true); got != 0 {
		t.Errorf("input Count = %d, want 0", got)
	}
	var info clap.AudioPortInfoRecord
	if table.Get(nil, 0, true, &info) {
		t.Error("Get on an empty side succeeded")
	}
	if !table.Get(nil, 0, false, &info) {
		t.Fatal("Get(output 0) failed")
	}
}

func TestMonoPortType(t *testing.T) {
	table := MonoLayout().Table()
	var info clap.AudioPortInfoRecord
	if !table.Get(nil, 0, false, &info) {
		t.Fatal("Get failed")
	}
	if !clap.IDEquals(info.PortType, clap.PortTypeMono) {
		t.Errorf("PortType = %q", clap.GoStr(info.PortType))
	}
}

func TestUnusualChannelCountHasNoType(t *testing.T) {
	l := Layout{Outputs: []Port{{ID: 0, Name: "Surround", Channels: 6}}}
	var info clap.AudioPortInfoRecord
	if !l.Table().Get(nil, 0, false, &info) {
		t.Fatal("Get failed")
	}
	if info.PortType != nil {
		t.Errorf("six-channel port got type %q", clap.GoStr(info.PortType))
	}
	if info.Flags&clap.AudioPortIsMain != 0 {
		t.Error("non-main port flagged as main")
	}
}
