package event

import (
	"fmt"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// Midi carries a raw three-byte MIDI 1.0 message at a block offset, for
// hosts and plugins that exchange MIDI alongside the typed note events.
type Midi struct {
	raw clap.EventMidiRecord
}

// NewMidi builds a raw MIDI event for the given note port.
func NewMidi(time uint32, port uint16, data [3]byte) Midi {
	return Midi{raw: clap.EventMidiRecord{
		Header: clap.EventHeader{
			Time:    time,
			Type:    clap.EventMidi,
			SpaceID: clap.CoreEventSpace,
		},
		Port: port,
		Data: data,
	}}
}

// MidiFromRaw validates the record's tag and reinterprets it.
func MidiFromRaw(raw *clap.EventMidiRecord) (Midi, error) {
	if err := checkTag(&raw.Header, clap.EventMidi); err != nil {
		return Midi{}, err
	}
	return Midi{raw: *raw}, nil
}

// Header returns a copy of the record's header.
func (e Midi) Header() clap.EventHeader { return e.raw.Header }

// Time returns the sample offset within the current block.
func (e Midi) Time() uint32 { return e.raw.Header.Time }

// Port returns the note port the message belongs to.
func (e Midi) Port() uint16 { return e.raw.Port }

// Data returns the three message bytes (status, data1, data2).
func (e Midi) Data() [3]byte { return e.raw.Data }

// Raw returns the record in its wire layout.
func (e Midi) Raw() clap.EventMidiRecord { return e.raw }

// Equal compares the payload fields, ignoring header time and flags.
func (e Midi) Equal(other Midi) bool {
	return e.raw.Port == other.raw.Port && e.raw.Data == other.raw.Data
}

func (e Midi) String() string {
	return fmt.Sprintf("Midi{time:%d, port:%d, data:%02x %02x %02x}",
		e.raw.Header.Time, e.raw.Port, e.raw.Data[0], e.raw.Data[1], e.raw.Data[2])
}

func (e Midi) alloc() *clap.EventHeader {
	r := new(clap.EventMidiRecord)
	*r = e.raw
	return &r.Header
}
