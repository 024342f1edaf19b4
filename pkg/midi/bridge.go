// Package midi bridges wire-format MIDI and the typed event model: raw
// channel messages coming from a host or a hardware port become typed note
// events, and typed events become messages a MIDI output can send.
package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/justyntemme/clapgo/pkg/event"
)

// maxVelocity is the largest MIDI data byte value.
const maxVelocity = 127

// FromMessage converts one MIDI message into a typed event at the given
// time and note port. Note-ons with velocity zero become note-offs, per
// MIDI convention. Messages with no typed counterpart pass through as raw
// MIDI events when they fit a short message; longer messages report false.
func FromMessage(time uint32, port uint16, msg gomidi.Message) (event.Event, bool) {
	var channel, key, velocity uint8

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		pckn := notePckn(port, channel, key)
		if velocity == 0 {
			return event.NewNoteOff(time, pckn, 0), true
		}
		return event.NewNoteOn(time, pckn, float64(velocity)/maxVelocity), true

	case msg.GetNoteOff(&channel, &key, &velocity):
		return event.NewNoteOff(time, notePckn(port, channel, key), float64(velocity)/maxVelocity), true
	}

	if len(msg) != 3 {
		return nil, false
	}
	return event.NewMidi(time, port, [3]byte{msg[0], msg[1], msg[2]}), true
}

// ToMessage converts a typed event into a MIDI message. Note events need a
// specific channel and key; wildcard addressing has no wire form. Events
// without a MIDI counterpart report false.
func ToMessage(e event.Event) (gomidi.Message, bool) {
	switch ev := e.(type) {
	case event.NoteOn:
		channel, key, ok := wireChannelKey(ev.Pckn())
		if !ok {
			return nil, false
		}
		return gomidi.NoteOn(channel, key, wireVelocity(ev.Velocity())), true

	case event.NoteOff:
		channel, key, ok := wireChannelKey(ev.Pckn())
		if !ok {
			return nil, false
		}
		return gomidi.NoteOff(channel, key), true

	case event.Midi:
		data := ev.Data()
		return gomidi.Message(data[:]), true
	}
	return nil, false
}

// notePckn addresses the voice a MIDI note message names. MIDI has no note
// ID, so that component stays a wildcard.
func notePckn(port uint16, channel, key uint8) event.Pckn {
	return event.NewPckn(
		event.Specific(port),
		event.Specific(uint16(channel)),
		event.Specific(uint16(key)),
		event.All[uint32](),
	)
}

func wireChannelKey(pckn event.Pckn) (channel, key uint8, ok bool) {
	if pckn.Channel.IsAll() || pckn.Key.IsAll() {
		return 0, 0, false
	}
	ch, _ := pckn.Channel.Value()
	k, _ := pckn.Key.Value()
	if ch > 15 || k > maxVelocity {
		return 0, 0, false
	}
	return uint8(ch), uint8(k), true
}

func wireVelocity(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return maxVelocity
	}
	return uint8(v*maxVelocity + 0.5)
}
