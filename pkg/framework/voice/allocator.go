// Package voice allocates polyphonic voices from note events. Voices are
// addressed by the port, channel, key, note-ID tuple, so a host that
// assigns note IDs can target one voice even when the same key sounds
// several times.
package voice

import (
	"github.com/justyntemme/clapgo/pkg/event"
)

// State is a voice's position in its lifecycle.
type State int

const (
	// Idle voices are free for allocation.
	Idle State = iota
	// Held voices have seen a note on but no note off yet.
	Held
	// Released voices are fading out after a note off.
	Released
)

// Voice is one allocated voice slot.
type Voice struct {
	Pckn     event.Pckn
	Velocity float64

	state State
	// order is an allocation counter used to find the oldest voice when
	// stealing.
	order uint64
}

// Status returns the voice's lifecycle position.
func (v *Voice) Status() State { return v.state }

// Allocator hands out voices for note events, stealing the oldest voice
// when all slots are busy. It is not safe for concurrent use; the audio
// thread owns it.
type Allocator struct {
	voices []Voice
	clock  uint64
}

// NewAllocator creates an allocator with the given polyphony.
func NewAllocator(maxVoices int) *Allocator {
	if maxVoices < 1 {
		maxVoices = 1
	}
	return &Allocator{voices: make([]Voice, maxVoices)}
}

// Voices exposes the voice slots for per-voice processing. Callers must
// not retain the slice past the current audio callback.
func (a *Allocator) Voices() []Voice { return a.voices }

// ActiveCount returns the number of non-idle voices.
func (a *Allocator) ActiveCount() int {
	n := 0
	for i := range a.voices {
		if a.voices[i].state != Idle {
			n++
		}
	}
	return n
}

// NoteOn claims a voice for the event. An idle slot is preferred; with
// none left the oldest voice is stolen. The second result reports whether
// a sounding voice was stolen.
func (a *Allocator) NoteOn(ev event.NoteOn) (*Voice, bool) {
	a.clock++

	var slot *Voice
	stolen := false
	for i := range a.voices {
		if a.voices[i].state == Idle {
			slot = &a.voices[i]
			break
		}
	}
	if slot == nil {
		slot = &a.voices[0]
		for i := range a.voices {
			if a.voices[i].order < slot.order {
				slot = &a.voices[i]
			}
		}
		stolen = true
	}

	*slot = Voice{
		Pckn:     ev.Pckn(),
		Velocity: ev.Velocity(),
		state:    Held,
		order:    a.clock,
	}
	return slot, stolen
}

// NoteOff releases every held voice the event addresses. Wildcard
// components release whole groups at once.
func (a *Allocator) NoteOff(ev event.NoteOff) int {
	target := ev.Pckn()
	n := 0
	for i := range a.voices {
		v := &a.voices[i]
		if v.state == Held && target.Matches(v.Pckn) {
			v.state = Released
			n++
		}
	}
	return n
}

// Choke stops every matching voice immediately, held or released, and
// returns the note end events the plugin owes the host for them.
func (a *Allocator) Choke(ev event.NoteChoke) []event.NoteEnd {
	target := ev.Pckn()
	var ends []event.NoteEnd
	for i := range a.voices {
		v := &a.voices[i]
		if v.state != Idle && target.Matches(v.Pckn) {
			ends = append(ends, event.NewNoteEnd(ev.Time(), v.Pckn))
			v.state = Idle
		}
	}
	return ends
}

// Finish retires a released voice whose tail has faded out and returns the
// note end event announcing it. Finishing a voice that is not released is
// a no-op.
func (a *Allocator) Finish(v *Voice, time uint32) (event.NoteEnd, bool) {
	if v.state != Released {
		return event.NoteEnd{}, false
	}
	v.state = Idle
	return event.NewNoteEnd(time, v.Pckn), true
}

// Reset silences everything, e.g. on a transport jump.
func (a *Allocator) Reset() {
	for i := range a.voices {
		a.voices[i] = Voice{}
	}
}

// Apply routes the note events of one block through the allocator and
// pushes the resulting note end events to out. Non-note events pass
// through untouched; a full output list drops the announcement, which the
// host treats as a voice that ends later.
func (a *Allocator) Apply(in event.Input, out event.Output) {
	in.Each(func(u event.Unknown) {
		decoded, ok := u.Decode()
		if !ok {
			return
		}
		switch ev := decoded.(type) {
		case event.NoteOn:
			a.NoteOn(ev)
		case event.NoteOff:
			a.NoteOff(ev)
		case event.NoteChoke:
			for _, end := range a.Choke(ev) {
				out.Push(end)
			}
		}
	})
}
