package event

import (
	"fmt"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// noteTag distinguishes the four note event types that share the
// EventNoteRecord layout. It exists only at the type level; every tag is a
// zero-size marker.
type noteTag interface {
	noteType() clap.EventType
	noteName() string
}

type (
	noteOnTag    struct{}
	noteOffTag   struct{}
	noteChokeTag struct{}
	noteEndTag   struct{}
)

func (noteOnTag) noteType() clap.EventType    { return clap.EventNoteOn }
func (noteOnTag) noteName() string            { return "NoteOn" }
func (noteOffTag) noteType() clap.EventType   { return clap.EventNoteOff }
func (noteOffTag) noteName() string           { return "NoteOff" }
func (noteChokeTag) noteType() clap.EventType { return clap.EventNoteChoke }
func (noteChokeTag) noteName() string         { return "NoteChoke" }
func (noteEndTag) noteType() clap.EventType   { return clap.EventNoteEnd }
func (noteEndTag) noteName() string           { return "NoteEnd" }

// Note is the shared implementation of the four note event types. The tag
// parameter pins the header's type field at the type level, so a NoteOn can
// never carry a NoteOff record.
type Note[T noteTag] struct {
	raw clap.EventNoteRecord
}

// The four note event types of the core event space.
type (
	// NoteOn starts a voice. Velocity is in the 0..1 range.
	NoteOn = Note[noteOnTag]
	// NoteOff releases a voice; the voice may keep sounding through its
	// release envelope until the plugin sends NoteEnd.
	NoteOff = Note[noteOffTag]
	// NoteChoke kills a voice immediately, bypassing any release stage.
	NoteChoke = Note[noteChokeTag]
	// NoteEnd is sent by the plugin to tell the host a voice finished.
	NoteEnd = Note[noteEndTag]
)

func newNote[T noteTag](time uint32, pckn Pckn, velocity float64) Note[T] {
	var tag T
	return Note[T]{raw: clap.EventNoteRecord{
		Header: clap.EventHeader{
			Time:    time,
			Type:    tag.noteType(),
			SpaceID: clap.CoreEventSpace,
		},
		NoteID:   pckn.RawNoteID(),
		Port:     pckn.RawPort(),
		Channel:  pckn.RawChannel(),
		Key:      pckn.RawKey(),
		Velocity: velocity,
	}}
}

// NewNoteOn builds a note-on event at the given block offset.
func NewNoteOn(time uint32, pckn Pckn, velocity float64) NoteOn {
	return newNote[noteOnTag](time, pckn, velocity)
}

// NewNoteOff builds a note-off event at the given block offset.
func NewNoteOff(time uint32, pckn Pckn, velocity float64) NoteOff {
	return newNote[noteOffTag](time, pckn, velocity)
}

// NewNoteChoke builds a note-choke event at the given block offset.
func NewNoteChoke(time uint32, pckn Pckn) NoteChoke {
	return newNote[noteChokeTag](time, pckn, 0)
}

// NewNoteEnd builds a note-end event at the given block offset.
func NewNoteEnd(time uint32, pckn Pckn) NoteEnd {
	return newNote[noteEndTag](time, pckn, 0)
}

func noteFromRaw[T noteTag](raw *clap.EventNoteRecord) (Note[T], error) {
	var tag T
	if err := checkTag(&raw.Header, tag.noteType()); err != nil {
		return Note[T]{}, err
	}
	return Note[T]{raw: *raw}, nil
}

// NoteOnFromRaw validates the record's tag and reinterprets it as a NoteOn.
func NoteOnFromRaw(raw *clap.EventNoteRecord) (NoteOn, error) {
	return noteFromRaw[noteOnTag](raw)
}

// NoteOffFromRaw validates the record's tag and reinterprets it as a NoteOff.
func NoteOffFromRaw(raw *clap.EventNoteRecord) (NoteOff, error) {
	return noteFromRaw[noteOffTag](raw)
}

// NoteChokeFromRaw validates the record's tag and reinterprets it as a NoteChoke.
func NoteChokeFromRaw(raw *clap.EventNoteRecord) (NoteChoke, error) {
	return noteFromRaw[noteChokeTag](raw)
}

// NoteEndFromRaw validates the record's tag and reinterprets it as a NoteEnd.
func NoteEndFromRaw(raw *clap.EventNoteRecord) (NoteEnd, error) {
	return noteFromRaw[noteEndTag](raw)
}

// Header returns a copy of the record's header.
func (e Note[T]) Header() clap.EventHeader { return e.raw.Header }

// Time returns the sample offset within the current block.
func (e Note[T]) Time() uint32 { return e.raw.Header.Time }

// WithFlags returns a copy of the event with the given header flags.
func (e Note[T]) WithFlags(flags clap.EventFlags) Note[T] {
	e.raw.Header.Flags = flags
	return e
}

// Pckn returns the voice selector carried by this event.
func (e Note[T]) Pckn() Pckn {
	return PcknFromRaw(e.raw.Port, e.raw.Channel, e.raw.Key, e.raw.NoteID)
}

// Port exposes the stored sentinel-bearing port field as a Match.
func (e Note[T]) Port() Match16 { return MatchFromRaw16(e.raw.Port) }

// Channel exposes the stored sentinel-bearing channel field as a Match.
func (e Note[T]) Channel() Match16 { return MatchFromRaw16(e.raw.Channel) }

// Key exposes the stored sentinel-bearing key field as a Match.
func (e Note[T]) Key() Match16 { return MatchFromRaw16(e.raw.Key) }

// NoteID exposes the stored sentinel-bearing note-ID field as a Match.
func (e Note[T]) NoteID() Match32 { return MatchFromRaw32(e.raw.NoteID) }

// Velocity returns the note velocity in the 0..1 range.
func (e Note[T]) Velocity() float64 { return e.raw.Velocity }

// Raw returns the record in its wire layout.
func (e Note[T]) Raw() clap.EventNoteRecord { return e.raw }

// Equal compares the payload fields. Header time and flags are context, not
// identity, and are deliberately excluded.
func (e Note[T]) Equal(other Note[T]) bool {
	return e.raw.Key == other.raw.Key &&
		e.raw.Channel == other.raw.Channel &&
		e.raw.Port == other.raw.Port &&
		e.raw.NoteID == other.raw.NoteID &&
		e.raw.Velocity == other.raw.Velocity
}

func (e Note[T]) String() string {
	var tag T
	return fmt.Sprintf("%s{time:%d, %s, vel:%.3f}",
		tag.noteName(), e.raw.Header.Time, e.Pckn(), e.raw.Velocity)
}

func (e Note[T]) alloc() *clap.EventHeader {
	r := new(clap.EventNoteRecord)
	*r = e.raw
	return &r.Header
}
