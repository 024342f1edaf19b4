package event

import (
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// Event is one typed event of the core event space. Foreign-space records
// travel through lists as Unknown views instead.
type Event interface {
	Header() clap.EventHeader
	Time() uint32
	String() string

	// alloc copies the record onto the heap and returns its header,
	// giving the list a stable allocation to own.
	alloc() *clap.EventHeader
}

// Unknown is a zero-copy view of an event record whose concrete variant has
// not been decoded yet. The view borrows the list's storage and must not be
// retained past the call that produced it.
type Unknown struct {
	h *clap.EventHeader
}

// UnknownFromRaw wraps a raw record. The header must be the first field of a
// complete record allocation of the size its tag implies.
func UnknownFromRaw(h *clap.EventHeader) Unknown {
	return Unknown{h: h}
}

// Header returns a copy of the record's header.
func (u Unknown) Header() clap.EventHeader { return *u.h }

// Time returns the sample offset within the current block.
func (u Unknown) Time() uint32 { return u.h.Time }

// SpaceID returns the record's namespace.
func (u Unknown) SpaceID() clap.EventSpaceID { return u.h.SpaceID }

// Type returns the record's type tag within its namespace.
func (u Unknown) Type() clap.EventType { return u.h.Type }

// Raw returns the underlying header pointer, for handing the record to a
// foreign-space decoder.
func (u Unknown) Raw() *clap.EventHeader { return u.h }

// AsNoteOn reinterprets the record, failing on a tag mismatch.
func (u Unknown) AsNoteOn() (NoteOn, error) {
	return NoteOnFromRaw((*clap.EventNoteRecord)(unsafe.Pointer(u.h)))
}

// AsNoteOff reinterprets the record, failing on a tag mismatch.
func (u Unknown) AsNoteOff() (NoteOff, error) {
	return NoteOffFromRaw((*clap.EventNoteRecord)(unsafe.Pointer(u.h)))
}

// AsNoteChoke reinterprets the record, failing on a tag mismatch.
func (u Unknown) AsNoteChoke() (NoteChoke, error) {
	return NoteChokeFromRaw((*clap.EventNoteRecord)(unsafe.Pointer(u.h)))
}

// AsNoteEnd reinterprets the record, failing on a tag mismatch.
func (u Unknown) AsNoteEnd() (NoteEnd, error) {
	return NoteEndFromRaw((*clap.EventNoteRecord)(unsafe.Pointer(u.h)))
}

// AsParamValue reinterprets the record, failing on a tag mismatch.
func (u Unknown) AsParamValue() (ParamValue, error) {
	return ParamValueFromRaw((*clap.EventParamValueRecord)(unsafe.Pointer(u.h)))
}

// AsParamMod reinterprets the record, failing on a tag mismatch.
func (u Unknown) AsParamMod() (ParamMod, error) {
	return ParamModFromRaw((*clap.EventParamModRecord)(unsafe.Pointer(u.h)))
}

// AsMidi reinterprets the record, failing on a tag mismatch.
func (u Unknown) AsMidi() (Midi, error) {
	return MidiFromRaw((*clap.EventMidiRecord)(unsafe.Pointer(u.h)))
}

// Decode resolves the record's concrete core-space variant. It reports false
// for any record it does not recognize, foreign spaces and future core
// tags alike, so consumers can skip them and stay forward compatible.
func (u Unknown) Decode() (Event, bool) {
	if u.h.SpaceID != clap.CoreEventSpace {
		return nil, false
	}
	switch u.h.Type {
	case clap.EventNoteOn:
		e, err := u.AsNoteOn()
		return e, err == nil
	case clap.EventNoteOff:
		e, err := u.AsNoteOff()
		return e, err == nil
	case clap.EventNoteChoke:
		e, err := u.AsNoteChoke()
		return e, err == nil
	case clap.EventNoteEnd:
		e, err := u.AsNoteEnd()
		return e, err == nil
	case clap.EventParamValue:
		e, err := u.AsParamValue()
		return e, err == nil
	case clap.EventParamMod:
		e, err := u.AsParamMod()
		return e, err == nil
	case clap.EventMidi:
		e, err := u.AsMidi()
		return e, err == nil
	default:
		return nil, false
	}
}
