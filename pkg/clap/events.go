package clap

import "unsafe"

// EventSpaceID namespaces event type tags so third parties can define their
// own event sets without colliding with the core space.
type EventSpaceID uint16

const (
	// CoreEventSpace is the namespace of the event types defined in this package.
	CoreEventSpace EventSpaceID = 0
	// InvalidEventSpace is the reserved "no namespace" value.
	InvalidEventSpace EventSpaceID = 0xFFFF
)

// EventType tags the concrete layout of an event record within its space.
type EventType uint16

// Core event space type tags. New tags may only be appended, never reordered.
const (
	EventNoteOn    EventType = 0
	EventNoteOff   EventType = 1
	EventNoteChoke EventType = 2
	EventNoteEnd   EventType = 3

	EventParamValue EventType = 5
	EventParamMod   EventType = 6

	EventMidi EventType = 10
)

// EventFlags qualify how an event record was produced.
type EventFlags uint16

const (
	// EventIsLive marks an event performed live, as opposed to generated
	// from a sequencer track.
	EventIsLive EventFlags = 1 << 0
	// EventDontRecord asks the host not to record this event.
	EventDontRecord EventFlags = 1 << 1
)

// EventHeader is the fixed prefix shared by every event record. Field order,
// widths and padding are part of the binary protocol and must not change.
type EventHeader struct {
	Time    uint32 // sample offset within the current processing block
	Type    EventType
	Flags   EventFlags
	SpaceID EventSpaceID
	_       [2]byte
}

// EventHeaderSize is the encoded size of EventHeader, padding included.
const EventHeaderSize = unsafe.Sizeof(EventHeader{})

// EventNoteRecord is the payload layout shared by the four note event types
// (on, off, choke, end). PCKN fields use -1 as the wildcard sentinel.
type EventNoteRecord struct {
	Header   EventHeader
	NoteID   int32
	Port     int16
	Channel  int16
	Key      int16
	_        [2]byte
	Velocity float64
}

// EventParamValueRecord carries a parameter value change, optionally scoped
// to a PCKN selection for polyphonic modulation.
type EventParamValueRecord struct {
	Header  EventHeader
	ParamID ID
	Cookie  unsafe.Pointer
	NoteID  int32
	Port    int16
	Channel int16
	Key     int16
	_       [6]byte
	Value   float64
}

// EventParamModRecord carries a parameter modulation amount, relative to the
// parameter's current value.
type EventParamModRecord struct {
	Header  EventHeader
	ParamID ID
	Cookie  unsafe.Pointer
	NoteID  int32
	Port    int16
	Channel int16
	Key     int16
	_       [6]byte
	Amount  float64
}

// EventMidiRecord carries a raw three-byte MIDI 1.0 message.
type EventMidiRecord struct {
	Header EventHeader
	Port   uint16
	Data   [3]byte
	_      [3]byte
}

// InputEvents is the read side of an event list as exposed across the
// boundary: an opaque context plus accessor function pointers. The list is
// exclusively owned by the call that received it.
type InputEvents struct {
	Ctx  unsafe.Pointer
	Size func(in *InputEvents) uint32
	Get  func(in *InputEvents, index uint32) *EventHeader
}

// OutputEvents is the write side of an event list as exposed across the
// boundary. TryPush returns false when the peer rejects the record.
type OutputEvents struct {
	Ctx     unsafe.Pointer
	TryPush func(out *OutputEvents, ev *EventHeader) bool
}
