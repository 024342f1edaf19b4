package event

import "fmt"

// Pckn is the Port, Channel, Key, Note-ID tuple addressing a musical voice.
// Each component can be a specific value or the wildcard, so a single tuple
// can select one note, a whole channel, or everything at once.
//
// A Pckn of (0, 3, All, All) selects all voices on channel 3 of port 0; a
// Pckn of (All, 0, 60, All) selects every channel-0 middle-C voice
// regardless of port or note ID.
type Pckn struct {
	Port    Match16
	Channel Match16
	Key     Match16
	NoteID  Match32
}

// NewPckn builds a tuple from its four components.
func NewPckn(port, channel, key Match16, noteID Match32) Pckn {
	return Pckn{Port: port, Channel: channel, Key: key, NoteID: noteID}
}

// SpecificPckn builds a fully specific tuple, the common case when
// constructing events for a single known voice.
func SpecificPckn(port, channel, key uint16, noteID uint32) Pckn {
	return Pckn{
		Port:    Specific(port),
		Channel: Specific(channel),
		Key:     Specific(key),
		NoteID:  Specific(noteID),
	}
}

// PcknAll is the tuple whose four components are all wildcards; it matches
// every voice.
func PcknAll() Pckn {
	return Pckn{
		Port:    All[uint16](),
		Channel: All[uint16](),
		Key:     All[uint16](),
		NoteID:  All[uint32](),
	}
}

// PcknFromRaw decodes the signed wire form of each component; negative
// values decode to wildcards.
func PcknFromRaw(port, channel, key int16, noteID int32) Pckn {
	return Pckn{
		Port:    MatchFromRaw16(port),
		Channel: MatchFromRaw16(channel),
		Key:     MatchFromRaw16(key),
		NoteID:  MatchFromRaw32(noteID),
	}
}

// Matches reports whether p selects the same voice set as other: each
// component matches if either side is the wildcard or both are equal, and
// the tuple matches iff all four components do.
func (p Pckn) Matches(other Pckn) bool {
	if !p.Port.Matches(other.Port) {
		return false
	}
	if !p.Channel.Matches(other.Channel) {
		return false
	}
	if !p.Key.Matches(other.Key) {
		return false
	}
	return p.NoteID.Matches(other.NoteID)
}

// RawPort encodes the port component, -1 for the wildcard.
func (p Pckn) RawPort() int16 { return Raw16(p.Port) }

// RawChannel encodes the channel component, -1 for the wildcard.
func (p Pckn) RawChannel() int16 { return Raw16(p.Channel) }

// RawKey encodes the key component, -1 for the wildcard.
func (p Pckn) RawKey() int16 { return Raw16(p.Key) }

// RawNoteID encodes the note-ID component, -1 for the wildcard.
func (p Pckn) RawNoteID() int32 { return Raw32(p.NoteID) }

func (p Pckn) String() string {
	return fmt.Sprintf("Pckn{port:%s, ch:%s, key:%s, id:%s}",
		match16String(p.Port), match16String(p.Channel),
		match16String(p.Key), match32String(p.NoteID))
}

func match16String(m Match16) string {
	if v, ok := m.Value(); ok {
		return fmt.Sprintf("%d", v)
	}
	return "*"
}

func match32String(m Match32) string {
	if v, ok := m.Value(); ok {
		return fmt.Sprintf("%d", v)
	}
	return "*"
}
