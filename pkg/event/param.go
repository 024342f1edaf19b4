package event

import (
	"fmt"
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// ParamValue sets a parameter to an absolute value, optionally scoped to a
// PCKN voice selection for polyphonic automation.
type ParamValue struct {
	raw clap.EventParamValueRecord
}

// NewParamValue builds a parameter value event addressing every voice.
func NewParamValue(time uint32, paramID clap.ID, value float64) ParamValue {
	return NewParamValueForVoice(time, paramID, value, PcknAll())
}

// NewParamValueForVoice builds a parameter value event scoped to pckn.
func NewParamValueForVoice(time uint32, paramID clap.ID, value float64, pckn Pckn) ParamValue {
	return ParamValue{raw: clap.EventParamValueRecord{
		Header: clap.EventHeader{
			Time:    time,
			Type:    clap.EventParamValue,
			SpaceID: clap.CoreEventSpace,
		},
		ParamID: paramID,
		NoteID:  pckn.RawNoteID(),
		Port:    pckn.RawPort(),
		Channel: pckn.RawChannel(),
		Key:     pckn.RawKey(),
		Value:   value,
	}}
}

// ParamValueFromRaw validates the record's tag and reinterprets it.
func ParamValueFromRaw(raw *clap.EventParamValueRecord) (ParamValue, error) {
	if err := checkTag(&raw.Header, clap.EventParamValue); err != nil {
		return ParamValue{}, err
	}
	return ParamValue{raw: *raw}, nil
}

// Header returns a copy of the record's header.
func (e ParamValue) Header() clap.EventHeader { return e.raw.Header }

// Time returns the sample offset within the current block.
func (e ParamValue) Time() uint32 { return e.raw.Header.Time }

// WithFlags returns a copy of the event with the given header flags.
func (e ParamValue) WithFlags(flags clap.EventFlags) ParamValue {
	e.raw.Header.Flags = flags
	return e
}

// WithCookie returns a copy carrying the host-provided parameter cookie.
func (e ParamValue) WithCookie(cookie unsafe.Pointer) ParamValue {
	e.raw.Cookie = cookie
	return e
}

// ParamID returns the addressed parameter.
func (e ParamValue) ParamID() clap.ID { return e.raw.ParamID }

// Value returns the absolute parameter value.
func (e ParamValue) Value() float64 { return e.raw.Value }

// Pckn returns the voice selector carried by this event.
func (e ParamValue) Pckn() Pckn {
	return PcknFromRaw(e.raw.Port, e.raw.Channel, e.raw.Key, e.raw.NoteID)
}

// Raw returns the record in its wire layout.
func (e ParamValue) Raw() clap.EventParamValueRecord { return e.raw }

// Equal compares the payload fields, ignoring header time and flags.
func (e ParamValue) Equal(other ParamValue) bool {
	return e.raw.ParamID == other.raw.ParamID &&
		e.raw.Value == other.raw.Value &&
		e.raw.NoteID == other.raw.NoteID &&
		e.raw.Port == other.raw.Port &&
		e.raw.Channel == other.raw.Channel &&
		e.raw.Key == other.raw.Key
}

func (e ParamValue) String() string {
	return fmt.Sprintf("ParamValue{time:%d, id:%d, val:%.4f, %s}",
		e.raw.Header.Time, e.raw.ParamID, e.raw.Value, e.Pckn())
}

func (e ParamValue) alloc() *clap.EventHeader {
	r := new(clap.EventParamValueRecord)
	*r = e.raw
	return &r.Header
}

// ParamMod applies a relative modulation amount on top of a parameter's
// current value, scoped like ParamValue.
type ParamMod struct {
	raw clap.EventParamModRecord
}

// NewParamMod builds a parameter modulation event addressing every voice.
func NewParamMod(time uint32, paramID clap.ID, amount float64) ParamMod {
	return NewParamModForVoice(time, paramID, amount, PcknAll())
}

// NewParamModForVoice builds a parameter modulation event scoped to pckn.
func NewParamModForVoice(time uint32, paramID clap.ID, amount float64, pckn Pckn) ParamMod {
	return ParamMod{raw: clap.EventParamModRecord{
		Header: clap.EventHeader{
			Time:    time,
			Type:    clap.EventParamMod,
			SpaceID: clap.CoreEventSpace,
		},
		ParamID: paramID,
		NoteID:  pckn.RawNoteID(),
		Port:    pckn.RawPort(),
		Channel: pckn.RawChannel(),
		Key:     pckn.RawKey(),
		Amount:  amount,
	}}
}

// ParamModFromRaw validates the record's tag and reinterprets it.
func ParamModFromRaw(raw *clap.EventParamModRecord) (ParamMod, error) {
	if err := checkTag(&raw.Header, clap.EventParamMod); err != nil {
		return ParamMod{}, err
	}
	return ParamMod{raw: *raw}, nil
}

// Header returns a copy of the record's header.
func (e ParamMod) Header() clap.EventHeader { return e.raw.Header }

// Time returns the sample offset within the current block.
func (e ParamMod) Time() uint32 { return e.raw.Header.Time }

// ParamID returns the addressed parameter.
func (e ParamMod) ParamID() clap.ID { return e.raw.ParamID }

// Amount returns the relative modulation amount.
func (e ParamMod) Amount() float64 { return e.raw.Amount }

// Pckn returns the voice selector carried by this event.
func (e ParamMod) Pckn() Pckn {
	return PcknFromRaw(e.raw.Port, e.raw.Channel, e.raw.Key, e.raw.NoteID)
}

// Raw returns the record in its wire layout.
func (e ParamMod) Raw() clap.EventParamModRecord { return e.raw }

// Equal compares the payload fields, ignoring header time and flags.
func (e ParamMod) Equal(other ParamMod) bool {
	return e.raw.ParamID == other.raw.ParamID &&
		e.raw.Amount == other.raw.Amount &&
		e.raw.NoteID == other.raw.NoteID &&
		e.raw.Port == other.raw.Port &&
		e.raw.Channel == other.raw.Channel &&
		e.raw.Key == other.raw.Key
}

func (e ParamMod) String() string {
	return fmt.Sprintf("ParamMod{time:%d, id:%d, amt:%.4f, %s}",
		e.raw.Header.Time, e.raw.ParamID, e.raw.Amount, e.Pckn())
}

func (e ParamMod) alloc() *clap.EventHeader {
	r := new(clap.EventParamModRecord)
	*r = e.raw
	return &r.Header
}
