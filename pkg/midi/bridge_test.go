package midi

import (
	"math"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/justyntemme/clapgo/pkg/event"
)

func TestFromMessageNoteOn(t *testing.T) {
	e, ok := FromMessage(100, 0, gomidi.NoteOn(1, 60, 127))
	if !ok {
		t.Fatal("NoteOn message not converted")
	}
	on, isOn := e.(event.NoteOn)
	if !isOn {
		t.Fatalf("converted to %T, want event.NoteOn", e)
	}
	if on.Time() != 100 {
		t.Errorf("Time = %d, want 100", on.Time())
	}
	pckn := on.Pckn()
	want := event.NewPckn(event.Specific[uint16](0), event.Specific[uint16](1), event.Specific[uint16](60), event.All[uint32]())
	if pckn != want {
		t.Errorf("Pckn = %v, want %v", pckn, want)
	}
	if !pckn.NoteID.IsAll() {
		t.Error("note ID should be the wildcard, MIDI has none")
	}
	if on.Velocity() != 1 {
		t.Errorf("Velocity = %v, want 1", on.Velocity())
	}
}

func TestFromMessageNoteOnZeroVelocity(t *testing.T) {
	e, ok := FromMessage(0, 0, gomidi.NoteOn(0, 64, 0))
	if !ok {
		t.Fatal("velocity-zero NoteOn not converted")
	}
	if _, isOff := e.(event.NoteOff); !isOff {
		t.Errorf("velocity-zero NoteOn converted to %T, want event.NoteOff", e)
	}
}

func TestFromMessageNoteOff(t *testing.T) {
	e, ok := FromMessage(5, 2, gomidi.NoteOff(3, 72))
	if !ok {
		t.Fatal("NoteOff message not converted")
	}
	off, isOff := e.(event.NoteOff)
	if !isOff {
		t.Fatalf("converted to %T, want event.NoteOff", e)
	}
	pckn := off.Pckn()
	want := event.NewPckn(event.Specific[uint16](2), event.Specific[uint16](3), event.Specific[uint16](72), event.All[uint32]())
	if pckn != want {
		t.Errorf("Pckn = %v, want %v", pckn, want)
	}
}

func TestFromMessagePassthrough(t *testing.T) {
	// Control change has no typed counterpart; it crosses as raw MIDI.
	e, ok := FromMessage(7, 1, gomidi.ControlChange(0, 7, 100))
	if !ok {
		t.Fatal("ControlChange not converted")
	}
	raw, isMidi := e.(event.Midi)
	if !isMidi {
		t.Fatalf("converted to %T, want event.Midi", e)
	}
	if raw.Port() != 1 {
		t.Errorf("Port = %d, want 1", raw.Port())
	}
	if data := raw.Data(); data[0] != 0xB0 || data[1] != 7 || data[2] != 100 {
		t.Errorf("Data = %v", data)
	}
}

func TestToMessageRoundTrip(t *testing.T) {
	on := event.NewNoteOn(0, event.SpecificPckn(0, 4, 61, 9), 0.5)
	msg, ok := ToMessage(on)
	if !ok {
		t.Fatal("NoteOn not converted")
	}
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) {
		t.Fatalf("message %v is not a note on", msg)
	}
	if channel != 4 || key != 61 {
		t.Errorf("channel %d key %d", channel, key)
	}
	if velocity != 64 {
		t.Errorf("velocity = %d, want 64", velocity)
	}

	off := event.NewNoteOff(0, event.SpecificPckn(0, 4, 61, 9), 0)
	msg, ok = ToMessage(off)
	if !ok {
		t.Fatal("NoteOff not converted")
	}
	if !msg.GetNoteOff(&channel, &key, &velocity) {
		t.Fatalf("message %v is not a note off", msg)
	}
}

func TestToMessageWildcardRejected(t *testing.T) {
	// A wildcard channel or key has no wire form.
	if _, ok := ToMessage(event.NewNoteOn(0, event.PcknAll(), 1)); ok {
		t.Error("wildcard note converted to a MIDI message")
	}
	outOfRange := event.NewNoteOn(0, event.SpecificPckn(0, 16, 60, 0), 1)
	if _, ok := ToMessage(outOfRange); ok {
		t.Error("channel 16 converted to a MIDI message")
	}
}

func TestToMessageChannelKeyBounds(t *testing.T) {
	// The last valid channel and key still cross the wire.
	top := event.NewNoteOn(0, event.SpecificPckn(0, 15, 127, 0), 1)
	msg, ok := ToMessage(top)
	if !ok {
		t.Fatal("channel 15 key 127 not converted")
	}
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) || channel != 15 || key != 127 {
		t.Errorf("message = %v, want note on channel 15 key 127", msg)
	}

	badKey := event.NewNoteOn(0, event.SpecificPckn(0, 0, 128, 0), 1)
	if _, ok := ToMessage(badKey); ok {
		t.Error("key 128 converted to a MIDI message")
	}
}

func TestToMessageRawPassthrough(t *testing.T) {
	raw := event.NewMidi(0, 0, [3]byte{0xE0, 0x00, 0x40})
	msg, ok := ToMessage(raw)
	if !ok {
		t.Fatal("raw MIDI event not converted")
	}
	if len(msg) != 3 || msg[0] != 0xE0 {
		t.Errorf("message = %v", msg)
	}
}

func TestVelocityMapping(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 127},
		{0.5, 64},
		{-1, 0},
		{2, 127},
	}
	for _, c := range cases {
		if got := wireVelocity(c.in); got != c.want {
			t.Errorf("wireVelocity(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNoteToFrequency(t *testing.T) {
	if f := NoteToFrequency(69, 0); f != 440 {
		t.Errorf("A4 = %v, want 440", f)
	}
	if f := NoteToFrequency(81, 0); math.Abs(f-880) > 1e-9 {
		t.Errorf("A5 = %v, want 880", f)
	}
	if f := NoteToFrequency(69, 432); f != 432 {
		t.Errorf("A4 at 432 tuning = %v", f)
	}
}

func TestFrequencyToNote(t *testing.T) {
	if n := FrequencyToNote(440, 0); n != 69 {
		t.Errorf("440 Hz = note %d, want 69", n)
	}
	if n := FrequencyToNote(261.63, 0); n != 60 {
		t.Errorf("261.63 Hz = note %d, want 60", n)
	}
	if n := FrequencyToNote(0, 0); n != 0 {
		t.Errorf("0 Hz = note %d, want 0", n)
	}
	if n := FrequencyToNote(1e9, 0); n != 127 {
		t.Errorf("1 GHz = note %d, want 127", n)
	}
}

func TestNoteNumberToName(t *testing.T) {
	cases := []struct {
		note uint8
		want string
	}{
		{60, "C4"},
		{69, "A4"},
		{61, "C#4"},
		{0, "C-1"},
		{127, "G9"},
	}
	for _, c := range cases {
		if got := NoteNumberToName(c.note); got != c.want {
			t.Errorf("NoteNumberToName(%d) = %q, want %q", c.note, got, c.want)
		}
	}
}
