package voice

import (
	"testing"

	"github.com/justyntemme/clapgo/pkg/event"
)

func noteOn(key uint16, noteID uint32) event.NoteOn {
	return event.NewNoteOn(0, event.SpecificPckn(0, 0, key, noteID), 0.8)
}

func TestAllocateAndRelease(t *testing.T) {
	a := NewAllocator(4)

	v, stolen := a.NoteOn(noteOn(60, 1))
	if stolen {
		t.Error("first allocation reported stealing")
	}
	if v.Status() != Held || v.Velocity != 0.8 {
		t.Errorf("voice = %+v", v)
	}
	if a.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", a.ActiveCount())
	}

	released := a.NoteOff(event.NewNoteOff(10, event.SpecificPckn(0, 0, 60, 1), 0))
	if released != 1 {
		t.Errorf("NoteOff released %d voices, want 1", released)
	}
	if v.Status() != Released {
		t.Errorf("voice state = %v, want Released", v.Status())
	}

	end, ok := a.Finish(v, 20)
	if !ok {
		t.Fatal("Finish refused a released voice")
	}
	if end.Time() != 20 || !end.Pckn().Matches(event.SpecificPckn(0, 0, 60, 1)) {
		t.Errorf("note end = %v", end)
	}
	if a.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0", a.ActiveCount())
	}

	// Finishing twice is a no-op.
	if _, ok := a.Finish(v, 30); ok {
		t.Error("Finish retired an idle voice")
	}
}

func TestStealOldest(t *testing.T) {
	a := NewAllocator(2)
	first, _ := a.NoteOn(noteOn(60, 1))
	a.NoteOn(noteOn(64, 2))

	v, stolen := a.NoteOn(noteOn(67, 3))
	if !stolen {
		t.Error("full allocator did not report stealing")
	}
	if v != first {
		t.Error("did not steal the oldest voice")
	}
	if key, _ := v.Pckn.Key.Value(); key != 67 {
		t.Errorf("stolen slot plays key %v, want 67", v.Pckn.Key)
	}
}

func TestWildcardNoteOff(t *testing.T) {
	a := NewAllocator(8)
	a.NoteOn(noteOn(60, 1))
	a.NoteOn(noteOn(64, 2))
	a.NoteOn(noteOn(67, 3))

	// A note off addressed to everything releases all held voices.
	released := a.NoteOff(event.NewNoteOff(0, event.PcknAll(), 0))
	if released != 3 {
		t.Errorf("wildcard NoteOff released %d voices, want 3", released)
	}
}

func TestChokeEmitsNoteEnds(t *testing.T) {
	a := NewAllocator(8)
	a.NoteOn(noteOn(60, 1))
	a.NoteOn(noteOn(60, 2))
	a.NoteOn(noteOn(72, 3))

	// Choke every voice on key 60, any note ID.
	choke := event.NewNoteChoke(40, event.NewPckn(
		event.Specific[uint16](0),
		event.Specific[uint16](0),
		event.Specific[uint16](60),
		event.All[uint32](),
	))
	ends := a.Choke(choke)
	if len(ends) != 2 {
		t.Fatalf("Choke ended %d voices, want 2", len(ends))
	}
	for _, end := range ends {
		if end.Time() != 40 {
			t.Errorf("note end time = %d, want 40", end.Time())
		}
	}
	if a.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", a.ActiveCount())
	}
}

func TestApplyRoutesEventList(t *testing.T) {
	a := NewAllocator(4)

	in := event.NewList()
	in.Push(noteOn(60, 1))
	in.Push(noteOn(64, 2))
	in.Push(event.NewParamValue(5, 1, 0.5)) // ignored
	in.Push(event.NewNoteChoke(8, event.SpecificPckn(0, 0, 64, 2)))
	out := event.NewList()

	a.Apply(event.NewInput(in.AsInput()), event.NewOutput(out.AsOutput()))

	if a.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", a.ActiveCount())
	}
	if out.Len() != 1 {
		t.Fatalf("output has %d events, want 1", out.Len())
	}
	end, err := out.Get(0).AsNoteEnd()
	if err != nil {
		t.Fatalf("output event: %v", err)
	}
	if end.Time() != 8 {
		t.Errorf("note end time = %d, want 8", end.Time())
	}
}

func TestReset(t *testing.T) {
	a := NewAllocator(2)
	a.NoteOn(noteOn(60, 1))
	a.NoteOn(noteOn(64, 2))
	a.Reset()
	if a.ActiveCount() != 0 {
		t.Errorf("ActiveCount after Reset = %d, want 0", a.ActiveCount())
	}
}
