package event

import "testing"

func TestPcknMatchAll(t *testing.T) {
	tuples := []Pckn{
		SpecificPckn(0, 0, 60, 5),
		SpecificPckn(3, 15, 127, 0),
		PcknAll(),
		NewPckn(Specific(uint16(1)), All[uint16](), Specific(uint16(64)), All[uint32]()),
	}
	for _, p := range tuples {
		if !PcknAll().Matches(p) {
			t.Errorf("PcknAll must match %s", p)
		}
		if !p.Matches(PcknAll()) {
			t.Errorf("%s must match PcknAll", p)
		}
	}
}

func TestPcknMatches(t *testing.T) {
	base := SpecificPckn(0, 0, 60, 5)

	withWildID := NewPckn(Specific(uint16(0)), Specific(uint16(0)), Specific(uint16(60)), All[uint32]())
	if !base.Matches(withWildID) {
		t.Errorf("%s must match %s", base, withWildID)
	}

	otherChannel := NewPckn(Specific(uint16(0)), Specific(uint16(1)), Specific(uint16(60)), All[uint32]())
	if base.Matches(otherChannel) {
		t.Errorf("%s must not match %s", base, otherChannel)
	}

	if !base.Matches(base) {
		t.Error("a fully specific tuple must match itself")
	}
}

func TestPcknRawRoundTrip(t *testing.T) {
	p := SpecificPckn(2, 9, 72, 41)
	got := PcknFromRaw(p.RawPort(), p.RawChannel(), p.RawKey(), p.RawNoteID())
	if got != p {
		t.Errorf("round trip = %s, want %s", got, p)
	}

	all := PcknFromRaw(-1, -1, -1, -1)
	if all != PcknAll() {
		t.Errorf("decoding all -1 = %s, want all wildcards", all)
	}

	// Any negative sentinel decodes to the wildcard.
	if got := PcknFromRaw(-5, 0, 60, 7); !got.Port.IsAll() {
		t.Error("negative port must decode to the wildcard")
	}
}

func TestPcknString(t *testing.T) {
	p := NewPckn(Specific(uint16(0)), Specific(uint16(1)), All[uint16](), Specific(uint32(7)))
	want := "Pckn{port:0, ch:1, key:*, id:7}"
	if got := p.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
