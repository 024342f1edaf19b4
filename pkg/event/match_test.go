package event

import "testing"

func TestMatchMatches(t *testing.T) {
	if !Specific(uint16(42)).Matches(Specific(uint16(42))) {
		t.Error("equal specifics must match")
	}
	if Specific(uint16(42)).Matches(Specific(uint16(21))) {
		t.Error("unequal specifics must not match")
	}
	if !Specific(uint16(42)).Matches(All[uint16]()) {
		t.Error("specific must match the wildcard")
	}
	if !All[uint16]().Matches(Specific(uint16(42))) {
		t.Error("the wildcard must match any specific")
	}
	if !All[uint16]().Matches(All[uint16]()) {
		t.Error("the wildcard must match itself")
	}
}

func TestMatchRawRoundTrip16(t *testing.T) {
	for _, v := range []uint16{0, 1, 60, 127, 0x7FFF} {
		m := MatchFromRaw16(int16(v))
		got, ok := m.Value()
		if !ok || got != v {
			t.Errorf("decode(%d) = %v, want Specific(%d)", v, m, v)
		}
		if raw := Raw16(m); raw != int16(v) {
			t.Errorf("re-encode(%d) = %d", v, raw)
		}
	}
}

func TestMatchRawNegativeDecodesToAll(t *testing.T) {
	// -1 is the produced sentinel, but every negative value must decode to
	// the wildcard.
	for _, raw := range []int16{-1, -2, -127, -32768} {
		if !MatchFromRaw16(raw).IsAll() {
			t.Errorf("decode(%d) must be the wildcard", raw)
		}
	}
	for _, raw := range []int32{-1, -2, -2147483648} {
		if !MatchFromRaw32(raw).IsAll() {
			t.Errorf("decode32(%d) must be the wildcard", raw)
		}
	}
}

func TestMatchRawAllEncodesToMinusOne(t *testing.T) {
	if Raw16(All[uint16]()) != -1 {
		t.Error("wildcard must encode to -1")
	}
	if Raw32(All[uint32]()) != -1 {
		t.Error("wildcard must encode to -1")
	}
}

func TestMatchValueOnAll(t *testing.T) {
	if _, ok := All[uint32]().Value(); ok {
		t.Error("Value on the wildcard must report false")
	}
}
