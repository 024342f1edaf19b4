// Package event implements the typed event model: wildcard PCKN addressing,
// the fixed-layout event variants of the core event space, and the ordered
// event list exchanged on every processing call.
package event

// MatchValue is the set of unsigned domains a Match can range over.
type MatchValue interface {
	~uint16 | ~uint32
}

// Match is either one specific value of its domain or the wildcard that
// matches every value. The zero Match is Specific(0).
type Match[T MatchValue] struct {
	value T
	all   bool
}

// Specific returns a Match for exactly v.
func Specific[T MatchValue](v T) Match[T] {
	return Match[T]{value: v}
}

// All returns the wildcard Match for the domain T.
func All[T MatchValue]() Match[T] {
	return Match[T]{all: true}
}

// IsAll reports whether m is the wildcard.
func (m Match[T]) IsAll() bool { return m.all }

// Value returns the specific value and true, or the zero value and false if
// m is the wildcard.
func (m Match[T]) Value() (T, bool) {
	if m.all {
		var zero T
		return zero, false
	}
	return m.value, true
}

// Matches reports whether m and other select overlapping values: always true
// if either side is the wildcard, otherwise plain equality.
func (m Match[T]) Matches(other Match[T]) bool {
	if m.all || other.all {
		return true
	}
	return m.value == other.value
}

// Match16 and Match32 name the two domains the binary protocol uses.
type (
	Match16 = Match[uint16]
	Match32 = Match[uint32]
)

// MatchFromRaw16 decodes the signed 16-bit wire form: every negative value
// decodes to the wildcard, not just the -1 this layer produces.
func MatchFromRaw16(raw int16) Match16 {
	if raw < 0 {
		return All[uint16]()
	}
	return Specific(uint16(raw))
}

// MatchFromRaw32 decodes the signed 32-bit wire form; negative values decode
// to the wildcard.
func MatchFromRaw32(raw int32) Match32 {
	if raw < 0 {
		return All[uint32]()
	}
	return Specific(uint32(raw))
}

// Raw16 encodes a 16-bit Match into its signed wire form, -1 for the wildcard.
func Raw16(m Match16) int16 {
	if v, ok := m.Value(); ok {
		return int16(v)
	}
	return -1
}

// Raw32 encodes a 32-bit Match into its signed wire form, -1 for the wildcard.
func Raw32(m Match32) int32 {
	if v, ok := m.Value(); ok {
		return int32(v)
	}
	return -1
}
