package clap

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"
)

// EncodingError reports that a Go string could not be converted into the
// ABI's null-terminated form, e.g. because it contains an interior NUL byte.
type EncodingError struct {
	Value string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("string %q cannot cross the ABI boundary: interior NUL byte", e.Value)
}

// NewCStr converts a Go string into a pointer to a null-terminated byte
// buffer. The buffer is freshly allocated and immutable by convention; keep
// the returned pointer alive for as long as the peer may read it.
func NewCStr(s string) (*byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &EncodingError{Value: s}
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0], nil
}

// StaticCStr converts an identifier constant that already carries its NUL
// terminator (e.g. ExtGUI) into a raw pointer. It panics on malformed input
// since identifier constants are fixed at compile time.
func StaticCStr(s string) *byte {
	if len(s) == 0 || s[len(s)-1] != 0 {
		panic(fmt.Sprintf("clap: identifier %q is not null-terminated", s))
	}
	if strings.IndexByte(s[:len(s)-1], 0) >= 0 {
		panic(fmt.Sprintf("clap: identifier %q has an interior NUL byte", s))
	}
	buf := []byte(s)
	return &buf[0]
}

var (
	staticIDMu sync.Mutex
	staticIDs  = map[string]*byte{}
)

// staticID interns the raw pointer form of an identifier constant so that
// repeated lookups never allocate. Identifiers are immutable for the process
// lifetime and safe to read from any thread.
func staticID(s string) *byte {
	staticIDMu.Lock()
	defer staticIDMu.Unlock()
	if p, ok := staticIDs[s]; ok {
		return p
	}
	p := StaticCStr(s)
	staticIDs[s] = p
	return p
}

// GoStr reads a null-terminated string from raw memory. A nil pointer reads
// as the empty string.
func GoStr(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// IDEquals compares a raw identifier pointer byte-for-byte against a
// null-terminated identifier constant.
func IDEquals(p *byte, id string) bool {
	if p == nil {
		return false
	}
	for i := 0; i < len(id); i++ {
		b := *(*byte)(unsafe.Add(unsafe.Pointer(p), i))
		if b != id[i] {
			return false
		}
		if b == 0 {
			// Both strings ended together.
			return true
		}
	}
	return false
}
