package event

import (
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// List is an append-only, submission-ordered sequence of event records. The
// list never reorders: producers are responsible for pushing events in
// non-decreasing time order within a block, and consumers must not assume
// the container enforced it.
//
// A list is exclusively owned by the processing call it was built for;
// neither side may retain pointers into it past that call. It is not safe
// for concurrent use.
type List struct {
	records []*clap.EventHeader
}

// NewList returns an empty list with room for a typical block's events.
func NewList() *List {
	return &List{records: make([]*clap.EventHeader, 0, 32)}
}

// Push appends a typed event, copying its record into list-owned storage.
func (l *List) Push(e Event) {
	l.records = append(l.records, e.alloc())
}

// PushRaw appends a foreign or pre-allocated record without copying. The
// caller keeps the allocation alive for the lifetime of the list.
func (l *List) PushRaw(h *clap.EventHeader) {
	l.records = append(l.records, h)
}

// Len returns the number of records appended so far.
func (l *List) Len() int { return len(l.records) }

// Get returns a view of the i-th record in submission order.
func (l *List) Get(i int) Unknown {
	return Unknown{h: l.records[i]}
}

// Clear empties the list, retaining its storage for the next block.
func (l *List) Clear() {
	l.records = l.records[:0]
}

// Iter returns a restartable iterator over the list in submission order.
func (l *List) Iter() *Iter {
	return &Iter{list: l}
}

// Iter walks a List lazily in submission order.
type Iter struct {
	list *List
	next int
}

// Next returns the next record view, or false when the list is exhausted.
func (it *Iter) Next() (Unknown, bool) {
	if it.next >= len(it.list.records) {
		return Unknown{}, false
	}
	u := Unknown{h: it.list.records[it.next]}
	it.next++
	return u, true
}

// Reset rewinds the iterator to the start of the list.
func (it *Iter) Reset() {
	it.next = 0
}

// AsInput exposes the list read-only across the ABI boundary.
func (l *List) AsInput() *clap.InputEvents {
	return &clap.InputEvents{
		Ctx: unsafe.Pointer(l),
		Size: func(in *clap.InputEvents) uint32 {
			return uint32(len((*List)(in.Ctx).records))
		},
		Get: func(in *clap.InputEvents, index uint32) *clap.EventHeader {
			list := (*List)(in.Ctx)
			if index >= uint32(len(list.records)) {
				return nil
			}
			return list.records[index]
		},
	}
}

// AsOutput exposes the list write-only across the ABI boundary.
func (l *List) AsOutput() *clap.OutputEvents {
	return &clap.OutputEvents{
		Ctx: unsafe.Pointer(l),
		TryPush: func(out *clap.OutputEvents, ev *clap.EventHeader) bool {
			if ev == nil {
				return false
			}
			(*List)(out.Ctx).records = append((*List)(out.Ctx).records, ev)
			return true
		},
	}
}

// Input is the consumer-side view of a peer's event list, wrapping the raw
// accessor table it handed across the boundary.
type Input struct {
	raw *clap.InputEvents
}

// NewInput wraps a raw input list. A nil table reads as empty.
func NewInput(raw *clap.InputEvents) Input {
	return Input{raw: raw}
}

// Len returns the number of records in the peer's list.
func (in Input) Len() int {
	if in.raw == nil || in.raw.Size == nil {
		return 0
	}
	return int(in.raw.Size(in.raw))
}

// Get returns a view of the i-th record, or false if the peer rejected the
// index.
func (in Input) Get(i int) (Unknown, bool) {
	if in.raw == nil || in.raw.Get == nil {
		return Unknown{}, false
	}
	h := in.raw.Get(in.raw, uint32(i))
	if h == nil {
		return Unknown{}, false
	}
	return Unknown{h: h}, true
}

// Each calls fn for every record in submission order, skipping records the
// peer refuses to hand out.
func (in Input) Each(fn func(Unknown)) {
	n := in.Len()
	for i := 0; i < n; i++ {
		if u, ok := in.Get(i); ok {
			fn(u)
		}
	}
}

// Output is the producer-side view of a peer's event list.
type Output struct {
	raw *clap.OutputEvents
}

// NewOutput wraps a raw output list. A nil table swallows pushes.
func NewOutput(raw *clap.OutputEvents) Output {
	return Output{raw: raw}
}

// Push copies a typed event into the peer's list, reporting whether the
// peer accepted it.
func (out Output) Push(e Event) bool {
	if out.raw == nil || out.raw.TryPush == nil {
		return false
	}
	return out.raw.TryPush(out.raw, e.alloc())
}

// PushRaw forwards an existing record to the peer's list.
func (out Output) PushRaw(h *clap.EventHeader) bool {
	if out.raw == nil || out.raw.TryPush == nil {
		return false
	}
	return out.raw.TryPush(out.raw, h)
}
