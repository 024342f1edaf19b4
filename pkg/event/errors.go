package event

import (
	"fmt"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// TypeMismatchError reports that a raw record was asserted to be one event
// type but is tagged as another. Records from an untrusted binary boundary
// are never reinterpreted silently.
type TypeMismatchError struct {
	ExpectedSpace clap.EventSpaceID
	ExpectedType  clap.EventType
	GotSpace      clap.EventSpaceID
	GotType       clap.EventType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("event type mismatch: expected space %d type %d, got space %d type %d",
		e.ExpectedSpace, e.ExpectedType, e.GotSpace, e.GotType)
}

// checkTag validates a header against the asserted core-space event type.
func checkTag(h *clap.EventHeader, want clap.EventType) error {
	if h.SpaceID != clap.CoreEventSpace || h.Type != want {
		return &TypeMismatchError{
			ExpectedSpace: clap.CoreEventSpace,
			ExpectedType:  want,
			GotSpace:      h.SpaceID,
			GotType:       h.Type,
		}
	}
	return nil
}
