package gui

import "errors"

// Per-operation failure sentinels. Each operation that can be refused by
// the other side reports its own error so callers can react per operation
// rather than parsing a shared one.
var (
	ErrCreate       = errors.New("gui: create rejected")
	ErrSetScale     = errors.New("gui: scale factor rejected")
	ErrSetSize      = errors.New("gui: resize rejected")
	ErrSetParent    = errors.New("gui: reparent rejected")
	ErrSetTransient = errors.New("gui: transient window rejected")
	ErrShow         = errors.New("gui: show rejected")
	ErrHide         = errors.New("gui: hide rejected")

	ErrRequestResize = errors.New("gui: host rejected resize request")
	ErrRequestShow   = errors.New("gui: host rejected show request")
	ErrRequestHide   = errors.New("gui: host rejected hide request")
)
