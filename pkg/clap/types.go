// Package clap defines the raw, C-ABI-compatible shapes of the CLAP plugin
// interface: fixed-layout records, function-pointer tables and identifier
// constants. Everything in this package mirrors the binary protocol
// byte-for-byte; the safe, typed views live in the higher-level packages.
package clap

// Version identifies the protocol revision both sides were compiled against.
type Version struct {
	Major    uint32
	Minor    uint32
	Revision uint32
}

// CurrentVersion is the protocol revision this module implements.
var CurrentVersion = Version{Major: 1, Minor: 1, Revision: 10}

// IsCompatible reports whether a peer compiled against v can interoperate
// with this side. Versions before 1.0.0 were unstable and are rejected.
func (v Version) IsCompatible() bool {
	return v.Major >= 1
}

// ID is a host-assigned or plugin-assigned numeric identifier
// (parameter IDs, cluster IDs, ...).
type ID = uint32

// InvalidID is the reserved "no value" identifier.
const InvalidID ID = 0xFFFFFFFF

// ProcessStatus is the result of one audio processing call.
type ProcessStatus int32

const (
	// ProcessError signals a processing failure; output buffers must be discarded.
	ProcessError ProcessStatus = 0
	// ProcessContinue requests further process calls.
	ProcessContinue ProcessStatus = 1
	// ProcessContinueIfNotQuiet requests further calls until the output is silent.
	ProcessContinueIfNotQuiet ProcessStatus = 2
	// ProcessTail requests further calls until the plugin's tail has played out.
	ProcessTail ProcessStatus = 3
	// ProcessSleep tells the host no further processing is required right now.
	ProcessSleep ProcessStatus = 4
)
