// Package plugin is the plugin-side framework: it turns a safe Go
// implementation into the raw function-pointer tables the host calls, and
// gives that implementation typed, thread-scoped handles back to the host.
package plugin

import (
	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/event"
)

// Descriptor names one plugin class. ID must be globally unique
// (reverse-domain style); Features is free-form keyword metadata.
type Descriptor struct {
	ID          string
	Name        string
	Vendor      string
	URL         string
	Version     string
	Description string
	Features    []string
}

// AudioConfig is the host's processing configuration, fixed between
// Activate and Deactivate.
type AudioConfig struct {
	SampleRate    float64
	MinFrameCount uint32
	MaxFrameCount uint32
}

// Process is one audio block as seen by the plugin: the block extent, the
// host's event lists, and the audio buffers. It is only valid for the
// duration of the Process call that received it.
type Process struct {
	SteadyTime  int64
	FramesCount uint32

	InEvents  event.Input
	OutEvents event.Output

	AudioIn  [][]float32
	AudioOut [][]float32
}

// Factory creates instances of one plugin class.
type Factory interface {
	Descriptor() Descriptor

	// Create builds a not-yet-initialized instance for the given host.
	// The handle is any-thread and may be kept for the instance lifetime.
	Create(host HostHandle) (Instance, error)
}

// Instance is the safe face of one plugin instance. Each method's handle
// parameter marks the thread the protocol requires; a handle must not be
// stored past the call that delivered it.
type Instance interface {
	// Init finishes construction. Called once, before anything else.
	Init(host HostMainThread) error
	// Destroy releases the instance. The instance is unusable afterwards.
	Destroy(host HostMainThread)

	// Activate prepares processing with a fixed audio configuration.
	Activate(host HostMainThread, cfg AudioConfig) error
	// Deactivate undoes Activate.
	Deactivate(host HostMainThread)

	// StartProcessing begins a processing run on the audio thread.
	StartProcessing(host HostAudioThread) error
	// StopProcessing ends a processing run.
	StopProcessing(host HostAudioThread)
	// Reset drops all playback state.
	Reset(host HostAudioThread)

	// Process runs one block.
	Process(host HostAudioThread, proc *Process) clap.ProcessStatus

	// OnMainThread runs work deferred via HostHandle.RequestCallback.
	OnMainThread(host HostMainThread)
}

// ExtensionProvider is implemented by instances that declare extensions.
// DeclareExtensions runs once, at instance creation.
type ExtensionProvider interface {
	DeclareExtensions(b *ExtensionBuilder)
}
