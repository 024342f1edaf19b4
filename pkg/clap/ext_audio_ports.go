package clap

// ExtAudioPorts identifies the audio ports extension, implemented by
// plugins to describe their bus layout.
const ExtAudioPorts = "clap.audio-ports\x00"

// Port type identifiers for AudioPortInfoRecord.PortType.
const (
	PortTypeMono   = "mono\x00"
	PortTypeStereo = "stereo\x00"
)

// AudioPortFlags qualify one audio port.
type AudioPortFlags uint32

const (
	// AudioPortIsMain marks the port the host connects by default.
	AudioPortIsMain AudioPortFlags = 1 << 0
	// AudioPortSupports64Bits marks a port that can process double
	// precision samples.
	AudioPortSupports64Bits AudioPortFlags = 1 << 1
)

// AudioPortInfoRecord describes one audio port to the host. Name is
// null-terminated within its fixed buffer; PortType is nil or one of the
// PortType* identifiers.
type AudioPortInfoRecord struct {
	ID    ID
	Name  [256]byte
	Flags AudioPortFlags

	ChannelCount uint32
	PortType     *byte

	// InPlacePair names the port this one may share buffers with, or
	// InvalidID when in-place processing is unsupported.
	InPlacePair ID
}

// PluginAudioPortsTable is the plugin-side audio ports extension. Both
// operations are [main-thread] and the layout must stay fixed while the
// plugin is activated.
type PluginAudioPortsTable struct {
	Count func(p *Plugin, isInput bool) uint32
	Get   func(p *Plugin, index uint32, isInput bool, info *AudioPortInfoRecord) bool
}
