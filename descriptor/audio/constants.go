package audio

// Audio interface subclass codes (UAC2 A.5).
const (
	SubclassUndefined uint8 = 0x00
	SubclassControl   uint8 = 0x01
	SubclassStreaming uint8 = 0x02
	SubclassMIDI      uint8 = 0x03
)

// ProtocolIPVersion2 selects the Interface Protocol for Audio 2.0
// interfaces (UAC2 A.6, IP_VERSION_02_00).
const ProtocolIPVersion2 uint8 = 0x20

// ADCVersion is the bcdADC release reported by the class-specific
// AudioControl header.
const ADCVersion uint16 = 0x0200

// Audio function category codes (UAC2 A.7).
const (
	CategoryUndefined      uint8 = 0x00
	CategoryDesktopSpeaker uint8 = 0x01
	CategoryHomeTheater    uint8 = 0x02
	CategoryMicrophone     uint8 = 0x03
	CategoryHeadset        uint8 = 0x04
	CategoryConverter      uint8 = 0x08
	CategoryIOBox          uint8 = 0x0A
	CategoryProAudio       uint8 = 0x0C
	CategoryAudioVideo     uint8 = 0x0D
	CategoryOther          uint8 = 0xFF
)

// Class-specific AudioControl interface descriptor subtypes (UAC2 A.9).
const (
	ACSubtypeHeader         uint8 = 0x01
	ACSubtypeInputTerminal  uint8 = 0x02
	ACSubtypeOutputTerminal uint8 = 0x03
	ACSubtypeMixerUnit      uint8 = 0x04
	ACSubtypeSelectorUnit   uint8 = 0x05
	ACSubtypeFeatureUnit    uint8 = 0x06
	ACSubtypeClockSource    uint8 = 0x0A
	ACSubtypeClockSelector  uint8 = 0x0B
)

// Class-specific AudioStreaming interface descriptor subtypes (UAC2 A.10).
const (
	ASSubtypeGeneral    uint8 = 0x01
	ASSubtypeFormatType uint8 = 0x02
)

// CSEndpointSubtypeGeneral identifies the class-specific AudioStreaming
// isochronous data endpoint descriptor (UAC2 A.13).
const CSEndpointSubtypeGeneral uint8 = 0x01

// Format type codes (UAC2 formats spec A.1).
const FormatTypeI uint8 = 0x01

// Audio data format type I bit allocations (UAC2 formats spec A.2.1).
const (
	FormatTypeIPCM uint32 = 1 << 0
)

// USB terminal types (termt20 2.1, 2.2).
const (
	TerminalTypeUSBStreaming uint16 = 0x0101
	TerminalTypeMicrophone   uint16 = 0x0201
	TerminalTypeSpeaker      uint16 = 0x0301
	TerminalTypeHeadphones   uint16 = 0x0302
	TerminalTypeHeadset      uint16 = 0x0402
)

// Clock source attributes (UAC2 4.7.2.1).
const (
	ClockAttrExternal      uint8 = 0x00
	ClockAttrInternalFixed uint8 = 0x01
	ClockAttrInternalVar   uint8 = 0x02
	ClockAttrInternalProg  uint8 = 0x03
	ClockAttrSyncToSOF     uint8 = 0x04
)

// Control capability field values, two bits per control (UAC2 4.7.2).
const (
	ControlNone      uint8 = 0x00
	ControlReadOnly  uint8 = 0x01
	ControlReadWrite uint8 = 0x03
)

// Clock source bmControls bit positions.
const (
	ClockControlFrequencyPos uint8 = 0
	ClockControlValidityPos  uint8 = 2
)

// Feature unit bmaControls bit positions.
const (
	FeatureControlMutePos   uint8 = 0
	FeatureControlVolumePos uint8 = 2
)

// Channel cluster spatial location bits (UAC2 4.1).
const (
	ChannelFrontLeft  uint32 = 1 << 0
	ChannelFrontRight uint32 = 1 << 1
	ChannelMono       uint32 = 0
)
