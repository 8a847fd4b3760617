package audio

import "github.com/ipmgroup/usbdesc/descriptor"

// Entity IDs of the headset topology. Speaker path entities sit in the
// low range, microphone path entities in the 0x1n range.
const (
	EntityClockSource    uint8 = 0x04 // Shared clock for both paths
	EntitySpeakerInput   uint8 = 0x01 // USB streaming input terminal
	EntitySpeakerFeature uint8 = 0x02 // Mute/volume feature unit
	EntitySpeakerOutput  uint8 = 0x03 // Headphones output terminal
	EntityMicInput       uint8 = 0x11 // Microphone input terminal
	EntityMicOutput      uint8 = 0x13 // USB streaming output terminal
)

// Default stream parameters for the headset function.
const (
	DefaultBytesPerSample     = 2   // 16-bit PCM
	DefaultBitsPerSample      = 16  // Effective resolution
	DefaultStreamOutMaxPacket = 192 // 48 kHz, 2 channels, 2 bytes/sample
	DefaultStreamInMaxPacket  = 96  // 48 kHz, 1 channel, 2 bytes/sample
	interruptMaxPacket        = 6   // UAC2 interrupt data message size
)

// Headset describes a complete UAC2 stereo headset function: an IAD, the
// AudioControl interface with its unit/terminal topology and interrupt
// status endpoint, a stereo speaker AudioStreaming interface, and a mono
// microphone AudioStreaming interface. The streaming interfaces occupy
// interface numbers ControlInterface+1 and ControlInterface+2, each with a
// zero-bandwidth alternate 0 and an operational alternate 1.
type Headset struct {
	ControlInterface uint8 // First of three contiguous interface numbers
	StringIndex      uint8 // Function string descriptor index (0 = none)

	InterruptEndpoint uint8 // Interrupt IN endpoint address (0x8n)
	StreamOutEndpoint uint8 // Isochronous OUT endpoint address (0x0n)
	StreamInEndpoint  uint8 // Isochronous IN endpoint address (0x8n)

	// Zero values select the defaults above.
	BytesPerSample     uint8
	BitsPerSample      uint8
	StreamOutMaxPacket uint16
	StreamInMaxPacket  uint16
}

// controlTotalLength is the wTotalLength reported by the class-specific
// AudioControl header: the header itself plus the unit and terminal
// descriptors of both audio paths.
const controlTotalLength = ControlHeaderSize +
	ClockSourceSize +
	InputTerminalSize + // speaker path
	(6 + 4*3) + // feature unit, master + 2 channels
	OutputTerminalSize +
	InputTerminalSize + // microphone path
	OutputTerminalSize

// streamingBlockLength is one AudioStreaming interface: alternates 0 and 1,
// the class-specific general and format descriptors, and the isochronous
// data endpoint with its class-specific companion.
const streamingBlockLength = 2*descriptor.InterfaceSize +
	StreamingGeneralSize +
	FormatTypeISize +
	descriptor.EndpointSize +
	StreamingEndpointSize

// HeadsetLength is the number of bytes MarshalTo emits.
const HeadsetLength = descriptor.IADSize +
	descriptor.InterfaceSize + // AudioControl interface
	controlTotalLength +
	descriptor.EndpointSize + // interrupt status endpoint
	2*streamingBlockLength

// Len returns the number of bytes MarshalTo emits.
func (f *Headset) Len() int {
	return HeadsetLength
}

// MarshalTo writes the full headset function block to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (f *Headset) MarshalTo(buf []byte) int {
	if len(buf) < HeadsetLength {
		return 0
	}

	bytesPerSample := f.BytesPerSample
	if bytesPerSample == 0 {
		bytesPerSample = DefaultBytesPerSample
	}
	bitsPerSample := f.BitsPerSample
	if bitsPerSample == 0 {
		bitsPerSample = DefaultBitsPerSample
	}
	outMax := f.StreamOutMaxPacket
	if outMax == 0 {
		outMax = DefaultStreamOutMaxPacket
	}
	inMax := f.StreamInMaxPacket
	if inMax == 0 {
		inMax = DefaultStreamInMaxPacket
	}

	speakerInterface := f.ControlInterface + 1
	micInterface := f.ControlInterface + 2
	offset := 0

	iad := descriptor.InterfaceAssociation{
		FirstInterface:   f.ControlInterface,
		InterfaceCount:   3,
		FunctionClass:    descriptor.ClassAudio,
		FunctionSubClass: SubclassUndefined,
		FunctionProtocol: ProtocolIPVersion2,
	}
	offset += iad.MarshalTo(buf[offset:])

	control := descriptor.Interface{
		InterfaceNumber:   f.ControlInterface,
		NumEndpoints:      1,
		InterfaceClass:    descriptor.ClassAudio,
		InterfaceSubClass: SubclassControl,
		InterfaceProtocol: ProtocolIPVersion2,
		InterfaceIndex:    f.StringIndex,
	}
	offset += control.MarshalTo(buf[offset:])

	header := ControlHeader{
		Category:    CategoryHeadset,
		TotalLength: controlTotalLength,
	}
	offset += header.MarshalTo(buf[offset:])

	clock := ClockSource{
		ClockID:    EntityClockSource,
		Attributes: ClockAttrInternalProg | ClockAttrSyncToSOF,
		Controls: ControlReadWrite<<ClockControlFrequencyPos |
			ControlReadOnly<<ClockControlValidityPos,
	}
	offset += clock.MarshalTo(buf[offset:])

	speakerIn := InputTerminal{
		TerminalID:    EntitySpeakerInput,
		TerminalType:  TerminalTypeUSBStreaming,
		ClockSourceID: EntityClockSource,
		NumChannels:   2,
		ChannelConfig: ChannelFrontLeft | ChannelFrontRight,
	}
	offset += speakerIn.MarshalTo(buf[offset:])

	channelControls := uint32(ControlReadWrite)<<FeatureControlMutePos |
		uint32(ControlReadWrite)<<FeatureControlVolumePos
	feature := FeatureUnit{
		UnitID:   EntitySpeakerFeature,
		SourceID: EntitySpeakerInput,
		Controls: []uint32{channelControls, channelControls, channelControls},
	}
	offset += feature.MarshalTo(buf[offset:])

	speakerOut := OutputTerminal{
		TerminalID:    EntitySpeakerOutput,
		TerminalType:  TerminalTypeHeadphones,
		SourceID:      EntitySpeakerFeature,
		ClockSourceID: EntityClockSource,
	}
	offset += speakerOut.MarshalTo(buf[offset:])

	micIn := InputTerminal{
		TerminalID:    EntityMicInput,
		TerminalType:  TerminalTypeMicrophone,
		ClockSourceID: EntityClockSource,
		NumChannels:   1,
		ChannelConfig: ChannelMono,
	}
	offset += micIn.MarshalTo(buf[offset:])

	micOut := OutputTerminal{
		TerminalID:    EntityMicOutput,
		TerminalType:  TerminalTypeUSBStreaming,
		SourceID:      EntityMicInput,
		ClockSourceID: EntityClockSource,
	}
	offset += micOut.MarshalTo(buf[offset:])

	interrupt := descriptor.Endpoint{
		EndpointAddress: f.InterruptEndpoint | descriptor.EndpointDirectionIn,
		Attributes:      descriptor.EndpointTypeInterrupt,
		MaxPacketSize:   interruptMaxPacket,
		Interval:        1,
	}
	offset += interrupt.MarshalTo(buf[offset:])

	offset += f.marshalStreaming(buf[offset:], streamingParams{
		interfaceNumber: speakerInterface,
		terminalLink:    EntitySpeakerInput,
		numChannels:     2,
		channelConfig:   ChannelFrontLeft | ChannelFrontRight,
		endpoint:        f.StreamOutEndpoint &^ descriptor.EndpointDirectionIn,
		attributes:      descriptor.EndpointTypeIsochronous | descriptor.IsoSyncAdaptive,
		maxPacket:       outMax,
		lockDelayUnits:  1, // milliseconds
		lockDelay:       1,
		bytesPerSample:  bytesPerSample,
		bitsPerSample:   bitsPerSample,
	})

	offset += f.marshalStreaming(buf[offset:], streamingParams{
		interfaceNumber: micInterface,
		terminalLink:    EntityMicOutput,
		numChannels:     1,
		channelConfig:   ChannelMono,
		endpoint:        f.StreamInEndpoint | descriptor.EndpointDirectionIn,
		attributes:      descriptor.EndpointTypeIsochronous | descriptor.IsoSyncAsynchronous,
		maxPacket:       inMax,
		bytesPerSample:  bytesPerSample,
		bitsPerSample:   bitsPerSample,
	})

	return offset
}

type streamingParams struct {
	interfaceNumber uint8
	terminalLink    uint8
	numChannels     uint8
	channelConfig   uint32
	endpoint        uint8
	attributes      uint8
	maxPacket       uint16
	lockDelayUnits  uint8
	lockDelay       uint16
	bytesPerSample  uint8
	bitsPerSample   uint8
}

func (f *Headset) marshalStreaming(buf []byte, p streamingParams) int {
	offset := 0

	alt0 := descriptor.Interface{
		InterfaceNumber:   p.interfaceNumber,
		AlternateSetting:  0,
		InterfaceClass:    descriptor.ClassAudio,
		InterfaceSubClass: SubclassStreaming,
		InterfaceProtocol: ProtocolIPVersion2,
	}
	offset += alt0.MarshalTo(buf[offset:])

	alt1 := descriptor.Interface{
		InterfaceNumber:   p.interfaceNumber,
		AlternateSetting:  1,
		NumEndpoints:      1,
		InterfaceClass:    descriptor.ClassAudio,
		InterfaceSubClass: SubclassStreaming,
		InterfaceProtocol: ProtocolIPVersion2,
	}
	offset += alt1.MarshalTo(buf[offset:])

	general := StreamingGeneral{
		TerminalLink:  p.terminalLink,
		FormatType:    FormatTypeI,
		Formats:       FormatTypeIPCM,
		NumChannels:   p.numChannels,
		ChannelConfig: p.channelConfig,
	}
	offset += general.MarshalTo(buf[offset:])

	format := FormatTypeIDescriptor{
		SubslotSize:   p.bytesPerSample,
		BitResolution: p.bitsPerSample,
	}
	offset += format.MarshalTo(buf[offset:])

	data := descriptor.Endpoint{
		EndpointAddress: p.endpoint,
		Attributes:      p.attributes,
		MaxPacketSize:   p.maxPacket,
		Interval:        1,
	}
	offset += data.MarshalTo(buf[offset:])

	csData := StreamingEndpoint{
		LockDelayUnits: p.lockDelayUnits,
		LockDelay:      p.lockDelay,
	}
	offset += csData.MarshalTo(buf[offset:])

	return offset
}
