package audio

import (
	"encoding/binary"

	"github.com/ipmgroup/usbdesc/descriptor"
)

// ControlHeader is the class-specific AudioControl interface header
// (UAC2 4.7.2). TotalLength covers this header and every unit and terminal
// descriptor that follows it, but not the standard interface or endpoint
// descriptors.
type ControlHeader struct {
	Category    uint8  // Audio function category code
	TotalLength uint16 // Length of class-specific AC descriptors (incl. self)
	Controls    uint8  // Latency control capabilities
}

// ControlHeaderSize is the size of the class-specific AC header in bytes.
const ControlHeaderSize = 9

// MarshalTo writes the descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *ControlHeader) MarshalTo(buf []byte) int {
	if len(buf) < ControlHeaderSize {
		return 0
	}
	buf[0] = ControlHeaderSize
	buf[1] = descriptor.TypeCSInterface
	buf[2] = ACSubtypeHeader
	binary.LittleEndian.PutUint16(buf[3:5], ADCVersion)
	buf[5] = d.Category
	binary.LittleEndian.PutUint16(buf[6:8], d.TotalLength)
	buf[8] = d.Controls
	return ControlHeaderSize
}

// ClockSource describes a clock source entity (UAC2 4.7.2.1).
type ClockSource struct {
	ClockID       uint8 // Entity ID, referenced by terminals
	Attributes    uint8 // Clock type and SOF sync flag
	Controls      uint8 // Frequency/validity control capabilities
	AssocTerminal uint8 // Associated terminal ID (0 = none)
	StringIndex   uint8 // Clock source string descriptor index
}

// ClockSourceSize is the size of a clock source descriptor in bytes.
const ClockSourceSize = 8

// MarshalTo writes the descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *ClockSource) MarshalTo(buf []byte) int {
	if len(buf) < ClockSourceSize {
		return 0
	}
	buf[0] = ClockSourceSize
	buf[1] = descriptor.TypeCSInterface
	buf[2] = ACSubtypeClockSource
	buf[3] = d.ClockID
	buf[4] = d.Attributes
	buf[5] = d.Controls
	buf[6] = d.AssocTerminal
	buf[7] = d.StringIndex
	return ClockSourceSize
}

// InputTerminal describes an input terminal entity (UAC2 4.7.2.4).
type InputTerminal struct {
	TerminalID    uint8  // Entity ID
	TerminalType  uint16 // Terminal type code
	AssocTerminal uint8  // Associated output terminal ID (0 = none)
	ClockSourceID uint8  // Clock entity the terminal is connected to
	NumChannels   uint8  // Logical output channels
	ChannelConfig uint32 // Spatial location bitmap
	ChannelNames  uint8  // String index of first channel name (0 = none)
	Controls      uint16 // Terminal control capabilities
	StringIndex   uint8  // Terminal string descriptor index
}

// InputTerminalSize is the size of an input terminal descriptor in bytes.
const InputTerminalSize = 17

// MarshalTo writes the descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *InputTerminal) MarshalTo(buf []byte) int {
	if len(buf) < InputTerminalSize {
		return 0
	}
	buf[0] = InputTerminalSize
	buf[1] = descriptor.TypeCSInterface
	buf[2] = ACSubtypeInputTerminal
	buf[3] = d.TerminalID
	binary.LittleEndian.PutUint16(buf[4:6], d.TerminalType)
	buf[6] = d.AssocTerminal
	buf[7] = d.ClockSourceID
	buf[8] = d.NumChannels
	binary.LittleEndian.PutUint32(buf[9:13], d.ChannelConfig)
	buf[13] = d.ChannelNames
	binary.LittleEndian.PutUint16(buf[14:16], d.Controls)
	buf[16] = d.StringIndex
	return InputTerminalSize
}

// OutputTerminal describes an output terminal entity (UAC2 4.7.2.5).
type OutputTerminal struct {
	TerminalID    uint8  // Entity ID
	TerminalType  uint16 // Terminal type code
	AssocTerminal uint8  // Associated input terminal ID (0 = none)
	SourceID      uint8  // Unit or terminal feeding this terminal
	ClockSourceID uint8  // Clock entity the terminal is connected to
	Controls      uint16 // Terminal control capabilities
	StringIndex   uint8  // Terminal string descriptor index
}

// OutputTerminalSize is the size of an output terminal descriptor in bytes.
const OutputTerminalSize = 12

// MarshalTo writes the descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *OutputTerminal) MarshalTo(buf []byte) int {
	if len(buf) < OutputTerminalSize {
		return 0
	}
	buf[0] = OutputTerminalSize
	buf[1] = descriptor.TypeCSInterface
	buf[2] = ACSubtypeOutputTerminal
	buf[3] = d.TerminalID
	binary.LittleEndian.PutUint16(buf[4:6], d.TerminalType)
	buf[6] = d.AssocTerminal
	buf[7] = d.SourceID
	buf[8] = d.ClockSourceID
	binary.LittleEndian.PutUint16(buf[9:11], d.Controls)
	buf[11] = d.StringIndex
	return OutputTerminalSize
}

// FeatureUnit describes a feature unit entity (UAC2 4.7.2.8). It carries
// one bmaControls word for the master channel plus one per logical channel.
type FeatureUnit struct {
	UnitID      uint8    // Entity ID
	SourceID    uint8    // Unit or terminal feeding this unit
	Controls    []uint32 // Master control word followed by per-channel words
	StringIndex uint8    // Unit string descriptor index
}

// Len returns the descriptor size in bytes: 6 plus 4 per control word.
func (d *FeatureUnit) Len() int {
	return 6 + 4*len(d.Controls)
}

// MarshalTo writes the descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *FeatureUnit) MarshalTo(buf []byte) int {
	size := d.Len()
	if len(buf) < size {
		return 0
	}
	buf[0] = uint8(size)
	buf[1] = descriptor.TypeCSInterface
	buf[2] = ACSubtypeFeatureUnit
	buf[3] = d.UnitID
	buf[4] = d.SourceID
	offset := 5
	for _, ctrl := range d.Controls {
		binary.LittleEndian.PutUint32(buf[offset:offset+4], ctrl)
		offset += 4
	}
	buf[offset] = d.StringIndex
	return size
}

// StreamingGeneral is the class-specific AudioStreaming interface
// descriptor (UAC2 4.9.2).
type StreamingGeneral struct {
	TerminalLink  uint8  // Terminal ID the interface is connected to
	Controls      uint8  // Active alternate setting control capabilities
	FormatType    uint8  // Format type code
	Formats       uint32 // Audio data format bitmap
	NumChannels   uint8  // Physical channels in the cluster
	ChannelConfig uint32 // Spatial location bitmap
	ChannelNames  uint8  // String index of first channel name (0 = none)
}

// StreamingGeneralSize is the size of the AS general descriptor in bytes.
const StreamingGeneralSize = 16

// MarshalTo writes the descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *StreamingGeneral) MarshalTo(buf []byte) int {
	if len(buf) < StreamingGeneralSize {
		return 0
	}
	buf[0] = StreamingGeneralSize
	buf[1] = descriptor.TypeCSInterface
	buf[2] = ASSubtypeGeneral
	buf[3] = d.TerminalLink
	buf[4] = d.Controls
	buf[5] = d.FormatType
	binary.LittleEndian.PutUint32(buf[6:10], d.Formats)
	buf[10] = d.NumChannels
	binary.LittleEndian.PutUint32(buf[11:15], d.ChannelConfig)
	buf[15] = d.ChannelNames
	return StreamingGeneralSize
}

// FormatTypeIDescriptor is the type I format type descriptor
// (UAC2 formats 2.3.1.6).
type FormatTypeIDescriptor struct {
	SubslotSize   uint8 // Bytes per audio subslot (1, 2, 3, or 4)
	BitResolution uint8 // Effectively used bits per subslot
}

// FormatTypeISize is the size of a type I format descriptor in bytes.
const FormatTypeISize = 6

// MarshalTo writes the descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *FormatTypeIDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < FormatTypeISize {
		return 0
	}
	buf[0] = FormatTypeISize
	buf[1] = descriptor.TypeCSInterface
	buf[2] = ASSubtypeFormatType
	buf[3] = FormatTypeI
	buf[4] = d.SubslotSize
	buf[5] = d.BitResolution
	return FormatTypeISize
}

// StreamingEndpoint is the class-specific AudioStreaming isochronous data
// endpoint descriptor (UAC2 4.10.1.2).
type StreamingEndpoint struct {
	Attributes     uint8  // MaxPacketsOnly flag
	Controls       uint8  // Pitch/overrun/underrun control capabilities
	LockDelayUnits uint8  // Units for LockDelay (0 = undefined)
	LockDelay      uint16 // Internal clock lock time
}

// StreamingEndpointSize is the size of the CS endpoint descriptor in bytes.
const StreamingEndpointSize = 8

// MarshalTo writes the descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *StreamingEndpoint) MarshalTo(buf []byte) int {
	if len(buf) < StreamingEndpointSize {
		return 0
	}
	buf[0] = StreamingEndpointSize
	buf[1] = descriptor.TypeCSEndpoint
	buf[2] = CSEndpointSubtypeGeneral
	buf[3] = d.Attributes
	buf[4] = d.Controls
	buf[5] = d.LockDelayUnits
	binary.LittleEndian.PutUint16(buf[6:8], d.LockDelay)
	return StreamingEndpointSize
}
