package cdc

import "github.com/ipmgroup/usbdesc/descriptor"

// Default endpoint parameters for the ACM function.
const (
	DefaultNotificationMaxPacket = 8  // Interrupt notification packet size
	DefaultNotificationInterval  = 16 // Notification polling interval (frames)
	DefaultDataMaxPacket         = 64 // Bulk data packet size (full speed)
)

// ACMFunction describes a complete CDC-ACM serial function: an IAD, the
// communications (control) interface with its functional descriptors and
// interrupt notification endpoint, and the data interface with its bulk
// endpoint pair. The data interface number is ControlInterface+1.
type ACMFunction struct {
	ControlInterface uint8 // First of two contiguous interface numbers
	StringIndex      uint8 // Interface string descriptor index (0 = none)

	NotificationEndpoint uint8 // Interrupt IN endpoint address (0x8n)
	DataOutEndpoint      uint8 // Bulk OUT endpoint address (0x0n)
	DataInEndpoint       uint8 // Bulk IN endpoint address (0x8n)

	// Zero values select the defaults above.
	NotificationMaxPacket uint16
	NotificationInterval  uint8
	DataMaxPacket         uint16
}

// ACMFunctionLength is the number of bytes MarshalTo emits.
const ACMFunctionLength = descriptor.IADSize +
	descriptor.InterfaceSize + // communications interface
	HeaderDescriptorSize +
	CallManagementDescriptorSize +
	ACMDescriptorSize +
	UnionDescriptorSize +
	descriptor.EndpointSize + // notification endpoint
	descriptor.InterfaceSize + // data interface
	2*descriptor.EndpointSize // bulk pair

// Len returns the number of bytes MarshalTo emits.
func (f *ACMFunction) Len() int {
	return ACMFunctionLength
}

// MarshalTo writes the full ACM function block to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (f *ACMFunction) MarshalTo(buf []byte) int {
	if len(buf) < ACMFunctionLength {
		return 0
	}

	notifyMax := f.NotificationMaxPacket
	if notifyMax == 0 {
		notifyMax = DefaultNotificationMaxPacket
	}
	notifyInterval := f.NotificationInterval
	if notifyInterval == 0 {
		notifyInterval = DefaultNotificationInterval
	}
	dataMax := f.DataMaxPacket
	if dataMax == 0 {
		dataMax = DefaultDataMaxPacket
	}

	dataInterface := f.ControlInterface + 1
	offset := 0

	iad := descriptor.InterfaceAssociation{
		FirstInterface:   f.ControlInterface,
		InterfaceCount:   2,
		FunctionClass:    ClassCDC,
		FunctionSubClass: SubclassACM,
		FunctionProtocol: ProtocolNone,
		FunctionIndex:    f.StringIndex,
	}
	offset += iad.MarshalTo(buf[offset:])

	ctrl := descriptor.Interface{
		InterfaceNumber:   f.ControlInterface,
		NumEndpoints:      1,
		InterfaceClass:    ClassCDC,
		InterfaceSubClass: SubclassACM,
		InterfaceProtocol: ProtocolNone,
		InterfaceIndex:    f.StringIndex,
	}
	offset += ctrl.MarshalTo(buf[offset:])

	header := HeaderDescriptor{CDCVersion: CDCVersion}
	offset += header.MarshalTo(buf[offset:])

	callMgmt := CallManagementDescriptor{DataInterface: dataInterface}
	offset += callMgmt.MarshalTo(buf[offset:])

	acm := ACMDescriptor{Capabilities: ACMCapLineCoding | ACMCapSendBreak}
	offset += acm.MarshalTo(buf[offset:])

	union := UnionDescriptor{
		MasterInterface: f.ControlInterface,
		SlaveInterface0: dataInterface,
	}
	offset += union.MarshalTo(buf[offset:])

	notify := descriptor.Endpoint{
		EndpointAddress: f.NotificationEndpoint | descriptor.EndpointDirectionIn,
		Attributes:      descriptor.EndpointTypeInterrupt,
		MaxPacketSize:   notifyMax,
		Interval:        notifyInterval,
	}
	offset += notify.MarshalTo(buf[offset:])

	data := descriptor.Interface{
		InterfaceNumber: dataInterface,
		NumEndpoints:    2,
		InterfaceClass:  ClassCDCData,
	}
	offset += data.MarshalTo(buf[offset:])

	out := descriptor.Endpoint{
		EndpointAddress: f.DataOutEndpoint &^ descriptor.EndpointDirectionIn,
		Attributes:      descriptor.EndpointTypeBulk,
		MaxPacketSize:   dataMax,
	}
	offset += out.MarshalTo(buf[offset:])

	in := descriptor.Endpoint{
		EndpointAddress: f.DataInEndpoint | descriptor.EndpointDirectionIn,
		Attributes:      descriptor.EndpointTypeBulk,
		MaxPacketSize:   dataMax,
	}
	offset += in.MarshalTo(buf[offset:])

	return offset
}
