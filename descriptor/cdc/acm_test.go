package cdc

import (
	"testing"

	"github.com/ipmgroup/usbdesc/descriptor"
)

func TestACMFunction_MarshalTo(t *testing.T) {
	fn := ACMFunction{
		ControlInterface:     0,
		StringIndex:          4,
		NotificationEndpoint: 0x81,
		DataOutEndpoint:      0x02,
		DataInEndpoint:       0x82,
	}

	buf := make([]byte, ACMFunctionLength)
	n := fn.MarshalTo(buf)
	if n != ACMFunctionLength {
		t.Fatalf("wrote %d bytes, want %d", n, ACMFunctionLength)
	}
	if n != fn.Len() {
		t.Errorf("Len() = %d, want %d", fn.Len(), n)
	}

	// The block must walk cleanly and in the CDC-ACM order.
	var types []uint8
	if err := descriptor.Walk(buf[:n], func(el descriptor.Element) bool {
		types = append(types, el.Type)
		return true
	}); err != nil {
		t.Fatalf("walk error: %v", err)
	}

	want := []uint8{
		descriptor.TypeInterfaceAssociation,
		descriptor.TypeInterface, // communications
		DescriptorTypeCSInterface,
		DescriptorTypeCSInterface,
		DescriptorTypeCSInterface,
		DescriptorTypeCSInterface,
		descriptor.TypeEndpoint,  // notification
		descriptor.TypeInterface, // data
		descriptor.TypeEndpoint,  // bulk OUT
		descriptor.TypeEndpoint,  // bulk IN
	}
	if len(types) != len(want) {
		t.Fatalf("walked %d descriptors, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("descriptor %d type = 0x%02X, want 0x%02X", i, types[i], want[i])
		}
	}
}

func TestACMFunction_Interfaces(t *testing.T) {
	fn := ACMFunction{
		ControlInterface:     2,
		NotificationEndpoint: 0x83,
		DataOutEndpoint:      0x04,
		DataInEndpoint:       0x84,
	}

	buf := make([]byte, ACMFunctionLength)
	fn.MarshalTo(buf)

	var ifaces []descriptor.Interface
	var eps []descriptor.Endpoint
	err := descriptor.Walk(buf, func(el descriptor.Element) bool {
		switch el.Type {
		case descriptor.TypeInterface:
			var i descriptor.Interface
			if err := descriptor.ParseInterface(el.Data, &i); err != nil {
				t.Fatalf("parse interface: %v", err)
			}
			ifaces = append(ifaces, i)
		case descriptor.TypeEndpoint:
			var e descriptor.Endpoint
			if err := descriptor.ParseEndpoint(el.Data, &e); err != nil {
				t.Fatalf("parse endpoint: %v", err)
			}
			eps = append(eps, e)
		}
		return true
	})
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}

	if len(ifaces) != 2 {
		t.Fatalf("found %d interfaces, want 2", len(ifaces))
	}
	if ifaces[0].InterfaceNumber != 2 || ifaces[0].InterfaceClass != ClassCDC {
		t.Errorf("control interface = %+v", ifaces[0])
	}
	if ifaces[1].InterfaceNumber != 3 || ifaces[1].InterfaceClass != ClassCDCData {
		t.Errorf("data interface = %+v", ifaces[1])
	}

	if len(eps) != 3 {
		t.Fatalf("found %d endpoints, want 3", len(eps))
	}
	if eps[0].EndpointAddress != 0x83 || eps[0].Attributes != descriptor.EndpointTypeInterrupt {
		t.Errorf("notification endpoint = %+v", eps[0])
	}
	if eps[0].MaxPacketSize != DefaultNotificationMaxPacket {
		t.Errorf("notification packet size = %d, want %d", eps[0].MaxPacketSize, DefaultNotificationMaxPacket)
	}
	if eps[1].EndpointAddress != 0x04 || eps[1].Attributes != descriptor.EndpointTypeBulk {
		t.Errorf("bulk OUT endpoint = %+v", eps[1])
	}
	if eps[2].EndpointAddress != 0x84 || eps[2].MaxPacketSize != DefaultDataMaxPacket {
		t.Errorf("bulk IN endpoint = %+v", eps[2])
	}
}

func TestACMFunction_ShortBuffer(t *testing.T) {
	fn := ACMFunction{NotificationEndpoint: 0x81, DataOutEndpoint: 0x02, DataInEndpoint: 0x82}
	buf := make([]byte, ACMFunctionLength-1)
	if n := fn.MarshalTo(buf); n != 0 {
		t.Errorf("expected 0 for short buffer, got %d", n)
	}
}

func TestUnionDescriptor_MarshalTo(t *testing.T) {
	u := UnionDescriptor{MasterInterface: 0, SlaveInterface0: 1}
	var buf [5]byte
	if n := u.MarshalTo(buf[:]); n != UnionDescriptorSize {
		t.Fatalf("wrote %d bytes, want %d", n, UnionDescriptorSize)
	}
	if buf[1] != DescriptorTypeCSInterface || buf[2] != SubtypeUnion {
		t.Errorf("header bytes = % X", buf[:3])
	}
}
