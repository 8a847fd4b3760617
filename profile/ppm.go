package profile

import (
	"github.com/ipmgroup/usbdesc/descriptor"
	"github.com/ipmgroup/usbdesc/descriptor/cdc"
	"github.com/ipmgroup/usbdesc/provider"
)

// PPMLoop builds the descriptor table of the PPM loop controller: a single
// CDC-ACM serial function. String slot 5 names the reset command channel
// exposed over the serial link. The serial reader fills string slot 3;
// pass nil for a device without a readable serial number.
func PPMLoop(serial provider.SerialNumberReader) (*provider.Provider, error) {
	acm := cdc.ACMFunction{
		ControlInterface:     0,
		StringIndex:          4,
		NotificationEndpoint: 0x81,
		DataOutEndpoint:      0x02,
		DataInEndpoint:       0x82,
	}

	config := make([]byte, descriptor.ConfigurationSize+acm.Len())
	header := descriptor.Configuration{
		TotalLength:        uint16(len(config)),
		NumInterfaces:      2,
		ConfigurationValue: 1,
		Attributes:         descriptor.ConfigAttrBusPowered,
		MaxPower:           50, // 100 mA
	}
	n := header.MarshalTo(config)
	acm.MarshalTo(config[n:])

	return provider.New(provider.Config{
		Device: descriptor.Device{
			USBVersion:        0x0200,
			DeviceClass:       descriptor.ClassMisc,
			DeviceSubClass:    descriptor.MiscSubclassCommon,
			DeviceProtocol:    descriptor.MiscProtocolIAD,
			MaxPacketSize0:    64,
			VendorID:          VendorID,
			ProductID:         ProductIDPPMLoop,
			DeviceVersion:     0x0100,
			ManufacturerIndex: 1,
			ProductIndex:      2,
			SerialNumberIndex: serialStringIndex,
			NumConfigurations: 1,
		},
		Configuration: config,
		Strings: []string{
			"ppm_loop", // 1: manufacturer
			"ppm",      // 2: product
			"",         // 3: serial number slot
			"ppm_loop", // 4: CDC interface
			"PPMReset", // 5: reset command channel
		},
		SerialIndex: serialStringIndex,
		Serial:      serial,
	})
}
