package profile

import (
	"github.com/ipmgroup/usbdesc/descriptor"
	"github.com/ipmgroup/usbdesc/descriptor/audio"
	"github.com/ipmgroup/usbdesc/provider"
)

// VendorID is the vendor ID shared by all profiles.
const VendorID = 0xCAFE

// Product IDs. The low bits encode the device's function set, offset from
// a common base, so distinct interface layouts never share a PID.
const (
	ProductIDLaserSoundCard = 0x4010 // audio function
	ProductIDPPMLoop        = 0x4001 // CDC function
)

// serialStringIndex is the string table slot reserved for the serial
// number in every profile.
const serialStringIndex = 3

// LaserSoundCard builds the descriptor table of the laser sound card: a
// UAC2 stereo headset function (speaker playback, microphone capture)
// behind a composite IAD device. The serial reader fills string slot 3;
// pass nil for a device without a readable serial number.
func LaserSoundCard(serial provider.SerialNumberReader) (*provider.Provider, error) {
	headset := audio.Headset{
		ControlInterface:  0,
		StringIndex:       4,
		InterruptEndpoint: 0x82,
		StreamOutEndpoint: 0x01,
		StreamInEndpoint:  0x81,
	}

	config := make([]byte, descriptor.ConfigurationSize+headset.Len())
	header := descriptor.Configuration{
		TotalLength:        uint16(len(config)),
		NumInterfaces:      3,
		ConfigurationValue: 1,
		Attributes:         descriptor.ConfigAttrBusPowered,
		MaxPower:           50, // 100 mA
	}
	n := header.MarshalTo(config)
	headset.MarshalTo(config[n:])

	return provider.New(provider.Config{
		Device: descriptor.Device{
			USBVersion:        0x0200,
			DeviceClass:       descriptor.ClassMisc,
			DeviceSubClass:    descriptor.MiscSubclassCommon,
			DeviceProtocol:    descriptor.MiscProtocolIAD,
			MaxPacketSize0:    64,
			VendorID:          VendorID,
			ProductID:         ProductIDLaserSoundCard,
			DeviceVersion:     0x0100,
			ManufacturerIndex: 1,
			ProductIndex:      2,
			SerialNumberIndex: serialStringIndex,
			NumConfigurations: 1,
		},
		Configuration: config,
		Strings: []string{
			"IPM Group",        // 1: manufacturer
			"Laser Sound Card", // 2: product
			"",                 // 3: serial number slot
			"Laser Speakers",   // 4: audio function
			"Laser Microphone", // 5: capture path
		},
		SerialIndex: serialStringIndex,
		Serial:      serial,
	})
}
