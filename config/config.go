package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ipmgroup/usbdesc/descriptor"
	"github.com/ipmgroup/usbdesc/descriptor/audio"
	"github.com/ipmgroup/usbdesc/descriptor/cdc"
	"github.com/ipmgroup/usbdesc/pkg"
	"github.com/ipmgroup/usbdesc/provider"
)

// Function type names accepted in a definition.
const (
	FunctionAudioHeadset = "audio-headset"
	FunctionCDCACM       = "cdc-acm"
)

// Defaults applied to zero-valued definition fields.
const (
	DefaultUSBVersion    = 0x0200
	DefaultDeviceVersion = 0x0100
	DefaultEP0Size       = 64
	DefaultMaxPowerMA    = 100
)

// serialStringIndex is the string table slot reserved for the serial number.
const serialStringIndex = 3

// Definition is a YAML device definition. Numeric fields accept YAML hex
// literals (vendor_id: 0xCAFE). Zero-valued versions, EP0 size, class
// triple, and power select the defaults of a bus-powered composite device.
type Definition struct {
	Name string `yaml:"name,omitempty"`

	VendorID      uint16 `yaml:"vendor_id"`
	ProductID     uint16 `yaml:"product_id"`
	USBVersion    uint16 `yaml:"usb_version,omitempty"`
	DeviceVersion uint16 `yaml:"device_version,omitempty"`

	DeviceClass    uint8 `yaml:"device_class,omitempty"`
	DeviceSubClass uint8 `yaml:"device_subclass,omitempty"`
	DeviceProtocol uint8 `yaml:"device_protocol,omitempty"`
	EP0Size        uint8 `yaml:"ep0_size,omitempty"`

	Manufacturer string   `yaml:"manufacturer"`
	Product      string   `yaml:"product"`
	Serial       string   `yaml:"serial,omitempty"`
	Strings      []string `yaml:"strings,omitempty"`
	LangID       uint16   `yaml:"lang_id,omitempty"`

	MaxPowerMA   uint16 `yaml:"max_power_ma,omitempty"`
	SelfPowered  bool   `yaml:"self_powered,omitempty"`
	RemoteWakeup bool   `yaml:"remote_wakeup,omitempty"`

	Function Function `yaml:"function"`
}

// Function selects the class function of the device's single configuration.
// Endpoint fields hold endpoint numbers without the direction bit; the
// builder applies direction.
type Function struct {
	Type        string `yaml:"type"`
	StringIndex uint8  `yaml:"string_index,omitempty"`

	// audio-headset
	InterruptEndpoint uint8 `yaml:"interrupt_endpoint,omitempty"`
	StreamOutEndpoint uint8 `yaml:"stream_out_endpoint,omitempty"`
	StreamInEndpoint  uint8 `yaml:"stream_in_endpoint,omitempty"`

	// cdc-acm
	NotificationEndpoint uint8 `yaml:"notification_endpoint,omitempty"`
	DataOutEndpoint      uint8 `yaml:"data_out_endpoint,omitempty"`
	DataInEndpoint       uint8 `yaml:"data_in_endpoint,omitempty"`
}

// Load reads and parses a YAML device definition from path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("definition %s: %w", path, err)
	}
	pkg.LogDebug(pkg.ComponentConfig, "definition loaded",
		"path", path,
		"name", def.Name,
		"function", def.Function.Type,
	)
	return def, nil
}

// Parse parses and validates a YAML device definition.
func Parse(data []byte) (*Definition, error) {
	def := &Definition{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func (d *Definition) validate() error {
	if d.VendorID == 0 {
		return fmt.Errorf("vendor_id: %w", pkg.ErrInvalidParameter)
	}
	if d.ProductID == 0 {
		return fmt.Errorf("product_id: %w", pkg.ErrInvalidParameter)
	}
	if d.Manufacturer == "" {
		return fmt.Errorf("manufacturer: %w", pkg.ErrInvalidParameter)
	}
	if d.Product == "" {
		return fmt.Errorf("product: %w", pkg.ErrInvalidParameter)
	}
	switch d.Function.Type {
	case FunctionAudioHeadset, FunctionCDCACM:
	case "":
		return fmt.Errorf("function type missing: %w", pkg.ErrInvalidParameter)
	default:
		return fmt.Errorf("function type %q: %w", d.Function.Type, pkg.ErrNotSupported)
	}
	return nil
}

// Provider builds the descriptor table provider described by the
// definition.
func (d *Definition) Provider() (*provider.Provider, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	class, subclass, protocol := d.DeviceClass, d.DeviceSubClass, d.DeviceProtocol
	if class == 0 {
		// Composite device grouped by interface association.
		class = descriptor.ClassMisc
		subclass = descriptor.MiscSubclassCommon
		protocol = descriptor.MiscProtocolIAD
	}
	usbVersion := d.USBVersion
	if usbVersion == 0 {
		usbVersion = DefaultUSBVersion
	}
	deviceVersion := d.DeviceVersion
	if deviceVersion == 0 {
		deviceVersion = DefaultDeviceVersion
	}
	ep0 := d.EP0Size
	if ep0 == 0 {
		ep0 = DefaultEP0Size
	}

	numInterfaces, function, err := d.marshalFunction()
	if err != nil {
		return nil, err
	}

	config := make([]byte, descriptor.ConfigurationSize+len(function))
	header := descriptor.Configuration{
		TotalLength:        uint16(len(config)),
		NumInterfaces:      numInterfaces,
		ConfigurationValue: 1,
		Attributes:         d.configAttributes(),
		MaxPower:           d.maxPower(),
	}
	n := header.MarshalTo(config)
	copy(config[n:], function)

	strings := make([]string, 0, 3+len(d.Strings))
	strings = append(strings, d.Manufacturer, d.Product, d.Serial)
	strings = append(strings, d.Strings...)

	var serial provider.SerialNumberReader
	if d.Serial != "" {
		serial = provider.SerialString(d.Serial)
	}

	return provider.New(provider.Config{
		Device: descriptor.Device{
			USBVersion:        usbVersion,
			DeviceClass:       class,
			DeviceSubClass:    subclass,
			DeviceProtocol:    protocol,
			MaxPacketSize0:    ep0,
			VendorID:          d.VendorID,
			ProductID:         d.ProductID,
			DeviceVersion:     deviceVersion,
			ManufacturerIndex: 1,
			ProductIndex:      2,
			SerialNumberIndex: serialStringIndex,
			NumConfigurations: 1,
		},
		Configuration: config,
		Strings:       strings,
		SerialIndex:   serialStringIndex,
		LangID:        d.LangID,
		Serial:        serial,
	})
}

// marshalFunction emits the definition's class function block and reports
// how many interfaces it spans.
func (d *Definition) marshalFunction() (uint8, []byte, error) {
	stringIndex := d.Function.StringIndex
	switch d.Function.Type {
	case FunctionAudioHeadset:
		fn := audio.Headset{
			StringIndex:       stringIndex,
			InterruptEndpoint: d.Function.InterruptEndpoint,
			StreamOutEndpoint: d.Function.StreamOutEndpoint,
			StreamInEndpoint:  d.Function.StreamInEndpoint,
		}
		buf := make([]byte, fn.Len())
		fn.MarshalTo(buf)
		return 3, buf, nil
	case FunctionCDCACM:
		fn := cdc.ACMFunction{
			StringIndex:          stringIndex,
			NotificationEndpoint: d.Function.NotificationEndpoint,
			DataOutEndpoint:      d.Function.DataOutEndpoint,
			DataInEndpoint:       d.Function.DataInEndpoint,
		}
		buf := make([]byte, fn.Len())
		fn.MarshalTo(buf)
		return 2, buf, nil
	}
	return 0, nil, fmt.Errorf("function type %q: %w", d.Function.Type, pkg.ErrNotSupported)
}

func (d *Definition) configAttributes() uint8 {
	attr := uint8(descriptor.ConfigAttrBusPowered)
	if d.SelfPowered {
		attr |= descriptor.ConfigAttrSelfPowered
	}
	if d.RemoteWakeup {
		attr |= descriptor.ConfigAttrRemoteWakeup
	}
	return attr
}

func (d *Definition) maxPower() uint8 {
	ma := d.MaxPowerMA
	if ma == 0 {
		ma = DefaultMaxPowerMA
	}
	if ma > 500 {
		ma = 500
	}
	return uint8(ma / 2)
}
