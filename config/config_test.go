package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ipmgroup/usbdesc/descriptor"
	"github.com/ipmgroup/usbdesc/descriptor/audio"
	"github.com/ipmgroup/usbdesc/descriptor/cdc"
	"github.com/ipmgroup/usbdesc/pkg"
)

func TestLoadHeadsetDefinition(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "headset.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if def.Name != "laser-sound-card" {
		t.Errorf("name = %q, want %q", def.Name, "laser-sound-card")
	}
	if def.VendorID != 0xCAFE || def.ProductID != 0x4010 {
		t.Errorf("IDs = %04X:%04X, want CAFE:4010", def.VendorID, def.ProductID)
	}
	if def.Function.Type != FunctionAudioHeadset {
		t.Errorf("function type = %q, want %q", def.Function.Type, FunctionAudioHeadset)
	}
	if len(def.Strings) != 2 {
		t.Errorf("extra strings = %d, want 2", len(def.Strings))
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nonexistent.yaml")); err == nil {
		t.Error("Load(nonexistent) returned nil error")
	}
}

func TestParseValidation(t *testing.T) {
	base := `
vendor_id: 0xCAFE
product_id: 0x4001
manufacturer: acme
product: widget
function:
  type: cdc-acm
`
	if _, err := Parse([]byte(base)); err != nil {
		t.Fatalf("Parse(valid) error: %v", err)
	}

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "missing vendor",
			yaml: "product_id: 1\nmanufacturer: a\nproduct: b\nfunction: {type: cdc-acm}\n",
			want: pkg.ErrInvalidParameter,
		},
		{
			name: "missing product id",
			yaml: "vendor_id: 1\nmanufacturer: a\nproduct: b\nfunction: {type: cdc-acm}\n",
			want: pkg.ErrInvalidParameter,
		},
		{
			name: "missing manufacturer",
			yaml: "vendor_id: 1\nproduct_id: 2\nproduct: b\nfunction: {type: cdc-acm}\n",
			want: pkg.ErrInvalidParameter,
		},
		{
			name: "missing product string",
			yaml: "vendor_id: 1\nproduct_id: 2\nmanufacturer: a\nfunction: {type: cdc-acm}\n",
			want: pkg.ErrInvalidParameter,
		},
		{
			name: "missing function type",
			yaml: "vendor_id: 1\nproduct_id: 2\nmanufacturer: a\nproduct: b\n",
			want: pkg.ErrInvalidParameter,
		},
		{
			name: "unknown function type",
			yaml: "vendor_id: 1\nproduct_id: 2\nmanufacturer: a\nproduct: b\nfunction: {type: midi}\n",
			want: pkg.ErrNotSupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("vendor_id: [")); err == nil {
		t.Error("Parse(malformed) returned nil error")
	}
}

func TestHeadsetProvider(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "headset.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	p, err := def.Provider()
	if err != nil {
		t.Fatalf("Provider() error: %v", err)
	}

	d := p.Device()
	if d.VendorID != 0xCAFE || d.ProductID != 0x4010 {
		t.Errorf("device IDs = %04X:%04X, want CAFE:4010", d.VendorID, d.ProductID)
	}
	if d.DeviceClass != descriptor.ClassMisc {
		t.Errorf("device class = 0x%02X, want 0x%02X (default)", d.DeviceClass, descriptor.ClassMisc)
	}
	if d.USBVersion != DefaultUSBVersion {
		t.Errorf("bcdUSB = 0x%04X, want 0x%04X (default)", d.USBVersion, DefaultUSBVersion)
	}
	if d.MaxPacketSize0 != DefaultEP0Size {
		t.Errorf("EP0 size = %d, want %d (default)", d.MaxPacketSize0, DefaultEP0Size)
	}

	config := p.Configuration(0)
	wantLen := descriptor.ConfigurationSize + audio.HeadsetLength
	if len(config) != wantLen {
		t.Fatalf("configuration length = %d, want %d", len(config), wantLen)
	}
	var header descriptor.Configuration
	if err := descriptor.ParseConfiguration(config, &header); err != nil {
		t.Fatalf("ParseConfiguration() error: %v", err)
	}
	if header.NumInterfaces != 3 {
		t.Errorf("bNumInterfaces = %d, want 3", header.NumInterfaces)
	}
	if header.MaxPower != 50 {
		t.Errorf("bMaxPower = %d, want 50", header.MaxPower)
	}
	if err := descriptor.Walk(config, func(descriptor.Element) bool { return true }); err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	// Fixed serial string from the definition.
	data := p.StringDescriptorBytes(3, descriptor.LangIDUSEnglish)
	if got := descriptor.DecodeString(data); got != "LSC-0042" {
		t.Errorf("serial string = %q, want %q", got, "LSC-0042")
	}
	if p.NumStrings() != 6 {
		t.Errorf("NumStrings() = %d, want 6", p.NumStrings())
	}
}

func TestSerialProvider(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "serial.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	p, err := def.Provider()
	if err != nil {
		t.Fatalf("Provider() error: %v", err)
	}

	config := p.Configuration(0)
	wantLen := descriptor.ConfigurationSize + cdc.ACMFunctionLength
	if len(config) != wantLen {
		t.Fatalf("configuration length = %d, want %d", len(config), wantLen)
	}

	// Endpoint numbers from the definition get direction bits applied.
	var addrs []uint8
	descriptor.Walk(config, func(e descriptor.Element) bool {
		if e.Type == descriptor.TypeEndpoint {
			addrs = append(addrs, e.Data[2])
		}
		return true
	})
	want := []uint8{0x81, 0x02, 0x82}
	if len(addrs) != len(want) {
		t.Fatalf("endpoint count = %d, want %d", len(addrs), len(want))
	}
	for i := range want {
		if addrs[i] != want[i] {
			t.Errorf("endpoint %d address = 0x%02X, want 0x%02X", i, addrs[i], want[i])
		}
	}

	// No fixed serial: the slot reports an empty payload.
	data := p.StringDescriptorBytes(3, descriptor.LangIDUSEnglish)
	if len(data) != 2 {
		t.Errorf("serial descriptor length = %d, want 2 (header only)", len(data))
	}
}

func TestProviderAttributes(t *testing.T) {
	def := &Definition{
		VendorID:     0xCAFE,
		ProductID:    0x0001,
		Manufacturer: "acme",
		Product:      "widget",
		SelfPowered:  true,
		RemoteWakeup: true,
		MaxPowerMA:   2000, // clamped to the USB maximum
		Function:     Function{Type: FunctionCDCACM, DataOutEndpoint: 2, DataInEndpoint: 2, NotificationEndpoint: 1},
	}
	p, err := def.Provider()
	if err != nil {
		t.Fatalf("Provider() error: %v", err)
	}

	var header descriptor.Configuration
	if err := descriptor.ParseConfiguration(p.Configuration(0), &header); err != nil {
		t.Fatalf("ParseConfiguration() error: %v", err)
	}
	wantAttr := uint8(descriptor.ConfigAttrBusPowered |
		descriptor.ConfigAttrSelfPowered |
		descriptor.ConfigAttrRemoteWakeup)
	if header.Attributes != wantAttr {
		t.Errorf("bmAttributes = 0x%02X, want 0x%02X", header.Attributes, wantAttr)
	}
	if header.MaxPower != 250 {
		t.Errorf("bMaxPower = %d, want 250", header.MaxPower)
	}
}

func TestProviderRejectsInvalid(t *testing.T) {
	def := &Definition{Function: Function{Type: FunctionCDCACM}}
	if _, err := def.Provider(); !errors.Is(err, pkg.ErrInvalidParameter) {
		t.Errorf("Provider() error = %v, want %v", err, pkg.ErrInvalidParameter)
	}
}
