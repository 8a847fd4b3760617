package provider

import (
	"bytes"
	"testing"

	"github.com/ipmgroup/usbdesc/descriptor"
	"github.com/ipmgroup/usbdesc/pkg"
)

// testConfiguration returns a minimal valid configuration byte sequence.
func testConfiguration(t *testing.T) []byte {
	t.Helper()
	cfg := descriptor.Configuration{
		TotalLength:        descriptor.ConfigurationSize,
		NumInterfaces:      1,
		ConfigurationValue: 1,
		Attributes:         descriptor.ConfigAttrBusPowered,
		MaxPower:           50,
	}
	buf := make([]byte, descriptor.ConfigurationSize)
	if n := cfg.MarshalTo(buf); n == 0 {
		t.Fatal("failed to marshal test configuration")
	}
	return buf
}

func testProvider(t *testing.T, serial SerialNumberReader) *Provider {
	t.Helper()
	p, err := New(Config{
		Device: descriptor.Device{
			USBVersion:        0x0200,
			DeviceClass:       descriptor.ClassMisc,
			DeviceSubClass:    descriptor.MiscSubclassCommon,
			DeviceProtocol:    descriptor.MiscProtocolIAD,
			MaxPacketSize0:    64,
			VendorID:          0xCAFE,
			ProductID:         0x4010,
			DeviceVersion:     0x0100,
			ManufacturerIndex: 1,
			ProductIndex:      2,
			SerialNumberIndex: 3,
			NumConfigurations: 1,
		},
		Configuration: testConfiguration(t),
		Strings: []string{
			"IPM Group",        // 1: manufacturer
			"Laser Sound Card", // 2: product
			"",                 // 3: serial slot
			"Laser Speakers",   // 4: audio interface
			"Laser Microphone", // 5: audio interface
		},
		SerialIndex: 3,
		Serial:      serial,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNew_Validation(t *testing.T) {
	dev := descriptor.Device{MaxPacketSize0: 64, NumConfigurations: 1}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"nil configuration", Config{Device: dev}},
		{"short configuration", Config{Device: dev, Configuration: []byte{9, descriptor.TypeConfiguration}}},
		{"wrong leading descriptor", Config{Device: dev, Configuration: make([]byte, 18)}},
		{"serial index out of table", Config{
			Device:        dev,
			Configuration: testConfiguration(t),
			Strings:       []string{"a", "b"},
			SerialIndex:   3,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNew_WrongLeadingDescriptorError(t *testing.T) {
	var buf [18]byte
	dev := descriptor.Device{MaxPacketSize0: 64}
	dev.MarshalTo(buf[:])

	_, err := New(Config{Device: dev, Configuration: buf[:]})
	if err != pkg.ErrNoConfiguration {
		t.Errorf("err = %v, want %v", err, pkg.ErrNoConfiguration)
	}
}

func TestDevice_Idempotent(t *testing.T) {
	p := testProvider(t, nil)

	first := p.Device()
	second := p.Device()
	if *first != *second {
		t.Error("device descriptor changed between calls")
	}

	b1 := append([]byte(nil), p.DeviceBytes()...)
	b2 := p.DeviceBytes()
	if !bytes.Equal(b1, b2) {
		t.Error("device descriptor bytes changed between calls")
	}
	if len(b2) != descriptor.DeviceSize {
		t.Errorf("device bytes length = %d, want %d", len(b2), descriptor.DeviceSize)
	}
}

func TestConfiguration_IgnoresIndex(t *testing.T) {
	p := testProvider(t, nil)

	base := p.Configuration(0)
	for _, index := range []uint8{0, 1, 7, 255} {
		got := p.Configuration(index)
		if !bytes.Equal(got, base) {
			t.Errorf("Configuration(%d) differs from Configuration(0)", index)
		}
	}
}

func TestDeviceQualifier(t *testing.T) {
	p := testProvider(t, nil)

	data := p.DeviceQualifier()
	var q descriptor.DeviceQualifier
	if err := descriptor.ParseDeviceQualifier(data, &q); err != nil {
		t.Fatalf("parse qualifier: %v", err)
	}
	if q.DeviceClass != descriptor.ClassMisc {
		t.Errorf("DeviceClass = 0x%02X, want 0x%02X", q.DeviceClass, descriptor.ClassMisc)
	}
	if q.NumConfigurations != 1 {
		t.Errorf("NumConfigurations = %d, want 1", q.NumConfigurations)
	}
}

func TestStringDescriptor_LanguageID(t *testing.T) {
	p := testProvider(t, nil)

	units := p.StringDescriptor(0, 0)
	if units == nil {
		t.Fatal("language ID query returned nil")
	}
	if len(units) != 2 {
		t.Fatalf("units = %d, want 2 (header + one langID)", len(units))
	}
	if units[1] != descriptor.LangIDUSEnglish {
		t.Errorf("langID = 0x%04X, want 0x%04X", units[1], descriptor.LangIDUSEnglish)
	}
	// Character count 1: total byte length 2*1+2 = 4
	wantHeader := uint16(descriptor.TypeString)<<8 | 4
	if units[0] != wantHeader {
		t.Errorf("header = 0x%04X, want 0x%04X", units[0], wantHeader)
	}
}

func TestStringDescriptor_ProductExample(t *testing.T) {
	p := testProvider(t, nil)

	// "Laser Sound Card" is 16 characters: header must be 0x03 in the
	// high byte and 16*2+2 = 34 = 0x22 in the low byte.
	units := p.StringDescriptor(2, descriptor.LangIDUSEnglish)
	if units == nil {
		t.Fatal("product string query returned nil")
	}

	const product = "Laser Sound Card"
	if got := len(units) - 1; got != len(product) {
		t.Fatalf("character count = %d, want %d", got, len(product))
	}
	wantHeader := uint16(descriptor.TypeString)<<8 | uint16(2*len(product)+2)
	if units[0] != wantHeader {
		t.Errorf("header = 0x%04X, want 0x%04X", units[0], wantHeader)
	}
	for i := 0; i < len(product); i++ {
		if units[1+i] != uint16(product[i]) {
			t.Errorf("unit %d = 0x%04X, want 0x%04X", i, units[1+i], uint16(product[i]))
		}
	}
}

func TestStringDescriptor_HeaderLength(t *testing.T) {
	p := testProvider(t, SerialString("0123456789AB"))

	// For every valid index the header low byte must equal
	// 2*min(len, 32)+2 and the high byte must be the string type.
	for index := 0; index < p.NumStrings(); index++ {
		units := p.StringDescriptor(uint8(index), 0)
		if units == nil {
			t.Errorf("index %d: unexpected nil", index)
			continue
		}
		count := len(units) - 1
		if count > MaxStringUnits {
			t.Errorf("index %d: count %d exceeds %d", index, count, MaxStringUnits)
		}
		if got := uint8(units[0] >> 8); got != descriptor.TypeString {
			t.Errorf("index %d: type byte = 0x%02X", index, got)
		}
		if got := uint8(units[0]); got != uint8(2*count+2) {
			t.Errorf("index %d: length byte = %d, want %d", index, got, 2*count+2)
		}
	}
}

func TestStringDescriptor_OutOfRange(t *testing.T) {
	p := testProvider(t, nil)

	for _, index := range []uint8{6, 7, 100, 255} {
		if units := p.StringDescriptor(index, 0); units != nil {
			t.Errorf("index %d: expected nil, got %d units", index, len(units))
		}
		var buf [StringBufferUnits]uint16
		if n := p.StringDescriptorTo(buf[:], index, 0); n != 0 {
			t.Errorf("index %d: expected 0, got %d", index, n)
		}
	}
}

func TestStringDescriptor_Serial(t *testing.T) {
	p := testProvider(t, SerialString("A1B2C3"))

	units := p.StringDescriptor(3, 0)
	if units == nil {
		t.Fatal("serial query returned nil")
	}
	if got := len(units) - 1; got != 6 {
		t.Fatalf("character count = %d, want 6", got)
	}
	if units[1] != 'A' || units[6] != '3' {
		t.Errorf("serial payload = %v", units[1:])
	}
}

func TestStringDescriptor_SerialEmpty(t *testing.T) {
	// No reader: the serial slot legitimately reports zero characters.
	p := testProvider(t, nil)

	units := p.StringDescriptor(3, 0)
	if units == nil {
		t.Fatal("serial query returned nil; empty serial is not an error")
	}
	if got := len(units) - 1; got != 0 {
		t.Errorf("character count = %d, want 0", got)
	}
	wantHeader := uint16(descriptor.TypeString)<<8 | 2
	if units[0] != wantHeader {
		t.Errorf("header = 0x%04X, want 0x%04X", units[0], wantHeader)
	}
}

func TestStringDescriptor_SerialFunc(t *testing.T) {
	called := 0
	p := testProvider(t, SerialFunc(func(dst []uint16) int {
		called++
		if len(dst) != MaxStringUnits {
			t.Errorf("reader given %d units, want %d", len(dst), MaxStringUnits)
		}
		dst[0] = 'X'
		return 1
	}))

	units := p.StringDescriptor(3, 0)
	if units == nil || len(units) != 2 || units[1] != 'X' {
		t.Fatalf("unexpected result: %v", units)
	}
	if called != 1 {
		t.Errorf("reader called %d times, want 1", called)
	}
}

func TestStringDescriptor_SerialOverclaim(t *testing.T) {
	// A reader claiming more than the buffer it was given is clamped.
	p := testProvider(t, SerialFunc(func(dst []uint16) int {
		return len(dst) + 10
	}))

	units := p.StringDescriptor(3, 0)
	if units == nil {
		t.Fatal("serial query returned nil")
	}
	if got := len(units) - 1; got != MaxStringUnits {
		t.Errorf("character count = %d, want %d", got, MaxStringUnits)
	}
}

func TestStringDescriptor_Truncation(t *testing.T) {
	longName := "An Exceedingly Long Product Name That Will Not Fit At All"
	if len(longName) <= MaxStringUnits {
		t.Fatal("test string not long enough")
	}

	p, err := New(Config{
		Device:        descriptor.Device{MaxPacketSize0: 64, NumConfigurations: 1},
		Configuration: testConfiguration(t),
		Strings:       []string{longName},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	units := p.StringDescriptor(1, 0)
	if units == nil {
		t.Fatal("query returned nil")
	}
	if got := len(units) - 1; got != MaxStringUnits {
		t.Errorf("character count = %d, want exactly %d", got, MaxStringUnits)
	}
	// Truncation discards the excess; what remains matches the prefix.
	for i := 0; i < MaxStringUnits; i++ {
		if units[1+i] != uint16(longName[i]) {
			t.Errorf("unit %d = 0x%04X, want 0x%04X", i, units[1+i], uint16(longName[i]))
		}
	}
}

func TestStringDescriptorTo_SmallBuffer(t *testing.T) {
	p := testProvider(t, nil)

	// A smaller caller buffer further limits the payload.
	var buf [6]uint16
	n := p.StringDescriptorTo(buf[:], 2, 0)
	if n != 6 {
		t.Fatalf("units = %d, want 6", n)
	}
	if got := uint8(buf[0]); got != uint8(2*5+2) {
		t.Errorf("length byte = %d, want %d", got, 2*5+2)
	}

	if n := p.StringDescriptorTo(nil, 2, 0); n != 0 {
		t.Errorf("empty buffer: units = %d, want 0", n)
	}
}

func TestStringDescriptor_LangIDIgnored(t *testing.T) {
	p := testProvider(t, nil)

	a := p.StringDescriptor(1, 0x0409)
	b := p.StringDescriptor(1, 0x0407)
	if len(a) != len(b) {
		t.Fatal("results differ by langID")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("unit %d differs by langID: 0x%04X vs 0x%04X", i, a[i], b[i])
		}
	}
}

func TestStringDescriptorBytes(t *testing.T) {
	p := testProvider(t, nil)

	data := p.StringDescriptorBytes(1, 0)
	if data == nil {
		t.Fatal("query returned nil")
	}
	// Wire form: [length, type, UTF-16LE payload...]
	if data[0] != uint8(2*len("IPM Group")+2) {
		t.Errorf("length byte = %d", data[0])
	}
	if data[1] != descriptor.TypeString {
		t.Errorf("type byte = 0x%02X", data[1])
	}
	if got := descriptor.DecodeString(data); got != "IPM Group" {
		t.Errorf("decoded = %q, want %q", got, "IPM Group")
	}

	if data := p.StringDescriptorBytes(99, 0); data != nil {
		t.Errorf("out-of-range: expected nil, got % X", data)
	}
}

func TestNumStrings(t *testing.T) {
	p := testProvider(t, nil)
	if got := p.NumStrings(); got != 6 {
		t.Errorf("NumStrings = %d, want 6", got)
	}
}
