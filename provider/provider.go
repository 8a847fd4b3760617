package provider

import (
	"github.com/ipmgroup/usbdesc/descriptor"
	"github.com/ipmgroup/usbdesc/pkg"
)

// String response buffer capacities, in 16-bit code units.
const (
	// MaxStringUnits is the maximum payload of a string query (32 units).
	MaxStringUnits = 32

	// StringBufferUnits is the full response capacity: one header unit
	// followed by up to MaxStringUnits payload units.
	StringBufferUnits = MaxStringUnits + 1
)

// SerialNumberReader supplies a hardware serial number as 16-bit code units.
// Implementations fill dst with up to len(dst) units and return the number
// written. Returning 0 is legal and means no serial number is available.
type SerialNumberReader interface {
	ReadSerialNumber(dst []uint16) int
}

// SerialString is a fixed-string SerialNumberReader. Each byte is
// zero-extended to one code unit, clamped to the destination capacity.
type SerialString string

// ReadSerialNumber implements SerialNumberReader.
func (s SerialString) ReadSerialNumber(dst []uint16) int {
	n := len(s)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = uint16(s[i])
	}
	return n
}

// SerialFunc adapts a function to the SerialNumberReader interface.
type SerialFunc func(dst []uint16) int

// ReadSerialNumber implements SerialNumberReader.
func (f SerialFunc) ReadSerialNumber(dst []uint16) int {
	return f(dst)
}

// Config describes the descriptor table a Provider serves.
type Config struct {
	// Device is the immutable device descriptor record.
	Device descriptor.Device

	// Configuration is the full marshaled configuration byte sequence
	// (configuration header plus interface blocks). Stored by reference;
	// the caller must not modify it after New.
	Configuration []byte

	// Strings holds the table entries for indices 1..len(Strings).
	// Index 0 is implicit (language ID slot). The entry at the serial
	// slot, if any, is ignored and conventionally left empty.
	Strings []string

	// SerialIndex designates the string index answered by the Serial
	// reader instead of the table. Zero means no serial slot.
	SerialIndex uint8

	// LangID is the supported language. Defaults to US English (0x0409).
	LangID uint16

	// Serial supplies the hardware serial number. May be nil, in which
	// case the serial slot reports zero units.
	Serial SerialNumberReader
}

// Provider answers the three descriptor queries issued during enumeration.
// It is immutable after New; see the package documentation for the
// concurrency contract.
type Provider struct {
	device      descriptor.Device
	deviceBytes [descriptor.DeviceSize]byte
	qualifier   [descriptor.DeviceQualifierSize]byte
	config      []byte
	strings     []string
	serialIndex uint8
	langID      uint16
	serial      SerialNumberReader
}

// New builds a Provider from cfg.
//
// It returns ErrNoConfiguration if the configuration bytes do not begin
// with a configuration descriptor header, and ErrInvalidParameter if the
// serial index lies outside the string table.
func New(cfg Config) (*Provider, error) {
	var header descriptor.Configuration
	if err := descriptor.ParseConfiguration(cfg.Configuration, &header); err != nil {
		return nil, pkg.ErrNoConfiguration
	}

	if cfg.SerialIndex != 0 && int(cfg.SerialIndex) > len(cfg.Strings) {
		return nil, pkg.ErrInvalidParameter
	}

	langID := cfg.LangID
	if langID == 0 {
		langID = descriptor.LangIDUSEnglish
	}

	p := &Provider{
		device:      cfg.Device,
		config:      cfg.Configuration,
		strings:     cfg.Strings,
		serialIndex: cfg.SerialIndex,
		langID:      langID,
		serial:      cfg.Serial,
	}
	p.device.MarshalTo(p.deviceBytes[:])
	q := descriptor.QualifierFor(&p.device)
	q.MarshalTo(p.qualifier[:])

	pkg.LogDebug(pkg.ComponentProvider, "descriptor table built",
		"vendorID", cfg.Device.VendorID,
		"productID", cfg.Device.ProductID,
		"strings", len(cfg.Strings)+1,
		"serialIndex", cfg.SerialIndex)

	return p, nil
}

// Device returns the device descriptor record.
// The returned value references internal storage; do not modify.
func (p *Provider) Device() *descriptor.Device {
	return &p.device
}

// DeviceBytes returns the marshaled device descriptor.
// The returned slice references internal storage; do not modify.
func (p *Provider) DeviceBytes() []byte {
	return p.deviceBytes[:]
}

// DeviceQualifier returns the marshaled device qualifier descriptor,
// derived from the device descriptor.
// The returned slice references internal storage; do not modify.
func (p *Provider) DeviceQualifier() []byte {
	return p.qualifier[:]
}

// Configuration returns the configuration byte sequence. Only one
// configuration is defined, so index is accepted but unused. Never fails.
// The returned slice references internal storage; do not modify.
func (p *Provider) Configuration(index uint8) []byte {
	_ = index // single configuration
	return p.config
}

// NumStrings returns the string table length, including the language ID
// slot at index 0. Valid query indices are 0..NumStrings()-1.
func (p *Provider) NumStrings() int {
	return len(p.strings) + 1
}

// StringDescriptorTo answers a string descriptor query into a caller-owned
// buffer of code units and returns the number of units written (payload
// plus one header unit), or 0 if index is outside the table.
//
// Index 0 yields the language ID record. The serial slot delegates to the
// SerialNumberReader, which may legitimately report zero units. Any other
// valid index yields the table text, truncated to the payload capacity
// (at most MaxStringUnits), each ASCII byte zero-extended to a code unit.
// langID is accepted but ignored; only one language is supported.
//
// buf should have StringBufferUnits capacity. A smaller buffer further
// limits the payload; an empty buffer yields 0.
func (p *Provider) StringDescriptorTo(buf []uint16, index uint8, langID uint16) int {
	_ = langID // single-language support only

	if len(buf) == 0 {
		return 0
	}
	capacity := len(buf) - 1
	if capacity > MaxStringUnits {
		capacity = MaxStringUnits
	}

	var count int
	switch {
	case index == 0:
		if capacity < 1 {
			return 0
		}
		buf[1] = p.langID
		count = 1

	case index == p.serialIndex && p.serialIndex != 0:
		if p.serial != nil {
			count = p.serial.ReadSerialNumber(buf[1 : 1+capacity])
			// Readers must not report more than they were given room for.
			if count > capacity {
				count = capacity
			}
			if count < 0 {
				count = 0
			}
		}

	default:
		if int(index) > len(p.strings) {
			return 0
		}
		s := p.strings[index-1]
		count = len(s)
		if count > capacity {
			count = capacity
		}
		// Zero-extend each byte to a code unit. Deliberately not UTF-8
		// aware; the table holds ASCII.
		for i := 0; i < count; i++ {
			buf[1+i] = uint16(s[i])
		}
	}

	// Header unit: descriptor type in the high byte, total byte length
	// (payload plus the 2-byte header itself) in the low byte.
	buf[0] = uint16(descriptor.TypeString)<<8 | uint16(2*count+2)
	return count + 1
}

// StringDescriptor answers a string descriptor query with a freshly
// allocated buffer, or nil if index is outside the table.
func (p *Provider) StringDescriptor(index uint8, langID uint16) []uint16 {
	buf := make([]uint16, StringBufferUnits)
	n := p.StringDescriptorTo(buf, index, langID)
	if n == 0 {
		return nil
	}
	return buf[:n]
}

// StringDescriptorBytes answers a string descriptor query in wire form
// (little-endian bytes), or nil if index is outside the table. The result
// is freshly allocated and can be transmitted verbatim.
func (p *Provider) StringDescriptorBytes(index uint8, langID uint16) []byte {
	units := p.StringDescriptor(index, langID)
	if units == nil {
		return nil
	}
	buf := make([]byte, len(units)*2)
	descriptor.EncodeUnits(buf, units)
	return buf
}
