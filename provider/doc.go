// Package provider implements a USB descriptor table provider: the
// device-side answer surface for the three descriptor queries a USB
// enumeration engine issues during device setup (GET_DESCRIPTOR for the
// device, configuration, and string descriptors).
//
// A [Provider] is built once from a [Config] and is read-only afterwards.
// The device record and configuration byte sequence are immutable; repeated
// queries return byte-identical results. String descriptors are produced as
// 16-bit code units, the representation USB string descriptors use on the
// wire (UTF-16LE payload behind a 2-byte header).
//
//	p, err := provider.New(provider.Config{
//	    Device:        dev,
//	    Configuration: configBytes,
//	    Strings:       []string{"IPM Group", "Laser Sound Card", "", "Laser Speakers"},
//	    SerialIndex:   3,
//	    Serial:        provider.SerialString("0123456789AB"),
//	})
//
// # String Queries
//
// [Provider.StringDescriptorTo] fills a caller-owned buffer of code units
// and returns the number of units written; [Provider.StringDescriptor]
// allocates a fresh buffer per call. Either way no hidden state is shared
// between calls. Index 0 is the language ID slot; the designated serial
// slot delegates to a [SerialNumberReader]; an index beyond the table
// yields a zero/nil result, which is how absence of a descriptor is
// signaled to the host (the enumeration engine answers with a STALL).
//
// The payload of an ordinary table entry is at most 32 code units; longer
// strings are truncated. Each ASCII byte is zero-extended to one code unit.
// This is not UTF-8 decoding: multi-byte source text comes out garbled,
// matching the firmware tables this package descends from. Use
// [github.com/ipmgroup/usbdesc/descriptor.StringDescriptorTo] when real
// text conversion is needed outside the table path.
//
// # Concurrency
//
// Enumeration engines issue descriptor queries synchronously from a single
// goroutine, and a Provider is immutable after New, so no locking is
// performed. Buffers passed to StringDescriptorTo are owned by the caller
// for the duration of the call only.
package provider
