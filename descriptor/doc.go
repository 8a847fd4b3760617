// Package descriptor implements USB 2.0 descriptor wire formats.
//
// It provides the standard descriptor records a USB device returns to the
// host during enumeration: device, device qualifier, configuration,
// interface, endpoint, interface association, and string descriptors. The
// byte layouts are dictated by the USB 2.0 specification (chapter 9); all
// multi-byte fields are little-endian.
//
// # Zero-Allocation Design
//
// Serialization uses MarshalTo(buf) instead of allocating Bytes(), and
// parse functions take output parameters instead of returning pointers,
// so callers control all buffer lifetimes:
//
//	var buf [18]byte
//	n := desc.MarshalTo(buf[:])
//
// # Configuration Sequences
//
// A full configuration descriptor on the wire is a flat byte sequence: the
// 9-byte configuration header followed by interface, endpoint, and
// class-specific blocks. [Walk] iterates such a sequence descriptor by
// descriptor, which is how the usbdesc CLI renders configurations built by
// the [github.com/ipmgroup/usbdesc/descriptor/audio] and
// [github.com/ipmgroup/usbdesc/descriptor/cdc] packages.
package descriptor
