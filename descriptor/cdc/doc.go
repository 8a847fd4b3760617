// Package cdc implements CDC-ACM (Abstract Control Model) configuration
// descriptors: the functional descriptors defined by the USB CDC 1.20
// specification and a whole-function builder that emits the standard
// two-interface serial port block (communications interface with an
// interrupt notification endpoint, data interface with a bulk pair),
// grouped by an interface association descriptor.
//
//	fn := cdc.ACMFunction{
//	    ControlInterface:     0,
//	    StringIndex:          4,
//	    NotificationEndpoint: 0x81,
//	    DataOutEndpoint:      0x02,
//	    DataInEndpoint:       0x82,
//	}
//	n := fn.MarshalTo(buf)
//
// The emitted bytes are appended after a configuration header to form the
// flat sequence a host reads with GET_DESCRIPTOR(CONFIGURATION).
package cdc
