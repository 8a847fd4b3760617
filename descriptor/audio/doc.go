// Package audio implements USB Audio Class 2.0 configuration descriptors:
// the class-specific audio control and streaming descriptors defined by the
// UAC2 specification, and a whole-function builder for the stereo headset
// topology (USB playback to headphones, microphone capture to USB).
//
// The headset function spans three contiguous interfaces grouped by an
// interface association descriptor: one AudioControl interface carrying the
// unit/terminal topology and an interrupt status endpoint, and two
// AudioStreaming interfaces (speaker OUT, microphone IN), each with a
// zero-bandwidth alternate setting 0 and an operational alternate 1.
//
//	fn := audio.Headset{
//	    ControlInterface:  0,
//	    StringIndex:       4,
//	    InterruptEndpoint: 0x82,
//	    StreamOutEndpoint: 0x01,
//	    StreamInEndpoint:  0x81,
//	}
//	n := fn.MarshalTo(buf)
//
// Sample rate and clock validity are negotiated at run time through class
// requests against the clock source entity; they do not appear in the
// descriptors beyond the clock topology itself.
package audio
