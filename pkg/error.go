package pkg

import "errors"

// Descriptor construction and validation errors.
var (
	// ErrDescriptorTooShort indicates the descriptor data is too short.
	ErrDescriptorTooShort = errors.New("descriptor too short")

	// ErrDescriptorTypeMismatch indicates the descriptor type does not match expected.
	ErrDescriptorTypeMismatch = errors.New("descriptor type mismatch")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotSupported indicates an unsupported operation or feature.
	ErrNotSupported = errors.New("not supported")

	// ErrStringIndexReserved indicates a string table index that is reserved
	// (index 0 is the language ID slot and cannot hold text).
	ErrStringIndexReserved = errors.New("string index reserved")

	// ErrNoConfiguration indicates a configuration byte sequence is missing
	// or does not begin with a configuration descriptor header.
	ErrNoConfiguration = errors.New("missing or malformed configuration")

	// ErrNoDevice indicates the target device is not present.
	ErrNoDevice = errors.New("device not present")
)
