package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrDescriptorTooShort,
		ErrDescriptorTypeMismatch,
		ErrBufferTooSmall,
		ErrInvalidParameter,
		ErrNotSupported,
		ErrStringIndexReserved,
		ErrNoConfiguration,
		ErrNoDevice,
	}

	for i, err1 := range errs {
		if err1 == nil {
			t.Errorf("error at index %d is nil", i)
			continue
		}
		if err1.Error() == "" {
			t.Errorf("error at index %d has empty message", i)
		}
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("errors at index %d and %d are not distinct", i, j)
			}
		}
	}
}

func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading definition: %w", ErrInvalidParameter)
	if !errors.Is(wrapped, ErrInvalidParameter) {
		t.Error("wrapped error does not match sentinel")
	}
	if errors.Is(wrapped, ErrBufferTooSmall) {
		t.Error("wrapped error matches wrong sentinel")
	}
}
