package descriptor

import "github.com/ipmgroup/usbdesc/pkg"

// Element is a single descriptor within a configuration byte sequence.
// Data spans the whole descriptor, including the length and type header.
type Element struct {
	Type uint8  // bDescriptorType
	Data []byte // full descriptor bytes
}

// Walk iterates over the descriptors in a marshaled configuration sequence,
// calling fn for each. Iteration stops early if fn returns false.
//
// Returns ErrDescriptorTooShort if a descriptor's declared length overruns
// the data, or ErrInvalidParameter if a zero-length descriptor is found
// (which would loop forever).
func Walk(data []byte, fn func(Element) bool) error {
	for offset := 0; offset < len(data); {
		if len(data)-offset < 2 {
			return pkg.ErrDescriptorTooShort
		}
		length := int(data[offset])
		if length == 0 {
			return pkg.ErrInvalidParameter
		}
		if offset+length > len(data) {
			return pkg.ErrDescriptorTooShort
		}
		el := Element{
			Type: data[offset+1],
			Data: data[offset : offset+length],
		}
		if !fn(el) {
			return nil
		}
		offset += length
	}
	return nil
}

// TypeName returns a short human-readable name for a descriptor type.
func TypeName(descType uint8) string {
	switch descType {
	case TypeDevice:
		return "Device"
	case TypeConfiguration:
		return "Configuration"
	case TypeString:
		return "String"
	case TypeInterface:
		return "Interface"
	case TypeEndpoint:
		return "Endpoint"
	case TypeDeviceQualifier:
		return "Device Qualifier"
	case TypeOtherSpeedConfig:
		return "Other Speed Configuration"
	case TypeInterfaceAssociation:
		return "Interface Association"
	case TypeCSInterface:
		return "Class-Specific Interface"
	case TypeCSEndpoint:
		return "Class-Specific Endpoint"
	default:
		return "Unknown"
	}
}
