package descriptor

import "encoding/binary"

// StringDescriptorTo writes a USB string descriptor to buf.
// Returns the number of bytes written. The descriptor encodes the string
// as UTF-16LE. If buf is too small, returns 0.
func StringDescriptorTo(buf []byte, s string) int {
	runes := []rune(s)
	length := 2 + len(runes)*2
	if length > 255 {
		length = 255
		runes = runes[:(length-2)/2]
	}
	if len(buf) < length {
		return 0
	}
	buf[0] = uint8(length)
	buf[1] = TypeString
	for i, r := range runes {
		binary.LittleEndian.PutUint16(buf[2+i*2:], uint16(r))
	}
	return length
}

// LanguageDescriptorTo writes the language ID string descriptor to buf.
// Standard language ID for US English is 0x0409.
// Returns the number of bytes written. If buf is too small, returns 0.
func LanguageDescriptorTo(buf []byte, langIDs ...uint16) int {
	length := 2 + len(langIDs)*2
	if len(buf) < length {
		return 0
	}
	buf[0] = uint8(length)
	buf[1] = TypeString
	for i, id := range langIDs {
		binary.LittleEndian.PutUint16(buf[2+i*2:], id)
	}
	return length
}

// EncodeUnits writes 16-bit code units to buf as little-endian wire bytes.
// Returns the number of bytes written, or 0 if buf is too small. This is how
// a string descriptor held as code units is transmitted over the wire.
func EncodeUnits(buf []byte, units []uint16) int {
	n := len(units) * 2
	if len(buf) < n {
		return 0
	}
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	return n
}

// DecodeString extracts the text payload from a wire-format string
// descriptor. Each UTF-16LE code unit maps to one rune (no surrogate pair
// handling; descriptor strings are BMP-only in practice).
func DecodeString(data []byte) string {
	if len(data) < 2 || data[1] != TypeString {
		return ""
	}
	end := int(data[0])
	if end > len(data) {
		end = len(data)
	}
	runes := make([]rune, 0, (end-2)/2)
	for i := 2; i+1 < end; i += 2 {
		runes = append(runes, rune(binary.LittleEndian.Uint16(data[i:])))
	}
	return string(runes)
}
