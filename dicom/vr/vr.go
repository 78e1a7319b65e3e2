// Package vr defines DICOM Value Representations (VRs) and their wire properties.
//
// Value Representations specify the data type and encoding layout of DICOM
// element values. In Explicit VR transfer syntaxes the two-character VR code
// appears on the wire and selects between the short (8-byte) and long
// (12-byte) element header layouts.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
package vr

import (
	"fmt"
)

// VR represents a DICOM Value Representation. The value is the two ASCII
// code characters packed big-endian, so a VR converts to and from its
// on-the-wire form without a table lookup.
type VR uint16

// of packs a two-character VR code.
func of(code string) VR {
	return VR(uint16(code[0])<<8 | uint16(code[1]))
}

// Standard DICOM Value Representations as defined in Part 5, Section 6.2.
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// ApplicationEntity (AE) - Application Entity title (string, max 16 chars, space-padded)
	ApplicationEntity = of("AE")
	// AgeString (AS) - Age in format nnnW, nnnM, nnnY (string, fixed 4 chars)
	AgeString = of("AS")
	// AttributeTag (AT) - Tag (4 bytes, group-element pair)
	AttributeTag = of("AT")
	// CodeString (CS) - Code value (string, max 16 chars, uppercase)
	CodeString = of("CS")
	// Date (DA) - Date in format YYYYMMDD (string, 8 chars)
	Date = of("DA")
	// DecimalString (DS) - Decimal number as string (max 16 chars)
	DecimalString = of("DS")
	// DateTime (DT) - Date and time (string, max 26 chars)
	DateTime = of("DT")
	// FloatingPointDouble (FD) - 64-bit floating point (8 bytes)
	FloatingPointDouble = of("FD")
	// FloatingPointSingle (FL) - 32-bit floating point (4 bytes)
	FloatingPointSingle = of("FL")
	// IntegerString (IS) - Integer as string (max 12 chars)
	IntegerString = of("IS")
	// LongString (LO) - Character string (max 64 chars)
	LongString = of("LO")
	// LongText (LT) - Text (max 10240 chars)
	LongText = of("LT")
	// OtherByte (OB) - Byte string (binary, null-padded)
	OtherByte = of("OB")
	// OtherDouble (OD) - 64-bit floating point array
	OtherDouble = of("OD")
	// OtherFloat (OF) - 32-bit floating point array
	OtherFloat = of("OF")
	// OtherLong (OL) - 32-bit integer array
	OtherLong = of("OL")
	// OtherVeryLong (OV) - 64-bit integer array
	OtherVeryLong = of("OV")
	// OtherWord (OW) - 16-bit integer array
	OtherWord = of("OW")
	// PersonName (PN) - Person's name in component group form (max 324 chars)
	PersonName = of("PN")
	// ShortString (SH) - Short character string (max 16 chars)
	ShortString = of("SH")
	// SignedLong (SL) - Signed 32-bit integer (4 bytes)
	SignedLong = of("SL")
	// SequenceOfItems (SQ) - Sequence containing nested datasets
	SequenceOfItems = of("SQ")
	// SignedShort (SS) - Signed 16-bit integer (2 bytes)
	SignedShort = of("SS")
	// ShortText (ST) - Short text (max 1024 chars)
	ShortText = of("ST")
	// SignedVeryLong (SV) - Signed 64-bit integer (8 bytes)
	SignedVeryLong = of("SV")
	// Time (TM) - Time in format HHMMSS.FFFFFF (max 14 chars)
	Time = of("TM")
	// UnlimitedCharacters (UC) - Unlimited length character string
	UnlimitedCharacters = of("UC")
	// UniqueIdentifier (UI) - UID in dotted notation (max 64 chars, null-padded)
	UniqueIdentifier = of("UI")
	// UnsignedLong (UL) - Unsigned 32-bit integer (4 bytes)
	UnsignedLong = of("UL")
	// Unknown (UN) - Unknown value type (binary, null-padded)
	Unknown = of("UN")
	// UniversalResourceIdentifier (UR) - URI or URL (unlimited)
	UniversalResourceIdentifier = of("UR")
	// UnsignedShort (US) - Unsigned 16-bit integer (2 bytes)
	UnsignedShort = of("US")
	// UnlimitedText (UT) - Unlimited length text
	UnlimitedText = of("UT")
	// UnsignedVeryLong (UV) - Unsigned 64-bit integer (8 bytes)
	UnsignedVeryLong = of("UV")
)

// all enumerates every VR defined in the current standard. Used to validate
// codes read off the wire.
var all = map[VR]struct{}{
	ApplicationEntity: {}, AgeString: {}, AttributeTag: {}, CodeString: {},
	Date: {}, DecimalString: {}, DateTime: {}, FloatingPointDouble: {},
	FloatingPointSingle: {}, IntegerString: {}, LongString: {}, LongText: {},
	OtherByte: {}, OtherDouble: {}, OtherFloat: {}, OtherLong: {},
	OtherVeryLong: {}, OtherWord: {}, PersonName: {}, ShortString: {},
	SignedLong: {}, SequenceOfItems: {}, SignedShort: {}, ShortText: {},
	SignedVeryLong: {}, Time: {}, UnlimitedCharacters: {}, UniqueIdentifier: {},
	UnsignedLong: {}, Unknown: {}, UniversalResourceIdentifier: {}, UnsignedShort: {},
	UnlimitedText: {}, UnsignedVeryLong: {},
}

// String returns the two-character code of the VR.
func (v VR) String() string {
	return string([]byte{byte(v >> 8), byte(v)})
}

// Bytes returns the VR code as it appears on the wire in explicit VR
// encodings.
func (v VR) Bytes() [2]byte {
	return [2]byte{byte(v >> 8), byte(v)}
}

// IsValid returns true if the given two-character string is a defined VR code.
func IsValid(s string) bool {
	if len(s) != 2 {
		return false
	}
	_, ok := all[of(s)]
	return ok
}

// Parse parses a two-character VR code and returns the corresponding VR.
func Parse(s string) (VR, error) {
	if !IsValid(s) {
		return 0, fmt.Errorf("invalid VR: %q", s)
	}
	return of(s), nil
}

// FromBytes parses the two VR bytes of an explicit VR element header.
func FromBytes(b0, b1 byte) (VR, error) {
	v := VR(uint16(b0)<<8 | uint16(b1))
	if _, ok := all[v]; !ok {
		return 0, fmt.Errorf("invalid VR: %q", string([]byte{b0, b1}))
	}
	return v, nil
}

// UsesLongHeader returns true if this VR uses the 12-byte explicit element
// header layout: 2-byte VR code, 2 reserved bytes, then a 32-bit length.
// All other VRs use the 8-byte layout with a 16-bit length.
//
// See DICOM Part 5, Section 7.1.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (v VR) UsesLongHeader() bool {
	switch v {
	case OtherByte, OtherDouble, OtherFloat, OtherLong, OtherVeryLong, OtherWord,
		SequenceOfItems, UnlimitedCharacters, Unknown, UniversalResourceIdentifier, UnlimitedText:
		return true
	default:
		return false
	}
}

// HeaderLength returns the element header size in bytes for this VR under
// the given encoding: 8 for implicit VR, 8 or 12 for explicit VR depending
// on the length-field layout.
func (v VR) HeaderLength(explicitVR bool) int {
	if explicitVR && v.UsesLongHeader() {
		return 12
	}
	return 8
}

// PaddingByte returns the byte used to pad odd-length values for this VR.
// String VRs pad with space, binary VRs and UIDs with null.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
func (v VR) PaddingByte() byte {
	switch v {
	case UniqueIdentifier, OtherByte, OtherDouble, OtherFloat, OtherLong, OtherVeryLong, OtherWord, Unknown:
		return 0x00
	default:
		return ' '
	}
}

// IsStringType returns true if this VR carries character string data that
// must be decoded through the active specific character sets.
func (v VR) IsStringType() bool {
	switch v {
	case ApplicationEntity, AgeString, CodeString, Date, DecimalString, DateTime,
		IntegerString, LongString, LongText, PersonName, ShortString, ShortText,
		Time, UnlimitedCharacters, UniqueIdentifier, UniversalResourceIdentifier, UnlimitedText:
		return true
	default:
		return false
	}
}

// IsBinaryType returns true if this VR carries opaque binary data.
func (v VR) IsBinaryType() bool {
	switch v {
	case OtherByte, OtherDouble, OtherFloat, OtherLong, OtherVeryLong, OtherWord, Unknown:
		return true
	default:
		return false
	}
}
