package dicom

import (
	"fmt"
	"strings"

	"github.com/gitter-badger/dicom-streams/dicom/charset"
	"github.com/gitter-badger/dicom-streams/dicom/tag"
	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

// Element is a fully buffered data element harvested by the collect stage:
// the header fields plus the complete value bytes, with the encoding they
// were read under.
type Element struct {
	Tag        tag.Tag
	VR         vr.VR
	Length     uint32
	BigEndian  bool
	ExplicitVR bool

	value []byte
}

// NewElement creates an element from its parts.
func NewElement(t tag.Tag, v vr.VR, value []byte, bigEndian, explicitVR bool) *Element {
	return &Element{
		Tag:        t,
		VR:         v,
		Length:     uint32(len(value)),
		BigEndian:  bigEndian,
		ExplicitVR: explicitVR,
		value:      value,
	}
}

// Value returns the raw value bytes including any padding.
func (e *Element) Value() []byte {
	return e.value
}

// StringValue decodes the value through the given character sets for string
// VRs, trimming trailing padding. Non-string VRs decode as raw bytes.
func (e *Element) StringValue(cs charset.CharacterSets) string {
	if !e.VR.IsStringType() {
		return string(e.value)
	}
	return strings.TrimRight(cs.Decode(e.value), "\x00 ")
}

// StringValues splits a decoded string value on the backslash value
// separator.
func (e *Element) StringValues(cs charset.CharacterSets) []string {
	s := e.StringValue(cs)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\\")
}

func (e *Element) String() string {
	return fmt.Sprintf("%s %s length=%d", e.Tag, e.VR, e.Length)
}
