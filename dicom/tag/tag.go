// Package tag defines DICOM element tags, tag paths and the tag dictionary.
//
// A Tag represents a DICOM data element identifier as defined in the DICOM standard.
// See https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
// and https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
package tag

import (
	"fmt"
	"strings"

	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

const (
	// MetadataGroup is the group number for DICOM file meta information elements.
	// See https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
	MetadataGroup = 0x0002

	// DelimiterGroup is the group number shared by item and delimitation tags.
	// See https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
	DelimiterGroup = 0xFFFE
)

// Tag represents a DICOM element tag as a (group, element) pair.
// Tags uniquely identify elements within a DICOM dataset.
//
// According to the DICOM standard Part 5, Section 7.1:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
//   - Group numbers with an odd value are used for private elements
//   - Group 0x0002 is reserved for file meta information
//   - Tags are ordered by group, then element, compared as unsigned integers
//
// The unsigned comparison matters: private and delimiter tags have the high
// bit set and a signed comparison would misorder them.
type Tag struct {
	Group   uint16
	Element uint16
}

// New creates a new Tag with the specified group and element numbers.
func New(group, element uint16) Tag {
	return Tag{
		Group:   group,
		Element: element,
	}
}

// FromUint32 creates a Tag from its combined 32-bit value.
func FromUint32(v uint32) Tag {
	return Tag{
		Group:   uint16(v >> 16),
		Element: uint16(v),
	}
}

// Equals returns true if this tag equals the provided tag.
func (t Tag) Equals(other Tag) bool {
	return t.Group == other.Group && t.Element == other.Element
}

// Compare returns -1, 0, or 1 if t < other, t == other, or t > other,
// respectively, using unsigned 32-bit ordering.
func (t Tag) Compare(other Tag) int {
	if t.Equals(other) {
		return 0
	}
	if t.Uint32() < other.Uint32() {
		return -1
	}
	return 1
}

// String returns the tag in the standard "(GGGG,EEEE)" notation.
func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// Uint32 returns the tag as an uint32 value with the group number in the
// upper 16 bits. This representation is used for comparison and sorting.
func (t Tag) Uint32() uint32 {
	return (uint32(t.Group) << 16) | uint32(t.Element)
}

// IsPrivate returns true if this tag represents a private element.
// Private elements have an odd group number per DICOM Part 5, Section 7.8.1.
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// IsMetaElement returns true if this tag is part of the file meta
// information group (0x0002).
func (t Tag) IsMetaElement() bool {
	return t.Group == MetadataGroup
}

// IsGroupLength returns true for (gggg,0000) group length tags.
func (t Tag) IsGroupLength() bool {
	return t.Element == 0x0000
}

// IsDelimiter returns true for the item, item delimitation and sequence
// delimitation tags of group 0xFFFE.
func (t Tag) IsDelimiter() bool {
	return t.Group == DelimiterGroup
}

// Parse parses a tag string in the format "(GGGG,EEEE)" or "GGGG,EEEE"
// and returns the corresponding Tag.
func Parse(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Tag{}, fmt.Errorf("invalid tag format: %q, expected (GGGG,EEEE)", s)
	}

	var group, element uint16
	_, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%x", &group)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid group number: %w", err)
	}

	_, err = fmt.Sscanf(strings.TrimSpace(parts[1]), "%x", &element)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid element number: %w", err)
	}

	return New(group, element), nil
}

// Info stores detailed information about a Tag defined in the DICOM
// standard.
type Info struct {
	Tag Tag
	// List of all possible data encodings for this tag, e.g., "UL", "CS".
	// Empty for the item and delimitation tags, which carry no VR.
	VRs []vr.VR
	// Human-readable name of the tag, e.g., "Pixel Data"
	Name string
	// Identifier of the tag, e.g., "PixelData"
	Keyword string
	// Cardinality (# of values expected in the element)
	VM string
	// Whether the tag is retired.
	Retired bool
}

// Find returns information about the given tag from the DICOM standard dictionary.
// Returns an error if the tag is not found.
//
// Special case: for even-numbered groups with element 0x0000, returns a
// GenericGroupLength entry. (gggg,0000) is the group length for group gggg.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
func Find(t Tag) (Info, error) {
	info, ok := dict[t]
	if !ok {
		if t.Group%2 == 0 && t.Element == 0x0000 {
			return Info{
				Tag:     t,
				VRs:     []vr.VR{vr.UnsignedLong},
				Name:    "Generic Group Length",
				Keyword: "GenericGroupLength",
				VM:      "1",
				Retired: false,
			}, nil
		}
		return Info{}, fmt.Errorf("tag %s not found in dictionary", t.String())
	}
	return info, nil
}

// VRFor returns the standard VR for a tag, falling back to UN for tags not
// in the dictionary. Used when parsing implicit VR streams where the VR is
// not on the wire.
func VRFor(t Tag) vr.VR {
	info, err := Find(t)
	if err != nil || len(info.VRs) == 0 {
		return vr.Unknown
	}
	return info.VRs[0]
}

// FindByKeyword searches for a tag by its keyword or name field.
// Returns an error if no tag with the given keyword or name is found.
//
// Note: this performs a linear search through all tags.
func FindByKeyword(keyword string) (Info, error) {
	if keyword == "" {
		return Info{}, fmt.Errorf("keyword cannot be empty")
	}
	for _, info := range dict {
		if info.Keyword == keyword || info.Name == keyword {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("tag with keyword %q not found in dictionary", keyword)
}

// MustFind is like Find, but panics if the tag is not found.
// This should only be used for well-known tags that are guaranteed to exist.
func MustFind(t Tag) Info {
	info, err := Find(t)
	if err != nil {
		panic(fmt.Sprintf("tag %s not found: %v", t.String(), err))
	}
	return info
}
