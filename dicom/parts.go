package dicom

import (
	"encoding/binary"
	"fmt"

	"github.com/gitter-badger/dicom-streams/dicom/charset"
	"github.com/gitter-badger/dicom-streams/dicom/tag"
	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

// UndefinedLength is the length value marking sequences, items and
// encapsulated pixel data whose extent is given by delimitation items
// instead of a byte count.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
const UndefinedLength uint32 = 0xFFFFFFFF

// Part is one unit of a parsed DICOM stream. Every part carries its exact
// on-the-wire serialization: concatenating Bytes() over all parts of a
// stream reproduces the input byte for byte.
//
// The set of implementations is closed; consumers dispatch with a type
// switch.
type Part interface {
	// Bytes returns the part's exact on-the-wire serialization. Marker
	// parts, synthesized to close defined-length scopes, return nil.
	Bytes() []byte
	// BigEndian reports the byte order of the scope the part was read in.
	BigEndian() bool

	isPart()
}

// byteOrder returns the binary.ByteOrder for an endianness flag.
func byteOrder(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// PreamblePart is the 128-byte preamble plus the "DICM" prefix.
type PreamblePart struct {
	bytes []byte
}

func (p PreamblePart) Bytes() []byte   { return p.bytes }
func (p PreamblePart) BigEndian() bool { return false }
func (p PreamblePart) isPart()         {}

// HeaderPart is the header of a data element carrying a value. The value
// bytes follow as one or more ValueChunkParts.
type HeaderPart struct {
	Tag        tag.Tag
	VR         vr.VR
	Length     uint32
	IsFMI      bool
	bigEndian  bool
	explicitVR bool
	bytes      []byte
}

// NewHeaderPart builds a header with its wire serialization under the given
// encoding. Used by the modify stage to synthesize inserted elements.
func NewHeaderPart(t tag.Tag, v vr.VR, length uint32, isFMI, bigEndian, explicitVR bool) HeaderPart {
	bo := byteOrder(bigEndian)
	var b []byte
	switch {
	case !explicitVR:
		b = make([]byte, 8)
		bo.PutUint16(b[0:2], t.Group)
		bo.PutUint16(b[2:4], t.Element)
		bo.PutUint32(b[4:8], length)
	case v.UsesLongHeader():
		b = make([]byte, 12)
		bo.PutUint16(b[0:2], t.Group)
		bo.PutUint16(b[2:4], t.Element)
		code := v.Bytes()
		b[4], b[5] = code[0], code[1]
		bo.PutUint32(b[8:12], length)
	default:
		b = make([]byte, 8)
		bo.PutUint16(b[0:2], t.Group)
		bo.PutUint16(b[2:4], t.Element)
		code := v.Bytes()
		b[4], b[5] = code[0], code[1]
		bo.PutUint16(b[6:8], uint16(length))
	}
	return HeaderPart{
		Tag:        t,
		VR:         v,
		Length:     length,
		IsFMI:      isFMI,
		bigEndian:  bigEndian,
		explicitVR: explicitVR,
		bytes:      b,
	}
}

func (p HeaderPart) Bytes() []byte   { return p.bytes }
func (p HeaderPart) BigEndian() bool { return p.bigEndian }
func (p HeaderPart) isPart()         {}

// ExplicitVR reports whether the header was encoded with an explicit VR.
func (p HeaderPart) ExplicitVR() bool { return p.explicitVR }

// WithUpdatedLength returns a copy of the header whose length field, both
// the decoded Length and the wire bytes, is set to n. The 8- vs 12-byte
// layout and the byte order of the original header are preserved.
func (p HeaderPart) WithUpdatedLength(n uint32) HeaderPart {
	b := make([]byte, len(p.bytes))
	copy(b, p.bytes)
	bo := byteOrder(p.bigEndian)
	switch {
	case !p.explicitVR:
		bo.PutUint32(b[4:8], n)
	case len(b) == 12:
		bo.PutUint32(b[8:12], n)
	default:
		bo.PutUint16(b[6:8], uint16(n))
	}
	updated := p
	updated.Length = n
	updated.bytes = b
	return updated
}

func (p HeaderPart) String() string {
	return fmt.Sprintf("HeaderPart %s %s length=%d", p.Tag, p.VR, p.Length)
}

// ValueChunkPart is a slice of an element value. Large values arrive as
// several chunks; Last marks the final chunk of the current value.
type ValueChunkPart struct {
	Last      bool
	bigEndian bool
	bytes     []byte
}

func (p ValueChunkPart) Bytes() []byte   { return p.bytes }
func (p ValueChunkPart) BigEndian() bool { return p.bigEndian }
func (p ValueChunkPart) isPart()         {}

// SequencePart is the header of a sequence (SQ) element.
type SequencePart struct {
	Tag        tag.Tag
	Length     uint32
	bigEndian  bool
	explicitVR bool
	bytes      []byte
}

func (p SequencePart) Bytes() []byte   { return p.bytes }
func (p SequencePart) BigEndian() bool { return p.bigEndian }
func (p SequencePart) isPart()         {}

// ExplicitVR reports whether the sequence header was encoded with an
// explicit VR.
func (p SequencePart) ExplicitVR() bool { return p.explicitVR }

// HasDefinedLength reports whether the sequence closes implicitly after
// Length bytes rather than by a delimitation item.
func (p SequencePart) HasDefinedLength() bool { return p.Length != UndefinedLength }

// SequenceDelimitationPart terminates an undefined-length sequence or an
// encapsulated pixel data stream. The parser also emits zero-byte marker
// delimitations when a defined-length sequence ends, so downstream stages
// see a uniform close event.
type SequenceDelimitationPart struct {
	bigEndian bool
	bytes     []byte
}

func (p SequenceDelimitationPart) Bytes() []byte   { return p.bytes }
func (p SequenceDelimitationPart) BigEndian() bool { return p.bigEndian }
func (p SequenceDelimitationPart) isPart()         {}

// IsMarker reports whether this delimitation was synthesized to close a
// defined-length sequence and occupies no bytes on the wire.
func (p SequenceDelimitationPart) IsMarker() bool { return len(p.bytes) == 0 }

// ItemPart opens an item within a sequence or a fragment within
// encapsulated pixel data. Indices are 1-based and strictly increasing
// within their sequence.
type ItemPart struct {
	Index     int
	Length    uint32
	bigEndian bool
	bytes     []byte
}

func (p ItemPart) Bytes() []byte   { return p.bytes }
func (p ItemPart) BigEndian() bool { return p.bigEndian }
func (p ItemPart) isPart()         {}

// HasDefinedLength reports whether the item closes implicitly after Length
// bytes rather than by an item delimitation.
func (p ItemPart) HasDefinedLength() bool { return p.Length != UndefinedLength }

// ItemDelimitationPart terminates an undefined-length item, or marks the
// implicit end of a defined-length item (zero-byte marker).
type ItemDelimitationPart struct {
	Index     int
	bigEndian bool
	bytes     []byte
}

func (p ItemDelimitationPart) Bytes() []byte   { return p.bytes }
func (p ItemDelimitationPart) BigEndian() bool { return p.bigEndian }
func (p ItemDelimitationPart) isPart()         {}

// IsMarker reports whether this delimitation was synthesized to close a
// defined-length item and occupies no bytes on the wire.
func (p ItemDelimitationPart) IsMarker() bool { return len(p.bytes) == 0 }

// FragmentsPart opens an encapsulated pixel data element. The fragments
// follow as ItemParts whose content arrives in ValueChunkParts, closed by a
// SequenceDelimitationPart.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
type FragmentsPart struct {
	Tag        tag.Tag
	VR         vr.VR
	bigEndian  bool
	explicitVR bool
	bytes      []byte
}

func (p FragmentsPart) Bytes() []byte    { return p.bytes }
func (p FragmentsPart) BigEndian() bool  { return p.bigEndian }
func (p FragmentsPart) ExplicitVR() bool { return p.explicitVR }
func (p FragmentsPart) isPart()          {}

// DeflatedChunkPart carries raw bytes following a deflated transfer syntax
// boundary when the parser is configured not to inflate.
type DeflatedChunkPart struct {
	bigEndian bool
	bytes     []byte
}

func (p DeflatedChunkPart) Bytes() []byte   { return p.bytes }
func (p DeflatedChunkPart) BigEndian() bool { return p.bigEndian }
func (p DeflatedChunkPart) isPart()         {}

// UnknownPart carries uninterpretable but framed data. It is the parser's
// only soft-recovery path: the stream continues after it.
type UnknownPart struct {
	bigEndian bool
	bytes     []byte
}

func (p UnknownPart) Bytes() []byte   { return p.bytes }
func (p UnknownPart) BigEndian() bool { return p.bigEndian }
func (p UnknownPart) isPart()         {}

// ElementsPart is the composite part emitted by the collect stage: the
// harvested elements together with the character sets in effect when they
// were read. It occupies no bytes on the wire; the buffered originals follow
// it unchanged.
type ElementsPart struct {
	Label         string
	CharacterSets charset.CharacterSets
	Elements      []*Element
}

func (p ElementsPart) Bytes() []byte   { return nil }
func (p ElementsPart) BigEndian() bool { return false }
func (p ElementsPart) isPart()         {}

// Element returns the first collected element with the given tag, or nil.
func (p ElementsPart) Element(t tag.Tag) *Element {
	for _, e := range p.Elements {
		if e.Tag.Equals(t) {
			return e
		}
	}
	return nil
}
