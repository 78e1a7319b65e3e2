package dicom

import (
	"encoding/binary"

	"github.com/gitter-badger/dicom-streams/dicom/tag"
	"github.com/gitter-badger/dicom-streams/dicom/uid"
	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

// Byte-exact fixture builders for the streaming tests. All builders pad
// values to even length the way a conforming writer would.

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func evenPad(value []byte, pad byte) []byte {
	if len(value)%2 != 0 {
		return append(append([]byte{}, value...), pad)
	}
	return value
}

func preambleBytes() []byte {
	b := make([]byte, 128)
	return append(b, []byte(dicmPrefix)...)
}

// explicitLE encodes one element in explicit VR little endian.
func explicitLE(t tag.Tag, v vr.VR, value []byte) []byte {
	value = evenPad(value, v.PaddingByte())
	bo := binary.LittleEndian
	var b []byte
	code := v.Bytes()
	if v.UsesLongHeader() {
		b = make([]byte, 12)
		bo.PutUint16(b[0:2], t.Group)
		bo.PutUint16(b[2:4], t.Element)
		b[4], b[5] = code[0], code[1]
		bo.PutUint32(b[8:12], uint32(len(value)))
	} else {
		b = make([]byte, 8)
		bo.PutUint16(b[0:2], t.Group)
		bo.PutUint16(b[2:4], t.Element)
		b[4], b[5] = code[0], code[1]
		bo.PutUint16(b[6:8], uint16(len(value)))
	}
	return append(b, value...)
}

// explicitBE encodes one element in explicit VR big endian.
func explicitBE(t tag.Tag, v vr.VR, value []byte) []byte {
	value = evenPad(value, v.PaddingByte())
	bo := binary.BigEndian
	code := v.Bytes()
	b := make([]byte, 8)
	bo.PutUint16(b[0:2], t.Group)
	bo.PutUint16(b[2:4], t.Element)
	b[4], b[5] = code[0], code[1]
	bo.PutUint16(b[6:8], uint16(len(value)))
	return append(b, value...)
}

// implicitLE encodes one element in implicit VR little endian.
func implicitLE(t tag.Tag, value []byte) []byte {
	value = evenPad(value, 0x00)
	bo := binary.LittleEndian
	b := make([]byte, 8)
	bo.PutUint16(b[0:2], t.Group)
	bo.PutUint16(b[2:4], t.Element)
	bo.PutUint32(b[4:8], uint32(len(value)))
	return append(b, value...)
}

// sequenceUndefLE opens an explicit VR little endian sequence of undefined
// length.
func sequenceUndefLE(t tag.Tag) []byte {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint16(b[0:2], t.Group)
	binary.LittleEndian.PutUint16(b[2:4], t.Element)
	b[4], b[5] = 'S', 'Q'
	binary.LittleEndian.PutUint32(b[8:12], UndefinedLength)
	return b
}

// sequenceDefLE opens an explicit VR little endian sequence with the given
// content length.
func sequenceDefLE(t tag.Tag, length uint32) []byte {
	b := sequenceUndefLE(t)
	binary.LittleEndian.PutUint32(b[8:12], length)
	return b
}

func itemBytes(length uint32) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], tag.Item.Group)
	binary.LittleEndian.PutUint16(b[2:4], tag.Item.Element)
	binary.LittleEndian.PutUint32(b[4:8], length)
	return b
}

func itemDelimBytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], tag.ItemDelimitationItem.Group)
	binary.LittleEndian.PutUint16(b[2:4], tag.ItemDelimitationItem.Element)
	return b
}

func seqDelimBytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], tag.SequenceDelimitationItem.Group)
	binary.LittleEndian.PutUint16(b[2:4], tag.SequenceDelimitationItem.Element)
	return b
}

// pixelDataFragments opens encapsulated pixel data in explicit VR little
// endian.
func pixelDataFragments() []byte {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint16(b[0:2], tag.PixelData.Group)
	binary.LittleEndian.PutUint16(b[2:4], tag.PixelData.Element)
	b[4], b[5] = 'O', 'B'
	binary.LittleEndian.PutUint32(b[8:12], UndefinedLength)
	return b
}

// fmiBytes builds a complete file meta information group for the given
// transfer syntax, including the group length element.
func fmiBytes(tsUID string, extra ...[]byte) []byte {
	var group []byte
	for _, e := range extra {
		group = append(group, e...)
	}
	group = append(group, explicitLE(tag.TransferSyntaxUID, vr.UniqueIdentifier, []byte(tsUID))...)

	groupLength := make([]byte, 4)
	binary.LittleEndian.PutUint32(groupLength, uint32(len(group)))
	return append(explicitLE(tag.FileMetaInformationGroupLength, vr.UnsignedLong, groupLength), group...)
}

// fileBytes builds a complete Part 10 stream: preamble, file meta for the
// transfer syntax, then the dataset bytes.
func fileBytes(tsUID string, dataset ...[]byte) []byte {
	out := preambleBytes()
	out = append(out, fmiBytes(tsUID)...)
	for _, d := range dataset {
		out = append(out, d...)
	}
	return out
}

// Common dataset fixtures.

func studyDateEmpty() []byte {
	return explicitLE(tag.StudyDate, vr.Date, nil)
}

func studyDate(date string) []byte {
	return explicitLE(tag.StudyDate, vr.Date, []byte(date))
}

func patientName(name string) []byte {
	return explicitLE(tag.PatientName, vr.PersonName, []byte(name))
}

func sopClassCT() []byte {
	return explicitLE(tag.SOPClassUID, vr.UniqueIdentifier, []byte(uid.CTImageStorage.String()))
}

func mediaStorageSOPClassCT() []byte {
	return explicitLE(tag.MediaStorageSOPClassUID, vr.UniqueIdentifier, []byte(uid.CTImageStorage.String()))
}
