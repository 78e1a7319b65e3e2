package vr_test

import (
	"testing"

	"github.com/gitter-badger/dicom-streams/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVR_String(t *testing.T) {
	tests := []struct {
		name     string
		vr       vr.VR
		expected string
	}{
		{"Application Entity", vr.ApplicationEntity, "AE"},
		{"Date", vr.Date, "DA"},
		{"Person Name", vr.PersonName, "PN"},
		{"Unique Identifier", vr.UniqueIdentifier, "UI"},
		{"Other Byte", vr.OtherByte, "OB"},
		{"Sequence", vr.SequenceOfItems, "SQ"},
		{"Unknown", vr.Unknown, "UN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.vr.String())
		})
	}
}

func TestVR_Bytes_RoundTrip(t *testing.T) {
	for _, v := range []vr.VR{vr.PersonName, vr.OtherWord, vr.UnlimitedText} {
		b := v.Bytes()
		parsed, err := vr.FromBytes(b[0], b[1])
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestVR_FromBytes_Invalid(t *testing.T) {
	_, err := vr.FromBytes('Z', 'Z')
	assert.Error(t, err)
}

func TestVR_Parse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  vr.VR
		expectErr bool
	}{
		{"valid PN", "PN", vr.PersonName, false},
		{"valid SQ", "SQ", vr.SequenceOfItems, false},
		{"invalid XX", "XX", 0, true},
		{"too short", "P", 0, true},
		{"too long", "PNX", 0, true},
		{"lowercase", "pn", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vr.Parse(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestVR_UsesLongHeader(t *testing.T) {
	long := []vr.VR{
		vr.OtherByte, vr.OtherDouble, vr.OtherFloat, vr.OtherLong, vr.OtherVeryLong,
		vr.OtherWord, vr.SequenceOfItems, vr.UnlimitedCharacters, vr.Unknown,
		vr.UniversalResourceIdentifier, vr.UnlimitedText,
	}
	for _, v := range long {
		assert.True(t, v.UsesLongHeader(), "%s should use the 12-byte header", v)
		assert.Equal(t, 12, v.HeaderLength(true))
		assert.Equal(t, 8, v.HeaderLength(false))
	}

	short := []vr.VR{vr.PersonName, vr.Date, vr.UniqueIdentifier, vr.UnsignedLong, vr.CodeString}
	for _, v := range short {
		assert.False(t, v.UsesLongHeader(), "%s should use the 8-byte header", v)
		assert.Equal(t, 8, v.HeaderLength(true))
		assert.Equal(t, 8, v.HeaderLength(false))
	}
}

func TestVR_PaddingByte(t *testing.T) {
	assert.Equal(t, byte(0x00), vr.UniqueIdentifier.PaddingByte())
	assert.Equal(t, byte(0x00), vr.OtherByte.PaddingByte())
	assert.Equal(t, byte(' '), vr.PersonName.PaddingByte())
	assert.Equal(t, byte(' '), vr.CodeString.PaddingByte())
}

func TestVR_TypePredicates(t *testing.T) {
	assert.True(t, vr.PersonName.IsStringType())
	assert.True(t, vr.UniqueIdentifier.IsStringType())
	assert.False(t, vr.OtherByte.IsStringType())
	assert.True(t, vr.OtherByte.IsBinaryType())
	assert.True(t, vr.Unknown.IsBinaryType())
	assert.False(t, vr.SequenceOfItems.IsBinaryType())
}
