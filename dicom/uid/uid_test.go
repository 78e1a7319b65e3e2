package uid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/dicom-streams/dicom/uid"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"transfer syntax", "1.2.840.10008.1.2.1", true},
		{"minimal", "1.2", true},
		{"zero component", "1.0.2", true},
		{"empty", "", false},
		{"single component", "12840", false},
		{"leading period", ".1.2", false},
		{"trailing period", "1.2.", false},
		{"consecutive periods", "1..2", false},
		{"leading zero", "1.02", false},
		{"non-numeric", "1.2.a", false},
		{"too long", "1." + strings.Repeat("2", 64), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, uid.IsValid(tc.input))
		})
	}
}

func TestParse(t *testing.T) {
	u, err := uid.Parse("1.2.840.10008.1.2")
	require.NoError(t, err)
	assert.Equal(t, "1.2.840.10008.1.2", u.String())
	assert.True(t, u.Equals(uid.ImplicitVRLittleEndian))

	_, err = uid.Parse("not-a-uid")
	assert.Error(t, err)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { uid.MustParse("bad") })
}

func TestLookup(t *testing.T) {
	info, ok := uid.Lookup("1.2.840.10008.1.2.1")
	require.True(t, ok)
	assert.Equal(t, "Explicit VR Little Endian", info.Name)
	assert.Equal(t, uid.TypeTransferSyntax, info.Type)

	_, ok = uid.Lookup("1.2.3.4")
	assert.False(t, ok)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, uid.IsTransferSyntax(uid.ExplicitVRLittleEndian.String()))
	assert.False(t, uid.IsTransferSyntax(uid.CTImageStorage.String()))
	assert.True(t, uid.IsSOPClass(uid.CTImageStorage.String()))
	assert.False(t, uid.IsSOPClass(uid.ExplicitVRLittleEndian.String()))
}

func TestName(t *testing.T) {
	assert.Equal(t, "CT Image Storage", uid.Name(uid.CTImageStorage.String()))
	assert.Equal(t, "", uid.Name("1.2.3.4"))
}

func TestRetired(t *testing.T) {
	info, ok := uid.Lookup(uid.ExplicitVRBigEndian.String())
	require.True(t, ok)
	assert.True(t, info.Retired)
}
