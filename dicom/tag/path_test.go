package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitter-badger/dicom-streams/dicom/tag"
)

func TestPath_Building(t *testing.T) {
	p := tag.NewItemPath(tag.DerivationCodeSequence, 2).Then(tag.StudyDate)
	assert.Equal(t, 2, p.Depth())
	assert.Equal(t, tag.StudyDate, p.Tag())
	assert.Equal(t, tag.DerivationCodeSequence, p.Head().Tag)
	assert.Equal(t, "(0008,9215)[2].(0008,0020)", p.String())

	assert.Equal(t, "(0008,9215)[*]", tag.NewItemPath(tag.DerivationCodeSequence, tag.Wildcard).String())
	assert.Equal(t, "<root>", tag.EmptyPath.String())
}

func TestPath_Equal(t *testing.T) {
	a := tag.NewItemPath(tag.DerivationCodeSequence, 1).Then(tag.StudyDate)
	b := tag.NewItemPath(tag.DerivationCodeSequence, 1).Then(tag.StudyDate)
	c := tag.NewItemPath(tag.DerivationCodeSequence, 2).Then(tag.StudyDate)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(tag.NewPath(tag.StudyDate)))
}

func TestPath_Less_StreamOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b tag.Path
	}{
		{
			"root tags by unsigned value",
			tag.NewPath(tag.StudyDate),
			tag.NewPath(tag.PatientName),
		},
		{
			"high bit tag orders last",
			tag.NewPath(tag.PixelData),
			tag.NewPath(tag.New(0xFFFF, 0xFFFF)),
		},
		{
			"item index breaks ties",
			tag.NewItemPath(tag.DerivationCodeSequence, 1),
			tag.NewItemPath(tag.DerivationCodeSequence, 2),
		},
		{
			"prefix orders before extension",
			tag.NewItemPath(tag.DerivationCodeSequence, 1),
			tag.NewItemPath(tag.DerivationCodeSequence, 1).Then(tag.StudyDate),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.a.Less(tc.b))
			assert.False(t, tc.b.Less(tc.a))
		})
	}
}

func TestPath_StartsWith(t *testing.T) {
	p := tag.NewItemPath(tag.DerivationCodeSequence, 3).Then(tag.StudyDate)

	assert.True(t, p.StartsWith(tag.NewItemPath(tag.DerivationCodeSequence, 3)))
	assert.False(t, p.StartsWith(tag.NewItemPath(tag.DerivationCodeSequence, 1)))
	// Wildcard in the prefix matches any item.
	assert.True(t, p.StartsWith(tag.NewItemPath(tag.DerivationCodeSequence, tag.Wildcard)))
	assert.True(t, p.StartsWith(tag.EmptyPath))
	assert.False(t, p.StartsWith(tag.NewPath(tag.StudyDate)))
}

func TestPath_StartsWithSuperPath(t *testing.T) {
	p := tag.NewItemPath(tag.DerivationCodeSequence, 3).Then(tag.StudyDate)

	// Item indices are ignored entirely.
	assert.True(t, p.StartsWithSuperPath(tag.NewItemPath(tag.DerivationCodeSequence, 1)))
	assert.True(t, p.StartsWithSuperPath(tag.NewItemPath(tag.DerivationCodeSequence, 1).Then(tag.StudyDate)))
	assert.False(t, p.StartsWithSuperPath(tag.NewPath(tag.DerivationCodeSequence)))
}

func TestPath_EndsWith(t *testing.T) {
	p := tag.NewItemPath(tag.DerivationCodeSequence, 3).Then(tag.StudyDate)

	assert.True(t, p.EndsWith(tag.NewPath(tag.StudyDate)))
	assert.True(t, p.EndsWith(tag.NewItemPath(tag.DerivationCodeSequence, tag.Wildcard).Then(tag.StudyDate)))
	assert.False(t, p.EndsWith(tag.NewPath(tag.PatientName)))
	assert.False(t, tag.NewPath(tag.StudyDate).EndsWith(p))
}

func TestPath_Matches(t *testing.T) {
	p := tag.NewItemPath(tag.DerivationCodeSequence, 3).Then(tag.StudyDate)

	assert.True(t, p.Matches(tag.NewItemPath(tag.DerivationCodeSequence, tag.Wildcard).Then(tag.StudyDate)))
	assert.True(t, p.Matches(tag.NewItemPath(tag.DerivationCodeSequence, 3).Then(tag.StudyDate)))
	assert.False(t, p.Matches(tag.NewItemPath(tag.DerivationCodeSequence, 2).Then(tag.StudyDate)))
	assert.False(t, p.Matches(tag.NewPath(tag.StudyDate)))
}

func TestPath_Parent(t *testing.T) {
	p := tag.NewItemPath(tag.DerivationCodeSequence, 3).Then(tag.StudyDate)
	assert.True(t, p.Parent().Equal(tag.NewItemPath(tag.DerivationCodeSequence, 3)))
	assert.True(t, tag.NewPath(tag.StudyDate).Parent().IsEmpty())
	assert.True(t, tag.EmptyPath.Parent().IsEmpty())
}
