package dicom

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/dicom-streams/dicom/tag"
)

func TestPathTracker_RootElements(t *testing.T) {
	input := concatBytes(studyDate("20240102"), patientName("John^Doe"))
	parser := ParseFlow(bytes.NewReader(input))

	var tracker PathTracker
	var paths []string
	for {
		part, err := parser.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		tracker.Update(part)
		if _, ok := part.(HeaderPart); ok {
			paths = append(paths, tracker.Path().String())
		}
	}
	assert.Equal(t, []string{"(0008,0020)", "(0010,0010)"}, paths)
}

func TestPathTracker_SequenceItems(t *testing.T) {
	input := concatBytes(
		sequenceUndefLE(tag.DerivationCodeSequence),
		itemBytes(UndefinedLength),
		studyDate("20240102"),
		itemDelimBytes(),
		itemBytes(UndefinedLength),
		patientName("John^Doe"),
		itemDelimBytes(),
		seqDelimBytes(),
		studyDate("20240102"),
	)
	parser := ParseFlow(bytes.NewReader(input))

	var tracker PathTracker
	var headerPaths []string
	for {
		part, err := parser.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		tracker.Update(part)
		if _, ok := part.(HeaderPart); ok {
			headerPaths = append(headerPaths, tracker.Path().String())
		}
	}
	assert.Equal(t, []string{
		"(0008,9215)[1].(0008,0020)",
		"(0008,9215)[2].(0010,0010)",
		"(0008,0020)",
	}, headerPaths)
}

func TestPathTracker_DepthAndRoot(t *testing.T) {
	var tracker PathTracker
	assert.True(t, tracker.AtRoot())
	assert.Equal(t, 0, tracker.Depth())

	tracker.Update(SequencePart{Tag: tag.DerivationCodeSequence})
	assert.Equal(t, 1, tracker.Depth())
	tracker.Update(ItemPart{Index: 1})
	assert.False(t, tracker.AtRoot())
	tracker.Update(SequenceDelimitationPart{})
	assert.True(t, tracker.AtRoot())
}
