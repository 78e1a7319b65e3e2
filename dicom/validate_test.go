package dicom

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/dicom-streams/dicom/tag"
	"github.com/gitter-badger/dicom-streams/dicom/uid"
	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

// countingSource wraps a ChunkSource and counts upstream pulls.
type countingSource struct {
	src   ChunkSource
	pulls int
}

func (c *countingSource) NextChunk() ([]byte, error) {
	c.pulls++
	return c.src.NextChunk()
}

// drainChunks reads a chunk source to completion.
func drainChunks(src ChunkSource) ([]byte, error) {
	var out []byte
	for {
		chunk, err := src.NextChunk()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, chunk...)
	}
}

// ctFile builds a CT image file in explicit VR little endian with media
// storage SOP class in file meta. The dataset is padded past the gate's
// lookahead window so the whole file exceeds one small chunk.
func ctFile() []byte {
	out := preambleBytes()
	out = append(out, fmiBytes(uid.ExplicitVRLittleEndian.String(), mediaStorageSOPClassCT())...)
	out = append(out, studyDate("20240102")...)
	out = append(out, explicitLE(tag.PatientComments, vr.LongText, make([]byte, 600))...)
	return out
}

func TestValidate_MatchingContext(t *testing.T) {
	input := ctFile()
	stage, err := ValidateFlow(NewChunksSource(input), ValidationContext{
		SOPClassUID:       uid.CTImageStorage.String(),
		TransferSyntaxUID: uid.ExplicitVRLittleEndian.String(),
	})
	require.NoError(t, err)

	out, err := drainChunks(stage)
	require.NoError(t, err)
	assert.Equal(t, input, out, "accepted stream must pass through unchanged")
}

func TestValidate_NonMatchingContext(t *testing.T) {
	input := ctFile()
	counting := &countingSource{src: NewChunksSource(input)}
	stage, err := ValidateFlow(counting, ValidationContext{
		SOPClassUID:       uid.CTImageStorage.String(),
		TransferSyntaxUID: uid.ExplicitVRBigEndian.String(),
	})
	require.NoError(t, err)

	_, err = stage.NextChunk()
	assert.ErrorIs(t, err, ErrNoValidContext)
	// The whole file arrives in one chunk; the gate pulls it and cancels.
	assert.Equal(t, 1, counting.pulls)

	// The failure is sticky.
	_, err = stage.NextChunk()
	assert.ErrorIs(t, err, ErrNoValidContext)
}

func TestValidate_DrainIncoming(t *testing.T) {
	chunks := [][]byte{ctFile(), []byte("trailing"), []byte("chunks")}
	counting := &countingSource{src: NewChunksSource(chunks...)}
	stage, err := NewValidateStage(counting, ValidateConfig{
		Contexts: []ValidationContext{{
			SOPClassUID:       uid.CTImageStorage.String(),
			TransferSyntaxUID: uid.ExplicitVRBigEndian.String(),
		}},
		DrainIncoming: true,
	})
	require.NoError(t, err)

	_, err = stage.NextChunk()
	assert.ErrorIs(t, err, ErrNoValidContext)
	// All chunks plus the terminal EOF were pulled before the error.
	assert.Equal(t, len(chunks)+1, counting.pulls)
}

func TestValidate_NoContexts(t *testing.T) {
	t.Run("preamble accepted", func(t *testing.T) {
		input := fileBytes(uid.ExplicitVRLittleEndian.String(), studyDate("20240102"))
		stage, err := ValidateFlow(NewChunksSource(input))
		require.NoError(t, err)
		out, err := drainChunks(stage)
		require.NoError(t, err)
		assert.Equal(t, input, out)
	})

	t.Run("bare header accepted", func(t *testing.T) {
		input := studyDate("20240102")
		stage, err := ValidateFlow(NewChunksSource(input))
		require.NoError(t, err)
		out, err := drainChunks(stage)
		require.NoError(t, err)
		assert.Equal(t, input, out)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		stage, err := ValidateFlow(NewChunksSource([]byte("this is not a DICOM stream....")))
		require.NoError(t, err)
		_, err = stage.NextChunk()
		assert.ErrorIs(t, err, ErrPreambleCorrupt)
	})
}

func TestValidate_NoPreambleWithContexts(t *testing.T) {
	input := concatBytes(
		explicitLE(tag.InstanceCreatorUID, vr.UniqueIdentifier, []byte("1.2.3.4")),
		sopClassCT(),
		studyDate("20240102"),
	)
	stage, err := ValidateFlow(NewChunksSource(input), ValidationContext{
		SOPClassUID:       uid.CTImageStorage.String(),
		TransferSyntaxUID: uid.ExplicitVRLittleEndian.String(),
	})
	require.NoError(t, err)

	out, err := drainChunks(stage)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestValidate_NoPreambleMissingSOPClass(t *testing.T) {
	input := concatBytes(
		explicitLE(tag.InstanceCreatorUID, vr.UniqueIdentifier, []byte("1.2.3.4")),
		studyDate("20240102"), // jumps past SOPClassUID
	)
	stage, err := ValidateFlow(NewChunksSource(input), ValidationContext{
		SOPClassUID:       uid.CTImageStorage.String(),
		TransferSyntaxUID: uid.ExplicitVRLittleEndian.String(),
	})
	require.NoError(t, err)

	_, err = stage.NextChunk()
	assert.ErrorIs(t, err, ErrNoValidContext)
}

func TestValidate_OutOfOrderFmi(t *testing.T) {
	// Transfer syntax before media storage SOP class violates ordering.
	group := concatBytes(
		explicitLE(tag.TransferSyntaxUID, vr.UniqueIdentifier, []byte(uid.ExplicitVRLittleEndian.String())),
		mediaStorageSOPClassCT(),
	)
	groupLength := make([]byte, 4)
	byteOrder(false).PutUint32(groupLength, uint32(len(group)))
	input := concatBytes(
		preambleBytes(),
		explicitLE(tag.FileMetaInformationGroupLength, vr.UnsignedLong, groupLength),
		group,
	)

	stage, err := ValidateFlow(NewChunksSource(input), ValidationContext{
		SOPClassUID:       uid.CTImageStorage.String(),
		TransferSyntaxUID: uid.ExplicitVRLittleEndian.String(),
	})
	require.NoError(t, err)

	_, err = stage.NextChunk()
	assert.ErrorIs(t, err, ErrFmiOutOfOrder)
}
