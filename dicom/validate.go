package dicom

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/gitter-badger/dicom-streams/dicom/tag"
	"github.com/gitter-badger/dicom-streams/dicom/uid"
	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

// validateLookahead bounds the bytes the gate inspects. The standard
// guarantees file meta information fits well within this window.
const validateLookahead = 512

// ValidateStage is a bounded-lookahead gate over a byte-chunk stream. It
// pulls whole upstream chunks until at least 512 bytes are buffered (the
// held bytes may exceed that by up to one chunk), inspects the first 512,
// checks the stream's identity against the
// configured transmission contexts, and then either flushes the buffered
// bytes downstream unchanged or fails the pipeline.
//
// With no contexts configured, only the stream signature is checked: a
// valid preamble or a parseable first element header.
type ValidateStage struct {
	up      ChunkSource
	cfg     ValidateConfig
	started bool
	queue   [][]byte
	failed  error
}

// NewValidateStage creates a ValidateStage over upstream chunks.
func NewValidateStage(up ChunkSource, cfg ValidateConfig) (*ValidateStage, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &ValidateStage{up: up, cfg: cfg}, nil
}

// ValidateFlow wires a ValidateStage accepting the given contexts.
func ValidateFlow(up ChunkSource, contexts ...ValidationContext) (*ValidateStage, error) {
	return NewValidateStage(up, ValidateConfig{Contexts: contexts})
}

// NextChunk returns the next chunk of the validated stream. The first call
// performs the lookahead; on validation failure the stage emits nothing and
// returns the error, draining upstream first when DrainIncoming is set.
func (v *ValidateStage) NextChunk() ([]byte, error) {
	if v.failed != nil {
		return nil, v.failed
	}
	if !v.started {
		v.started = true
		if err := v.lookahead(); err != nil {
			v.failed = err
			if v.cfg.DrainIncoming {
				v.drain()
			}
			v.queue = nil
			return nil, v.failed
		}
	}
	if len(v.queue) > 0 {
		chunk := v.queue[0]
		v.queue = v.queue[1:]
		return chunk, nil
	}
	return v.up.NextChunk()
}

// lookahead buffers the gate window and validates it.
func (v *ValidateStage) lookahead() error {
	total := 0
	for total < validateLookahead {
		chunk, err := v.up.NextChunk()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		v.queue = append(v.queue, chunk)
		total += len(chunk)
	}
	buf := make([]byte, 0, total)
	for _, chunk := range v.queue {
		buf = append(buf, chunk...)
	}
	if len(buf) > validateLookahead {
		buf = buf[:validateLookahead]
	}
	if len(v.cfg.Contexts) == 0 {
		return validateSignature(buf)
	}
	return v.validateContexts(buf)
}

// drain consumes upstream to completion, discarding everything. Used when
// the producer cannot tolerate abrupt cancellation.
func (v *ValidateStage) drain() {
	for {
		if _, err := v.up.NextChunk(); err != nil {
			return
		}
	}
}

// validateSignature accepts a stream that begins with a valid preamble or a
// parseable first element header.
func validateSignature(buf []byte) error {
	if hasPreamble(buf) {
		return nil
	}
	if len(buf) < 8 {
		return fmt.Errorf("%w: %d bytes is too short", ErrPreambleCorrupt, len(buf))
	}
	if vr.IsValid(string(buf[4:6])) {
		return nil
	}
	t := tag.New(binary.LittleEndian.Uint16(buf[0:2]), binary.LittleEndian.Uint16(buf[2:4]))
	if _, err := tag.Find(t); err == nil {
		// Plausible implicit VR header.
		return nil
	}
	return fmt.Errorf("%w: first bytes form no element header", ErrPreambleCorrupt)
}

func hasPreamble(buf []byte) bool {
	return len(buf) >= preambleLength && string(buf[128:132]) == dicmPrefix
}

// validateContexts extracts the stream's (SOP Class UID, Transfer Syntax
// UID) pair from the lookahead window and matches it against the configured
// contexts.
func (v *ValidateStage) validateContexts(buf []byte) error {
	var sopClass, transferSyntax string
	if hasPreamble(buf) {
		var err error
		sopClass, transferSyntax, err = scanFmi(buf[preambleLength:])
		if err != nil {
			return err
		}
	} else {
		// A bare dataset leads with its small identifying elements in
		// ascending order; pair the SOP class with the default encoding.
		var err error
		sopClass, err = scanLeadingDataset(buf)
		if err != nil {
			return err
		}
		transferSyntax = uid.ExplicitVRLittleEndian.String()
	}
	if sopClass == "" {
		return fmt.Errorf("%w: SOP class UID not found", ErrNoValidContext)
	}
	if transferSyntax == "" {
		return fmt.Errorf("%w: transfer syntax UID not found", ErrNoValidContext)
	}
	for _, ctx := range v.cfg.Contexts {
		if ctx.SOPClassUID == sopClass && ctx.TransferSyntaxUID == transferSyntax {
			return nil
		}
	}
	return fmt.Errorf("%w: (%s, %s)", ErrNoValidContext, sopClass, transferSyntax)
}

// scanFmi walks the file meta group within the lookahead window and
// extracts media storage SOP class and transfer syntax UIDs.
func scanFmi(buf []byte) (sopClass, transferSyntax string, err error) {
	pos := 0
	prev := tag.Tag{}
	for pos+8 <= len(buf) {
		t := tag.New(binary.LittleEndian.Uint16(buf[pos:pos+2]), binary.LittleEndian.Uint16(buf[pos+2:pos+4]))
		if !t.IsMetaElement() {
			break
		}
		if !prev.Equals(tag.Tag{}) && t.Compare(prev) <= 0 {
			return "", "", fmt.Errorf("%w: %s after %s", ErrFmiOutOfOrder, t, prev)
		}
		prev = t
		v, vrErr := vr.FromBytes(buf[pos+4], buf[pos+5])
		if vrErr != nil {
			return "", "", fmt.Errorf("%w: %s: %v", ErrMalformedHeader, t, vrErr)
		}
		var length int
		if v.UsesLongHeader() {
			if pos+12 > len(buf) {
				break
			}
			length = int(binary.LittleEndian.Uint32(buf[pos+8 : pos+12]))
			pos += 12
		} else {
			length = int(binary.LittleEndian.Uint16(buf[pos+6 : pos+8]))
			pos += 8
		}
		if pos+length > len(buf) {
			break
		}
		value := strings.TrimRight(string(buf[pos:pos+length]), "\x00 ")
		switch {
		case t.Equals(tag.MediaStorageSOPClassUID):
			sopClass = value
		case t.Equals(tag.TransferSyntaxUID):
			transferSyntax = value
		}
		pos += length
		if sopClass != "" && transferSyntax != "" {
			return sopClass, transferSyntax, nil
		}
	}
	return sopClass, transferSyntax, nil
}

// scanLeadingDataset walks the leading explicit VR little endian elements
// of a preamble-less stream up to the SOP class UID, enforcing ascending
// tag order.
func scanLeadingDataset(buf []byte) (string, error) {
	pos := 0
	prev := tag.Tag{}
	for pos+8 <= len(buf) {
		t := tag.New(binary.LittleEndian.Uint16(buf[pos:pos+2]), binary.LittleEndian.Uint16(buf[pos+2:pos+4]))
		if !prev.Equals(tag.Tag{}) && t.Compare(prev) <= 0 {
			return "", fmt.Errorf("%w: %s after %s", ErrFmiOutOfOrder, t, prev)
		}
		prev = t
		if t.Compare(tag.SOPClassUID) > 0 {
			return "", fmt.Errorf("%w: SOP class UID missing from leading elements", ErrNoValidContext)
		}
		v, vrErr := vr.FromBytes(buf[pos+4], buf[pos+5])
		if vrErr != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrMalformedHeader, t, vrErr)
		}
		var length int
		if v.UsesLongHeader() {
			if pos+12 > len(buf) {
				break
			}
			length = int(binary.LittleEndian.Uint32(buf[pos+8 : pos+12]))
			pos += 12
		} else {
			length = int(binary.LittleEndian.Uint16(buf[pos+6 : pos+8]))
			pos += 8
		}
		if pos+length > len(buf) {
			break
		}
		if t.Equals(tag.SOPClassUID) {
			return strings.TrimRight(string(buf[pos:pos+length]), "\x00 "), nil
		}
		pos += length
	}
	return "", fmt.Errorf("%w: SOP class UID not found within lookahead window", ErrNoValidContext)
}
