package dicom

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gitter-badger/dicom-streams/dicom/tag"
)

// configValidator checks config structs against their validate tags once at
// stage construction, so misconfiguration fails fast instead of mid-stream.
var configValidator = validator.New(validator.WithRequiredStructEnabled())

func validateConfig(cfg any) error {
	if err := configValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ParseConfig configures a Parser.
type ParseConfig struct {
	// AssumeBigEndian selects the byte order assumed for preamble-less
	// streams before the endianness heuristic corrects it.
	AssumeBigEndian bool

	// AssumeExplicitVR selects the VR mode assumed for preamble-less
	// streams.
	AssumeExplicitVR bool

	// ChunkSize bounds the size of emitted value chunks. 0 selects the
	// default.
	ChunkSize int `validate:"gte=0"`

	// InflateDeflated makes the parser transparently decompress datasets in
	// a deflated transfer syntax and keep emitting parsed parts. When
	// false the raw compressed bytes are emitted as DeflatedChunkParts.
	InflateDeflated bool
}

// DefaultParseConfig returns the configuration for standard DICOM files:
// Explicit VR Little Endian fallback and transparent inflation.
func DefaultParseConfig() ParseConfig {
	return ParseConfig{
		AssumeExplicitVR: true,
		ChunkSize:        defaultChunkSize,
		InflateDeflated:  true,
	}
}

// ValidationContext is a (SOP Class UID, Transfer Syntax UID) pair a stream
// may be accepted under, mirroring a negotiated transmission context.
type ValidationContext struct {
	SOPClassUID       string `validate:"required"`
	TransferSyntaxUID string `validate:"required"`
}

// ValidateConfig configures a ValidateStage.
type ValidateConfig struct {
	// Contexts lists the accepted (SOP Class UID, Transfer Syntax UID)
	// pairs. When empty, only the basic stream signature is checked.
	Contexts []ValidationContext `validate:"dive"`

	// DrainIncoming makes a failing gate consume its upstream to completion
	// (discarding everything) before reporting the error, for producers
	// that cannot tolerate abrupt cancellation.
	DrainIncoming bool
}

// ModifyConfig configures a ModifyStage.
type ModifyConfig struct {
	// Modifications is the ordered set of element rewrites to apply.
	Modifications []TagModification

	// InsertGuards suppresses inserts whose enclosing sequence or item
	// never appears in the stream. When disabled such inserts fail with
	// ErrMissingSequenceForInsert at end of stream.
	InsertGuards bool
}

// DefaultModifyConfig returns a ModifyConfig with guarded inserts.
func DefaultModifyConfig(modifications ...TagModification) ModifyConfig {
	return ModifyConfig{Modifications: modifications, InsertGuards: true}
}

// CollectConfig configures a CollectStage.
type CollectConfig struct {
	// Label names the emitted ElementsPart so downstream consumers can
	// distinguish multiple collect stages in one pipeline.
	Label string `validate:"required"`

	// TagCondition selects the elements to harvest by tag path.
	TagCondition func(tag.Path) bool `validate:"required"`

	// StopCondition ends the look-ahead: when it matches, the harvested
	// elements are emitted followed by the buffered originals.
	StopCondition func(tag.Path) bool `validate:"required"`

	// MaxBufferSize caps the buffered bytes during look-ahead. 0 means
	// unlimited. Exceeding the cap fails with ErrCollectBufferOverflow.
	MaxBufferSize int `validate:"gte=0"`
}
