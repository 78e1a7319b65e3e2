// Package dicom implements a streaming parse-modify-collect engine for
// DICOM datasets.
//
// The engine converts a raw byte stream into a typed sequence of parts
// (preamble, element headers, value chunks, sequence and item boundaries,
// pixel data fragments) without materializing values in memory, and provides
// composable stages that validate, rewrite and harvest elements as the parts
// stream by.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html
package dicom

import "errors"

// ErrMalformedHeader indicates an element header that cannot be interpreted
// under the active transfer syntax.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
var ErrMalformedHeader = errors.New("malformed element header")

// ErrUnexpectedEndOfStream indicates the input ended while more bytes were
// required to complete the current part.
var ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")

// ErrUnsupportedTransferSyntax indicates a Transfer Syntax UID outside the
// registry, leaving the dataset encoding undefined.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
var ErrUnsupportedTransferSyntax = errors.New("unsupported transfer syntax")

// ErrMisalignedLength indicates an odd value length, which the standard does
// not permit.
var ErrMisalignedLength = errors.New("value length is not even")

// ErrPreambleCorrupt indicates the stream neither starts with a valid
// preamble nor with a parseable element header.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrPreambleCorrupt = errors.New("invalid DICOM preamble: missing or invalid DICM prefix")

// ErrNoValidContext indicates the stream's (SOP Class UID, Transfer Syntax
// UID) pair matches none of the configured validation contexts.
var ErrNoValidContext = errors.New("no matching transmission context")

// ErrFmiOutOfOrder indicates file meta information (or the leading dataset
// elements of a preamble-less stream) appeared out of ascending tag order.
var ErrFmiOutOfOrder = errors.New("file meta information tags out of order")

// ErrUnknownTagForInsertion indicates an insert modification whose tag is
// not in the dictionary, so no VR can be derived for the synthetic header.
var ErrUnknownTagForInsertion = errors.New("cannot insert element: tag not in dictionary")

// ErrCannotInsertSequence indicates an insert modification targeting a tag
// whose VR is SQ. Sequences cannot be synthesized from a value transform.
var ErrCannotInsertSequence = errors.New("cannot insert sequence elements")

// ErrMissingSequenceForInsert indicates a strict-mode insert whose enclosing
// sequence never appeared in the stream.
var ErrMissingSequenceForInsert = errors.New("sequence for insertion not present in stream")

// ErrCollectBufferOverflow indicates the collect stage exceeded its
// configured buffer cap before reaching its stop condition.
var ErrCollectBufferOverflow = errors.New("collect buffer size exceeded")
