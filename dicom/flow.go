package dicom

import (
	"io"
)

// defaultChunkSize bounds the size of byte chunks pulled from an io.Reader
// and of emitted value chunks.
const defaultChunkSize = 8192

// ChunkSource supplies a stream of byte chunks. NextChunk returns io.EOF
// after the final chunk. A source pulled again after an error returns the
// same error.
type ChunkSource interface {
	NextChunk() ([]byte, error)
}

// PartSource supplies a stream of parts. Next returns io.EOF after the
// final part. Errors are terminal: a failed source never emits further
// parts.
//
// The pull contract realizes the engine's cooperative scheduling: a stage
// does work only when downstream calls Next, and pulls its upstream only
// when it cannot emit from internal state (backpressure by demand).
type PartSource interface {
	Next() (Part, error)
}

// ReaderSource adapts an io.Reader to a ChunkSource.
type ReaderSource struct {
	r         io.Reader
	chunkSize int
	err       error
}

// NewReaderSource creates a ChunkSource reading chunks of up to chunkSize
// bytes from r. A chunkSize of 0 selects the default.
func NewReaderSource(r io.Reader, chunkSize int) *ReaderSource {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &ReaderSource{r: r, chunkSize: chunkSize}
}

// NextChunk reads the next chunk from the underlying reader.
func (s *ReaderSource) NextChunk() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	buf := make([]byte, s.chunkSize)
	n, err := s.r.Read(buf)
	if n > 0 {
		// A read error after partial data is reported on the next pull.
		if err != nil && err != io.EOF {
			s.err = err
		} else if err == io.EOF {
			s.err = io.EOF
		}
		return buf[:n], nil
	}
	if err == nil {
		err = io.EOF
	}
	s.err = err
	return nil, err
}

// ChunksSource supplies a fixed series of chunks. Used to replay buffered
// bytes and in tests exercising chunk-boundary behavior.
type ChunksSource struct {
	chunks [][]byte
}

// NewChunksSource creates a ChunkSource over the given chunks.
func NewChunksSource(chunks ...[]byte) *ChunksSource {
	return &ChunksSource{chunks: chunks}
}

// NextChunk returns the next queued chunk.
func (s *ChunksSource) NextChunk() ([]byte, error) {
	if len(s.chunks) == 0 {
		return nil, io.EOF
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return chunk, nil
}

// ReadParts drains a part source into a slice. Intended for small streams
// and tests; large objects should be consumed part by part.
func ReadParts(src PartSource) ([]Part, error) {
	var parts []Part
	for {
		part, err := src.Next()
		if err == io.EOF {
			return parts, nil
		}
		if err != nil {
			return parts, err
		}
		parts = append(parts, part)
	}
}

// Pump copies a part stream to w byte-exactly and returns the number of
// bytes written. Together with the round-trip property of the parser this
// reproduces the input, modulo any modifications applied by intermediate
// stages.
func Pump(w io.Writer, src PartSource) (int64, error) {
	var written int64
	for {
		part, err := src.Next()
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
		b := part.Bytes()
		if len(b) == 0 {
			continue
		}
		n, err := w.Write(b)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
}
