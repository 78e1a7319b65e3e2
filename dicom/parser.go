package dicom

import (
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/gitter-badger/dicom-streams/dicom/tag"
	"github.com/gitter-badger/dicom-streams/dicom/uid"
	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

// parseState enumerates the states of the parser's state machine.
type parseState int

const (
	stateAtBeginning parseState = iota
	stateFmiHeader
	stateFmiValue
	stateDatasetHeader
	stateValue
	stateDeflated
	stateDone
)

const (
	dicmPrefix = "DICM"
	// preambleLength covers the 128 zero bytes plus the DICM prefix.
	preambleLength = 132
)

// nesting tracks one level of sequence, item or fragments context during
// parsing. Defined-length scopes record the absolute offset at which they
// close implicitly.
type nesting struct {
	seqTag    tag.Tag
	fragments bool
	item      int
	seqEnd    int64 // close offset of a defined-length sequence, -1 if delimited
	itemEnd   int64 // close offset of the open defined-length item, -1 if none
}

// Parser is the streaming parse stage: a deterministic state machine that
// consumes bytes from a ChunkSource and emits typed Parts on demand.
//
// A Parser is a PartSource; call Next until it returns io.EOF. Errors are
// terminal: after a failure the parser emits no further parts.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7
type Parser struct {
	in    *ByteReader
	cfg   ParseConfig
	state parseState
	queue []Part
	err   error

	// encoding of the current scope
	bigEndian  bool
	explicitVR bool

	fmiEnd   int64 // absolute offset where file meta information ends, -1 unknown
	tsUID    string
	deflated bool

	// value capture for headers the state machine itself interprets
	capture  tag.Tag
	captured []byte

	valueRemaining uint32

	stack []*nesting
}

// NewParser creates a Parser over the given chunk source.
func NewParser(src ChunkSource, cfg ParseConfig) (*Parser, error) {
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &Parser{
		in:         NewByteReader(src),
		cfg:        cfg,
		state:      stateAtBeginning,
		bigEndian:  cfg.AssumeBigEndian,
		explicitVR: cfg.AssumeExplicitVR,
		fmiEnd:     -1,
	}, nil
}

// ParseFlow creates a Parser over an io.Reader with the default
// configuration. This is the usual entry point of a pipeline.
//
// Example:
//
//	f, _ := os.Open("image.dcm")
//	defer f.Close()
//	parser := dicom.ParseFlow(f)
//	for {
//	    part, err := parser.Next()
//	    ...
//	}
func ParseFlow(r io.Reader) *Parser {
	p, err := NewParser(NewReaderSource(r, 0), DefaultParseConfig())
	if err != nil {
		// The default configuration always validates.
		panic(err)
	}
	return p
}

// Next returns the next part of the stream, or io.EOF after the last one.
func (p *Parser) Next() (Part, error) {
	for len(p.queue) == 0 {
		if p.err != nil {
			return nil, p.err
		}
		if p.state == stateDone {
			return nil, io.EOF
		}
		if err := p.step(); err != nil {
			p.err = err
			p.queue = nil
			return nil, err
		}
	}
	part := p.queue[0]
	p.queue = p.queue[1:]
	return part, nil
}

func (p *Parser) emit(parts ...Part) {
	p.queue = append(p.queue, parts...)
}

func (p *Parser) top() *nesting {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// step advances the state machine until it has emitted at least one part or
// changed state.
func (p *Parser) step() error {
	switch p.state {
	case stateAtBeginning:
		return p.stepBeginning()
	case stateFmiHeader:
		return p.stepFmiHeader()
	case stateFmiValue, stateValue:
		return p.stepValue()
	case stateDatasetHeader:
		return p.stepDatasetHeader()
	case stateDeflated:
		return p.stepDeflated()
	}
	return nil
}

// stepBeginning inspects the first bytes of the stream: a preamble, a bare
// file meta group, or a bare dataset under the configured encoding.
func (p *Parser) stepBeginning() error {
	head, err := p.in.PeekUpTo(preambleLength)
	if err != nil {
		return err
	}
	if len(head) == 0 {
		p.state = stateDone
		return nil
	}
	if len(head) >= preambleLength && string(head[128:132]) == dicmPrefix {
		b, err := p.in.Take(preambleLength)
		if err != nil {
			return err
		}
		p.emit(PreamblePart{bytes: b})
		p.bigEndian, p.explicitVR = false, true
		p.state = stateFmiHeader
		return nil
	}
	if len(head) < 8 {
		return fmt.Errorf("%w: %d bytes is too short for an element header", ErrUnexpectedEndOfStream, len(head))
	}

	// No preamble: heuristically correct the assumed byte order. The first
	// group number of a dataset is small; when the opposite order yields a
	// smaller group the assumption was wrong.
	group := byteOrder(p.bigEndian).Uint16(head[0:2])
	if group != tag.DelimiterGroup {
		swapped := byteOrder(!p.bigEndian).Uint16(head[0:2])
		if swapped != 0 && (group == 0 || swapped < group) {
			p.bigEndian = !p.bigEndian
			group = swapped
		}
	}
	if group == tag.MetadataGroup {
		// File meta information is always explicit VR little endian.
		p.bigEndian, p.explicitVR = false, true
		p.state = stateFmiHeader
	} else {
		p.state = stateDatasetHeader
	}
	return nil
}

// stepFmiHeader reads one file meta element header, or hands over to the
// dataset when the group ends.
func (p *Parser) stepFmiHeader() error {
	if p.fmiEnd >= 0 && p.in.Position() >= p.fmiEnd {
		return p.startDataset()
	}
	head, err := p.in.PeekUpTo(8)
	if err != nil {
		return err
	}
	if len(head) == 0 {
		// Stream ends with the file meta group.
		p.state = stateDone
		return nil
	}
	if len(head) < 8 {
		return fmt.Errorf("%w: truncated file meta element header", ErrUnexpectedEndOfStream)
	}
	if binary.LittleEndian.Uint16(head[0:2]) != tag.MetadataGroup {
		return p.startDataset()
	}

	t := tag.New(binary.LittleEndian.Uint16(head[0:2]), binary.LittleEndian.Uint16(head[2:4]))
	v, err := vr.FromBytes(head[4], head[5])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedHeader, t, err)
	}
	var length uint32
	headerLen := v.HeaderLength(true)
	if headerLen == 12 {
		long, err := p.in.Peek(12)
		if err != nil {
			return err
		}
		length = binary.LittleEndian.Uint32(long[8:12])
	} else {
		length = uint32(binary.LittleEndian.Uint16(head[6:8]))
	}
	if length == UndefinedLength {
		return fmt.Errorf("%w: undefined length in file meta element %s", ErrMalformedHeader, t)
	}
	raw, err := p.in.Take(headerLen)
	if err != nil {
		return err
	}
	p.emit(HeaderPart{Tag: t, VR: v, Length: length, IsFMI: true, explicitVR: true, bytes: raw})

	p.captured = p.captured[:0]
	if t.Equals(tag.FileMetaInformationGroupLength) || t.Equals(tag.TransferSyntaxUID) {
		p.capture = t
	} else {
		p.capture = tag.Tag{}
	}
	p.valueRemaining = length
	p.state = stateFmiValue
	return nil
}

// startDataset applies the transfer syntax gathered from file meta
// information and transitions into the dataset.
func (p *Parser) startDataset() error {
	switch p.tsUID {
	case "", uid.ExplicitVRLittleEndian.String():
		p.bigEndian, p.explicitVR = false, true
	case uid.ImplicitVRLittleEndian.String():
		p.bigEndian, p.explicitVR = false, false
	case uid.ExplicitVRBigEndian.String():
		p.bigEndian, p.explicitVR = true, true
	case uid.DeflatedExplicitVRLittleEndian.String(), uid.EncapsulatedUncompressedExplicitVRLittleEndian.String():
		p.bigEndian, p.explicitVR = false, true
		p.deflated = true
	default:
		if !uid.IsTransferSyntax(p.tsUID) {
			return fmt.Errorf("%w: %q", ErrUnsupportedTransferSyntax, p.tsUID)
		}
		// Encapsulated pixel data syntaxes encode the dataset as explicit
		// VR little endian; the compressed payload travels in fragments.
		p.bigEndian, p.explicitVR = false, true
	}
	if p.deflated {
		if p.cfg.InflateDeflated {
			// DICOM deflates with raw DEFLATE (RFC 1951), not zlib framing.
			p.in.WrapRemaining(func(r io.Reader) io.Reader { return flate.NewReader(r) })
			p.state = stateDatasetHeader
		} else {
			p.state = stateDeflated
		}
		return nil
	}
	p.state = stateDatasetHeader
	return nil
}

// stepValue emits the next chunk of the current element value.
func (p *Parser) stepValue() error {
	isFmi := p.state == stateFmiValue
	endian := p.bigEndian
	if isFmi {
		endian = false
	}
	if p.valueRemaining == 0 {
		p.emit(ValueChunkPart{Last: true, bigEndian: endian})
		return p.finishValue(isFmi)
	}
	n := p.cfg.ChunkSize
	if uint32(n) > p.valueRemaining {
		n = int(p.valueRemaining)
	}
	b, err := p.in.Take(n)
	if err != nil {
		return err
	}
	p.valueRemaining -= uint32(n)
	if !p.capture.Equals(tag.Tag{}) {
		p.captured = append(p.captured, b...)
	}
	last := p.valueRemaining == 0
	p.emit(ValueChunkPart{Last: last, bigEndian: endian, bytes: b})
	if last {
		return p.finishValue(isFmi)
	}
	return nil
}

// finishValue interprets captured values and returns to the header state.
func (p *Parser) finishValue(isFmi bool) error {
	switch {
	case p.capture.Equals(tag.FileMetaInformationGroupLength):
		if len(p.captured) >= 4 {
			groupLength := binary.LittleEndian.Uint32(p.captured[:4])
			p.fmiEnd = p.in.Position() + int64(groupLength)
		}
	case p.capture.Equals(tag.TransferSyntaxUID):
		p.tsUID = strings.TrimRight(string(p.captured), "\x00 ")
	}
	p.capture = tag.Tag{}
	if isFmi {
		p.state = stateFmiHeader
	} else {
		p.state = stateDatasetHeader
	}
	return nil
}

// stepDatasetHeader closes expired defined-length scopes, detects end of
// stream, and otherwise reads the next structural tag or element header.
func (p *Parser) stepDatasetHeader() error {
	if s := p.top(); s != nil {
		if s.itemEnd >= 0 && p.in.Position() >= s.itemEnd {
			p.emit(ItemDelimitationPart{Index: s.item, bigEndian: p.bigEndian})
			s.itemEnd = -1
			return nil
		}
		if s.seqEnd >= 0 && p.in.Position() >= s.seqEnd {
			p.emit(SequenceDelimitationPart{bigEndian: p.bigEndian})
			p.stack = p.stack[:len(p.stack)-1]
			return nil
		}
	}

	end, err := p.in.AtEnd()
	if err != nil {
		return err
	}
	if end {
		if s := p.top(); s != nil {
			return fmt.Errorf("%w: unterminated sequence %s", ErrUnexpectedEndOfStream, s.seqTag)
		}
		p.state = stateDone
		return nil
	}

	head, err := p.in.Peek(8)
	if err != nil {
		return err
	}
	bo := byteOrder(p.bigEndian)
	t := tag.New(bo.Uint16(head[0:2]), bo.Uint16(head[2:4]))
	switch {
	case t.Equals(tag.Item):
		return p.readItem(bo.Uint32(head[4:8]))
	case t.Equals(tag.ItemDelimitationItem):
		return p.readItemDelimitation()
	case t.Equals(tag.SequenceDelimitationItem):
		return p.readSequenceDelimitation()
	}
	return p.readElementHeader(t, head)
}

// readItem handles an item tag inside a sequence or fragments scope.
func (p *Parser) readItem(length uint32) error {
	raw, err := p.in.Take(8)
	if err != nil {
		return err
	}
	s := p.top()
	if s == nil {
		// An item outside any sequence is framed but uninterpretable.
		p.emit(UnknownPart{bigEndian: p.bigEndian, bytes: raw})
		return nil
	}
	s.item++
	p.emit(ItemPart{Index: s.item, Length: length, bigEndian: p.bigEndian, bytes: raw})
	if s.fragments {
		if length == UndefinedLength {
			return fmt.Errorf("%w: fragment item with undefined length", ErrMalformedHeader)
		}
		p.capture = tag.Tag{}
		p.valueRemaining = length
		p.state = stateValue
		return nil
	}
	s.itemEnd = -1
	if length != UndefinedLength {
		s.itemEnd = p.in.Position() + int64(length)
	}
	return nil
}

func (p *Parser) readItemDelimitation() error {
	raw, err := p.in.Take(8)
	if err != nil {
		return err
	}
	s := p.top()
	if s == nil || s.fragments {
		p.emit(UnknownPart{bigEndian: p.bigEndian, bytes: raw})
		return nil
	}
	p.emit(ItemDelimitationPart{Index: s.item, bigEndian: p.bigEndian, bytes: raw})
	s.itemEnd = -1
	return nil
}

func (p *Parser) readSequenceDelimitation() error {
	raw, err := p.in.Take(8)
	if err != nil {
		return err
	}
	if p.top() == nil {
		p.emit(UnknownPart{bigEndian: p.bigEndian, bytes: raw})
		return nil
	}
	p.emit(SequenceDelimitationPart{bigEndian: p.bigEndian, bytes: raw})
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

// readElementHeader reads a regular element header under the current
// encoding and dispatches on its kind: sequence, fragments or plain value.
func (p *Parser) readElementHeader(t tag.Tag, head []byte) error {
	bo := byteOrder(p.bigEndian)
	var v vr.VR
	var length uint32
	headerLen := 8
	if p.explicitVR {
		var err error
		v, err = vr.FromBytes(head[4], head[5])
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedHeader, t, err)
		}
		if v.UsesLongHeader() {
			long, err := p.in.Peek(12)
			if err != nil {
				return err
			}
			length = bo.Uint32(long[8:12])
			headerLen = 12
		} else {
			length = uint32(bo.Uint16(head[6:8]))
		}
	} else {
		v = tag.VRFor(t)
		length = bo.Uint32(head[4:8])
	}

	switch {
	case v == vr.SequenceOfItems || (length == UndefinedLength && v == vr.Unknown):
		raw, err := p.in.Take(headerLen)
		if err != nil {
			return err
		}
		p.emit(SequencePart{Tag: t, Length: length, bigEndian: p.bigEndian, explicitVR: p.explicitVR, bytes: raw})
		seqEnd := int64(-1)
		if length != UndefinedLength {
			seqEnd = p.in.Position() + int64(length)
		}
		p.stack = append(p.stack, &nesting{seqTag: t, seqEnd: seqEnd, itemEnd: -1})
		return nil

	case length == UndefinedLength && (v == vr.OtherByte || v == vr.OtherWord) && t.Equals(tag.PixelData):
		raw, err := p.in.Take(headerLen)
		if err != nil {
			return err
		}
		p.emit(FragmentsPart{Tag: t, VR: v, bigEndian: p.bigEndian, explicitVR: p.explicitVR, bytes: raw})
		p.stack = append(p.stack, &nesting{seqTag: t, fragments: true, seqEnd: -1, itemEnd: -1})
		return nil

	case length == UndefinedLength:
		return fmt.Errorf("%w: undefined length for VR %s in element %s", ErrMalformedHeader, v, t)
	}

	if length%2 != 0 {
		return fmt.Errorf("%w: element %s has length %d", ErrMisalignedLength, t, length)
	}
	raw, err := p.in.Take(headerLen)
	if err != nil {
		return err
	}
	p.emit(HeaderPart{Tag: t, VR: v, Length: length, bigEndian: p.bigEndian, explicitVR: p.explicitVR, bytes: raw})
	p.capture = tag.Tag{}
	p.valueRemaining = length
	p.state = stateValue
	return nil
}

// stepDeflated passes the compressed remainder of the stream through as raw
// chunks. The parse stage does not inflate here; see
// ParseConfig.InflateDeflated for transparent decompression.
func (p *Parser) stepDeflated() error {
	b, err := p.in.PeekUpTo(p.cfg.ChunkSize)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		p.state = stateDone
		return nil
	}
	taken, err := p.in.Take(len(b))
	if err != nil {
		return err
	}
	p.emit(DeflatedChunkPart{bigEndian: p.bigEndian, bytes: taken})
	return nil
}
