package dicom

import (
	"fmt"
	"io"

	"github.com/gitter-badger/dicom-streams/dicom/charset"
	"github.com/gitter-badger/dicom-streams/dicom/tag"
)

// defaultCollectBufferSize caps the collect look-ahead buffer unless
// configured otherwise.
const defaultCollectBufferSize = 1_000_000

// CollectStage buffers the part stream while harvesting a selected set of
// elements. When its stop condition fires (or the stream ends) it emits one
// ElementsPart holding the harvested elements, releases the buffered
// originals unchanged, and passes the rest of the stream through.
//
// The SpecificCharacterSet element is always observed, whether requested or
// not, so harvested string values can be decoded correctly.
type CollectStage struct {
	up      PartSource
	cfg     CollectConfig
	tracker PathTracker
	queue   []Part
	err     error
	done    bool

	passThrough bool
	buffer      []Part
	bufBytes    int
	elements    []*Element
	charsets    charset.CharacterSets

	// element under accumulation
	accumulating bool
	accHeader    HeaderPart
	accValue     []byte
	accRequested bool
	accCharset   bool
}

// NewCollectStage creates a CollectStage over upstream parts.
func NewCollectStage(up PartSource, cfg CollectConfig) (*CollectStage, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &CollectStage{up: up, cfg: cfg, charsets: charset.Default()}, nil
}

// CollectFlow wires a CollectStage harvesting the elements at the given tag
// paths. The look-ahead ends at the first root element ordered after the
// highest requested tag.
func CollectFlow(up PartSource, label string, paths ...tag.Path) (*CollectStage, error) {
	var maxTag uint32
	for _, p := range paths {
		if t := p.Head().Tag.Uint32(); t > maxTag {
			maxTag = t
		}
	}
	cfg := CollectConfig{
		Label: label,
		TagCondition: func(p tag.Path) bool {
			for _, requested := range paths {
				if p.StartsWithSuperPath(requested) {
					return true
				}
			}
			return false
		},
		StopCondition: func(p tag.Path) bool {
			return p.Depth() == 1 && p.Tag().Uint32() > maxTag
		},
		MaxBufferSize: defaultCollectBufferSize,
	}
	return NewCollectStage(up, cfg)
}

// Next returns the next output part, or io.EOF after the stream ends.
func (c *CollectStage) Next() (Part, error) {
	for len(c.queue) == 0 {
		if c.err != nil {
			return nil, c.err
		}
		if c.done {
			return nil, io.EOF
		}
		part, err := c.up.Next()
		if err == io.EOF {
			if !c.passThrough {
				c.flush(nil)
			}
			c.done = true
			continue
		}
		if err != nil {
			c.err = err
			return nil, err
		}
		if c.passThrough {
			c.queue = append(c.queue, part)
			continue
		}
		if err := c.process(part); err != nil {
			c.err = err
			return nil, err
		}
	}
	part := c.queue[0]
	c.queue = c.queue[1:]
	return part, nil
}

// flush emits the composite part followed by the buffered originals and the
// optional triggering part, then switches to pass-through.
func (c *CollectStage) flush(trigger Part) {
	c.queue = append(c.queue, ElementsPart{
		Label:         c.cfg.Label,
		CharacterSets: c.charsets,
		Elements:      c.elements,
	})
	c.queue = append(c.queue, c.buffer...)
	if trigger != nil {
		c.queue = append(c.queue, trigger)
	}
	c.buffer = nil
	c.passThrough = true
}

func (c *CollectStage) process(part Part) error {
	c.tracker.Update(part)

	switch p := part.(type) {
	case HeaderPart:
		path := c.tracker.Path()
		if c.cfg.StopCondition(path) {
			c.flush(part)
			return nil
		}
		requested := c.cfg.TagCondition(path)
		isCharset := p.Tag.Equals(tag.SpecificCharacterSet) && path.Depth() == 1
		if requested || isCharset {
			c.accumulating = true
			c.accHeader = p
			c.accValue = nil
			c.accRequested = requested
			c.accCharset = isCharset
		}

	case SequencePart:
		if c.cfg.StopCondition(c.tracker.Path()) {
			c.flush(part)
			return nil
		}

	case FragmentsPart:
		if c.cfg.StopCondition(c.tracker.Path()) {
			c.flush(part)
			return nil
		}

	case ValueChunkPart:
		if c.accumulating {
			c.accValue = append(c.accValue, p.Bytes()...)
			if p.Last {
				c.finishElement()
			}
		}
	}

	c.buffer = append(c.buffer, part)
	c.bufBytes += len(part.Bytes())
	if c.cfg.MaxBufferSize > 0 && c.bufBytes > c.cfg.MaxBufferSize {
		return fmt.Errorf("%w: %d bytes buffered, cap is %d", ErrCollectBufferOverflow, c.bufBytes, c.cfg.MaxBufferSize)
	}
	return nil
}

// finishElement completes the element under accumulation, recording it and
// refreshing the active character sets when it declares them.
func (c *CollectStage) finishElement() {
	elem := NewElement(c.accHeader.Tag, c.accHeader.VR, c.accValue, c.accHeader.BigEndian(), c.accHeader.ExplicitVR())
	if c.accCharset {
		// An undecodable term still yields a usable default; the harvested
		// element keeps the original bytes either way.
		cs, _ := charset.Parse(elem.StringValue(charset.Default()))
		c.charsets = cs
	}
	if c.accRequested {
		c.elements = append(c.elements, elem)
	}
	c.accumulating = false
	c.accValue = nil
}
