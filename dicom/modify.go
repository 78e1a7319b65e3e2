package dicom

import (
	"fmt"
	"io"
	"sort"

	"github.com/gitter-badger/dicom-streams/dicom/tag"
	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

// TagModification describes one rewrite of the part stream: replacing the
// value of matching elements, inserting an element at a precise path when it
// is absent, or removing matching elements altogether.
type TagModification struct {
	matches   func(tag.Path) bool
	transform func([]byte) []byte
	insert    bool
	path      tag.Path
	remove    bool
}

// Replace substitutes the value of every element matching path. Wildcard
// item indices in the path match every item of the enclosing sequence.
func Replace(path tag.Path, value []byte) TagModification {
	return Transform(path, func([]byte) []byte { return value })
}

// Transform rewrites the value of every element matching path through f.
// f receives the complete original value and returns the replacement.
func Transform(path tag.Path, f func([]byte) []byte) TagModification {
	return TagModification{
		matches:   func(p tag.Path) bool { return p.Matches(path) },
		transform: f,
		path:      path,
	}
}

// TransformEndsWith rewrites the value of every element whose path ends
// with suffix, at any nesting depth. This matcher never inserts.
func TransformEndsWith(suffix tag.Path, f func([]byte) []byte) TagModification {
	return TagModification{
		matches:   func(p tag.Path) bool { return p.EndsWith(suffix) },
		transform: f,
		path:      suffix,
	}
}

// Insert synthesizes an element with the given value at path when the
// stream holds no element there; when the element is present its value is
// replaced instead. The VR is taken from the dictionary. A wildcard item
// index inserts into every item of the matched sequence.
func Insert(path tag.Path, value []byte) TagModification {
	return InsertWith(path, func([]byte) []byte { return value })
}

// InsertWith is Insert with a transform: on replace f receives the existing
// value, on insert it receives nil.
func InsertWith(path tag.Path, f func([]byte) []byte) TagModification {
	return TagModification{
		matches:   func(p tag.Path) bool { return p.Matches(path) },
		transform: f,
		insert:    true,
		path:      path,
	}
}

// Remove drops every element (or whole sequence) matching path from the
// stream.
func Remove(path tag.Path) TagModification {
	return TagModification{
		matches: func(p tag.Path) bool { return p.Matches(path) },
		remove:  true,
		path:    path,
	}
}

// RemoveEndsWith drops every element whose path ends with suffix, at any
// nesting depth.
func RemoveEndsWith(suffix tag.Path) TagModification {
	return TagModification{
		matches: func(p tag.Path) bool { return p.EndsWith(suffix) },
		remove:  true,
		path:    suffix,
	}
}

// pendingInsertion tracks whether an insert modification has fired in any
// scope, for strict-mode accounting.
type pendingInsertion struct {
	mod   TagModification
	fired bool
}

// insertScope is one open insertion scope: the root dataset or a sequence
// item. Its pending list holds the insertions that may still fire inside
// it, sorted by tag.
type insertScope struct {
	path    tag.Path
	pending []*pendingInsertion
}

// ModifyStage applies an ordered set of TagModifications to a part stream,
// preserving the well-formedness of the output: replaced values get their
// headers' length fields rewritten, inserted elements appear in ascending
// tag order within their scope, and all synthesized parts carry the
// endianness and VR mode of the surrounding stream.
type ModifyStage struct {
	up      PartSource
	cfg     ModifyConfig
	tracker PathTracker
	queue   []Part
	err     error
	done    bool

	insertions []*pendingInsertion
	scopes     []*insertScope

	// replacement buffering
	buffering    bool
	activeHeader HeaderPart
	transform    func([]byte) []byte
	valueBuf     []byte

	// deletion state
	droppingValue bool
	droppingDepth int

	inFragments bool

	// encoding of the current scope, refreshed from passing headers
	bigEndian  bool
	explicitVR bool
}

// NewModifyStage creates a ModifyStage over upstream parts.
func NewModifyStage(up PartSource, cfg ModifyConfig) *ModifyStage {
	m := &ModifyStage{
		up:         up,
		cfg:        cfg,
		explicitVR: true,
	}
	for i := range cfg.Modifications {
		if cfg.Modifications[i].insert {
			m.insertions = append(m.insertions, &pendingInsertion{mod: cfg.Modifications[i]})
		}
	}
	m.scopes = []*insertScope{{path: tag.EmptyPath, pending: m.pendingFor(tag.EmptyPath)}}
	return m
}

// ModifyFlow wires a ModifyStage with guarded inserts over upstream.
func ModifyFlow(up PartSource, modifications ...TagModification) *ModifyStage {
	return NewModifyStage(up, DefaultModifyConfig(modifications...))
}

// pendingFor lists the insertions that belong to the scope at scopePath,
// sorted by tag in unsigned order.
func (m *ModifyStage) pendingFor(scopePath tag.Path) []*pendingInsertion {
	var pending []*pendingInsertion
	for _, ins := range m.insertions {
		if ins.mod.path.Depth() != scopePath.Depth()+1 {
			continue
		}
		if scopePath.IsEmpty() || scopePath.Matches(ins.mod.path.Parent()) {
			pending = append(pending, ins)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].mod.path.Tag().Uint32() < pending[j].mod.path.Tag().Uint32()
	})
	return pending
}

// Next returns the next output part, or io.EOF once upstream is exhausted
// and all pending inserts have been flushed.
func (m *ModifyStage) Next() (Part, error) {
	for len(m.queue) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		if m.done {
			return nil, io.EOF
		}
		part, err := m.up.Next()
		if err == io.EOF {
			if err := m.finish(); err != nil {
				m.err = err
				return nil, err
			}
			m.done = true
			continue
		}
		if err != nil {
			m.err = err
			return nil, err
		}
		if err := m.process(part); err != nil {
			m.err = err
			return nil, err
		}
	}
	part := m.queue[0]
	m.queue = m.queue[1:]
	return part, nil
}

func (m *ModifyStage) emit(parts ...Part) {
	m.queue = append(m.queue, parts...)
}

// finish flushes the root scope at end of stream and, in strict mode,
// reports insertions whose enclosing sequence never appeared.
func (m *ModifyStage) finish() error {
	root := m.scopes[0]
	for _, ins := range root.pending {
		if err := m.synthesize(ins); err != nil {
			return err
		}
	}
	root.pending = nil
	if !m.cfg.InsertGuards {
		for _, ins := range m.insertions {
			if !ins.fired && ins.mod.path.Depth() > 1 {
				return fmt.Errorf("%w: %s", ErrMissingSequenceForInsert, ins.mod.path)
			}
		}
	}
	return nil
}

func (m *ModifyStage) process(part Part) error {
	m.tracker.Update(part)

	// Inside a removed sequence: swallow everything down to and including
	// the delimitation that closes it.
	if m.droppingDepth > 0 {
		switch part.(type) {
		case SequencePart, FragmentsPart:
			m.droppingDepth++
		case SequenceDelimitationPart:
			m.droppingDepth--
		}
		return nil
	}

	if m.droppingValue {
		chunk, ok := part.(ValueChunkPart)
		if !ok {
			return fmt.Errorf("%w: expected value chunk while removing element", ErrMalformedHeader)
		}
		if chunk.Last {
			m.droppingValue = false
		}
		return nil
	}

	if m.buffering {
		chunk, ok := part.(ValueChunkPart)
		if !ok {
			return fmt.Errorf("%w: expected value chunk after element header", ErrMalformedHeader)
		}
		m.valueBuf = append(m.valueBuf, chunk.Bytes()...)
		if chunk.Last {
			m.finishReplacement()
		}
		return nil
	}

	switch p := part.(type) {
	case HeaderPart:
		m.bigEndian, m.explicitVR = p.BigEndian(), p.ExplicitVR()
		if err := m.fireInsertsBefore(p.Tag); err != nil {
			return err
		}
		if mod := m.matching(); mod != nil {
			if mod.remove {
				m.droppingValue = true
				return nil
			}
			m.buffering = true
			m.activeHeader = p
			m.transform = mod.transform
			m.valueBuf = nil
			return nil
		}
		m.emit(p)

	case SequencePart:
		m.bigEndian, m.explicitVR = p.BigEndian(), p.ExplicitVR()
		if err := m.fireInsertsBefore(p.Tag); err != nil {
			return err
		}
		if mod := m.matching(); mod != nil && mod.remove {
			m.droppingDepth = 1
			return nil
		}
		m.emit(p)

	case FragmentsPart:
		m.bigEndian, m.explicitVR = p.BigEndian(), p.ExplicitVR()
		if err := m.fireInsertsBefore(p.Tag); err != nil {
			return err
		}
		if mod := m.matching(); mod != nil && mod.remove {
			m.droppingDepth = 1
			return nil
		}
		m.inFragments = true
		m.emit(p)

	case ItemPart:
		if !m.inFragments {
			itemPath := m.tracker.Path()
			m.scopes = append(m.scopes, &insertScope{path: itemPath, pending: m.pendingFor(itemPath)})
		}
		m.emit(p)

	case ItemDelimitationPart:
		if err := m.closeItemScope(); err != nil {
			return err
		}
		m.emit(p)

	case SequenceDelimitationPart:
		if m.inFragments {
			m.inFragments = false
		}
		m.emit(p)

	default:
		m.emit(part)
	}
	return nil
}

// matching returns the first modification whose matcher accepts the current
// path.
func (m *ModifyStage) matching() *TagModification {
	path := m.tracker.Path()
	for i := range m.cfg.Modifications {
		if m.cfg.Modifications[i].matches(path) {
			return &m.cfg.Modifications[i]
		}
	}
	return nil
}

// fireInsertsBefore synthesizes all pending insertions of the innermost
// scope with tags ordered before next, and discards a pending insertion
// whose tag equals next: the element is present and the replace path of the
// same modification handles it.
func (m *ModifyStage) fireInsertsBefore(next tag.Tag) error {
	scope := m.scopes[len(m.scopes)-1]
	for len(scope.pending) > 0 {
		head := scope.pending[0]
		cmp := head.mod.path.Tag().Compare(next)
		if cmp > 0 {
			return nil
		}
		scope.pending = scope.pending[1:]
		if cmp == 0 {
			head.fired = true
			continue
		}
		if err := m.synthesize(head); err != nil {
			return err
		}
	}
	return nil
}

// closeItemScope flushes and pops the innermost item scope.
func (m *ModifyStage) closeItemScope() error {
	if len(m.scopes) <= 1 {
		return nil
	}
	scope := m.scopes[len(m.scopes)-1]
	for _, ins := range scope.pending {
		if err := m.synthesize(ins); err != nil {
			return err
		}
	}
	m.scopes = m.scopes[:len(m.scopes)-1]
	return nil
}

// synthesize emits a header and single value chunk for an inserted element,
// deriving the VR from the dictionary and adopting the encoding of the
// surrounding scope.
func (m *ModifyStage) synthesize(ins *pendingInsertion) error {
	t := ins.mod.path.Tag()
	info, err := tag.Find(t)
	if err != nil || len(info.VRs) == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTagForInsertion, t)
	}
	v := info.VRs[0]
	if v == vr.SequenceOfItems {
		return fmt.Errorf("%w: %s", ErrCannotInsertSequence, t)
	}
	value := ins.mod.transform(nil)
	if len(value)%2 != 0 {
		value = append(value, v.PaddingByte())
	}
	header := NewHeaderPart(t, v, uint32(len(value)), false, m.bigEndian, m.explicitVR)
	m.emit(header, ValueChunkPart{Last: true, bigEndian: m.bigEndian, bytes: value})
	ins.fired = true
	return nil
}

// finishReplacement applies the buffered element's transform and emits the
// rewritten header and value.
func (m *ModifyStage) finishReplacement() {
	value := m.transform(m.valueBuf)
	if len(value)%2 != 0 {
		value = append(value, m.activeHeader.VR.PaddingByte())
	}
	m.emit(
		m.activeHeader.WithUpdatedLength(uint32(len(value))),
		ValueChunkPart{Last: true, bigEndian: m.activeHeader.BigEndian(), bytes: value},
	)
	m.buffering = false
	m.transform = nil
	m.valueBuf = nil
}
