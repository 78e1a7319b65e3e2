package dicom

import (
	"github.com/gitter-badger/dicom-streams/dicom/tag"
)

// PathTracker maintains the tag path of the part currently passing through
// a stage. Stages that need positional context embed a tracker and call
// Update on every part before acting on it; the parts themselves are not
// altered.
type PathTracker struct {
	contexts []seqContext
	current  tag.Path
}

// seqContext is one open sequence (or fragments) level with the index of
// its current item.
type seqContext struct {
	tag  tag.Tag
	item int
}

// contextPath builds the path of the innermost open item.
func (t *PathTracker) contextPath() tag.Path {
	path := tag.EmptyPath
	for _, c := range t.contexts {
		path = path.ThenItem(c.tag, c.item)
	}
	return path
}

// Update advances the tracked path for the given part.
func (t *PathTracker) Update(part Part) {
	switch p := part.(type) {
	case HeaderPart:
		t.current = t.contextPath().Then(p.Tag)
	case SequencePart:
		t.current = t.contextPath().Then(p.Tag)
		t.contexts = append(t.contexts, seqContext{tag: p.Tag})
	case FragmentsPart:
		t.current = t.contextPath().Then(p.Tag)
		t.contexts = append(t.contexts, seqContext{tag: p.Tag})
	case ItemPart:
		if len(t.contexts) > 0 {
			t.contexts[len(t.contexts)-1].item = p.Index
		}
		t.current = t.contextPath()
	case ItemDelimitationPart:
		// The path stays at the closed item until the next part arrives.
		t.current = t.contextPath()
	case SequenceDelimitationPart:
		if len(t.contexts) > 0 {
			closed := t.contexts[len(t.contexts)-1]
			t.contexts = t.contexts[:len(t.contexts)-1]
			t.current = t.contextPath().Then(closed.tag)
		}
	}
}

// Path returns the path of the most recent part.
func (t *PathTracker) Path() tag.Path {
	return t.current
}

// Depth returns the current sequence nesting depth.
func (t *PathTracker) Depth() int {
	return len(t.contexts)
}

// AtRoot reports whether the tracker is outside all sequences.
func (t *PathTracker) AtRoot() bool {
	return len(t.contexts) == 0
}
