package tag

import (
	"fmt"
	"strings"
)

// Wildcard is the item index matching any item of a sequence in a Path used
// as a matcher.
const Wildcard = -1

// Step is one link of a Path: a tag, optionally qualified by the index of
// the sequence item it addresses. Item is 0 when the step denotes a plain
// element, 1-based when it denotes an item within the sequence at Tag, or
// Wildcard when it matches any item.
type Step struct {
	Tag  Tag
	Item int
}

// IsItem returns true when the step addresses a sequence item.
func (s Step) IsItem() bool {
	return s.Item != 0
}

// Path identifies the position of an element in a possibly nested dataset:
// a chain of steps from the root to the element. Paths are immutable values;
// the builder methods return extended copies.
//
// The empty Path denotes the root scope itself.
type Path struct {
	steps []Step
}

// EmptyPath is the path of the root scope.
var EmptyPath = Path{}

// NewPath creates a single-step path addressing a root-level element.
func NewPath(t Tag) Path {
	return Path{steps: []Step{{Tag: t}}}
}

// NewItemPath creates a single-step path addressing an item of a root-level
// sequence. Use Wildcard as index to address every item.
func NewItemPath(t Tag, item int) Path {
	return Path{steps: []Step{{Tag: t, Item: item}}}
}

// Then extends the path with an element step. The receiver must address a
// sequence item (or be empty) for the result to be a well-formed position.
func (p Path) Then(t Tag) Path {
	return p.then(Step{Tag: t})
}

// ThenItem extends the path with a sequence item step.
func (p Path) ThenItem(t Tag, item int) Path {
	return p.then(Step{Tag: t, Item: item})
}

func (p Path) then(s Step) Path {
	steps := make([]Step, len(p.steps)+1)
	copy(steps, p.steps)
	steps[len(p.steps)] = s
	return Path{steps: steps}
}

// IsEmpty returns true for the root path.
func (p Path) IsEmpty() bool {
	return len(p.steps) == 0
}

// Depth returns the number of steps in the path.
func (p Path) Depth() int {
	return len(p.steps)
}

// Head returns the root-most step. Calling Head on the empty path panics.
func (p Path) Head() Step {
	return p.steps[0]
}

// Last returns the final step. Calling Last on the empty path panics.
func (p Path) Last() Step {
	return p.steps[len(p.steps)-1]
}

// Tag returns the tag of the final step. Calling Tag on the empty path panics.
func (p Path) Tag() Tag {
	return p.Last().Tag
}

// Parent returns the path with the final step removed.
func (p Path) Parent() Path {
	if len(p.steps) == 0 {
		return EmptyPath
	}
	return Path{steps: p.steps[:len(p.steps)-1]}
}

// Equal returns true when both paths have identical steps, including item
// indices.
func (p Path) Equal(other Path) bool {
	if len(p.steps) != len(other.steps) {
		return false
	}
	for i, s := range p.steps {
		if s != other.steps[i] {
			return false
		}
	}
	return true
}

// stepLess orders two steps in stream order: by unsigned tag, then by item
// index. Wildcards order before any concrete index.
func stepLess(a, b Step) bool {
	if !a.Tag.Equals(b.Tag) {
		return a.Tag.Uint32() < b.Tag.Uint32()
	}
	return a.Item < b.Item
}

// Less implements strict lexicographic ordering consistent with the order
// elements appear in a well-formed stream. A proper prefix orders before
// its extensions.
func (p Path) Less(other Path) bool {
	n := min(len(p.steps), len(other.steps))
	for i := 0; i < n; i++ {
		a, b := p.steps[i], other.steps[i]
		if a != b {
			return stepLess(a, b)
		}
	}
	return len(p.steps) < len(other.steps)
}

// stepMatches reports whether the concrete step s matches the pattern step
// pat, honoring wildcard item indices in the pattern.
func stepMatches(s, pat Step) bool {
	if !s.Tag.Equals(pat.Tag) {
		return false
	}
	if pat.Item == Wildcard || s.Item == Wildcard {
		// A wildcard on either side still requires both steps to be item steps.
		return s.IsItem() == pat.IsItem()
	}
	return s.Item == pat.Item
}

// StartsWith reports whether prefix is a prefix of this path. Wildcard item
// indices in the prefix match any item.
func (p Path) StartsWith(prefix Path) bool {
	if len(prefix.steps) > len(p.steps) {
		return false
	}
	for i, pat := range prefix.steps {
		if !stepMatches(p.steps[i], pat) {
			return false
		}
	}
	return true
}

// Matches reports whether this concrete path matches pattern in full:
// same depth, same tags, with wildcard item indices in the pattern matching
// any item.
func (p Path) Matches(pattern Path) bool {
	return len(p.steps) == len(pattern.steps) && p.StartsWith(pattern)
}

// StartsWithSuperPath reports whether prefix is a prefix of this path when
// item indices are ignored: the tag chain must match, and each step must
// address a sequence item exactly when the corresponding prefix step does.
func (p Path) StartsWithSuperPath(prefix Path) bool {
	if len(prefix.steps) > len(p.steps) {
		return false
	}
	for i, pat := range prefix.steps {
		s := p.steps[i]
		if !s.Tag.Equals(pat.Tag) || s.IsItem() != pat.IsItem() {
			return false
		}
	}
	return true
}

// EndsWith reports whether suffix matches the tail of this path. Wildcard
// item indices in the suffix match any item; this is the matcher behind
// depth-independent modifications.
func (p Path) EndsWith(suffix Path) bool {
	offset := len(p.steps) - len(suffix.steps)
	if offset < 0 {
		return false
	}
	for i, pat := range suffix.steps {
		if !stepMatches(p.steps[offset+i], pat) {
			return false
		}
	}
	return true
}

// String renders the path in the conventional notation, e.g.
// "(0008,9215)[1].(0008,0020)" or "(0008,9215)[*]" for wildcards.
func (p Path) String() string {
	if p.IsEmpty() {
		return "<root>"
	}
	var sb strings.Builder
	for i, s := range p.steps {
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(s.Tag.String())
		if s.Item == Wildcard {
			sb.WriteString("[*]")
		} else if s.Item != 0 {
			sb.WriteString(fmt.Sprintf("[%d]", s.Item))
		}
	}
	return sb.String()
}
