package indent

import "fmt"

type entryKind int

const (
	// entryNormal stays on the stack until an explicit Pop.
	entryNormal entryKind = iota

	// entryOneShot is consumed automatically the first time it
	// contributes to an applied indentation.
	entryOneShot

	// entryNextLine is on the stack but does not count toward the
	// line currently being written; it becomes entryNormal when
	// that line ends.
	entryNextLine
)

func (k entryKind) String() string {
	switch k {
	case entryNormal:
		return "normal"
	case entryOneShot:
		return "one-shot"
	case entryNextLine:
		return "next-line"
	default:
		return fmt.Sprintf("entryKind(%d)", int(k))
	}
}

type entry struct {
	width int
	kind  entryKind
}

// indentStack holds the pending indentation entries. The backing
// array is allocated once at construction and never grows; pushing
// past its capacity is a contract violation by the caller.
type indentStack struct {
	entries []entry
}

func newIndentStack(capacity int) indentStack {
	return indentStack{entries: make([]entry, 0, capacity)}
}

func (s *indentStack) push(e entry) {
	if len(s.entries) == cap(s.entries) {
		panic(fmt.Sprintf("indent: stack capacity exceeded (%d entries)", cap(s.entries)))
	}
	s.entries = append(s.entries, e)
}

func (s *indentStack) pop() entry {
	idx := len(s.entries) - 1
	if idx < 0 {
		panic("indent: pop of empty indent stack")
	}
	e := s.entries[idx]
	s.entries = s.entries[:idx]
	return e
}

func (s *indentStack) len() int {
	return len(s.entries)
}

// currentWidth is the indentation target for the line being written:
// the sum of all entry widths, minus the entries still deferred to
// the next line.
func (s *indentStack) currentWidth() int {
	width := 0
	for _, e := range s.entries {
		if e.kind == entryNextLine {
			continue
		}
		width += e.width
	}
	return width
}

// dropOneShots removes every one-shot entry from the stack and
// reports how many were removed. Called once per line, right after
// indentation has been applied.
func (s *indentStack) dropOneShots() int {
	kept := s.entries[:0]
	dropped := 0
	for _, e := range s.entries {
		if e.kind == entryOneShot {
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return dropped
}

// lockOneShots converts pending one-shot entries into normal ones
// and reports how many the caller now has to pop explicitly.
func (s *indentStack) lockOneShots() int {
	locked := 0
	for i, e := range s.entries {
		if e.kind == entryOneShot {
			s.entries[i].kind = entryNormal
			locked++
		}
	}
	return locked
}

// activateDeferred promotes next-line entries to normal ones so they
// count toward the line that is about to begin. Called whenever a
// line ends.
func (s *indentStack) activateDeferred() int {
	activated := 0
	for i, e := range s.entries {
		if e.kind == entryNextLine {
			s.entries[i].kind = entryNormal
			activated++
		}
	}
	return activated
}
