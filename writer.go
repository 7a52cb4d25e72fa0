// Package indent decorates a byte sink with automatic indentation.
//
// A Writer wraps an io.Writer and injects leading whitespace at the
// start of each output line according to a caller-managed indentation
// stack, so a code generator can emit content as a flat sequence of
// writes and still produce correctly nested output. The Writer does
// not parse or buffer what it writes; it only interleaves indentation
// bytes with the caller's bytes.
package indent

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const (
	// DefaultWidth is the width pushed by Push, PushOneShot and
	// PushNextLine unless overridden at construction.
	DefaultWidth = 4

	// DefaultCapacity is the maximum indent-stack depth unless
	// overridden at construction.
	DefaultCapacity = 255

	// repeatChunk bounds the scratch buffer used to emit runs of a
	// repeated byte, indentation included.
	repeatChunk = 64
)

// Options configures a Writer. The zero value of each field selects
// the default.
type Options struct {
	// Width is the indentation width used by the parameterless push
	// operations. Defaults to DefaultWidth.
	Width int

	// Capacity is the fixed maximum depth of the indent stack.
	// Pushing past it panics. Defaults to DefaultCapacity.
	Capacity int

	// Logger, when non-nil, receives a trace-level event for every
	// indent-stack transition. Nil disables tracing.
	Logger *zerolog.Logger
}

// Writer writes bytes to a sink, prefixing automatic indentation
// whenever a new line receives its first content.
//
// A Writer is single-owner: it performs no locking and must not be
// used from multiple goroutines concurrently. After a sink error the
// Writer's state is unspecified and it should not be reused.
type Writer struct {
	sink  io.Writer
	stack indentStack
	width int

	// lineEmpty is true iff nothing beyond a pending indent has
	// been written since the last line-start event.
	lineEmpty bool

	// appliedIndent is the whitespace width actually emitted for
	// the current line, 0 while the line is empty.
	appliedIndent int

	log zerolog.Logger
}

var (
	_ io.Writer     = (*Writer)(nil)
	_ io.ByteWriter = (*Writer)(nil)
)

// New returns a Writer over sink with the default width and capacity.
func New(sink io.Writer) *Writer {
	return NewWithOptions(sink, Options{})
}

// NewWithOptions returns a Writer over sink configured by opts.
// A negative width or capacity is a contract violation and panics.
func NewWithOptions(sink io.Writer, opts Options) *Writer {
	width := opts.Width
	switch {
	case width == 0:
		width = DefaultWidth
	case width < 0:
		panic(fmt.Sprintf("indent: negative indent width %d", width))
	}
	capacity := opts.Capacity
	switch {
	case capacity == 0:
		capacity = DefaultCapacity
	case capacity < 0:
		panic(fmt.Sprintf("indent: negative stack capacity %d", capacity))
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Writer{
		sink:      sink,
		stack:     newIndentStack(capacity),
		width:     width,
		lineEmpty: true,
		log:       log,
	}
}

// Write emits p to the sink, applying the current indentation first
// if this is the first content on the line. It implements io.Writer.
//
// Line state resets only when the final byte of p is '\n'; embedded
// newlines earlier in p do not re-trigger indentation. Callers that
// want every line of a multi-line buffer indented must split the
// buffer at line boundaries, or use Newline between writes.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := w.applyIndent(); err != nil {
		return 0, err
	}
	written := 0
	for written < len(p) {
		n, err := w.sink.Write(p[written:])
		written += n
		if err != nil {
			return written, err
		}
		if n <= 0 {
			return written, io.ErrShortWrite
		}
	}
	if p[len(p)-1] == '\n' {
		w.endLine()
	}
	return written, nil
}

// WriteByte writes a single byte through the indenting write path.
// It implements io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

// WriteByteN writes n copies of b, applying indentation exactly once
// up front rather than once per repetition. The run is emitted in
// bounded chunks without re-checking indentation in between. A
// negative n is a contract violation and panics.
func (w *Writer) WriteByteN(b byte, n int) error {
	if n < 0 {
		panic(fmt.Sprintf("indent: negative repeat count %d", n))
	}
	if n == 0 {
		return nil
	}
	if err := w.applyIndent(); err != nil {
		return err
	}
	if err := w.repeatByte(b, n); err != nil {
		return err
	}
	if b == '\n' {
		w.endLine()
	}
	return nil
}

// Newline writes a single '\n', bypassing indentation so that blank
// lines carry no trailing whitespace, and resets the line state.
func (w *Writer) Newline() error {
	if err := w.drain([]byte{'\n'}); err != nil {
		return err
	}
	w.endLine()
	return nil
}

// MaybeNewline writes a '\n' only if the current line already has
// content. It is idempotent on an empty line.
func (w *Writer) MaybeNewline() error {
	if w.lineEmpty {
		return nil
	}
	return w.Newline()
}

// Push pushes one level of the default width onto the indent stack.
// Nothing is written until content next reaches the start of a line.
func (w *Writer) Push() {
	w.PushN(w.width)
}

// PushN pushes one level of an explicit width. Pushing a width onto a
// full stack, or a negative width, is a contract violation and
// panics.
func (w *Writer) PushN(width int) {
	w.pushEntry(entry{width: width, kind: entryNormal})
}

// PushOneShot pushes a default-width level that pops itself the first
// time it contributes to an applied indentation. Consecutive one-shot
// pushes accumulate and are all consumed together.
func (w *Writer) PushOneShot() {
	w.pushEntry(entry{width: w.width, kind: entryOneShot})
}

// PushNextLine pushes a default-width level that does not count
// toward the current line's indentation, only from the next line
// onward.
func (w *Writer) PushNextLine() {
	w.pushEntry(entry{width: w.width, kind: entryNextLine})
}

// LockOneShot converts all pending one-shot levels into ordinary
// ones and returns how many the caller must now pop explicitly. Use
// it when a one-shot indent has to survive past the write that would
// otherwise consume it.
func (w *Writer) LockOneShot() int {
	locked := w.stack.lockOneShots()
	if locked > 0 {
		w.trace("lock one-shot", locked)
	}
	return locked
}

// Pop removes the most recently pushed level. Popping an empty stack
// is a contract violation and panics.
func (w *Writer) Pop() {
	e := w.stack.pop()
	w.trace("pop "+e.kind.String(), e.width)
}

// Depth reports the number of levels currently on the indent stack.
func (w *Writer) Depth() int {
	return w.stack.len()
}

// LineOverIndented reports whether the indentation already applied to
// the current, non-empty line exceeds what the stack now computes as
// the target. It is a diagnostic for callers that pop indents after a
// line has been opened; it is vacuously false on an empty line.
func (w *Writer) LineOverIndented() bool {
	return !w.lineEmpty && w.appliedIndent > w.stack.currentWidth()
}

func (w *Writer) pushEntry(e entry) {
	if e.width < 0 {
		panic(fmt.Sprintf("indent: negative indent width %d", e.width))
	}
	w.stack.push(e)
	w.trace("push "+e.kind.String(), e.width)
}

// applyIndent fires exactly once per first write to a line: it emits
// the current indentation if there is any, consumes pending one-shot
// levels, and marks the line non-empty. Subsequent writes on the same
// line see lineEmpty == false and return immediately.
func (w *Writer) applyIndent() error {
	if !w.lineEmpty {
		return nil
	}
	if width := w.stack.currentWidth(); width > 0 {
		if err := w.repeatByte(' ', width); err != nil {
			return err
		}
		w.appliedIndent = width
	}
	if dropped := w.stack.dropOneShots(); dropped > 0 {
		w.trace("consume one-shot", dropped)
	}
	w.lineEmpty = false
	return nil
}

// endLine resets the line state and activates levels that were
// deferred to the next line.
func (w *Writer) endLine() {
	w.lineEmpty = true
	w.appliedIndent = 0
	if activated := w.stack.activateDeferred(); activated > 0 {
		w.trace("activate deferred", activated)
	}
}

// repeatByte emits n copies of b straight to the sink, in chunks of
// at most repeatChunk bytes. It deliberately bypasses Write so that
// indentation is not re-triggered.
func (w *Writer) repeatByte(b byte, n int) error {
	var buf [repeatChunk]byte
	chunk := buf[:min(n, repeatChunk)]
	for i := range chunk {
		chunk[i] = b
	}
	for n > 0 {
		c := chunk
		if n < len(c) {
			c = c[:n]
		}
		if err := w.drain(c); err != nil {
			return err
		}
		n -= len(c)
	}
	return nil
}

// drain forwards p to the sink, retrying on short writes until every
// byte is consumed or the sink reports an error. A write that makes
// no progress without erroring is surfaced as io.ErrShortWrite.
func (w *Writer) drain(p []byte) error {
	for len(p) > 0 {
		n, err := w.sink.Write(p)
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}

func (w *Writer) trace(event string, count int) {
	w.log.Trace().
		Int("count", count).
		Int("depth", w.stack.len()).
		Msg(event)
}
