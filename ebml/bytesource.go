// Package ebml implements the low-level Extensible Binary Meta Language
// primitives Matroska/WebM is built on: a caller-supplied byte source, the
// variable-length integer codec, element header framing, and the
// schema-directed descent algorithm used to walk a tree of elements.
//
// The package knows nothing about Matroska-specific element semantics; it
// only understands EBML framing rules. Matroska element IDs and their
// schema live in the importing package.
package ebml

import (
	"io"

	"github.com/pkg/errors"
)

// ReadOutcome distinguishes a full read from a soft end-of-stream. A
// ByteSource never returns a partial read: Read either copies len(buf)
// bytes and returns ReadOK, or copies nothing and returns ReadSoftEOS (or
// a non-nil error).
type ReadOutcome int

const (
	ReadOK ReadOutcome = iota
	ReadSoftEOS
)

// SeekWhence mirrors the three whence values a ByteSource is required to
// understand. Implementations that cannot support SeekEnd must fail that
// call; the core only uses it opportunistically.
type SeekWhence int

const (
	SeekSet SeekWhence = iota
	SeekCur
	SeekEnd
)

// ByteSource is the single abstraction every other component in this module
// reads through. It never retains ownership of the caller's buffer beyond
// the call, and it never blocks indefinitely — a caller that wants
// cancellation returns an error from Read or Seek.
type ByteSource interface {
	// Read fills buf completely (ReadOK) or, if the source has run out of
	// bytes without reaching permanent EOF (e.g. a still-downloading
	// file), copies nothing and reports ReadSoftEOS. A non-nil error is
	// fatal to the current operation.
	Read(buf []byte) (ReadOutcome, error)
	// Seek repositions the source. Implementations that cannot seek (or
	// cannot honor SeekEnd) return a non-nil error.
	Seek(offset int64, whence SeekWhence) error
	// Tell returns the current absolute offset.
	Tell() int64
}

// ErrSeekUnsupported is returned by a ByteSource whose underlying transport
// has no seek capability (e.g. a plain network stream).
var ErrSeekUnsupported = errors.New("ebml: seek not supported by this byte source")

// Source adapts an io.ReadSeeker into a ByteSource, optionally enforcing a
// read-limit cap the way nestegg's read_limit does: once the limit would be
// exceeded, further reads report soft EOS instead of an error, so a caller
// streaming a growing file can retry later.
type Source struct {
	r           io.ReadSeeker
	readLimit   int64 // 0 means unlimited
	pos         int64
	maxObserved int64
	canSeek     bool
}

// NewSource wraps r. A readLimit of 0 disables the cap.
func NewSource(r io.ReadSeeker, readLimit int64) *Source {
	return &Source{r: r, readLimit: readLimit, canSeek: true}
}

// NewStreamingSource wraps a plain io.Reader that offers no seek support.
// Seek calls always fail with ErrSeekUnsupported, matching spec.md's
// "ByteSource does not support seek" path through the segment assembler.
func NewStreamingSource(r io.Reader) *Source {
	return &Source{r: &nonSeekingReader{r: r}, canSeek: false}
}

type nonSeekingReader struct {
	r   io.Reader
	pos int64
}

func (n *nonSeekingReader) Read(p []byte) (int, error) {
	c, err := io.ReadFull(n.r, p)
	n.pos += int64(c)
	return c, err
}

func (n *nonSeekingReader) Seek(offset int64, whence int) (int64, error) {
	return 0, ErrSeekUnsupported
}

func (s *Source) Read(buf []byte) (ReadOutcome, error) {
	if len(buf) == 0 {
		return ReadOK, nil
	}
	if s.readLimit > 0 && s.pos+int64(len(buf)) > s.readLimit {
		return ReadSoftEOS, nil
	}
	n, err := io.ReadFull(s.r, buf)
	if err != nil {
		if err == io.EOF && n == 0 {
			return ReadSoftEOS, nil
		}
		if err == io.ErrUnexpectedEOF {
			// The source had some, but not all, of the requested bytes and
			// then hit a hard EOF: this is not a soft-EOS condition a
			// caller can retry past, it's truncation.
			return ReadOK, errors.Wrap(err, "ebml: truncated read")
		}
		return ReadOK, errors.Wrap(err, "ebml: read")
	}
	s.pos += int64(n)
	if s.pos > s.maxObserved {
		s.maxObserved = s.pos
	}
	return ReadOK, nil
}

func (s *Source) Seek(offset int64, whence SeekWhence) error {
	if !s.canSeek {
		return ErrSeekUnsupported
	}
	var w int
	switch whence {
	case SeekSet:
		w = io.SeekStart
	case SeekCur:
		w = io.SeekCurrent
	case SeekEnd:
		w = io.SeekEnd
	default:
		return errors.Errorf("ebml: unsupported whence %d", whence)
	}
	pos, err := s.r.Seek(offset, w)
	if err != nil {
		return errors.Wrap(err, "ebml: seek")
	}
	s.pos = pos
	return nil
}

func (s *Source) Tell() int64 { return s.pos }

// MaxObserved returns the highest absolute offset any Read has reached so
// far, regardless of subsequent seeks. Used by callers that want to know
// how much of a growing stream has actually been consumed.
func (s *Source) MaxObserved() int64 { return s.maxObserved }

// FakeEOSSource wraps a ByteSource with an adjustable soft-EOS cutoff. It
// exists for resumable-streaming tests and for the -r flag of the
// reference CLI driver: once Cutoff is set, reads and seeks past the
// cutoff behave as if the underlying source had not yet received those
// bytes, even though the real source could satisfy them. Extend grows the
// cutoff to simulate more bytes becoming available.
//
// This is deliberately an explicit, per-instance wrapper rather than a
// package-level flag: spec.md calls out that fuzz-harness soft-EOS markers
// are test-only and must not leak into global state.
type FakeEOSSource struct {
	inner  ByteSource
	cutoff int64 // -1 disables the cutoff
}

// NewFakeEOSSource wraps inner with no cutoff in effect.
func NewFakeEOSSource(inner ByteSource) *FakeEOSSource {
	return &FakeEOSSource{inner: inner, cutoff: -1}
}

// SetCutoff fixes the soft-EOS boundary at the given absolute offset.
func (f *FakeEOSSource) SetCutoff(offset int64) { f.cutoff = offset }

// Extend grows the cutoff by n bytes, simulating more data having arrived.
func (f *FakeEOSSource) Extend(n int64) {
	if f.cutoff >= 0 {
		f.cutoff += n
	}
}

// Cutoff returns the current soft-EOS boundary, or -1 if disabled.
func (f *FakeEOSSource) Cutoff() int64 { return f.cutoff }

func (f *FakeEOSSource) Read(buf []byte) (ReadOutcome, error) {
	if f.cutoff >= 0 {
		start := f.inner.Tell()
		end := start + int64(len(buf))
		if end > f.cutoff {
			return ReadSoftEOS, nil
		}
	}
	return f.inner.Read(buf)
}

func (f *FakeEOSSource) Seek(offset int64, whence SeekWhence) error {
	if f.cutoff >= 0 && whence == SeekSet && offset > f.cutoff {
		return errors.New("ebml: seek past fake EOS cutoff")
	}
	return f.inner.Seek(offset, whence)
}

func (f *FakeEOSSource) Tell() int64 { return f.inner.Tell() }
