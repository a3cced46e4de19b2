package ebml

import (
	"github.com/pkg/errors"
)

// ErrUnknownSizeInBoundedMaster is returned when an element with unknown
// size appears as an unexpected child of a master whose own size is known:
// there is no way to skip past it without reading the stream semantically,
// so Descend gives up rather than guess.
var ErrUnknownSizeInBoundedMaster = errors.New("ebml: unknown-size element inside a bounded master")

// Budget tracks how many payload bytes remain for the master currently
// being descended into. Unknown masters (size sentinel) never run out on
// their own; they close only when an element arrives that isn't a legal
// child (spec.md §4.3).
type Budget struct {
	Remaining uint64
	Unknown   bool
}

// Exhausted reports whether a bounded budget has no bytes left.
func (b *Budget) Exhausted() bool {
	return !b.Unknown && b.Remaining == 0
}

// Consume subtracts n bytes from a bounded budget, clamping at zero rather
// than underflowing if a child's accounted size overruns what was left
// (which Descend treats as the parent ending exactly there).
func (b *Budget) Consume(n uint64) {
	if b.Unknown {
		return
	}
	if n >= b.Remaining {
		b.Remaining = 0
		return
	}
	b.Remaining -= n
}

// Cursor reads element headers from a ByteSource, with a one-element
// pushback slot. Pushback is how Descend implements "bubble an
// unrecognized element up to an ancestor": the bubbling master hands the
// header back to the cursor instead of trying to unread raw bytes, and
// the next Descend call pulls it from there before touching the stream.
type Cursor struct {
	Src     ByteSource
	br      *bitReaderHandle
	pending *ElementHeader
}

// bitReaderHandle exists only so Cursor can hold the bitio.Reader without
// importing it into this file's exported surface.
type bitReaderHandle struct {
	read func() (ElementHeader, error)
}

// NewCursor builds a Cursor reading from src.
func NewCursor(src ByteSource) *Cursor {
	br := BitReader(src)
	return &Cursor{
		Src: src,
		br: &bitReaderHandle{
			read: func() (ElementHeader, error) { return ReadElementHeader(br) },
		},
	}
}

// Next returns the next element header: the pending pushback if one is
// set, otherwise freshly read from the underlying source.
func (c *Cursor) Next() (ElementHeader, error) {
	if c.pending != nil {
		h := *c.pending
		c.pending = nil
		return h, nil
	}
	return c.br.read()
}

// PushBack makes the next Next() call return hdr instead of reading.
// At most one header can be pending at a time.
func (c *Cursor) PushBack(hdr ElementHeader) {
	c.pending = &hdr
}

// Tell returns the underlying source's current offset.
func (c *Cursor) Tell() int64 {
	return c.Src.Tell()
}

// Skip discards n payload bytes, seeking past them when the source
// supports it and falling back to a read-and-discard loop otherwise.
func Skip(src ByteSource, n uint64) error {
	if n == 0 {
		return nil
	}
	if err := src.Seek(int64(n), SeekCur); err == nil {
		return nil
	} else if !errors.Is(err, ErrSeekUnsupported) {
		return err
	}
	buf := make([]byte, 32*1024)
	for n > 0 {
		chunk := n
		if chunk > uint64(len(buf)) {
			chunk = uint64(len(buf))
		}
		outcome, err := src.Read(buf[:chunk])
		if err != nil {
			return err
		}
		if outcome == ReadSoftEOS {
			return ErrSoftEOS
		}
		n -= chunk
	}
	return nil
}

// Descend walks the children of a single master element until its budget
// is exhausted (bounded master) or an element arrives that allowed
// rejects (unbounded master, which is how an unknown-size master learns
// it has ended). This is spec.md §4.3's descent algorithm:
//
//   - A child ID that allowed accepts is handed to visit, which is
//     responsible for consuming exactly that child's payload (reading a
//     leaf value, or recursing into it as a nested master).
//   - A child ID that allowed rejects is, for a bounded master, skipped as
//     an unrecognized-but-harmless element (spec.md's "an application
//     should tolerate element IDs it doesn't know about"); for an unbounded
//     master, it means this master is over — the header is pushed back onto
//     cursor for an ancestor Descend call to evaluate, and this call
//     returns cleanly.
//   - A soft end-of-stream while reading the next header is a clean close
//     for an unbounded master (the stream simply ended here) and a
//     truncation error for a bounded one (more bytes were promised).
//
// visit must not advance the cursor beyond hdr's own payload; Descend
// measures actual bytes consumed via cursor.Tell() deltas so nested
// unbounded masters are accounted correctly against a bounded ancestor.
func Descend(cursor *Cursor, budget *Budget, allowed func(id uint32) bool, visit func(hdr ElementHeader) error) error {
	for {
		if budget.Exhausted() {
			return nil
		}
		start := cursor.Tell()
		hdr, err := cursor.Next()
		if err != nil {
			if errors.Is(err, ErrSoftEOS) {
				if budget.Unknown {
					return nil
				}
				return errors.Wrap(ErrSoftEOS, "ebml: truncated master")
			}
			return err
		}
		if !allowed(hdr.ID) {
			if budget.Unknown {
				cursor.PushBack(hdr)
				return nil
			}
			if hdr.Unknown {
				return ErrUnknownSizeInBoundedMaster
			}
			if err := Skip(cursor.Src, hdr.Size); err != nil {
				return err
			}
			budget.Consume(uint64(cursor.Tell() - start))
			continue
		}
		if err := visit(hdr); err != nil {
			return err
		}
		budget.Consume(uint64(cursor.Tell() - start))
	}
}
