package webmdemux

import (
	"github.com/andrebraga/webmdemux/ebml"
	"github.com/pkg/errors"
)

// Kind classifies a ParseError the way spec.md §7 requires so a caller
// can decide whether to abort, skip a track, or retry.
type Kind int

const (
	// Init: the stream never looked like Matroska/WebM (bad EBML header,
	// missing/unsupported DocType).
	Init Kind = iota
	// Io: the underlying ByteSource reported a hard error.
	Io
	// Malformed: the stream is Matroska but violates a structural
	// invariant (bad VINT, lacing arithmetic that doesn't sum to the parent
	// size, and so on). The schema's occurrence rules (mandatory or
	// singleton children) are not checked by the parser.
	Malformed
	// Unsupported: a well-formed construct this demuxer deliberately
	// doesn't implement. No operation in this package returns this kind.
	Unsupported
	// Absent: the caller asked for something that is legitimately not
	// present (no Cues, no track N, no chapters).
	Absent
	// SoftEos: the ByteSource ran out of bytes mid-parse and the caller
	// may retry after extending the source (see Reader.ReadReset).
	SoftEos
)

func (k Kind) String() string {
	switch k {
	case Init:
		return "init"
	case Io:
		return "io"
	case Malformed:
		return "malformed"
	case Unsupported:
		return "unsupported"
	case Absent:
		return "absent"
	case SoftEos:
		return "soft_eos"
	default:
		return "unknown"
	}
}

// ParseError is the error type every exported operation in this package
// returns on failure. Kind lets a caller branch without string matching;
// Unwrap exposes the underlying github.com/pkg/errors-wrapped cause so
// errors.Is/errors.As still reach sentinels like ebml.ErrSoftEOS.
type ParseError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.cause.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *ParseError) Unwrap() error { return e.cause }

func newParseError(kind Kind, cause error, msg string) *ParseError {
	return &ParseError{Kind: kind, Message: msg, cause: cause}
}

// wrapErr maps a lower-level error (from the ebml package or pkg/errors)
// to a ParseError of the given kind. An already-classified ParseError is
// returned as is, and an error wrapping ebml.ErrSoftEOS becomes SoftEos
// whatever kind was asked for. It is the single place in the package that
// knows how to do this mapping.
func wrapErr(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	if errors.Is(err, ebml.ErrSoftEOS) {
		return newParseError(SoftEos, err, msg)
	}
	return newParseError(kind, err, msg)
}
