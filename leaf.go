package webmdemux

import (
	"github.com/andrebraga/webmdemux/ebml"
)

// defaultMaxElementSize is the §5 "resource discipline" cap: no single
// leaf element payload is read into memory above this size without the
// caller opting in via WithMaxElementSize.
const defaultMaxElementSize = 16 * 1024 * 1024

// readPayload reads exactly size bytes of a leaf element's payload,
// rejecting anything above maxSize before allocating the buffer so a
// corrupt or hostile size field can't force an enormous allocation.
func readPayload(src ebml.ByteSource, size uint64, maxSize int64) ([]byte, error) {
	if maxSize > 0 && int64(size) > maxSize {
		return nil, newParseError(Malformed, nil, "element payload exceeds configured size cap")
	}
	buf := make([]byte, size)
	outcome, err := src.Read(buf)
	if err != nil {
		return nil, wrapErr(Io, err, "read element payload")
	}
	if outcome == ebml.ReadSoftEOS {
		return nil, newParseError(SoftEos, ebml.ErrSoftEOS, "payload truncated by soft end of stream")
	}
	return buf, nil
}

func readLeafUint(src ebml.ByteSource, size uint64, maxSize int64) (uint64, error) {
	buf, err := readPayload(src, size, maxSize)
	if err != nil {
		return 0, err
	}
	return ebml.ReadUint(buf), nil
}

func readLeafInt(src ebml.ByteSource, size uint64, maxSize int64) (int64, error) {
	buf, err := readPayload(src, size, maxSize)
	if err != nil {
		return 0, err
	}
	return ebml.ReadSignedInt(buf), nil
}

func readLeafFloat(src ebml.ByteSource, size uint64, maxSize int64) (float64, error) {
	buf, err := readPayload(src, size, maxSize)
	if err != nil {
		return 0, err
	}
	return ebml.ReadFloat(buf), nil
}

func readLeafString(src ebml.ByteSource, size uint64, maxSize int64) (string, error) {
	buf, err := readPayload(src, size, maxSize)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
