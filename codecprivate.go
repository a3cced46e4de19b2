package webmdemux

import "github.com/pkg/errors"

// SplitCodecPrivate interprets a track's CodecPrivate blob according to
// its codec, per spec.md §4.7. A_VORBIS and V_THEORA bundle their
// sub-headers (Vorbis: identification/comment/setup; Theora: three
// header packets) using the same Xiph lacing byte-run length prefix the
// block layer uses for laced frames; every other codec's CodecPrivate is
// a single opaque blob handed back unsplit.
func SplitCodecPrivate(codecID string, data []byte) ([][]byte, error) {
	switch codecID {
	case "A_VORBIS", "V_THEORA":
		headers, err := splitXiphHeaders(data)
		if err != nil {
			return nil, wrapErr(Malformed, err, "split codec private")
		}
		return headers, nil
	default:
		return [][]byte{data}, nil
	}
}

// splitXiphHeaders parses the "count-1, then (count-1) Xiph-style
// lengths, then that many headers plus one final header filling the
// remainder" layout Vorbis and Theora both use for CodecPrivate.
func splitXiphHeaders(data []byte) ([][]byte, error) {
	if len(data) < 1 {
		return nil, errors.New("webmdemux: codec private too short for xiph headers")
	}
	count := int(data[0]) + 1
	offset := 1
	sizes := make([]int, count)
	for i := 0; i < count-1; i++ {
		size := 0
		for {
			if offset >= len(data) {
				return nil, errors.New("webmdemux: codec private truncated in xiph length run")
			}
			b := data[offset]
			offset++
			size += int(b)
			if b != 0xFF {
				break
			}
		}
		sizes[i] = size
	}
	headers := make([][]byte, count)
	for i := 0; i < count-1; i++ {
		if offset+sizes[i] > len(data) {
			return nil, errors.New("webmdemux: codec private header exceeds buffer")
		}
		headers[i] = data[offset : offset+sizes[i]]
		offset += sizes[i]
	}
	if offset > len(data) {
		return nil, errors.New("webmdemux: codec private truncated before final header")
	}
	headers[count-1] = data[offset:]
	return headers, nil
}
