package webmdemux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCodecPrivatePassthrough(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	headers, err := SplitCodecPrivate("V_VP8", data)
	require.NoError(t, err)
	require.Len(t, headers, 1)
	require.Equal(t, data, headers[0])
}

func TestSplitCodecPrivateXiphTwoHeaders(t *testing.T) {
	// count-1 = 1 (two headers), one length-run byte for header 0's size
	// (3), then header0 (3 bytes) then header1 fills the remainder (2
	// bytes).
	data := []byte{0x01, 0x03, 'a', 'b', 'c', 'x', 'y'}
	headers, err := SplitCodecPrivate("A_VORBIS", data)
	require.NoError(t, err)
	require.Len(t, headers, 2)
	require.Equal(t, []byte("abc"), headers[0])
	require.Equal(t, []byte("xy"), headers[1])
}

func TestSplitCodecPrivateXiphThreeHeadersWithFFRun(t *testing.T) {
	// count-1 = 2 (three headers). header0 size 255+10=265 encoded as a
	// 0xFF run followed by a terminating byte (10); header1 size 1.
	var data []byte
	data = append(data, 0x02)
	data = append(data, 0xFF, 0x0A) // size 265
	data = append(data, 0x01)       // size 1
	header0 := make([]byte, 265)
	for i := range header0 {
		header0[i] = byte(i)
	}
	data = append(data, header0...)
	data = append(data, 'Z')
	data = append(data, []byte("trailer")...)

	headers, err := SplitCodecPrivate("A_VORBIS", data)
	require.NoError(t, err)
	require.Len(t, headers, 3)
	require.Equal(t, header0, headers[0])
	require.Equal(t, []byte("Z"), headers[1])
	require.Equal(t, []byte("trailer"), headers[2])
}

func TestSplitCodecPrivateXiphTruncated(t *testing.T) {
	_, err := SplitCodecPrivate("V_THEORA", []byte{0x01, 0xFF})
	require.Error(t, err)
}

func TestSplitCodecPrivateXiphHeaderExceedsBuffer(t *testing.T) {
	data := []byte{0x01, 0x05, 'a'}
	_, err := SplitCodecPrivate("A_VORBIS", data)
	require.Error(t, err)
}
