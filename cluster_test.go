package webmdemux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLacingNone(t *testing.T) {
	frames, err := splitLacing([]byte("hello"), lacingNone)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Equal(t, []byte("hello"), frames[0])
}

func TestSplitLacingFixed(t *testing.T) {
	// 3 frames (count byte = 2), 9 bytes total -> 3 bytes each.
	data := []byte{0x02, 'a', 'a', 'a', 'b', 'b', 'b', 'c', 'c', 'c'}
	frames, err := splitLacing(data, lacingFixed)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	require.Equal(t, []byte("aaa"), frames[0])
	require.Equal(t, []byte("bbb"), frames[1])
	require.Equal(t, []byte("ccc"), frames[2])
}

func TestSplitLacingFixedUnevenIsError(t *testing.T) {
	data := []byte{0x02, 'a', 'a', 'a', 'b'}
	_, err := splitLacing(data, lacingFixed)
	require.Error(t, err)
}

func TestSplitLacingXiph(t *testing.T) {
	// 2 frames (count byte = 1): one length-run byte (4) for frame0,
	// frame0 is 4 bytes, frame1 fills the remainder (2 bytes).
	data := []byte{0x01, 0x04, 'a', 'a', 'a', 'a', 'b', 'b'}
	frames, err := splitLacing(data, lacingXiph)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, []byte("aaaa"), frames[0])
	require.Equal(t, []byte("bb"), frames[1])
}

func TestSplitLacingEBML(t *testing.T) {
	// 2 frames (count byte = 1): first size is a VINT (0x84 -> 4), frame0
	// is 4 bytes, frame1 fills the remainder (3 bytes). Two-frame EBML
	// lacing never encodes a delta (only count-1... wait count-1=1 means
	// one explicit size, the rest is implicit), matching splitLacing's
	// loop bound of count-1 exclusive of the final frame.
	data := []byte{0x01, 0x84, 'w', 'x', 'y', 'z', 'q', 'r', 's'}
	frames, err := splitLacing(data, lacingEBML)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, []byte("wxyz"), frames[0])
	require.Equal(t, []byte("qrs"), frames[1])
}

func TestSplitLacingOverrunIsError(t *testing.T) {
	data := []byte{0x01, 0x04, 'a'}
	_, err := splitLacing(data, lacingXiph)
	require.Error(t, err)
}

func TestDecodeEncryptionSignalUnencrypted(t *testing.T) {
	data := []byte{0x00, 'p', 'l', 'a', 'i', 'n'}
	sig, rest, err := decodeEncryptionSignal(data)
	require.NoError(t, err)
	require.False(t, sig.Encrypted)
	require.Equal(t, []byte("plain"), rest)
}

func TestDecodeEncryptionSignalEncryptedNotPartitioned(t *testing.T) {
	iv := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	data := append([]byte{0x01}, iv...)
	data = append(data, []byte("cipher")...)
	sig, rest, err := decodeEncryptionSignal(data)
	require.NoError(t, err)
	require.True(t, sig.Encrypted)
	require.False(t, sig.Partitioned)
	require.Equal(t, iv, sig.IV)
	require.Equal(t, []byte("cipher"), rest)
}

func TestDecodeEncryptionSignalPartitionedOffsetsMustIncrease(t *testing.T) {
	iv := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	data := append([]byte{0x03}, iv...)
	data = append(data, 0x02) // 2 partitions
	data = append(data, 0, 0, 0, 10)
	data = append(data, 0, 0, 0, 10) // not strictly increasing
	_, _, err := decodeEncryptionSignal(data)
	require.Error(t, err)
}

func TestDecodeEncryptionSignalTooManyPartitions(t *testing.T) {
	iv := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	data := append([]byte{0x03}, iv...)
	data = append(data, byte(maxEncryptionPartitions+1))
	_, _, err := decodeEncryptionSignal(data)
	require.Error(t, err)
}

func TestDecodeBlockBodyPlaintextNoLacing(t *testing.T) {
	// track number vint 0x81 (=1), relative timecode 0x0005, flags 0x00,
	// then payload.
	data := []byte{0x81, 0x00, 0x05, 0x00}
	data = append(data, []byte("frame")...)
	trackNum, relative, flags, frames, enc, err := decodeBlockBody(data, map[uint64]*Track{})
	require.NoError(t, err)
	require.EqualValues(t, 1, trackNum)
	require.EqualValues(t, 5, relative)
	require.EqualValues(t, 0, flags)
	require.Nil(t, enc)
	require.Len(t, frames, 1)
	require.Equal(t, []byte("frame"), frames[0])
}

func TestDecodeBlockBodyEncryptedBypassesLacing(t *testing.T) {
	tracks := map[uint64]*Track{
		1: {Number: 1, Encodings: []Encoding{{Kind: EncodingEncryption}}},
	}
	iv := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	data := []byte{0x81, 0x00, 0x05, lacingXiph} // flags carry a lacing bit that must be ignored
	data = append(data, 0x01)                    // signal: encrypted, not partitioned
	data = append(data, iv...)
	data = append(data, []byte("ciphertext")...)

	trackNum, _, _, frames, enc, err := decodeBlockBody(data, tracks)
	require.NoError(t, err)
	require.EqualValues(t, 1, trackNum)
	require.NotNil(t, enc)
	require.True(t, enc.Encrypted)
	require.Len(t, frames, 1)
	require.Equal(t, []byte("ciphertext"), frames[0])
}

func TestClusterStateLateTimestampBuffersThenResolves(t *testing.T) {
	state := &clusterState{timestampScale: 1}
	p1 := &Packet{}
	p2 := &Packet{}
	state.stampOrBuffer(p1, 10)
	state.stampOrBuffer(p2, 20)
	require.Len(t, state.unresolved, 2)

	state.resolveTimestamp(1000)
	require.Empty(t, state.unresolved)
	require.EqualValues(t, 1010, p1.Timestamp)
	require.EqualValues(t, 1020, p2.Timestamp)

	p3 := &Packet{}
	state.stampOrBuffer(p3, 5)
	require.EqualValues(t, 1005, p3.Timestamp)
	require.Empty(t, state.unresolved)
}

func TestDecodeSimpleBlockKeyframeFlag(t *testing.T) {
	state := &clusterState{timestampKnown: true, timestamp: 0, timestampScale: 1}
	data := []byte{0x81, 0x00, 0x00, blockFlagKeyframe}
	data = append(data, []byte("kf")...)
	packets, err := decodeSimpleBlock(data, map[uint64]*Track{}, state)
	require.NoError(t, err)
	require.Len(t, packets, 1)
	require.True(t, packets[0].Keyframe)
}

func TestReadEBMLSignedLaceDelta(t *testing.T) {
	// width-1 VINT: bias = (1<<6)-1 = 63. Raw value 0x80|63 -> delta 0.
	raw := []byte{0x80 | 63}
	delta, width, err := readEBMLSignedLaceDelta(raw)
	require.NoError(t, err)
	require.EqualValues(t, 1, width)
	require.EqualValues(t, 0, delta)
}
