package ebml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadVIntWidths(t *testing.T) {
	cases := []struct {
		name        string
		data        []byte
		keepMarker  bool
		wantValue   uint64
		wantWidth   uint8
	}{
		{"width1", []byte{0x85}, false, 5, 1},
		{"width1_keepMarker", []byte{0x85}, true, 0x85, 1},
		{"width2", []byte{0x41, 0x00}, false, 0x100, 2},
		{"width4_id", []byte{0x1A, 0x45, 0xDF, 0xA3}, true, 0x1A45DFA3, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			br := BitReader(NewSource(bytesReadSeeker(tc.data), 0))
			value, width, err := ReadVInt(br, tc.keepMarker)
			require.NoError(t, err)
			require.Equal(t, tc.wantWidth, width)
			require.Equal(t, tc.wantValue, value)
		})
	}
}

func TestReadVIntMalformed(t *testing.T) {
	br := BitReader(NewSource(bytesReadSeeker([]byte{0x00, 0xFF}), 0))
	_, _, err := ReadVInt(br, false)
	require.ErrorIs(t, err, ErrMalformedVint)
}

func TestIsUnknownSize(t *testing.T) {
	require.True(t, IsUnknownSize(0x7F, 1)) // width 1: all 7 data bits set
	require.False(t, IsUnknownSize(0x05, 1))
	require.True(t, IsUnknownSize((1<<14)-1, 2))
	require.False(t, IsUnknownSize((1<<14)-2, 2))
}

func TestReadSignedInt(t *testing.T) {
	require.EqualValues(t, -1, ReadSignedInt([]byte{0xFF}))
	require.EqualValues(t, 127, ReadSignedInt([]byte{0x7F}))
	require.EqualValues(t, -128, ReadSignedInt([]byte{0x80}))
	require.EqualValues(t, 0, ReadSignedInt(nil))
}

func TestReadFloatWidths(t *testing.T) {
	require.Equal(t, 0.0, ReadFloat(nil))
	require.InDelta(t, 1.5, ReadFloat([]byte{0x3F, 0xC0, 0x00, 0x00}), 0.0001)
	require.InDelta(t, 2.0, ReadFloat([]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}), 0.0001)
}

func TestReadVIntBytes(t *testing.T) {
	value, width, err := ReadVIntBytes([]byte{0x85, 0xFF}, false)
	require.NoError(t, err)
	require.EqualValues(t, 1, width)
	require.EqualValues(t, 5, value)
}

// bytesReadSeeker adapts a byte slice into an io.ReadSeeker for tests.
func bytesReadSeeker(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
