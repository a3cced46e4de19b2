package ebml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceReadFullOrSoftEOS(t *testing.T) {
	src := NewSource(bytes.NewReader([]byte("hello world")), 0)
	buf := make([]byte, 5)
	outcome, err := src.Read(buf)
	require.NoError(t, err)
	require.Equal(t, ReadOK, outcome)
	require.Equal(t, "hello", string(buf))

	// Ask for more than remains: bytes.Reader yields io.ErrUnexpectedEOF via
	// io.ReadFull, which must NOT be treated as a retryable soft EOS.
	tail := make([]byte, 100)
	_, err = src.Read(tail)
	require.Error(t, err)
}

func TestSourceReadLimitProducesSoftEOS(t *testing.T) {
	src := NewSource(bytes.NewReader([]byte("0123456789")), 4)
	buf := make([]byte, 4)
	outcome, err := src.Read(buf)
	require.NoError(t, err)
	require.Equal(t, ReadOK, outcome)

	outcome, err = src.Read(buf)
	require.NoError(t, err)
	require.Equal(t, ReadSoftEOS, outcome)
}

func TestStreamingSourceRejectsSeek(t *testing.T) {
	src := NewStreamingSource(bytes.NewReader([]byte("abc")))
	err := src.Seek(1, SeekSet)
	require.ErrorIs(t, err, ErrSeekUnsupported)
}

func TestFakeEOSSourceCutoff(t *testing.T) {
	base := NewSource(bytes.NewReader([]byte("0123456789")), 0)
	fake := NewFakeEOSSource(base)
	fake.SetCutoff(4)

	buf := make([]byte, 4)
	outcome, err := fake.Read(buf)
	require.NoError(t, err)
	require.Equal(t, ReadOK, outcome)

	outcome, err = fake.Read(buf)
	require.NoError(t, err)
	require.Equal(t, ReadSoftEOS, outcome)

	fake.Extend(4)
	outcome, err = fake.Read(buf)
	require.NoError(t, err)
	require.Equal(t, ReadOK, outcome)
}
