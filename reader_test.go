package webmdemux

import (
	"bytes"
	"testing"

	"github.com/andrebraga/webmdemux/ebml"
	"github.com/stretchr/testify/require"
)

// encodeID emits the minimal big-endian bytes for an EBML ID constant that
// already carries its own length-marker bit (as every idXxx constant in
// ids.go does), by trimming the leading all-zero bytes of its uint32 form.
func encodeID(id uint32) []byte {
	b := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	for i, v := range b {
		if v != 0 {
			return b[i:]
		}
	}
	return []byte{0}
}

// encodeSize emits a minimal-width EBML size VINT for n, reserving the
// all-ones sentinel of whatever width is chosen for "unknown length" so a
// legitimate size is never mistaken for it.
func encodeSize(n uint64) []byte {
	for w := uint8(1); w <= 8; w++ {
		maxVal := uint64(1)<<(7*w) - 2
		if n <= maxVal {
			buf := make([]byte, w)
			v := n
			for i := int(w) - 1; i >= 0; i-- {
				buf[i] = byte(v)
				v >>= 8
			}
			buf[0] |= byte(1) << (8 - w)
			return buf
		}
	}
	panic("size too large for test helper")
}

func elem(id uint32, payload []byte) []byte {
	out := append([]byte{}, encodeID(id)...)
	out = append(out, encodeSize(uint64(len(payload)))...)
	return append(out, payload...)
}

func uintPayload(v uint64) []byte {
	b := []byte{byte(v)}
	v >>= 8
	for v != 0 {
		b = append([]byte{byte(v)}, b...)
		v >>= 8
	}
	return b
}

func leafUint(id uint32, v uint64) []byte  { return elem(id, uintPayload(v)) }
func leafString(id uint32, s string) []byte { return elem(id, []byte(s)) }

// buildFixture assembles a minimal but complete webm stream: an EBML
// header, a bounded Segment with Info/Tracks/Cues, and one Cluster holding
// a single keyframe SimpleBlock on track 1.
func buildFixture() []byte {
	ebmlHeader := elem(idEBMLHeader, leafString(idEBMLDocType, "webm"))

	info := elem(idInfo, concatAll(
		leafUint(idTimestampScale, 1000000),
		leafString(idTitle, "fixture"),
	))

	trackEntry := elem(idTrackEntry, concatAll(
		leafUint(idTrackNumber, 1),
		leafUint(idTrackUID, 42),
		leafUint(idTrackType, trackTypeAudio),
		leafString(idCodecID, "A_OPUS"),
		leafUint(idFlagLacing, 0),
	))
	tracks := elem(idTracks, trackEntry)

	cueTrackPositions := elem(idCueTrackPositions, concatAll(
		leafUint(idCueTrack, 1),
		leafUint(idCueClusterPosition, 0),
	))
	cuePoint := elem(idCuePoint, concatAll(
		leafUint(idCueTime, 100),
		cueTrackPositions,
	))
	cues := elem(idCues, cuePoint)

	simpleBlockPayload := concatAll(
		[]byte{0x81, 0x00, 0x00, blockFlagKeyframe},
		[]byte("abc"),
	)
	simpleBlock := elem(idSimpleBlock, simpleBlockPayload)
	cluster := elem(idCluster, concatAll(
		leafUint(idTimestamp, 100),
		simpleBlock,
	))

	segment := elem(idSegment, concatAll(info, tracks, cues, cluster))
	return concatAll(ebmlHeader, segment)
}

func concatAll(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestReaderInitAndReadPacket(t *testing.T) {
	data := buildFixture()
	src := ebml.NewSource(bytes.NewReader(data), 0)
	r := NewReader(src)
	require.NoError(t, r.Init())

	meta := r.Meta()
	require.Equal(t, "fixture", meta.Title)
	require.EqualValues(t, 1000000, meta.TimestampScale)

	require.Equal(t, 1, r.TrackCount())
	tr, err := r.Track(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, tr.Number)
	require.Equal(t, TrackAudio, tr.Type)
	require.Equal(t, "A_OPUS", tr.CodecID)
	require.False(t, tr.Lacing)

	require.Equal(t, 1, r.CueCount())
	cue, err := r.CuePoint(0)
	require.NoError(t, err)
	require.EqualValues(t, 100, cue.Time)
	require.EqualValues(t, 1, cue.Track)

	p, err := r.ReadPacket()
	require.NoError(t, err)
	require.EqualValues(t, 1, p.Track)
	require.EqualValues(t, 100000000, p.Timestamp)
	require.True(t, p.Keyframe)
	require.Equal(t, []byte("abc"), p.Data)

	_, err = r.ReadPacket()
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, Absent, pe.Kind)
}

func TestReaderRejectsUnsupportedDocType(t *testing.T) {
	bad := elem(idEBMLHeader, leafString(idEBMLDocType, "matroska-weird"))
	src := ebml.NewSource(bytes.NewReader(bad), 0)
	r := NewReader(src)
	err := r.Init()
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, Init, pe.Kind)
}

func TestReaderResumesAcrossSoftEOS(t *testing.T) {
	data := buildFixture()
	base := ebml.NewSource(bytes.NewReader(data), 0)
	fake := ebml.NewFakeEOSSource(base)
	fake.SetCutoff(int64(len(data) / 2))

	r := NewReader(fake)
	for {
		err := r.Init()
		if err == nil {
			break
		}
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, SoftEos, pe.Kind)
		fake.Extend(int64(len(data)))
	}

	for {
		p, err := r.ReadPacket()
		if err == nil {
			require.EqualValues(t, 1, p.Track)
			break
		}
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		if pe.Kind == Absent {
			t.Fatal("expected the buffered packet before absent, got absent first")
		}
		require.Equal(t, SoftEos, pe.Kind)
		fake.Extend(int64(len(data)))
	}
}
