package webmdemux

import (
	"github.com/andrebraga/webmdemux/ebml"
	"github.com/pkg/errors"
)

const maxEncryptionPartitions = 15

const (
	lacingMask  = 0x06
	lacingNone  = 0x00
	lacingXiph  = 0x02
	lacingFixed = 0x04
	lacingEBML  = 0x06

	blockFlagKeyframe = 0x80
)

// clusterState tracks everything that carries across the children of a
// single Cluster, including frames whose timestamp couldn't be resolved
// yet because the Timestamp element arrived after them (spec.md §4.5's
// "late Timestamp" case). timestampScale is SegmentMeta.TimestampScale,
// carried here so every packet's final nanosecond timestamp
// (spec.md §3.2 invariant 6: timestamp_ns = (cluster_tc + delta) *
// timecode_scale) can be computed once, at the point its raw tick value
// is finalized — whether that's immediate or deferred to resolveTimestamp.
type clusterState struct {
	position       int64
	timestampScale uint64
	timestampKnown bool
	timestamp      uint64
	unresolved     []*Packet
}

// resolveTimestamp backfills every buffered packet once the cluster's own
// Timestamp element is seen, scaling each one's buffered raw relative
// delta (plus the now-known cluster base) into a final nanosecond
// timestamp, and arms direct resolution for everything read afterward.
func (c *clusterState) resolveTimestamp(v uint64) {
	c.timestamp = v
	c.timestampKnown = true
	for _, p := range c.unresolved {
		ticks := p.Timestamp + int64(v)
		p.Timestamp = ticks * int64(c.timestampScale)
	}
	c.unresolved = nil
}

func (c *clusterState) stampOrBuffer(p *Packet, relative int64) {
	if c.timestampKnown {
		ticks := relative + int64(c.timestamp)
		p.Timestamp = ticks * int64(c.timestampScale)
		return
	}
	p.Timestamp = relative
	c.unresolved = append(c.unresolved, p)
}

// parseClusterChild handles one child of a Cluster, returning any packets
// it produced. Called repeatedly by the Reader's packet loop so that a
// soft end-of-stream on one child doesn't lose packets already decoded
// from earlier children in the same Descend pass.
func parseClusterChild(cursor *ebml.Cursor, child ebml.ElementHeader, tracks map[uint64]*Track, state *clusterState, maxElementSize int64) ([]*Packet, error) {
	switch child.ID {
	case idTimestamp:
		v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
		if err != nil {
			return nil, err
		}
		state.resolveTimestamp(v)
		return nil, nil
	case idSimpleBlock:
		buf, err := readPayload(cursor.Src, child.Size, maxElementSize)
		if err != nil {
			return nil, err
		}
		return decodeSimpleBlock(buf, tracks, state)
	case idBlockGroup:
		return parseBlockGroup(cursor, child, tracks, state, maxElementSize)
	default:
		return nil, ebml.Skip(cursor.Src, child.Size)
	}
}

func decodeSimpleBlock(buf []byte, tracks map[uint64]*Track, state *clusterState) ([]*Packet, error) {
	trackNum, relative, flags, frames, enc, err := decodeBlockBody(buf, tracks)
	if err != nil {
		return nil, err
	}
	keyframe := flags&blockFlagKeyframe != 0
	packets := make([]*Packet, 0, len(frames))
	for _, f := range frames {
		p := &Packet{Track: trackNum, Keyframe: keyframe, Data: f, Encryption: enc}
		state.stampOrBuffer(p, int64(relative))
		packets = append(packets, p)
	}
	return packets, nil
}

// parseBlockGroup parses a BlockGroup's Block plus its sibling metadata
// (BlockDuration, ReferenceBlock, DiscardPadding, BlockAdditions).
func parseBlockGroup(cursor *ebml.Cursor, hdr ebml.ElementHeader, tracks map[uint64]*Track, state *clusterState, maxElementSize int64) ([]*Packet, error) {
	var packets []*Packet
	var hasReference bool
	var referenceBlockTicks int64
	var duration uint64
	var discardPadding int64
	additional := map[uint64][]byte{}

	err := walkChildren(cursor, idBlockGroup, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idBlock:
			buf, err := readPayload(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			trackNum, relative, _, frames, enc, err := decodeBlockBody(buf, tracks)
			if err != nil {
				return err
			}
			for _, f := range frames {
				p := &Packet{Track: trackNum, Data: f, Encryption: enc}
				state.stampOrBuffer(p, int64(relative))
				packets = append(packets, p)
			}
			return nil
		case idReferenceBlock:
			hasReference = true
			v, err := readLeafInt(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			referenceBlockTicks = v
			return nil
		case idBlockDuration:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			duration = v
			return nil
		case idDiscardPadding:
			v, err := readLeafInt(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			discardPadding = v
			return nil
		case idBlockAdditions:
			return walkChildren(cursor, idBlockAdditions, child.Size, child.Unknown, func(gc ebml.ElementHeader) error {
				if gc.ID != idBlockMore {
					return ebml.Skip(cursor.Src, gc.Size)
				}
				var addID uint64 = 1
				var data []byte
				err := walkChildren(cursor, idBlockMore, gc.Size, gc.Unknown, func(ggc ebml.ElementHeader) error {
					switch ggc.ID {
					case idBlockAddID:
						v, err := readLeafUint(cursor.Src, ggc.Size, maxElementSize)
						if err != nil {
							return err
						}
						addID = v
						return nil
					case idBlockAdditional:
						buf, err := readPayload(cursor.Src, ggc.Size, maxElementSize)
						if err != nil {
							return err
						}
						data = buf
						return nil
					}
					return ebml.Skip(cursor.Src, ggc.Size)
				})
				if err != nil {
					return err
				}
				additional[addID] = data
				return nil
			})
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
	})
	if err != nil {
		return nil, err
	}
	for _, p := range packets {
		p.Keyframe = !hasReference
		p.Duration = duration * state.timestampScale
		p.DiscardPadding = discardPadding
		if hasReference {
			p.ReferenceBlock = referenceBlockTicks * int64(state.timestampScale)
		}
		if len(additional) > 0 {
			p.BlockAdditional = additional
		}
	}
	return packets, nil
}

// decodeBlockBody parses the shared Block/SimpleBlock wire layout: track
// number vint, signed 16-bit relative timecode, flags byte, then either a
// lacing header (for plaintext blocks) or an encryption signal (for
// encrypted ones — WebM's content-encryption layer and classic lacing are
// mutually exclusive on a single block).
func decodeBlockBody(data []byte, tracks map[uint64]*Track) (trackNum uint64, relative int16, flags byte, frames [][]byte, enc *EncryptionSignal, err error) {
	trackNum, width, err := ebml.ReadVIntBytes(data, false)
	if err != nil {
		return 0, 0, 0, nil, nil, wrapErr(Malformed, err, "block track number")
	}
	data = data[width:]
	if len(data) < 3 {
		return 0, 0, 0, nil, nil, newParseError(Malformed, nil, "block header truncated")
	}
	relative = int16(uint16(data[0])<<8 | uint16(data[1]))
	flags = data[2]
	data = data[3:]

	track := tracks[trackNum]
	if track != nil && trackIsEncrypted(track) {
		sig, rest, perr := decodeEncryptionSignal(data)
		if perr != nil {
			return 0, 0, 0, nil, nil, perr
		}
		return trackNum, relative, flags, [][]byte{rest}, sig, nil
	}

	frames, err = splitLacing(data, flags)
	if err != nil {
		return 0, 0, 0, nil, nil, err
	}
	return trackNum, relative, flags, frames, nil, nil
}

func trackIsEncrypted(t *Track) bool {
	for _, e := range t.Encodings {
		if e.Kind == EncodingEncryption {
			return true
		}
	}
	return false
}

// decodeEncryptionSignal reads the one-byte signal (bit 0: encrypted, bit
// 1: partitioned) that precedes an encrypted block's ciphertext, followed
// by an 8-byte IV and, if partitioned, strictly increasing subsample
// partition offsets (spec.md §4.5).
func decodeEncryptionSignal(data []byte) (*EncryptionSignal, []byte, error) {
	if len(data) < 1 {
		return nil, nil, newParseError(Malformed, nil, "encryption signal byte missing")
	}
	signal := data[0]
	data = data[1:]
	sig := &EncryptionSignal{
		Encrypted:   signal&0x01 != 0,
		Partitioned: signal&0x02 != 0,
	}
	if !sig.Encrypted {
		return sig, data, nil
	}
	if len(data) < 8 {
		return nil, nil, newParseError(Malformed, nil, "encryption IV truncated")
	}
	sig.IV = append([]byte(nil), data[:8]...)
	data = data[8:]
	if !sig.Partitioned {
		return sig, data, nil
	}
	if len(data) < 1 {
		return nil, nil, newParseError(Malformed, nil, "partition count missing")
	}
	count := int(data[0])
	data = data[1:]
	if count > maxEncryptionPartitions {
		return nil, nil, newParseError(Malformed, nil, "too many encryption partitions")
	}
	if len(data) < count*4 {
		return nil, nil, newParseError(Malformed, nil, "partition offsets truncated")
	}
	offsets := make([]uint32, count)
	var prev uint32
	for i := 0; i < count; i++ {
		off := ebml.ReadUint(data[i*4 : i*4+4])
		v := uint32(off)
		if i > 0 && v <= prev {
			return nil, nil, newParseError(Malformed, nil, "partition offsets not strictly increasing")
		}
		offsets[i] = v
		prev = v
	}
	sig.PartitionOffsets = offsets
	return sig, data[count*4:], nil
}

// splitLacing splits a plaintext block's payload into its constituent
// frames according to the flags byte's lacing type.
func splitLacing(data []byte, flags byte) ([][]byte, error) {
	lacing := flags & lacingMask
	if lacing == lacingNone {
		return [][]byte{data}, nil
	}
	if len(data) < 1 {
		return nil, newParseError(Malformed, nil, "lacing frame count missing")
	}
	count := int(data[0]) + 1
	data = data[1:]

	sizes := make([]int, count)
	switch lacing {
	case lacingXiph:
		total := 0
		for i := 0; i < count-1; i++ {
			size := 0
			for {
				if len(data) < 1 {
					return nil, newParseError(Malformed, nil, "xiph lace size run truncated")
				}
				b := data[0]
				data = data[1:]
				size += int(b)
				if b != 0xFF {
					break
				}
			}
			sizes[i] = size
			total += size
		}
		sizes[count-1] = len(data) - total
	case lacingFixed:
		if count == 0 || len(data)%count != 0 {
			return nil, newParseError(Malformed, nil, "fixed lacing size doesn't divide evenly")
		}
		per := len(data) / count
		for i := range sizes {
			sizes[i] = per
		}
	case lacingEBML:
		first, width, err := ebml.ReadVIntBytes(data, false)
		if err != nil {
			return nil, wrapErr(Malformed, err, "ebml lace first size")
		}
		data = data[width:]
		sizes[0] = int(first)
		total := sizes[0]
		prev := int64(first)
		for i := 1; i < count-1; i++ {
			delta, w, err := readEBMLSignedLaceDelta(data)
			if err != nil {
				return nil, err
			}
			data = data[w:]
			prev += delta
			if prev < 0 {
				return nil, newParseError(Malformed, nil, "ebml lace size went negative")
			}
			sizes[i] = int(prev)
			total += sizes[i]
		}
		sizes[count-1] = len(data) - total
	default:
		return nil, errors.Errorf("webmdemux: unreachable lacing value %d", lacing)
	}

	frames := make([][]byte, count)
	offset := 0
	for i, size := range sizes {
		if size < 0 || offset+size > len(data) {
			return nil, newParseError(Malformed, nil, "lace size exceeds block payload")
		}
		frames[i] = data[offset : offset+size]
		offset += size
	}
	return frames, nil
}

// readEBMLSignedLaceDelta decodes one EBML-laced size delta: a VINT whose
// value is biased by half its width's representable range so it can
// express a signed difference from the previous frame's size.
func readEBMLSignedLaceDelta(data []byte) (int64, uint8, error) {
	raw, width, err := ebml.ReadVIntBytes(data, false)
	if err != nil {
		return 0, 0, wrapErr(Malformed, err, "ebml lace delta")
	}
	bias := int64(1)<<(7*uint(width)-1) - 1
	return int64(raw) - bias, width, nil
}
