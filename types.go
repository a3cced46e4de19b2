// Package webmdemux implements a WebM/Matroska demuxer core: it reads an
// EBML/Matroska container through a caller-supplied byte source and
// exposes segment metadata, tracks, and timestamped packets. It never
// decodes payload codecs, remuxes, or performs network transport.
package webmdemux

// TrackType is the on-wire TrackType enum (spec.md §3.1).
type TrackType uint64

const (
	TrackVideo    TrackType = TrackType(trackTypeVideo)
	TrackAudio    TrackType = TrackType(trackTypeAudio)
	TrackComplex  TrackType = TrackType(trackTypeComplex)
	TrackLogo     TrackType = TrackType(trackTypeLogo)
	TrackSubtitle TrackType = TrackType(trackTypeSubtitle)
	TrackButtons  TrackType = TrackType(trackTypeButtons)
	TrackControl  TrackType = TrackType(trackTypeControl)
)

// VideoParams holds the Video master's children for a video track
// (spec.md §3.1: display dimensions default to the encoded dimensions
// when absent; crop fields default to 0).
type VideoParams struct {
	PixelWidth     uint64
	PixelHeight    uint64
	DisplayWidth   uint64
	DisplayHeight  uint64
	FlagInterlaced bool
	StereoMode     uint64
	AlphaMode      uint64
	CropTop        uint64
	CropBottom     uint64
	CropLeft       uint64
	CropRight      uint64
}

// AudioParams holds the Audio master's children for an audio track.
type AudioParams struct {
	SamplingFrequency       float64
	OutputSamplingFrequency float64
	Channels                uint64
	BitDepth                uint64
}

// AESSettings holds the raw AESSettingsCipherMode value the
// ContentEncAESSettings element declares (0 when the element is absent).
// The block decoder does not consult it: the encryption signal byte alone
// decides whether an IV and subsample partition offsets follow.
type AESSettings struct {
	CipherMode uint64
}

// EncodingKind distinguishes a ContentEncoding's two possible payloads.
type EncodingKind int

const (
	EncodingNone EncodingKind = iota
	EncodingCompression
	EncodingEncryption
)

// Encoding is one entry of a track's ContentEncodings list, already
// resolved to the kind of transform it describes.
type Encoding struct {
	Order int
	Scope uint64
	Kind  EncodingKind

	// Compression
	HeaderStrip []byte

	// Encryption
	KeyID       []byte
	AESSettings AESSettings
}

// Track is a single TrackEntry, fully resolved.
type Track struct {
	Number          uint64
	UID             uint64
	Type            TrackType
	Enabled         bool
	Default         bool
	Forced          bool
	Lacing          bool
	DefaultDuration uint64
	Name            string
	Language        string
	CodecID         string
	CodecPrivate    []byte
	CodecName       string
	CodecDelay      uint64
	SeekPreRoll     uint64
	Video           *VideoParams
	Audio           *AudioParams
	Encodings       []Encoding
}

// SegmentMeta is the Info master's content (spec.md §3.1).
type SegmentMeta struct {
	UID             []byte
	TimestampScale  uint64
	Duration        float64
	DateUTC         int64
	Title           string
	MuxingApp       string
	WritingApp      string
}

// CuePoint is one parsed Cues entry, already flattened across its
// CueTrackPositions children into one record per (time, track).
//
// ClusterEnd is resolved lazily by Reader.CuePoint (spec.md §4.4): it is
// the start offset of the next distinct cluster referenced by the Cues
// index, or nil when this cue's cluster is the last one the index knows
// about.
type CuePoint struct {
	Time            uint64
	Track           uint64
	ClusterPosition uint64
	BlockNumber     uint64
	ClusterEnd      *uint64
}

// EncryptionSignal is the decoded first signal byte (and, when
// partitioned, the subsample offsets) that precede an encrypted frame's
// ciphertext, per spec.md §4.5.
type EncryptionSignal struct {
	Encrypted   bool
	Partitioned bool
	IV          []byte
	PartitionOffsets []uint32
}

// Packet is one demuxed frame, spanning exactly one laced sub-frame. Every
// timestamp-shaped field is in absolute nanoseconds
// (spec.md §3.2 invariant 6: timestamp_ns = (cluster_tc + delta) *
// timecode_scale), already scaled by SegmentMeta.TimestampScale — callers
// never multiply by TimestampScale themselves.
type Packet struct {
	Track uint64
	// Timestamp is the packet's absolute presentation time in nanoseconds.
	Timestamp int64
	Keyframe  bool
	// Duration is BlockDuration scaled to nanoseconds, or zero if absent.
	Duration uint64
	// DiscardPadding is already nanoseconds on the wire (spec.md §4.5); no
	// TimestampScale scaling applies to it.
	DiscardPadding int64
	// ReferenceBlock is the BlockGroup's ReferenceBlock delta, scaled to
	// signed nanoseconds, valid only when Keyframe is false (a Block with
	// no ReferenceBlock is itself a keyframe and never sets this field).
	ReferenceBlock  int64
	Data            []byte
	Encryption      *EncryptionSignal
	BlockAdditional map[uint64][]byte
}

// Cluster is the subset of a Cluster element's own fields a caller might
// want independent of the packets inside it (e.g. for seeking).
type Cluster struct {
	Timestamp uint64
	Position  int64
}

// SeekPoint is one resolved SeekHead entry.
type SeekPoint struct {
	ID       uint32
	Position uint64
}

// Chapter is one flattened ChapterAtom, using the first ChapterDisplay
// entry as its display string (additional translations are not modeled;
// spec.md's Non-goals don't ask for chapter localization).
type Chapter struct {
	UID        uint64
	TimeStart  uint64
	TimeEnd    uint64
	Title      string
	Language   string
}

// Tag is one flattened SimpleTag.
type Tag struct {
	TargetTypeValue uint64
	Name            string
	Value           string
}

// Attachment is one AttachedFile.
type Attachment struct {
	UID         uint64
	Description string
	Name        string
	MimeType    string
	Data        []byte
}
