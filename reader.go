package webmdemux

import (
	"github.com/andrebraga/webmdemux/ebml"
	"github.com/pkg/errors"
)

// Option configures a Reader at construction time.
type Option func(*Reader)

// WithMaxElementSize overrides the default 16 MiB cap on any single leaf
// element payload this Reader will allocate for (spec.md §5).
func WithMaxElementSize(n int64) Option {
	return func(r *Reader) { r.maxElementSize = n }
}

// Reader is the public entry point: it owns a ByteSource and exposes
// segment metadata, tracks, and a pull-based packet stream.
type Reader struct {
	src            ebml.ByteSource
	cursor         *ebml.Cursor
	maxElementSize int64

	seg *segment

	trackByNumber map[uint64]*Track

	clusterOpen      bool
	clusterState     *clusterState
	clusterBudget    *ebml.Budget
	clusterHeaderLen uint64

	pendingQueue []*Packet
	fatal        error
}

// NewReader constructs a Reader over src. Call Init before using any
// other method.
func NewReader(src ebml.ByteSource, opts ...Option) *Reader {
	r := &Reader{
		src:            src,
		cursor:         ebml.NewCursor(src),
		maxElementSize: defaultMaxElementSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init reads the EBML header and the Segment's metadata masters (Info,
// Tracks, SeekHead, Cues, Chapters, Tags, Attachments), stopping once it
// reaches the first Cluster. Packets are read lazily afterward via
// ReadPacket.
//
// If Init fails with a SoftEos error, the source is seeked back to where
// Init started, so the caller may extend the source and call Init again.
func (r *Reader) Init() (err error) {
	start := r.src.Tell()
	defer func() {
		if isSoftEos(err) {
			if serr := r.src.Seek(start, ebml.SeekSet); serr == nil {
				r.cursor = ebml.NewCursor(r.src)
			}
		}
	}()
	if err := r.parseEBMLHeader(); err != nil {
		return err
	}
	topBudget := &ebml.Budget{Unknown: true}
	foundSegment := false
	err = ebml.Descend(r.cursor, topBudget, childAllower(0), func(hdr ebml.ElementHeader) error {
		if hdr.ID != idSegment {
			return ebml.Skip(r.src, hdr.Size)
		}
		seg, err := parseSegment(r.cursor, hdr, r.maxElementSize)
		if err != nil {
			return err
		}
		r.seg = seg
		foundSegment = true
		return nil
	})
	if err != nil {
		return wrapErr(Malformed, err, "parse top level")
	}
	if !foundSegment {
		return newParseError(Init, nil, "no Segment element found")
	}
	r.trackByNumber = make(map[uint64]*Track, len(r.seg.tracks))
	for i := range r.seg.tracks {
		r.trackByNumber[r.seg.tracks[i].Number] = &r.seg.tracks[i]
	}
	return nil
}

// maxDocTypeReadVersion is the highest DocTypeReadVersion this demuxer
// claims to understand (spec.md §4.4/§6.2: DocTypeReadVersion ∈ {1..4}).
const maxDocTypeReadVersion = 4

func (r *Reader) parseEBMLHeader() error {
	hdr, err := r.cursor.Next()
	if err != nil {
		return newParseError(Init, err, "read EBML header element")
	}
	if hdr.ID != idEBMLHeader {
		return newParseError(Init, nil, "stream does not start with an EBML header")
	}
	var docType string
	var docTypeReadVersion uint64
	err = walkChildren(r.cursor, idEBMLHeader, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idEBMLDocType:
			s, err := readLeafString(r.src, child.Size, r.maxElementSize)
			if err != nil {
				return err
			}
			docType = s
			return nil
		case idEBMLDocTypeReadVersion:
			v, err := readLeafUint(r.src, child.Size, r.maxElementSize)
			if err != nil {
				return err
			}
			docTypeReadVersion = v
			return nil
		}
		return ebml.Skip(r.src, child.Size)
	})
	if err != nil {
		return wrapErr(Init, err, "parse EBML header")
	}
	if docType != "matroska" && docType != "webm" {
		return newParseError(Init, nil, "unsupported DocType "+docType)
	}
	if docTypeReadVersion > maxDocTypeReadVersion {
		return newParseError(Init, nil, "unsupported DocTypeReadVersion")
	}
	return nil
}

// TrackCount returns the number of tracks found in the Segment.
func (r *Reader) TrackCount() int { return len(r.seg.tracks) }

// Track returns the i'th track (in Tracks element order).
func (r *Reader) Track(i int) (Track, error) {
	if i < 0 || i >= len(r.seg.tracks) {
		return Track{}, newParseError(Absent, nil, "track index out of range")
	}
	return r.seg.tracks[i], nil
}

// TrackByNumber looks up a track by its on-wire TrackNumber.
func (r *Reader) TrackByNumber(number uint64) (Track, bool) {
	t, ok := r.trackByNumber[number]
	if !ok {
		return Track{}, false
	}
	return *t, true
}

// TimestampScale returns the segment's TimestampScale (nanoseconds per
// timestamp tick); defaults to 1,000,000 (1ms) per spec.md if absent.
func (r *Reader) TimestampScale() uint64 { return r.seg.meta.TimestampScale }

// Duration returns the segment's declared Duration in nanoseconds
// (spec.md §4.6: duration() → u64_ns), and whether one was present. The
// Info element's raw Duration value is in TimestampScale units; this
// scales it before returning, the same as every other timestamp-shaped
// value this package exposes.
func (r *Reader) Duration() (float64, bool) {
	if r.seg.meta.Duration == 0 {
		return 0, false
	}
	return r.seg.meta.Duration * float64(r.seg.meta.TimestampScale), true
}

// Meta returns the segment's Info metadata.
func (r *Reader) Meta() SegmentMeta { return r.seg.meta }

// HasCues reports whether the segment carried a Cues index.
func (r *Reader) HasCues() bool { return len(r.seg.cues) > 0 }

// CueCount returns the number of flattened cue points.
func (r *Reader) CueCount() int { return len(r.seg.cues) }

// CuePoint returns the i'th flattened cue point, in file order, with
// ClusterEnd resolved against the rest of the index: the start offset of
// the next distinct cluster the Cues index references, or nil if i's
// cluster is the last one in the index (spec.md §4.4's "end is the start
// of the next cluster or unknown for the last").
func (r *Reader) CuePoint(i int) (CuePoint, error) {
	if i < 0 || i >= len(r.seg.cues) {
		return CuePoint{}, newParseError(Absent, nil, "cue index out of range")
	}
	cp := r.seg.cues[i]
	cp.ClusterEnd = nextClusterStart(r.seg.cues, cp.ClusterPosition)
	return cp, nil
}

// nextClusterStart finds the smallest ClusterPosition in cues that is
// strictly greater than pos, returning nil if pos' cluster is the last
// one any cue in the index points at.
func nextClusterStart(cues []CuePoint, pos uint64) *uint64 {
	var next uint64
	found := false
	for _, c := range cues {
		if c.ClusterPosition > pos && (!found || c.ClusterPosition < next) {
			next = c.ClusterPosition
			found = true
		}
	}
	if !found {
		return nil
	}
	return &next
}

// ChapterCount, Chapter, TagCount, Tag, AttachmentCount and Attachment
// expose the supplemental metadata a complete port parses (spec.md's
// Non-goals never exclude these; the teacher only ever stubbed them).
func (r *Reader) ChapterCount() int { return len(r.seg.chapters) }

func (r *Reader) Chapter(i int) (Chapter, error) {
	if i < 0 || i >= len(r.seg.chapters) {
		return Chapter{}, newParseError(Absent, nil, "chapter index out of range")
	}
	return r.seg.chapters[i], nil
}

func (r *Reader) TagCount() int { return len(r.seg.tags) }

func (r *Reader) Tag(i int) (Tag, error) {
	if i < 0 || i >= len(r.seg.tags) {
		return Tag{}, newParseError(Absent, nil, "tag index out of range")
	}
	return r.seg.tags[i], nil
}

func (r *Reader) AttachmentCount() int { return len(r.seg.attachments) }

func (r *Reader) Attachment(i int) (Attachment, error) {
	if i < 0 || i >= len(r.seg.attachments) {
		return Attachment{}, newParseError(Absent, nil, "attachment index out of range")
	}
	return r.seg.attachments[i], nil
}

// CurrentClusterPosition returns the absolute byte offset of the Cluster
// currently being read (the first byte of its element header), for a
// caller that wants to record a resume point (e.g. to pair with a
// CuePoint.ClusterPosition, which is relative to the Segment's payload, for
// seek bookkeeping). The second return value is false once that cluster
// has been fully drained.
func (r *Reader) CurrentClusterPosition() (int64, bool) {
	if !r.clusterOpen || r.clusterState == nil {
		return 0, false
	}
	return r.clusterState.position - int64(r.clusterHeaderLen), true
}

// ReadPacket returns the next packet in file order across every track.
// Callers that only want one track filter on Packet.Track themselves,
// the way spec.md's single ReadPacket operation intends.
//
// A SoftEos-kind error means the ByteSource ran out of bytes mid-parse;
// the caller may extend the source (or, for a FakeEOSSource-backed test,
// raise its cutoff) and call ReadPacket again to resume exactly where
// parsing stopped. Any other error is sticky: it is returned again on
// every subsequent call until ReadReset is called.
func (r *Reader) ReadPacket() (*Packet, error) {
	if r.fatal != nil {
		return nil, r.fatal
	}
	if len(r.pendingQueue) == 0 {
		if err := r.fillQueue(); err != nil && len(r.pendingQueue) == 0 {
			if !isSoftEos(err) {
				r.fatal = err
			}
			return nil, err
		}
	}
	if len(r.pendingQueue) == 0 {
		return nil, newParseError(Absent, nil, "no more packets")
	}
	p := r.pendingQueue[0]
	r.pendingQueue = r.pendingQueue[1:]
	return p, nil
}

// ReadReset clears a sticky non-retryable error, letting the caller try
// ReadPacket again. Soft end-of-stream errors never need this — the
// cursor position and partially-decoded cluster state are preserved
// automatically, since a ByteSource read either fully succeeds or
// consumes nothing at all.
func (r *Reader) ReadReset() {
	r.fatal = nil
}

func isSoftEos(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == SoftEos
}

// fillQueue advances the parse until at least one packet is queued, the
// segment legitimately ends, or an error (including SoftEos) occurs.
// Packets decoded before an error on a later sibling remain queued so
// ReadPacket can still serve them.
func (r *Reader) fillQueue() error {
	for len(r.pendingQueue) == 0 {
		if !r.clusterOpen {
			hdr, err := r.nextClusterHeader()
			if err != nil {
				return err
			}
			r.clusterState = &clusterState{position: r.cursor.Tell(), timestampScale: r.seg.meta.TimestampScale}
			r.clusterBudget = &ebml.Budget{Remaining: hdr.Size, Unknown: hdr.Unknown}
			r.clusterHeaderLen = uint64(hdr.HeaderLen)
			r.clusterOpen = true
		}
		err := ebml.Descend(r.cursor, r.clusterBudget, childAllower(idCluster), func(hdr ebml.ElementHeader) error {
			packets, err := parseClusterChild(r.cursor, hdr, r.trackByNumber, r.clusterState, r.maxElementSize)
			if err != nil {
				return err
			}
			r.pendingQueue = append(r.pendingQueue, packets...)
			return nil
		})
		if err != nil {
			return wrapErr(Malformed, err, "parse cluster")
		}
		// The Cluster itself was bubbled into r.clusterBudget rather than
		// consumed from the Segment's own budget (parseSegment pushes its
		// header back and nextClusterHeader stops on it without consuming
		// it, for this lazy read), so
		// that consumption has to happen here once the cluster is fully
		// drained, or a bounded Segment never learns it ran out of
		// clusters.
		consumed := r.clusterHeaderLen + uint64(r.cursor.Tell()-r.clusterState.position)
		r.seg.budget.Consume(consumed)
		r.clusterOpen = false
	}
	return nil
}

// nextClusterHeader scans forward from the current cursor position for
// the next Cluster, absorbing any trailing top-level metadata (some
// muxers write Cues or Tags after the last Cluster) into the segment.
func (r *Reader) nextClusterHeader() (ebml.ElementHeader, error) {
	var found ebml.ElementHeader
	foundAny := false
	err := ebml.Descend(r.cursor, r.seg.budget, childAllower(idSegment), func(hdr ebml.ElementHeader) error {
		switch hdr.ID {
		case idCluster:
			found = hdr
			foundAny = true
			return errStopAtCluster
		case idSeekHead:
			pts, err := parseSeekHead(r.cursor, hdr, r.maxElementSize)
			if err != nil {
				return err
			}
			r.seg.seekPoints = append(r.seg.seekPoints, pts...)
			return nil
		case idCues:
			cues, err := parseCues(r.cursor, hdr, r.maxElementSize)
			if err != nil {
				return err
			}
			r.seg.cues = append(r.seg.cues, cues...)
			return nil
		case idChapters:
			chapters, err := parseChapters(r.cursor, hdr, r.maxElementSize)
			if err != nil {
				return err
			}
			r.seg.chapters = append(r.seg.chapters, chapters...)
			return nil
		case idTags:
			tags, err := parseTags(r.cursor, hdr, r.maxElementSize)
			if err != nil {
				return err
			}
			r.seg.tags = append(r.seg.tags, tags...)
			return nil
		case idAttachments:
			atts, err := parseAttachments(r.cursor, hdr, r.maxElementSize)
			if err != nil {
				return err
			}
			r.seg.attachments = append(r.seg.attachments, atts...)
			return nil
		default:
			return ebml.Skip(r.cursor.Src, hdr.Size)
		}
	})
	if err != nil && !errors.Is(err, errStopAtCluster) {
		return ebml.ElementHeader{}, wrapErr(Malformed, err, "scan for next cluster")
	}
	if foundAny {
		return found, nil
	}
	return ebml.ElementHeader{}, newParseError(Absent, nil, "no more clusters")
}
