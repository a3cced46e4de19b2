package webmdemux

import (
	"github.com/andrebraga/webmdemux/ebml"
	"github.com/pkg/errors"
)

// errStopAtCluster is how the segment metadata walk hands control back to
// the Reader once it reaches the first Cluster: clusters and the packets
// inside them are read lazily by ReadPacket, not eagerly during Init, so
// metadata parsing stops here and pushes the Cluster header back onto the
// cursor for the packet loop to pick up.
var errStopAtCluster = errors.New("webmdemux: reached first cluster")

// segment holds everything parseSegment collects before handing control
// to the packet loop: the Info/Tracks/Cues/Chapters/Tags/Attachments/
// SeekHead content, plus the still-open budget for Segment itself so the
// packet loop knows when the container legitimately ends.
type segment struct {
	meta        SegmentMeta
	tracks      []Track
	seekPoints  []SeekPoint
	chapters    []Chapter
	tags        []Tag
	attachments []Attachment
	cues        []CuePoint
	budget      *ebml.Budget
}

func walkChildren(cursor *ebml.Cursor, parent uint32, size uint64, unknown bool, visit func(ebml.ElementHeader) error) error {
	budget := &ebml.Budget{Remaining: size, Unknown: unknown}
	return ebml.Descend(cursor, budget, childAllower(parent), visit)
}

// parseSegment walks the Segment master, collecting metadata masters
// until it reaches the first Cluster (or the Segment ends with no
// clusters at all, which is legal but pointless).
func parseSegment(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (*segment, error) {
	seg := &segment{meta: SegmentMeta{TimestampScale: 1000000}}
	budget := &ebml.Budget{Remaining: hdr.Size, Unknown: hdr.Unknown}

	// SeekPosition values in a SeekHead are relative to the first byte of
	// the Segment's own payload, which is exactly where the cursor sits
	// right now, before Descend reads any child.
	segmentDataStart := cursor.Tell()

	err := ebml.Descend(cursor, budget, childAllower(idSegment), func(child ebml.ElementHeader) error {
		switch child.ID {
		case idCluster:
			if len(seg.tracks) == 0 {
				if err := seg.resolveTracksViaSeekHead(cursor, segmentDataStart, maxElementSize); err != nil {
					return err
				}
			}
			cursor.PushBack(child)
			return errStopAtCluster
		case idSeekHead:
			pts, err := parseSeekHead(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			seg.seekPoints = append(seg.seekPoints, pts...)
			return nil
		case idInfo:
			meta, err := parseInfo(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			seg.meta = meta
			return nil
		case idTracks:
			tracks, err := parseTracks(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			seg.tracks = tracks
			return nil
		case idCues:
			cues, err := parseCues(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			seg.cues = cues
			return nil
		case idChapters:
			chapters, err := parseChapters(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			seg.chapters = chapters
			return nil
		case idTags:
			tags, err := parseTags(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			seg.tags = tags
			return nil
		case idAttachments:
			atts, err := parseAttachments(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			seg.attachments = atts
			return nil
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
	})
	if err != nil && !errors.Is(err, errStopAtCluster) {
		return nil, wrapErr(Malformed, err, "parse segment")
	}
	seg.budget = budget
	return seg, nil
}

// resolveTracksViaSeekHead handles a Cluster arriving before Tracks
// (spec.md §4.4, §9): when SeekHead names a Tracks position, it seeks
// there, parses Tracks, and seeks back to resume exactly where the
// Cluster scan left off. A ByteSource that can't seek (a plain streaming
// source) is left alone; the deferred cluster's packets simply carry no
// track metadata, the same as any other unresolved TrackNumber lookup.
func (seg *segment) resolveTracksViaSeekHead(cursor *ebml.Cursor, segmentDataStart int64, maxElementSize int64) error {
	pos, ok := seekPointPosition(seg.seekPoints, idTracks)
	if !ok {
		return nil
	}
	returnPos := cursor.Tell()
	if err := cursor.Src.Seek(segmentDataStart+int64(pos), ebml.SeekSet); err != nil {
		if errors.Is(err, ebml.ErrSeekUnsupported) {
			return nil
		}
		return err
	}
	hdr, err := cursor.Next()
	if err == nil && hdr.ID == idTracks {
		var tracks []Track
		tracks, err = parseTracks(cursor, hdr, maxElementSize)
		if err == nil {
			seg.tracks = tracks
		}
	}
	if seekErr := cursor.Src.Seek(returnPos, ebml.SeekSet); seekErr != nil {
		return seekErr
	}
	return err
}

// seekPointPosition returns the resolved SeekHead entry for id, if any.
func seekPointPosition(points []SeekPoint, id uint32) (uint64, bool) {
	for _, p := range points {
		if p.ID == id {
			return p.Position, true
		}
	}
	return 0, false
}

func parseSeekHead(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) ([]SeekPoint, error) {
	var points []SeekPoint
	err := walkChildren(cursor, idSeekHead, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		if child.ID != idSeek {
			return ebml.Skip(cursor.Src, child.Size)
		}
		var pt SeekPoint
		err := walkChildren(cursor, idSeek, child.Size, child.Unknown, func(gc ebml.ElementHeader) error {
			switch gc.ID {
			case idSeekID:
				buf, err := readPayload(cursor.Src, gc.Size, maxElementSize)
				if err != nil {
					return err
				}
				pt.ID = uint32(ebml.ReadUint(buf))
				return nil
			case idSeekPos:
				v, err := readLeafUint(cursor.Src, gc.Size, maxElementSize)
				if err != nil {
					return err
				}
				pt.Position = v
				return nil
			}
			return ebml.Skip(cursor.Src, gc.Size)
		})
		if err != nil {
			return err
		}
		points = append(points, pt)
		return nil
	})
	return points, err
}

func parseInfo(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (SegmentMeta, error) {
	meta := SegmentMeta{TimestampScale: 1000000}
	err := walkChildren(cursor, idInfo, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idSegmentUID:
			buf, err := readPayload(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			meta.UID = buf
		case idTimestampScale:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			meta.TimestampScale = v
		case idDuration:
			v, err := readLeafFloat(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			meta.Duration = v
		case idDateUTC:
			v, err := readLeafInt(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			meta.DateUTC = v
		case idTitle:
			v, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			meta.Title = v
		case idMuxingApp:
			v, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			meta.MuxingApp = v
		case idWritingApp:
			v, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			meta.WritingApp = v
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
		return nil
	})
	return meta, err
}

func parseTracks(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) ([]Track, error) {
	var tracks []Track
	err := walkChildren(cursor, idTracks, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		if child.ID != idTrackEntry {
			return ebml.Skip(cursor.Src, child.Size)
		}
		t, err := parseTrackEntry(cursor, child, maxElementSize)
		if err != nil {
			return err
		}
		tracks = append(tracks, t)
		return nil
	})
	return tracks, err
}

func parseTrackEntry(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (Track, error) {
	t := Track{Enabled: true, Lacing: true}
	err := walkChildren(cursor, idTrackEntry, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idTrackNumber:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Number = v
		case idTrackUID:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.UID = v
		case idTrackType:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Type = TrackType(v)
		case idFlagEnabled:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Enabled = v != 0
		case idFlagDefault:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Default = v != 0
		case idFlagForced:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Forced = v != 0
		case idFlagLacing:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Lacing = v != 0
		case idDefaultDuration:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.DefaultDuration = v
		case idTrackName:
			v, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Name = v
		case idLanguage:
			v, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Language = v
		case idCodecID:
			v, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.CodecID = v
		case idCodecPrivate:
			v, err := readPayload(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.CodecPrivate = v
		case idCodecName:
			v, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.CodecName = v
		case idCodecDelay:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.CodecDelay = v
		case idSeekPreRoll:
			v, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.SeekPreRoll = v
		case idVideo:
			v, err := parseVideo(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			t.Video = &v
		case idAudio:
			v, err := parseAudio(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			t.Audio = &v
		case idContentEncodings:
			v, err := parseContentEncodings(cursor, child, maxElementSize)
			if err != nil {
				return err
			}
			t.Encodings = v
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
		return nil
	})
	return t, err
}

func parseVideo(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (VideoParams, error) {
	var v VideoParams
	err := walkChildren(cursor, idVideo, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idPixelWidth:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.PixelWidth = n
		case idPixelHeight:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.PixelHeight = n
		case idDisplayWidth:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.DisplayWidth = n
		case idDisplayHeight:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.DisplayHeight = n
		case idFlagInterlaced:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.FlagInterlaced = n != 0
		case idStereoMode:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.StereoMode = n
		case idAlphaMode:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.AlphaMode = n
		case idPixelCropTop:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.CropTop = n
		case idPixelCropBottom:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.CropBottom = n
		case idPixelCropLeft:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.CropLeft = n
		case idPixelCropRight:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			v.CropRight = n
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
		return nil
	})
	if v.DisplayWidth == 0 {
		v.DisplayWidth = v.PixelWidth
	}
	if v.DisplayHeight == 0 {
		v.DisplayHeight = v.PixelHeight
	}
	return v, err
}

func parseAudio(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (AudioParams, error) {
	a := AudioParams{SamplingFrequency: 8000}
	err := walkChildren(cursor, idAudio, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idSamplingFrequency:
			n, err := readLeafFloat(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.SamplingFrequency = n
		case idOutputSamplingFrequency:
			n, err := readLeafFloat(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.OutputSamplingFrequency = n
		case idChannels:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.Channels = n
		case idBitDepth:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.BitDepth = n
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
		return nil
	})
	if a.Channels == 0 {
		a.Channels = 1
	}
	return a, err
}

func parseContentEncodings(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) ([]Encoding, error) {
	var encs []Encoding
	err := walkChildren(cursor, idContentEncodings, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		if child.ID != idContentEncoding {
			return ebml.Skip(cursor.Src, child.Size)
		}
		enc, err := parseContentEncoding(cursor, child, maxElementSize)
		if err != nil {
			return err
		}
		encs = append(encs, enc)
		return nil
	})
	return encs, err
}

func parseContentEncoding(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (Encoding, error) {
	enc := Encoding{Scope: 1}
	err := walkChildren(cursor, idContentEncoding, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idContentEncodingOrder:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			enc.Order = int(n)
		case idContentEncodingScope:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			enc.Scope = n
		case idContentEncodingType:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			if n == contentEncodingTypeEncryption {
				enc.Kind = EncodingEncryption
			} else {
				enc.Kind = EncodingCompression
			}
		case idContentCompression:
			return walkChildren(cursor, idContentCompression, child.Size, child.Unknown, func(gc ebml.ElementHeader) error {
				if gc.ID != idContentCompSettings {
					return ebml.Skip(cursor.Src, gc.Size)
				}
				buf, err := readPayload(cursor.Src, gc.Size, maxElementSize)
				if err != nil {
					return err
				}
				enc.HeaderStrip = buf
				return nil
			})
		case idContentEncryption:
			return walkChildren(cursor, idContentEncryption, child.Size, child.Unknown, func(gc ebml.ElementHeader) error {
				switch gc.ID {
				case idContentEncKeyID:
					buf, err := readPayload(cursor.Src, gc.Size, maxElementSize)
					if err != nil {
						return err
					}
					enc.KeyID = buf
					return nil
				case idContentEncAESSettings:
					return walkChildren(cursor, idContentEncAESSettings, gc.Size, gc.Unknown, func(ggc ebml.ElementHeader) error {
						if ggc.ID != idAESSettingsCipherMode {
							return ebml.Skip(cursor.Src, ggc.Size)
						}
						n, err := readLeafUint(cursor.Src, ggc.Size, maxElementSize)
						if err != nil {
							return err
						}
						enc.AESSettings.CipherMode = n
						return nil
					})
				}
				return ebml.Skip(cursor.Src, gc.Size)
			})
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
		return nil
	})
	return enc, err
}

func parseChapters(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) ([]Chapter, error) {
	var chapters []Chapter
	err := walkChildren(cursor, idChapters, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		if child.ID != idEditionEntry {
			return ebml.Skip(cursor.Src, child.Size)
		}
		return walkChildren(cursor, idEditionEntry, child.Size, child.Unknown, func(gc ebml.ElementHeader) error {
			if gc.ID != idChapterAtom {
				return ebml.Skip(cursor.Src, gc.Size)
			}
			ch, err := parseChapterAtom(cursor, gc, maxElementSize)
			if err != nil {
				return err
			}
			chapters = append(chapters, ch)
			return nil
		})
	})
	return chapters, err
}

func parseChapterAtom(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (Chapter, error) {
	var ch Chapter
	err := walkChildren(cursor, idChapterAtom, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idChapterUID:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			ch.UID = n
		case idChapterTimeStart:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			ch.TimeStart = n
		case idChapterTimeEnd:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			ch.TimeEnd = n
		case idChapterDisplay:
			if ch.Title != "" {
				return ebml.Skip(cursor.Src, child.Size)
			}
			return walkChildren(cursor, idChapterDisplay, child.Size, child.Unknown, func(gc ebml.ElementHeader) error {
				switch gc.ID {
				case idChapString:
					s, err := readLeafString(cursor.Src, gc.Size, maxElementSize)
					if err != nil {
						return err
					}
					ch.Title = s
				case idChapLanguage:
					s, err := readLeafString(cursor.Src, gc.Size, maxElementSize)
					if err != nil {
						return err
					}
					ch.Language = s
				default:
					return ebml.Skip(cursor.Src, gc.Size)
				}
				return nil
			})
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
		return nil
	})
	return ch, err
}

func parseTags(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) ([]Tag, error) {
	var tags []Tag
	err := walkChildren(cursor, idTags, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		if child.ID != idTag {
			return ebml.Skip(cursor.Src, child.Size)
		}
		var targetType uint64
		var simple []Tag
		err := walkChildren(cursor, idTag, child.Size, child.Unknown, func(gc ebml.ElementHeader) error {
			switch gc.ID {
			case idTargets:
				return walkChildren(cursor, idTargets, gc.Size, gc.Unknown, func(ggc ebml.ElementHeader) error {
					if ggc.ID != idTargetTypeValue {
						return ebml.Skip(cursor.Src, ggc.Size)
					}
					n, err := readLeafUint(cursor.Src, ggc.Size, maxElementSize)
					if err != nil {
						return err
					}
					targetType = n
					return nil
				})
			case idSimpleTag:
				t, err := parseSimpleTag(cursor, gc, maxElementSize)
				if err != nil {
					return err
				}
				simple = append(simple, t)
				return nil
			}
			return ebml.Skip(cursor.Src, gc.Size)
		})
		if err != nil {
			return err
		}
		for i := range simple {
			simple[i].TargetTypeValue = targetType
		}
		tags = append(tags, simple...)
		return nil
	})
	return tags, err
}

func parseSimpleTag(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (Tag, error) {
	var t Tag
	err := walkChildren(cursor, idSimpleTag, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idTagName:
			s, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Name = s
		case idTagString:
			s, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			t.Value = s
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
		return nil
	})
	return t, err
}

func parseAttachments(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) ([]Attachment, error) {
	var atts []Attachment
	err := walkChildren(cursor, idAttachments, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		if child.ID != idAttachedFile {
			return ebml.Skip(cursor.Src, child.Size)
		}
		a, err := parseAttachedFile(cursor, child, maxElementSize)
		if err != nil {
			return err
		}
		atts = append(atts, a)
		return nil
	})
	return atts, err
}

func parseAttachedFile(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) (Attachment, error) {
	var a Attachment
	err := walkChildren(cursor, idAttachedFile, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idFileDescription:
			s, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.Description = s
		case idFileName:
			s, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.Name = s
		case idFileMimeType:
			s, err := readLeafString(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.MimeType = s
		case idFileUID:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.UID = n
		case idFileData:
			buf, err := readPayload(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			a.Data = buf
		default:
			return ebml.Skip(cursor.Src, child.Size)
		}
		return nil
	})
	return a, err
}
