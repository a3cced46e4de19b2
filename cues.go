package webmdemux

import "github.com/andrebraga/webmdemux/ebml"

// parseCues flattens the Cues index into one CuePoint per (time, track)
// pair, discarding the CuePoint/CueTrackPositions nesting spec.md §3.1
// doesn't ask callers to see.
func parseCues(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) ([]CuePoint, error) {
	var cues []CuePoint
	err := walkChildren(cursor, idCues, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		if child.ID != idCuePoint {
			return ebml.Skip(cursor.Src, child.Size)
		}
		pts, err := parseCuePoint(cursor, child, maxElementSize)
		if err != nil {
			return err
		}
		cues = append(cues, pts...)
		return nil
	})
	return cues, err
}

func parseCuePoint(cursor *ebml.Cursor, hdr ebml.ElementHeader, maxElementSize int64) ([]CuePoint, error) {
	var time uint64
	var positions []CuePoint
	err := walkChildren(cursor, idCuePoint, hdr.Size, hdr.Unknown, func(child ebml.ElementHeader) error {
		switch child.ID {
		case idCueTime:
			n, err := readLeafUint(cursor.Src, child.Size, maxElementSize)
			if err != nil {
				return err
			}
			time = n
			return nil
		case idCueTrackPositions:
			var cp CuePoint
			err := walkChildren(cursor, idCueTrackPositions, child.Size, child.Unknown, func(gc ebml.ElementHeader) error {
				switch gc.ID {
				case idCueTrack:
					n, err := readLeafUint(cursor.Src, gc.Size, maxElementSize)
					if err != nil {
						return err
					}
					cp.Track = n
				case idCueClusterPosition:
					n, err := readLeafUint(cursor.Src, gc.Size, maxElementSize)
					if err != nil {
						return err
					}
					cp.ClusterPosition = n
				case idCueBlockNumber:
					n, err := readLeafUint(cursor.Src, gc.Size, maxElementSize)
					if err != nil {
						return err
					}
					cp.BlockNumber = n
				default:
					return ebml.Skip(cursor.Src, gc.Size)
				}
				return nil
			})
			if err != nil {
				return err
			}
			positions = append(positions, cp)
			return nil
		}
		return ebml.Skip(cursor.Src, child.Size)
	})
	if err != nil {
		return nil, err
	}
	for i := range positions {
		positions[i].Time = time
	}
	return positions, nil
}
