package ebml

import (
	"github.com/icza/bitio"
)

// UnknownSize is the sentinel distinct from any representable element
// size: EBML encodes "unknown length" as a VINT whose data bits are all
// ones, and different VINT widths produce different raw values for that
// sentinel, so callers should test ElementHeader.Unknown rather than
// comparing Size to a constant.
const UnknownSize = ^uint64(0)

// ElementHeader is the {id, size} pair that precedes every element's
// payload, plus how many bytes that header itself occupied.
type ElementHeader struct {
	ID        uint32
	Size      uint64
	Unknown   bool
	HeaderLen uint8
}

// ReadElementHeader reads an element ID (with its length-marker bit
// retained, per Matroska's canonical ID form) and size (marker cleared)
// from br.
func ReadElementHeader(br *bitio.Reader) (ElementHeader, error) {
	idVal, idWidth, err := ReadVInt(br, true)
	if err != nil {
		return ElementHeader{}, err
	}
	sizeVal, sizeWidth, err := ReadVInt(br, false)
	if err != nil {
		return ElementHeader{}, err
	}
	return ElementHeader{
		ID:        uint32(idVal),
		Size:      sizeVal,
		Unknown:   IsUnknownSize(sizeVal, sizeWidth),
		HeaderLen: idWidth + sizeWidth,
	}, nil
}
