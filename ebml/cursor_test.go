package ebml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildSource returns a ByteSource over raw bytes, with an optional
// readLimit (0 disables it) to force a ReadSoftEOS at a precise offset
// instead of relying on a real truncated-read error.
func buildSource(data []byte, readLimit int64) ByteSource {
	return NewSource(bytesReadSeeker(data), readLimit)
}

func TestDescendBoundedVisitsAllowedChild(t *testing.T) {
	// ID 0x81 (width1, marker kept -> 129), size 0x82 (width1, value 2),
	// 2 bytes payload: 4 bytes total.
	data := []byte{0x81, 0x82, 0xAA, 0xBB}
	src := buildSource(data, 0)
	cursor := NewCursor(src)
	budget := &Budget{Remaining: uint64(len(data))}

	var visited []ElementHeader
	err := Descend(cursor, budget, func(id uint32) bool { return id == 0x81 }, func(hdr ElementHeader) error {
		visited = append(visited, hdr)
		return Skip(src, hdr.Size)
	})
	require.NoError(t, err)
	require.Len(t, visited, 1)
	require.EqualValues(t, 0x81, visited[0].ID)
	require.EqualValues(t, 2, visited[0].Size)
	require.True(t, budget.Exhausted())
}

func TestDescendUnboundedBubblesDisallowedChild(t *testing.T) {
	data := []byte{0x83, 0x81, 0xFF}
	src := buildSource(data, 0)
	cursor := NewCursor(src)
	budget := &Budget{Unknown: true}

	called := false
	err := Descend(cursor, budget, func(id uint32) bool { return false }, func(hdr ElementHeader) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)

	// The bubbled header must be replayed by the next Next() call.
	hdr, err := cursor.Next()
	require.NoError(t, err)
	require.EqualValues(t, 0x83, hdr.ID)
}

func TestDescendBoundedSkipsDisallowedChildAndContinues(t *testing.T) {
	// child1: id 0x84, size 1, payload 1 byte (disallowed)
	// child2: id 0x85, size 1, payload 1 byte (allowed)
	data := []byte{0x84, 0x81, 0x00, 0x85, 0x81, 0x00}
	src := buildSource(data, 0)
	cursor := NewCursor(src)
	budget := &Budget{Remaining: uint64(len(data))}

	var visited []ElementHeader
	err := Descend(cursor, budget, func(id uint32) bool { return id == 0x85 }, func(hdr ElementHeader) error {
		visited = append(visited, hdr)
		return Skip(src, hdr.Size)
	})
	require.NoError(t, err)
	require.Len(t, visited, 1)
	require.EqualValues(t, 0x85, visited[0].ID)
	require.True(t, budget.Exhausted())
}

func TestDescendBoundedRejectsUnknownSizeDisallowedChild(t *testing.T) {
	// id 0x86, size byte 0xFF (width1, all data bits set -> unknown size).
	data := []byte{0x86, 0xFF, 0x00, 0x00}
	src := buildSource(data, 0)
	cursor := NewCursor(src)
	budget := &Budget{Remaining: uint64(len(data))}

	err := Descend(cursor, budget, func(id uint32) bool { return false }, func(hdr ElementHeader) error {
		return nil
	})
	require.ErrorIs(t, err, ErrUnknownSizeInBoundedMaster)
}

func TestDescendUnboundedEndsCleanlyOnSoftEOS(t *testing.T) {
	data := []byte{0x81, 0x82, 0xAA, 0xBB}
	src := buildSource(data, int64(len(data))) // limit == len: next header read hits soft EOS
	cursor := NewCursor(src)
	budget := &Budget{Unknown: true}

	var visited []ElementHeader
	err := Descend(cursor, budget, func(id uint32) bool { return id == 0x81 }, func(hdr ElementHeader) error {
		visited = append(visited, hdr)
		return Skip(src, hdr.Size)
	})
	require.NoError(t, err)
	require.Len(t, visited, 1)
}

func TestDescendBoundedWrapsSoftEOSAsTruncation(t *testing.T) {
	// Budget claims 8 bytes remain but the source only ever yields the
	// first 4 before soft EOS: the bounded master was promised more.
	data := []byte{0x81, 0x82, 0xAA, 0xBB}
	src := buildSource(data, int64(len(data)))
	cursor := NewCursor(src)
	budget := &Budget{Remaining: 8}

	err := Descend(cursor, budget, func(id uint32) bool { return id == 0x81 }, func(hdr ElementHeader) error {
		return Skip(src, hdr.Size)
	})
	require.ErrorIs(t, err, ErrSoftEOS)
}

func TestOccurrenceCounterAndMissingMandatory(t *testing.T) {
	schema := Schema{
		1: {ID: 1, Name: "Required", Parent: 0, Occurrence: Once},
		2: {ID: 2, Name: "Optional", Parent: 0, Occurrence: OnceOptional},
	}
	counter := NewOccurrenceCounter()
	counter.Seen(2)

	missing := MissingMandatory(schema, []uint32{1, 2}, counter)
	require.Equal(t, []uint32{1}, missing)

	require.Equal(t, 1, counter.Count(2))
	require.Equal(t, 0, counter.Count(1))
}

func TestSchemaIsChildAndChildrenOf(t *testing.T) {
	schema := Schema{
		10: {ID: 10, Parent: 1},
		11: {ID: 11, Parent: 1},
		12: {ID: 12, Parent: 2},
	}
	require.True(t, schema.IsChild(1, 10))
	require.False(t, schema.IsChild(1, 12))
	require.ElementsMatch(t, []uint32{10, 11}, schema.ChildrenOf(1))
}
