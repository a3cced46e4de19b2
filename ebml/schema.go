package ebml

// ElementType tags the Go-level shape a leaf element's payload should be
// decoded as. Master elements own children instead of a typed value.
type ElementType int

const (
	TypeMaster ElementType = iota
	TypeUint
	TypeInt
	TypeFloat
	TypeString
	TypeBinary
	TypeDate
)

// Occurrence describes how many times a child element may legally appear
// under its parent, and whether its absence is tolerated.
type Occurrence int

const (
	// Once: exactly one instance is required; a master missing it is
	// malformed (the severity of that is a policy decision made by the
	// caller — see spec.md §4.3's "occurrence enforcement at close time").
	Once Occurrence = iota
	// OnceOptional: zero or one instance.
	OnceOptional
	// Multi: one or more instances required.
	Multi
	// MultiOptional: zero or more instances.
	MultiOptional
)

// Mandatory reports whether at least one instance of this occurrence kind
// must be present for the parent to be well-formed.
func (o Occurrence) Mandatory() bool {
	return o == Once || o == Multi
}

// Repeatable reports whether more than one instance is legal.
func (o Occurrence) Repeatable() bool {
	return o == Multi || o == MultiOptional
}

// SchemaEntry is the static description of one element ID: its parent,
// its decoded type, and how often it may occur. A master's legal children
// are not listed on its own entry; they are the entries whose Parent is
// its ID (see IsChild and ChildrenOf). Representing the grammar as data rather than a
// dispatch hierarchy is what lets the descent algorithm in cursor.go stay
// generic across every element in the format.
type SchemaEntry struct {
	ID         uint32
	Name       string
	Parent     uint32
	Type       ElementType
	Occurrence Occurrence
}

// Schema is a complete element grammar keyed by ID.
type Schema map[uint32]SchemaEntry

// Entry looks up the schema definition for id.
func (s Schema) Entry(id uint32) (SchemaEntry, bool) {
	e, ok := s[id]
	return e, ok
}

// IsChild reports whether id is a legal child of parent according to the
// schema. An ID with no entry is never a legal child of anything.
func (s Schema) IsChild(parent, id uint32) bool {
	e, ok := s[id]
	return ok && e.Parent == parent
}

// ChildrenOf returns every ID in the schema whose declared parent is
// parent, primarily useful for building closures to pass to Descend.
func (s Schema) ChildrenOf(parent uint32) []uint32 {
	var out []uint32
	for id, e := range s {
		if e.Parent == parent {
			out = append(out, id)
		}
	}
	return out
}

// OccurrenceCounter accumulates how many times each child ID of a single
// master instance has been seen, so the caller can enforce mandatory/
// singleton rules at close time (spec.md §4.3, invariant 3).
type OccurrenceCounter struct {
	counts map[uint32]int
}

// NewOccurrenceCounter returns an empty counter.
func NewOccurrenceCounter() *OccurrenceCounter {
	return &OccurrenceCounter{counts: make(map[uint32]int)}
}

// Seen records one more occurrence of id and returns the running count,
// so the caller can reject a second instance of a Once-occurrence element
// without consulting the schema itself.
func (c *OccurrenceCounter) Seen(id uint32) int {
	c.counts[id]++
	return c.counts[id]
}

// Count returns how many times id has been recorded.
func (c *OccurrenceCounter) Count(id uint32) int {
	return c.counts[id]
}

// MissingMandatory returns the IDs among children (all legal children of
// some parent, per the schema) whose Occurrence demands at least one
// instance but that never appeared.
func MissingMandatory(schema Schema, children []uint32, counter *OccurrenceCounter) []uint32 {
	var missing []uint32
	for _, id := range children {
		entry, ok := schema.Entry(id)
		if !ok || !entry.Occurrence.Mandatory() {
			continue
		}
		if counter.Count(id) == 0 {
			missing = append(missing, id)
		}
	}
	return missing
}
