// Package placement implements the transplot placement file format.
//
// A placement file is a newline-delimited text format describing a chip
// layout snapshot: the die boundary, row and site geometry, transistor
// records and, in the newer syntax, pins, macro instances and routing paths.
// Two syntax versions exist:
//
//   - Version 1 declares transistors in a counted block opened by
//     "TRANSISTORS <count>" and closed by "END TRANSISTORS".
//   - Version 2 has no block state: every line is independently tagged,
//     transistor lines carry a "TRANSISTOR" keyword, and the record set is a
//     superset of version 1 (PIN, SDC and PATH lines).
//
// [Parse] detects the version by trial: it attempts a full version-1 parse
// of the input and falls back to a full version-2 parse when that fails.
// Partial results from a failed attempt are never reused. All parse failures
// are structured values from the errors package so callers can assert on the
// error code and offending line.
package placement

import "maps"

// Version identifies the placement file syntax a model was parsed with.
type Version int

// Syntax versions.
const (
	VersionUnknown Version = iota
	Version1               // counted transistor block
	Version2               // flat tagged records
)

// String returns a human-readable syntax name.
func (v Version) String() string {
	switch v {
	case Version1:
		return "v1"
	case Version2:
		return "v2"
	default:
		return "unknown"
	}
}

// Transistor kinds conventionally found in placement files. The parser does
// not validate the kind field; unknown values pass through uninterpreted.
const (
	KindNMOS = "NMOS"
	KindPMOS = "PMOS"
)

// DieArea is the die boundary as (x_low, y_low, x_high, y_high).
// The grammar enforces four integer components but no ordering; a sane die
// has XL <= XH and YL <= YH, which consumers should check via [DieArea.Valid].
type DieArea struct {
	XL, YL, XH, YH int
}

// Width returns the horizontal extent of the die.
func (d DieArea) Width() int { return d.XH - d.XL }

// Height returns the vertical extent of the die.
func (d DieArea) Height() int { return d.YH - d.YL }

// Valid reports whether the boundary is non-inverted.
func (d DieArea) Valid() bool { return d.XL <= d.XH && d.YL <= d.YH }

// Transistor is a placed transistor record.
type Transistor struct {
	Name    string // instance name
	X, Y    int    // placement location
	Flipped int    // 0 or 1; row flip flag
	Kind    string // "NMOS" or "PMOS" by convention, uninterpreted
	Group   string // visual grouping tag (historically named "sdc")
}

// Pin is a placed pin record (version 2 only).
type Pin struct {
	Name string
	X, Y int
	Net  string
}

// Macro is a placed macro-instance rectangle (version 2 only, keyword "SDC";
// unrelated to the per-transistor Group field despite the shared name).
type Macro struct {
	Name      string
	MacroName string
	X, Y      int
	Width     int
	Height    int
}

// Point is one coordinate pair of a routing path.
type Point struct {
	X, Y int
}

// Path is an ordered polyline (version 2 only). The point order is the
// traversal order and is semantically significant.
type Path []Point

// =============================================================================
// Model
// =============================================================================

// Model is the result of a successful parse. It is built once per parse and
// must be treated as read-only afterwards.
//
// Geometry fields are pointers: a field left unset by the input stays nil,
// and consumers must treat nil as "nothing to render", never as zero.
type Model struct {
	Version Version

	Units            *int
	DieArea          *DieArea
	RowHeight        *int
	SiteWidth        *int
	NumRows          *int
	NumSites         *int
	TransistorOffset *int

	// Record collections in input order.
	Transistors []Transistor
	Pins        []Pin
	Macros      []Macro
	Paths       []Path

	// GroupCounts maps each observed group tag to the number of transistors
	// carrying it. Maintained incrementally during parsing, never decremented.
	GroupCounts map[string]int
}

func newModel(v Version) *Model {
	return &Model{
		Version:     v,
		GroupCounts: make(map[string]int),
	}
}

// addTransistor appends t and keeps GroupCounts consistent with Transistors.
func (m *Model) addTransistor(t Transistor) {
	m.Transistors = append(m.Transistors, t)
	m.GroupCounts[t.Group]++
}

// Groups returns a copy of the group statistics, safe for callers to mutate.
func (m *Model) Groups() map[string]int {
	return maps.Clone(m.GroupCounts)
}

func intPtr(v int) *int { return &v }
