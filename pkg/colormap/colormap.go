// Package colormap assigns display colors to transistor groups.
//
// Groups with more than two transistors qualify for an individual color;
// smaller groups (typically inverter pairs) are excluded and rendered with a
// fixed neutral fill by the consumer. Assignment is deterministic: qualifying
// group tags are sorted lexicographically and colored in palette order, and
// when the palette runs out it is extended with colors drawn from a seeded
// generator, so the same input and seed always produce the same mapping.
package colormap

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// qualifyThreshold is the group size above which a group receives its own
// color. Groups at or below it are the neutral "unify/inverter" category.
const qualifyThreshold = 2

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Hex returns the "#rrggbb" form used by SVG attributes.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Neutral is the fill for non-qualifying groups. Near-black rather than pure
// black so outlines stay visible on dense plots.
var Neutral = Color{R: 8, G: 8, B: 8}

// Assigner maps qualifying group tags to colors. Each Assigner owns its
// palette copy and generator state; construct one per assignment so tests
// can fix the seed without shared global state.
type Assigner struct {
	palette []Color
	rng     *rand.Rand
}

// New creates an Assigner with the given palette and seed. A nil palette
// selects [DefaultPalette]. The seed only matters when more groups qualify
// than the palette holds and extension colors must be generated.
func New(palette []Color, seed uint64) *Assigner {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Assigner{
		palette: slices.Clone(palette),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Assign returns a color for every qualifying group in counts.
//
// Tags are ordered by lexicographic string comparison, ascending; this
// ordering decides which palette slot each group receives, so it is a frozen
// contract rather than an implementation detail. When qualifying groups
// outnumber the palette, uniformly random RGB triples are appended until it
// is large enough. Generated colors may collide with each other or with
// palette entries; that is accepted as reduced visual distinctiveness, not
// an error.
func (a *Assigner) Assign(counts map[string]int) map[string]Color {
	var qualifying []string
	for tag, count := range counts {
		if count > qualifyThreshold {
			qualifying = append(qualifying, tag)
		}
	}
	slices.Sort(qualifying)

	for len(a.palette) < len(qualifying) {
		a.palette = append(a.palette, a.randomColor())
	}

	assigned := make(map[string]Color, len(qualifying))
	for i, tag := range qualifying {
		assigned[tag] = a.palette[i]
	}
	return assigned
}

// randomColor samples each channel independently and uniformly over [0,255].
func (a *Assigner) randomColor() Color {
	return Color{
		R: uint8(a.rng.IntN(256)),
		G: uint8(a.rng.IntN(256)),
		B: uint8(a.rng.IntN(256)),
	}
}
