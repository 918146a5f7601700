// Package config loads plot parameters from a TOML file.
//
// All parameters have defaults matching the built-in rendering style, so a
// config file only needs the keys it wants to change:
//
//	scale = 50.0
//	seed = 7
//
//	[alpha]
//	nmos = 0.5
//	pmos = 0.9
//
//	palette = ["#0000ff", "#ff0000"]
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/transplot/transplot/pkg/colormap"
	"github.com/transplot/transplot/pkg/errors"
)

// Alpha holds fill opacities keyed by transistor kind, with a separate set
// for the neutral (non-qualifying) groups.
type Alpha struct {
	NMOS    float64 `toml:"nmos"`
	PMOS    float64 `toml:"pmos"`
	InvNMOS float64 `toml:"inv_nmos"`
	InvPMOS float64 `toml:"inv_pmos"`
}

// Plot holds every tunable rendering parameter.
type Plot struct {
	// Scale divides placement units down to output units.
	Scale float64 `toml:"scale"`

	// Margin around the die boundary, in placement units per side.
	MarginX int `toml:"margin_x"`
	MarginY int `toml:"margin_y"`

	// Outline widths in output units.
	RowLineWidth        float64 `toml:"row_line_width"`
	TransistorLineWidth float64 `toml:"transistor_line_width"`

	// Shrink ratios for the two rectangles of a transistor: the diffusion
	// strip shrinks vertically, the poly strip horizontally.
	DiffusionShrink float64 `toml:"diffusion_shrink"`
	PolyShrink      float64 `toml:"poly_shrink"`

	Alpha Alpha `toml:"alpha"`

	// Seed for palette-extension colors.
	Seed uint64 `toml:"seed"`

	// Palette overrides the built-in group palette when non-empty, one
	// "#rrggbb" entry per slot.
	Palette []string `toml:"palette"`
}

// Default returns the built-in parameters, matching the historical plot
// style (scale 50, 2000-unit margins, NMOS/PMOS alphas 0.5/0.9).
func Default() Plot {
	return Plot{
		Scale:               50,
		MarginX:             2000,
		MarginY:             2000,
		RowLineWidth:        0.5,
		TransistorLineWidth: 0.3,
		DiffusionShrink:     0.5,
		PolyShrink:          0.2,
		Alpha: Alpha{
			NMOS:    0.5,
			PMOS:    0.9,
			InvNMOS: 0.4,
			InvPMOS: 0.25,
		},
		Seed: 42,
	}
}

// Load reads a TOML parameter file, applying defaults for absent keys.
func Load(path string) (Plot, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Plot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %q not found", path)
		}
		return Plot{}, errors.Wrap(errors.ErrCodeInternal, err, "read %q", path)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return Plot{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %q", path)
	}

	if err := p.Validate(); err != nil {
		return Plot{}, err
	}
	return p, nil
}

// Validate checks parameter ranges and palette entries.
func (p Plot) Validate() error {
	if p.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %v", p.Scale)
	}
	if p.DiffusionShrink <= 0 || p.DiffusionShrink > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "diffusion_shrink must be in (0,1], got %v", p.DiffusionShrink)
	}
	if p.PolyShrink <= 0 || p.PolyShrink > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "poly_shrink must be in (0,1], got %v", p.PolyShrink)
	}
	for _, a := range []float64{p.Alpha.NMOS, p.Alpha.PMOS, p.Alpha.InvNMOS, p.Alpha.InvPMOS} {
		if a < 0 || a > 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "alpha values must be in [0,1], got %v", a)
		}
	}
	for _, hex := range p.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid palette color %q", hex)
		}
	}
	return nil
}

// PaletteColors converts the palette override to colormap colors. Returns
// nil when no override is configured, which selects the built-in palette.
// Call Validate first; invalid entries are skipped here.
func (p Plot) PaletteColors() []colormap.Color {
	if len(p.Palette) == 0 {
		return nil
	}
	out := make([]colormap.Color, 0, len(p.Palette))
	for _, hex := range p.Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		r, g, b := c.RGB255()
		out = append(out, colormap.Color{R: r, G: g, B: b})
	}
	return out
}
