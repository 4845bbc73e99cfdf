package config

import (
	"sort"

	"github.com/san-kum/mandelzoom/internal/fractal"
)

// Preset is a named landmark in the Mandelbrot set with an iteration bound
// deep enough to resolve its structure.
type Preset struct {
	Name        string
	Description string
	XCenter     float64
	YCenter     float64
	Scale       float64
	MaxIter     int
}

var presets = map[string]Preset{
	"home": {
		Name:        "home",
		Description: "full set overview",
		XCenter:     -0.5,
		YCenter:     0.0,
		Scale:       1.5,
		MaxIter:     300,
	},
	"seahorse": {
		Name:        "seahorse",
		Description: "Seahorse Valley, dense repeating curls",
		XCenter:     -0.75,
		YCenter:     0.1,
		Scale:       0.05,
		MaxIter:     1000,
	},
	"elephant": {
		Name:        "elephant",
		Description: "Elephant Valley, trunk-like tendrils",
		XCenter:     -1.8,
		YCenter:     -0.06,
		Scale:       0.05,
		MaxIter:     1000,
	},
	"spiral-minibrot": {
		Name:        "spiral-minibrot",
		Description: "minibrot with tight spiral arms",
		XCenter:     -0.74275,
		YCenter:     0.13175,
		Scale:       0.00075,
		MaxIter:     2500,
	},
	"triple-spiral": {
		Name:        "triple-spiral",
		Description: "threefold symmetric spiral",
		XCenter:     -0.7465,
		YCenter:     0.0965,
		Scale:       0.0015,
		MaxIter:     2000,
	},
	"dragon-valley": {
		Name:        "dragon-valley",
		Description: "Valley of the Dragon, deep spiral filaments",
		XCenter:     -0.7375,
		YCenter:     0.1825,
		Scale:       0.0025,
		MaxIter:     2000,
	},
	"mini-spiral-minibrot": {
		Name:        "mini-spiral-minibrot",
		Description: "self-similar copy inside a spiral arm",
		XCenter:     -1.73825,
		YCenter:     -0.02275,
		Scale:       0.00075,
		MaxIter:     2500,
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Preset {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns all preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Viewport builds a render viewport for the preset at the given pixel
// dimensions.
func (p *Preset) Viewport(width, height int) fractal.Viewport {
	return fractal.Viewport{
		Width:   width,
		Height:  height,
		MaxIter: p.MaxIter,
		XCenter: p.XCenter,
		YCenter: p.YCenter,
		Scale:   p.Scale,
	}
}
