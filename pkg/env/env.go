// Package env implements the directional background lookup consulted
// whenever a path escapes the scene without hitting anything.
package env

import (
	"github.com/ashgrove/firetrace/pkg/texture"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Environment returns the incoming radiance for a unit ray direction.
type Environment interface {
	Sample(direction vec.Vec3) vec.Vec3
}

// Constant is a uniform background color, e.g. a solid black void or a
// flat studio-white fill.
type Constant struct {
	Color vec.Vec3
}

// NewConstant creates a constant-color environment.
func NewConstant(color vec.Vec3) *Constant {
	return &Constant{Color: color}
}

// Sample implements Environment.
func (c *Constant) Sample(vec.Vec3) vec.Vec3 { return c.Color }

// Gradient is a sky-like background, linear in the direction's y-component:
// Bottom at y=-1, Top at y=1.
type Gradient struct {
	Top, Bottom vec.Vec3
}

// NewGradient creates a gradient environment between a bottom and top color.
func NewGradient(top, bottom vec.Vec3) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

// Sample implements Environment, lerping bottom-to-top by direction.Y
// remapped from [-1,1] to [0,1].
func (g *Gradient) Sample(direction vec.Vec3) vec.Vec3 {
	d := direction.Normalize()
	t := 0.5 * (d.Y + 1.0)
	return g.Bottom.Scale(1 - t).Add(g.Top.Scale(t))
}

// HDR samples an equirectangular panorama directly by direction.
type HDR struct {
	Panorama *texture.HDREquirectangular
}

// NewHDR creates an environment backed by a decoded HDR panorama.
func NewHDR(panorama *texture.HDREquirectangular) *HDR {
	return &HDR{Panorama: panorama}
}

// Sample implements Environment.
func (h *HDR) Sample(direction vec.Vec3) vec.Vec3 {
	return h.Panorama.SampleDirection(direction)
}
