// Package texture implements the closed set of UV/point -> color samplers
// used by materials: constant colors, checkerboards, Perlin-derived noise,
// and image-backed textures (flat or HDR equirectangular).
package texture

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/vec"
)

// Texture samples a color at a surface point, given its UV coordinates and
// world-space point (procedural textures like Checker and Perlin use the
// point directly; image textures use only UV).
type Texture interface {
	Sample(uv vec.Vec2, point vec.Vec3) vec.Vec3
}

// Constant always returns the same color.
type Constant struct {
	Color vec.Vec3
}

// NewConstant creates a constant-color texture.
func NewConstant(c vec.Vec3) *Constant { return &Constant{Color: c} }

// Sample returns Color regardless of uv or point.
func (c *Constant) Sample(vec.Vec2, vec.Vec3) vec.Vec3 { return c.Color }

// Checker alternates between two sub-textures based on the sign of the
// product of sin(scale*coordinate) across the three axes of point.
type Checker struct {
	Even, Odd Texture
	Scale     float64
}

// NewChecker creates a checkerboard texture from two sub-textures.
func NewChecker(even, odd Texture, scale float64) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: scale}
}

// Sample selects Even or Odd by the sign of sin(scale*x)*sin(scale*y)*sin(scale*z).
func (c *Checker) Sample(uv vec.Vec2, point vec.Vec3) vec.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Sample(uv, point)
	}
	return c.Even.Sample(uv, point)
}
