package texture

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/vec"
)

func atan2Over2Pi(y, x float64) float64 { return math.Atan2(y, x) / (2 * math.Pi) }
func asinOverPi(x float64) float64      { return math.Asin(clampFloat(x, -1, 1)) / math.Pi }

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Image samples a decoded 8-bit RGB image by nearest-neighbor lookup, with
// UV wrapped into [0,1) and V flipped so V=0 is the bottom of the image
// (matching the rest of the tracer's UV convention) while the backing
// array is stored top-to-bottom as decoders produce it.
type Image struct {
	Width, Height int
	Pixels        []vec.Vec3 // row-major, row 0 = top of the source image
}

// NewImage wraps a decoded RGB pixel array. See DecodeImageFile in
// decode.go for the PNG/JPEG decode path that produces Pixels.
func NewImage(width, height int, pixels []vec.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Sample performs nearest-neighbor lookup after wrapping uv to [0,1).
func (t *Image) Sample(uv vec.Vec2, _ vec.Vec3) vec.Vec3 {
	u := wrap01(uv.X)
	v := wrap01(uv.Y)

	x := int(u * float64(t.Width))
	y := int((1 - v) * float64(t.Height))
	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)

	return t.Pixels[y*t.Width+x]
}

func wrap01(x float64) float64 {
	x -= float64(int(x))
	if x < 0 {
		x += 1
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HDREquirectangular samples a float-RGB panorama indexed directly by
// world-space direction rather than a primitive's UV, mapping longitude to
// x and latitude to y.
type HDREquirectangular struct {
	Width, Height int
	Pixels        []vec.Vec3 // row-major float RGB, row 0 = top (north pole)
}

// NewHDREquirectangular wraps a decoded float-RGB equirectangular panorama.
func NewHDREquirectangular(width, height int, pixels []vec.Vec3) *HDREquirectangular {
	return &HDREquirectangular{Width: width, Height: height, Pixels: pixels}
}

// SampleDirection looks up the radiance for a unit direction via the
// standard equirectangular projection (longitude -> u, latitude -> v).
func (h *HDREquirectangular) SampleDirection(dir vec.Vec3) vec.Vec3 {
	d := dir.Normalize()
	u := wrap01(0.5 + atan2Over2Pi(d.Z, d.X))
	v := wrap01(0.5 - asinOverPi(d.Y))

	x := clampInt(int(u*float64(h.Width)), 0, h.Width-1)
	y := clampInt(int(v*float64(h.Height)), 0, h.Height-1)
	return h.Pixels[y*h.Width+x]
}

// Sample implements Texture for completeness (e.g. debug preview of the
// panorama as a flat UV-mapped texture); environment lookups go through
// SampleDirection instead.
func (h *HDREquirectangular) Sample(uv vec.Vec2, _ vec.Vec3) vec.Vec3 {
	x := clampInt(int(wrap01(uv.X)*float64(h.Width)), 0, h.Width-1)
	y := clampInt(int((1-wrap01(uv.Y))*float64(h.Height)), 0, h.Height-1)
	return h.Pixels[y*h.Width+x]
}
