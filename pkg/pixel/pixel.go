// Package pixel converts between a flat pixel index, its screen coordinate,
// and its packed 8-bit RGB representation.
package pixel

import "github.com/ashgrove/firetrace/pkg/vec"

// Coord returns the (x,y) screen coordinate for flat index i in an image
// of the given width and height, with y increasing upward.
func Coord(i, width, height int) (x, y int) {
	x = i % width
	y = height - i/width
	return x, y
}

// RGB is a packed 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Pack converts a gamma-corrected, [0,1]-clamped color into 8-bit RGB.
func Pack(c vec.Vec3) RGB {
	return RGB{
		R: uint8(c.X*255 + 0.5),
		G: uint8(c.Y*255 + 0.5),
		B: uint8(c.Z*255 + 0.5),
	}
}
