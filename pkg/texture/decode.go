package texture

import (
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg" // registers the JPEG decoder for DecodeImageFile
	_ "image/png"  // registers the PNG decoder for DecodeImageFile
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/ashgrove/firetrace/pkg/vec"
)

// DecodeImageFile decodes a PNG or JPEG file into an Image texture. This is
// a collaborator, not part of the core render path: decoding happens once
// during scene construction.
func DecodeImageFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %q: %w", path, err)
	}
	return fromImage(img), nil
}

// Resample resizes an Image to the given dimensions using
// golang.org/x/image/draw's high-quality scaler, used when a scene asks
// for a texture at a resolution different from the source file.
func Resample(src *Image, width, height int) *Image {
	srcImg := toImage(src)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)
	return fromImage(dst)
}

func fromImage(img image.Image) *Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]vec.Vec3, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = vec.New(float64(r)/65535, float64(g)/65535, float64(b)/65535)
		}
	}
	return NewImage(w, h, pixels)
}

func toImage(t *Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := t.Pixels[y*t.Width+x]
			dst.Set(x, y, toRGBAColor(c))
		}
	}
	return dst
}

func toRGBAColor(c vec.Vec3) rgbaColor {
	return rgbaColor{
		r: uint8(clampFloat(c.X, 0, 1) * 255),
		g: uint8(clampFloat(c.Y, 0, 1) * 255),
		b: uint8(clampFloat(c.Z, 0, 1) * 255),
	}
}

// rgbaColor is a minimal color.Color implementation to avoid pulling in
// color.NRGBA conversions for a value only ever written, never read back.
type rgbaColor struct{ r, g, b uint8 }

func (c rgbaColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.r) * 0x101, uint32(c.g) * 0x101, uint32(c.b) * 0x101, 0xffff
}

// DecodeHDREquirectangular reads a raw 32-bit-float RGB panorama with a
// leading width/height header, as produced by the scene-construction
// tooling for environment maps. Layout: two big-endian uint32s (width,
// height) followed by width*height*3 big-endian float32 samples.
func DecodeHDREquirectangular(path string) (*HDREquirectangular, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %q: %w", path, err)
	}
	defer f.Close()

	var header [8]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return nil, fmt.Errorf("texture: read HDR header of %q: %w", path, err)
	}
	width := int(binary.BigEndian.Uint32(header[0:4]))
	height := int(binary.BigEndian.Uint32(header[4:8]))

	pixels := make([]vec.Vec3, width*height)
	buf := make([]byte, 12)
	for i := range pixels {
		if _, err := io.ReadFull(f, buf); err != nil {
			return nil, fmt.Errorf("texture: read HDR pixel %d of %q: %w", i, path, err)
		}
		pixels[i] = vec.New(
			float64(decodeFloat32(buf[0:4])),
			float64(decodeFloat32(buf[4:8])),
			float64(decodeFloat32(buf[8:12])),
		)
	}

	return NewHDREquirectangular(width, height, pixels), nil
}

func decodeFloat32(b []byte) float32 {
	bits := binary.BigEndian.Uint32(b)
	return math.Float32frombits(bits)
}
