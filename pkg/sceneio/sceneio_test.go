package sceneio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ashgrove/firetrace/pkg/texture"
)

const unitSphereYAML = `
camera:
  position: {x: 0, y: 0, z: -3}
  look_at: {x: 0, y: 0, z: 0}
  vfov: 60
  image_width: 64
  image_height: 64
materials:
  red:
    kind: lambertian
    albedo: {color: {x: 1, y: 0, z: 0}}
objects:
  - shape: sphere
    radius: 1
    material: red
    position: {x: 0, y: 0, z: 0}
environment:
  kind: constant
  color: {x: 1, y: 1, z: 1}
`

func TestDecode_UnitSphereScene(t *testing.T) {
	sc, cam, err := Decode([]byte(unitSphereYAML))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(sc.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(sc.Objects))
	}
	if sc.Materials.Len() != 1 {
		t.Fatalf("Materials.Len() = %d, want 1", sc.Materials.Len())
	}
	if sc.Environment == nil {
		t.Fatal("Environment is nil")
	}
	if cam.ImageWidth != 64 || cam.ImageHeight != 64 {
		t.Errorf("camera dims = %dx%d, want 64x64", cam.ImageWidth, cam.ImageHeight)
	}
	if cam.VFov != 60 {
		t.Errorf("camera vfov = %v, want 60", cam.VFov)
	}
}

func TestDecode_UnknownShapeIsError(t *testing.T) {
	_, _, err := Decode([]byte(`
materials:
  m: {kind: lambertian, albedo: {color: {x: 1, y: 1, z: 1}}}
objects:
  - shape: dodecahedron
    material: m
    position: {x: 0, y: 0, z: 0}
`))
	if err == nil {
		t.Fatal("expected an error for an unknown shape tag")
	}
}

func TestDecode_UndefinedMaterialRefIsError(t *testing.T) {
	_, _, err := Decode([]byte(`
objects:
  - shape: sphere
    radius: 1
    material: missing
    position: {x: 0, y: 0, z: 0}
`))
	if err == nil {
		t.Fatal("expected an error for an undefined material reference")
	}
}

func TestDecode_MalformedYAMLIsError(t *testing.T) {
	if _, _, err := Decode([]byte("not: [valid: yaml")); err == nil {
		t.Fatal("expected a YAML parse error")
	}
}

func TestBuildTexture_ImageResamplesWhenDimensionsDiffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create source png: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode source png: %v", err)
	}
	f.Close()

	tex, err := buildTexture(textureAssetDoc{Kind: "image", File: path, Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("buildTexture() error = %v", err)
	}
	img, ok := tex.(*texture.Image)
	if !ok {
		t.Fatalf("buildTexture() returned %T, want *texture.Image", tex)
	}
	if img.Width != 8 || img.Height != 8 {
		t.Errorf("resampled image dims = %dx%d, want 8x8", img.Width, img.Height)
	}
}

func TestBuildTexture_ImageSkipsResampleWhenDimensionsMatchSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.png")
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create source png: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode source png: %v", err)
	}
	f.Close()

	tex, err := buildTexture(textureAssetDoc{Kind: "image", File: path, Width: 3, Height: 3})
	if err != nil {
		t.Fatalf("buildTexture() error = %v", err)
	}
	img := tex.(*texture.Image)
	if img.Width != 3 || img.Height != 3 {
		t.Errorf("image dims = %dx%d, want 3x3 (unchanged)", img.Width, img.Height)
	}
}

func TestDecode_CameraDefaultsWhenSectionOmitted(t *testing.T) {
	_, cam, err := Decode([]byte(`
materials:
  m: {kind: lambertian, albedo: {color: {x: 1, y: 1, z: 1}}}
objects:
  - shape: sphere
    radius: 1
    material: m
    position: {x: 0, y: 0, z: 0}
`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cam.ImageWidth != 400 || cam.ImageHeight != 400 {
		t.Errorf("default camera dims = %dx%d, want 400x400", cam.ImageWidth, cam.ImageHeight)
	}
	if cam.VFov != 60 {
		t.Errorf("default vfov = %v, want 60", cam.VFov)
	}
}
