package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ashgrove/firetrace/pkg/pixel"
)

func TestWriteImage_PNGRoundTripsPixelColors(t *testing.T) {
	buf := []pixel.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 10, G: 20, B: 30},
	}
	path := filepath.Join(t.TempDir(), "out.png")

	if err := writeImage(path, 2, 2, buf); err != nil {
		t.Fatalf("writeImage() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	want := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	if got := img.At(0, 0); got != color.Color(want) {
		r, g, b, a := got.RGBA()
		t.Errorf("pixel (0,0) = %d,%d,%d,%d, want %+v", r>>8, g>>8, b>>8, a>>8, want)
	}
}

func TestWriteImage_CreatesMissingOutputDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.png")
	buf := []pixel.RGB{{R: 1, G: 2, B: 3}}

	if err := writeImage(path, 1, 1, buf); err != nil {
		t.Fatalf("writeImage() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist at %q: %v", path, err)
	}
}

func TestWriteImage_WebPExtensionEncodesSuccessfully(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	buf := make([]pixel.RGB, 16)
	for i := range buf {
		buf[i] = pixel.RGB{R: uint8(i * 16), G: uint8(255 - i*16), B: 128}
	}

	if err := writeImage(path, 4, 4, buf); err != nil {
		t.Fatalf("writeImage() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat webp output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("webp output file is empty")
	}
}
