package camera

import (
	"math"
	"testing"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	cfg := Config{
		Position:    vec.New(0, 0, -3),
		LookAt:      vec.New(0, 0, 0),
		VFov:        90,
		FocusDist:   1,
		ImageWidth:  100,
		ImageHeight: 100,
	}
	cam := New(cfg)
	stream := rng.New(1)

	r := cam.GenerateRay(0.5, 0.5, stream)
	dir := r.Direction.Normalize()
	want := vec.New(0, 0, 1)
	if dir.Sub(want).Length() > 1e-6 {
		t.Errorf("center ray direction = %v, want %v", dir, want)
	}
}

func TestCamera_ZeroApertureIsPinhole(t *testing.T) {
	cfg := Config{
		Position:    vec.New(0, 0, -5),
		LookAt:      vec.New(0, 0, 0),
		VFov:        40,
		Aperture:    0,
		FocusDist:   5,
		ImageWidth:  64,
		ImageHeight: 64,
	}
	cam := New(cfg)
	stream := rng.New(2)

	for i := 0; i < 20; i++ {
		r := cam.GenerateRay(0.3, 0.7, stream)
		if r.Origin != cfg.Position {
			t.Fatalf("ray %d origin = %v, want fixed at %v (aperture 0)", i, r.Origin, cfg.Position)
		}
	}
}

func TestCamera_NonzeroApertureJittersOrigin(t *testing.T) {
	cfg := Config{
		Position:    vec.New(0, 0, -5),
		LookAt:      vec.New(0, 0, 0),
		VFov:        40,
		Aperture:    1.0,
		FocusDist:   5,
		ImageWidth:  64,
		ImageHeight: 64,
	}
	cam := New(cfg)
	stream := rng.New(3)

	first := cam.GenerateRay(0.5, 0.5, stream).Origin
	sawDifferentOrigin := false
	for i := 0; i < 50; i++ {
		if o := cam.GenerateRay(0.5, 0.5, stream).Origin; math.Abs(o.X-first.X) > 1e-9 || math.Abs(o.Y-first.Y) > 1e-9 {
			sawDifferentOrigin = true
			break
		}
	}
	if !sawDifferentOrigin {
		t.Error("expected lens jitter to vary the ray origin across samples")
	}
}
