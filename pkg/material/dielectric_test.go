package material

import (
	"testing"

	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

func TestDielectric_AttenuationIsAlwaysOne(t *testing.T) {
	d := NewDielectric(1.5)
	stream := rng.New(3)
	hit := primitive.Hit{Point: vec.New(0, 0, 0), Normal: vec.New(0, 1, 0), FrontFace: true}
	ray := vec.NewRay(vec.New(0, 1, 0), vec.New(0.2, -1, 0).Normalize())

	for i := 0; i < 50; i++ {
		result, ok := d.Scatter(ray, hit, stream)
		if !ok {
			t.Fatal("dielectric should always scatter")
		}
		if !result.Attenuation.Equals(vec.Splat(1)) {
			t.Errorf("attenuation = %v, want (1,1,1)", result.Attenuation)
		}
	}
}

func TestSchlickReflectance_InZeroOneRange(t *testing.T) {
	for _, cosine := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		r := schlickReflectance(cosine, 1.0/1.5)
		if r < 0 || r > 1 {
			t.Errorf("schlickReflectance(%v) = %v, want in [0,1]", cosine, r)
		}
	}
}

func TestDielectric_TotalInternalReflectionForcesReflect(t *testing.T) {
	d := NewDielectric(1.5)
	stream := rng.New(9)
	normal := vec.New(0, 1, 0)
	hit := primitive.Hit{Point: vec.New(0, 0, 0), Normal: normal, FrontFace: false}
	// Steep grazing angle exiting glass to air triggers TIR.
	ray := vec.NewRay(vec.New(0, 1, 0), vec.New(1, -0.05, 0).Normalize())

	result, ok := d.Scatter(ray, hit, stream)
	if !ok {
		t.Fatal("dielectric should always scatter")
	}
	reflected := reflect(ray.Direction.Normalize(), normal)
	if !result.Scattered.Direction.Normalize().Equals(reflected) {
		t.Errorf("expected forced reflection under TIR, got %v want %v",
			result.Scattered.Direction.Normalize(), reflected)
	}
}
