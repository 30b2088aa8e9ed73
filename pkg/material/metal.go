package material

import (
	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Metal is a reflective material with a cone-fuzzed reflection direction.
type Metal struct {
	Albedo    vec.Vec3
	Roughness float64 // 0 = perfect mirror, 1 = very fuzzy; clamped to [0,1]
}

// NewMetal creates a metal material, clamping roughness to [0,1].
func NewMetal(albedo vec.Vec3, roughness float64) *Metal {
	if roughness > 1 {
		roughness = 1
	}
	if roughness < 0 {
		roughness = 0
	}
	return &Metal{Albedo: albedo, Roughness: roughness}
}

// Scatter implements Material. The ray is absorbed if the fuzzed
// reflection would point into the surface.
func (m *Metal) Scatter(rayIn vec.Ray, hit primitive.Hit, stream *rng.Stream) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Roughness > 0 {
		reflected = reflected.Add(stream.UnitSphere().Scale(m.Roughness))
	}

	scattered := vec.NewRay(hit.Point, reflected)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{Scattered: scattered, Attenuation: m.Albedo}, true
}

// Emit implements Material; Metal does not emit light.
func (m *Metal) Emit(vec.Vec2, vec.Vec3) vec.Vec3 { return vec.Vec3{} }

// reflect returns v reflected about a surface with normal n.
func reflect(v, n vec.Vec3) vec.Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}
