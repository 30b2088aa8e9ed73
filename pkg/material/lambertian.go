package material

import (
	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/texture"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Lambertian is a perfectly diffuse material: its scatter target is the
// hit point offset by the normal plus a random point in the unit sphere.
type Lambertian struct {
	Albedo texture.Texture
}

// NewLambertian creates a diffuse material from an albedo texture.
func NewLambertian(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements Material.
func (l *Lambertian) Scatter(_ vec.Ray, hit primitive.Hit, stream *rng.Stream) (ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(stream.UnitSphere())
	direction := target.Sub(hit.Point)
	// A target landing exactly on the hit point (vanishingly rare) would
	// produce a zero-length scattered ray; fall back to the normal.
	if direction.NearZero(1e-8) {
		direction = hit.Normal
	}
	return ScatterResult{
		Scattered:   vec.NewRay(hit.Point, direction),
		Attenuation: l.Albedo.Sample(hit.UV, hit.Point),
	}, true
}

// Emit implements Material; Lambertian surfaces do not emit light.
func (l *Lambertian) Emit(vec.Vec2, vec.Vec3) vec.Vec3 { return vec.Vec3{} }
