package material

import (
	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/texture"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Isotropic scatters uniformly in a random direction over the full sphere,
// independent of the incoming direction or the surface normal. It is the
// phase function used inside a ConstantMedium.
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic creates an isotropic scattering material from an albedo texture.
func NewIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements Material: the outgoing direction is uniform on the
// unit sphere, unrelated to hit.Normal (ConstantMedium hits carry no
// meaningful surface normal).
func (i *Isotropic) Scatter(_ vec.Ray, hit primitive.Hit, stream *rng.Stream) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   vec.NewRay(hit.Point, stream.UnitVector()),
		Attenuation: i.Albedo.Sample(hit.UV, hit.Point),
	}, true
}

// Emit implements Material; Isotropic media do not emit light.
func (i *Isotropic) Emit(vec.Vec2, vec.Vec3) vec.Vec3 { return vec.Vec3{} }
