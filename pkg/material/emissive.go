package material

import (
	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/texture"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Emissive is a light-emitting material; it never scatters, it only emits.
type Emissive struct {
	Emission texture.Texture
}

// NewEmissive creates an emissive material from an emission texture.
func NewEmissive(emission texture.Texture) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements Material; emissive surfaces absorb every incoming ray.
func (e *Emissive) Scatter(vec.Ray, primitive.Hit, *rng.Stream) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit implements Material, returning the texture's sample at the hit.
func (e *Emissive) Emit(uv vec.Vec2, point vec.Vec3) vec.Vec3 {
	return e.Emission.Sample(uv, point)
}
