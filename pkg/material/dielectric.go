package material

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Dielectric is a clear refractive material such as glass or water.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given index of refraction.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements Material. The ray either refracts or reflects,
// chosen probabilistically by the Schlick reflectance approximation;
// total internal reflection forces a reflection. Attenuation is always
// (1,1,1): clear glass absorbs no color.
func (d *Dielectric) Scatter(rayIn vec.Ray, hit primitive.Hit, stream *rng.Stream) (ScatterResult, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction vec.Vec3
	if cannotRefract || schlickReflectance(cosTheta, refractionRatio) > stream.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   vec.NewRay(hit.Point, direction),
		Attenuation: vec.Splat(1.0),
	}, true
}

// Emit implements Material; Dielectric surfaces do not emit light.
func (d *Dielectric) Emit(vec.Vec2, vec.Vec3) vec.Vec3 { return vec.Vec3{} }

// refract applies Snell's law to a unit incoming direction uv about a
// unit normal n, given the ratio of refractive indices.
func refract(uv, n vec.Vec3, etaiOverEtat float64) vec.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Scale(cosTheta)).Scale(etaiOverEtat)
	rOutParallel := n.Scale(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// schlickReflectance approximates the Fresnel reflectance at the given
// angle and refractive index ratio.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
