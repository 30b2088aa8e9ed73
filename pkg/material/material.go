// Package material implements the closed set of scatter/emit rules:
// Lambertian, Metal, Dielectric, Emissive and Isotropic. Every material's
// Scatter method is a pure function of its inputs plus the supplied RNG
// stream — no hidden state, no allocation beyond the returned Ray/Vec3
// values.
package material

import (
	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// ScatterResult is what a successful Scatter call returns: the outgoing
// ray and the color by which its contribution should be attenuated.
type ScatterResult struct {
	Scattered   vec.Ray
	Attenuation vec.Vec3
}

// Material is the closed interface every material variant implements.
type Material interface {
	// Scatter attempts to continue the path after a hit. ok is false when
	// the ray is absorbed (e.g. Metal below the surface, or any Emissive).
	Scatter(rayIn vec.Ray, hit primitive.Hit, rng *rng.Stream) (ScatterResult, bool)
	// Emit returns the radiance this material emits toward the incoming
	// ray. Non-emissive materials return the zero vector.
	Emit(uv vec.Vec2, point vec.Vec3) vec.Vec3
}

// Pool is an append-only collection of materials indexed by
// primitive.MaterialHandle — the scene's material pool (see pkg/scene).
type Pool struct {
	materials []Material
}

// Add appends a material and returns its stable handle.
func (p *Pool) Add(m Material) primitive.MaterialHandle {
	p.materials = append(p.materials, m)
	return primitive.MaterialHandle(len(p.materials) - 1)
}

// Get dereferences a handle. Handles are only ever produced by Add on this
// same pool, so out-of-range access indicates a programming error upstream
// rather than a condition to recover from.
func (p *Pool) Get(h primitive.MaterialHandle) Material {
	return p.materials[h]
}

// Len returns the number of materials in the pool.
func (p *Pool) Len() int { return len(p.materials) }
