// Package rng provides the deterministic per-pixel random stream used by
// the sampler and the material scattering functions. Seeding a stream with
// the flat pixel index (see pkg/render) is the determinism contract
// described in the renderer's concurrency model: it must not be replaced
// by a process-wide generator.
package rng

import (
	"math/rand"

	"github.com/ashgrove/firetrace/pkg/vec"
)

// Stream is a seedable source of uniform floats, wrapping math/rand so a
// fresh, independent stream can cheaply be created per pixel.
type Stream struct {
	r *rand.Rand
}

// New creates a stream seeded with the given integer seed.
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform float in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// Range returns a uniform float in [lo, hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// UnitSphere returns a uniformly random point inside the unit sphere via
// rejection sampling.
func (s *Stream) UnitSphere() vec.Vec3 {
	for {
		p := vec.New(s.Range(-1, 1), s.Range(-1, 1), s.Range(-1, 1))
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// UnitVector returns a uniformly random unit vector (a random direction).
func (s *Stream) UnitVector() vec.Vec3 {
	return s.UnitSphere().Normalize()
}

// UnitDisk returns a uniformly random point inside the unit disk (Z=0),
// used by the camera for lens sampling.
func (s *Stream) UnitDisk() vec.Vec2 {
	for {
		p := vec.NewVec2(s.Range(-1, 1), s.Range(-1, 1))
		if p.X*p.X+p.Y*p.Y < 1 {
			return p
		}
	}
}

