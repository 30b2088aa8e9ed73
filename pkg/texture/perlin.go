package texture

import (
	"math"
	"math/rand"

	"github.com/ashgrove/firetrace/pkg/vec"
)

const perlinPointCount = 256

// perlinNoise is the classic "ray tracing in a weekend"-style gradient
// noise generator: a lattice of random unit vectors plus three
// permutation tables, trilinearly interpolated and Hermite-smoothed.
type perlinNoise struct {
	randVec  [perlinPointCount]vec.Vec3
	permX    [perlinPointCount]int
	permY    [perlinPointCount]int
	permZ    [perlinPointCount]int
}

func newPerlinNoise(seed int64) *perlinNoise {
	r := rand.New(rand.NewSource(seed))
	p := &perlinNoise{}
	for i := range p.randVec {
		p.randVec[i] = vec.New(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1).Normalize()
	}
	p.permX = generatePerm(r)
	p.permY = generatePerm(r)
	p.permZ = generatePerm(r)
	return p
}

func generatePerm(r *rand.Rand) [perlinPointCount]int {
	var p [perlinPointCount]int
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// noise evaluates smoothed gradient noise at point p, in roughly [-1, 1].
func (pn *perlinNoise) noise(p vec.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]vec.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}
	return trilinearInterp(c, u, v, w)
}

func trilinearInterp(c [2][2][2]vec.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	sum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := vec.New(u-fi, v-fj, w-fk)
				sum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return sum
}

// turbulence sums depth octaves of noise at halving amplitude and doubling
// frequency.
func (pn *perlinNoise) turbulence(p vec.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pn.noise(temp)
		weight *= 0.5
		temp = temp.Scale(2)
	}
	return math.Abs(accum)
}

// Perlin is a grayscale gradient-noise texture, scaled to the surface
// point before sampling.
type Perlin struct {
	noise *perlinNoise
	Scale float64
}

// NewPerlin creates a Perlin noise texture with the given seed and scale.
func NewPerlin(seed int64, scale float64) *Perlin {
	return &Perlin{noise: newPerlinNoise(seed), Scale: scale}
}

// Sample returns a grayscale color from raw (signed) noise remapped to [0,1].
func (p *Perlin) Sample(_ vec.Vec2, point vec.Vec3) vec.Vec3 {
	n := 0.5 * (1 + p.noise.noise(point.Scale(p.Scale)))
	return vec.Splat(n)
}

// Turbulence is a grayscale fractal-sum noise texture (depth octaves).
type Turbulence struct {
	noise *perlinNoise
	Scale float64
	Depth int
}

// NewTurbulence creates a turbulence texture with the given seed, scale and
// octave depth.
func NewTurbulence(seed int64, scale float64, depth int) *Turbulence {
	return &Turbulence{noise: newPerlinNoise(seed), Scale: scale, Depth: depth}
}

// Sample returns a grayscale color from the turbulence magnitude.
func (t *Turbulence) Sample(_ vec.Vec2, point vec.Vec3) vec.Vec3 {
	return vec.Splat(t.noise.turbulence(point.Scale(t.Scale), t.Depth))
}

// Marble is the classic "sin(scale*z + 10*turbulence)" veined texture tinted
// by Color.
type Marble struct {
	noise *perlinNoise
	Scale float64
	Depth int
	Color vec.Vec3
}

// NewMarble creates a marble-veined texture.
func NewMarble(seed int64, scale float64, depth int, color vec.Vec3) *Marble {
	return &Marble{noise: newPerlinNoise(seed), Scale: scale, Depth: depth, Color: color}
}

// Sample returns Color scaled by the marble intensity function.
func (m *Marble) Sample(_ vec.Vec2, point vec.Vec3) vec.Vec3 {
	intensity := 0.5 * (1 + math.Sin(m.Scale*point.Z+10*m.noise.turbulence(point, m.Depth)))
	return m.Color.Scale(intensity)
}
