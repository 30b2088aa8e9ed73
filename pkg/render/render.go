// Package render implements the embarrassingly-parallel per-pixel sampler
// and the recursive path-trace recurrence that drives it. Workers share
// read-only access to the Scene, BVH, and Camera; each pixel is written by
// exactly one worker, so the output buffer needs no locking.
package render

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ashgrove/firetrace/pkg/bvh"
	"github.com/ashgrove/firetrace/pkg/camera"
	"github.com/ashgrove/firetrace/pkg/env"
	"github.com/ashgrove/firetrace/pkg/pixel"
	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/scene"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// MaxDepth bounds the path-trace recurrence's recursion depth.
const MaxDepth = 10

// Logger is satisfied by the standard library's log.Logger, among others.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Config configures a render pass.
type Config struct {
	Width, Height int
	Samples       int     // samples per pixel; 0 means DefaultSamples
	Gamma         float64 // 0 means DefaultGamma
	Workers       int     // 0 means runtime.NumCPU()
	UseBVH        bool    // false falls back to a linear scan over Scene.Objects
	Logger        Logger  // nil means no progress logging
}

// DefaultSamples and DefaultGamma are applied when Config leaves the
// corresponding field at its zero value.
const (
	DefaultSamples = 128
	DefaultGamma   = 2.2
)

func (c Config) withDefaults() Config {
	if c.Samples <= 0 {
		c.Samples = DefaultSamples
	}
	if c.Gamma <= 0 {
		c.Gamma = DefaultGamma
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

// Render traces sc through cam according to cfg and returns a width*height
// buffer of packed 8-bit colors, row-major starting at the top-left pixel
// (x=0, y=height in the renderer's internal y-increases-upward frame —
// see pkg/pixel.Coord).
func Render(sc *scene.Scene, cam *camera.Camera, cfg Config) []pixel.RGB {
	cfg = cfg.withDefaults()
	var tree *bvh.Node
	if cfg.UseBVH {
		tree = sc.BuildBVH()
	}

	total := cfg.Width * cfg.Height
	buffer := make([]pixel.RGB, total)

	var progress int64
	var wg sync.WaitGroup
	chunks := partitionRange(total, cfg.Workers*4)
	chunkCh := make(chan [2]int, len(chunks))
	for _, c := range chunks {
		chunkCh <- c
	}
	close(chunkCh)

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range chunkCh {
				renderChunk(sc, tree, cam, cfg, buffer, c[0], c[1])
				atomic.AddInt64(&progress, int64(c[1]-c[0]))
				if cfg.Logger != nil {
					cfg.Logger.Printf("rendered %d/%d pixels", atomic.LoadInt64(&progress), total)
				}
			}
		}()
	}
	wg.Wait()

	return buffer
}

// partitionRange splits [0,total) into roughly n contiguous chunks.
func partitionRange(total, n int) [][2]int {
	if n <= 0 {
		n = 1
	}
	chunkSize := (total + n - 1) / n
	if chunkSize < 1 {
		chunkSize = 1
	}
	var chunks [][2]int
	for start := 0; start < total; start += chunkSize {
		end := start + chunkSize
		if end > total {
			end = total
		}
		chunks = append(chunks, [2]int{start, end})
	}
	return chunks
}

func renderChunk(sc *scene.Scene, tree *bvh.Node, cam *camera.Camera, cfg Config, buffer []pixel.RGB, start, end int) {
	for i := start; i < end; i++ {
		buffer[i] = renderPixel(sc, tree, cam, cfg, i)
	}
}

func renderPixel(sc *scene.Scene, tree *bvh.Node, cam *camera.Camera, cfg Config, i int) pixel.RGB {
	stream := rng.New(int64(i))
	x, y := pixel.Coord(i, cfg.Width, cfg.Height)

	var sum vec.Vec3
	for s := 0; s < cfg.Samples; s++ {
		u := (float64(x) + stream.Float64()) / float64(cfg.Width)
		v := (float64(y) + stream.Float64()) / float64(cfg.Height)
		r := cam.GenerateRay(u, v, stream)
		sum = sum.Add(colorAt(r, sc, tree, 0, stream))
	}

	c := sum.Scale(1.0 / float64(cfg.Samples))
	c = c.GammaCorrect(cfg.Gamma).Clamp(0, 1)
	return pixel.Pack(c)
}

// colorAt implements the path-trace recurrence: intersect, accumulate
// emission, and recurse along a scattered ray until depth exhausts or the
// material absorbs. A 0.001 origin bias avoids shadow acne from
// self-intersection; 2e9 is treated as the effectively-unbounded far plane.
func colorAt(r vec.Ray, sc *scene.Scene, tree *bvh.Node, depth int, stream *rng.Stream) vec.Vec3 {
	hit, ok := intersectScene(sc, tree, r, 0.001, 2e9, stream)
	if !ok {
		if sc.Environment == nil {
			return vec.Vec3{}
		}
		return sc.Environment.Sample(r.Direction.Normalize())
	}

	mat := sc.Materials.Get(hit.Material)
	emitted := mat.Emit(hit.UV, hit.Point)
	if depth >= MaxDepth {
		return emitted
	}

	result, scattered := mat.Scatter(r, hit, stream)
	if !scattered {
		return emitted
	}

	return emitted.Add(result.Attenuation.Mul(colorAt(result.Scattered, sc, tree, depth+1, stream)))
}

func intersectScene(sc *scene.Scene, tree *bvh.Node, r vec.Ray, tMin, tMax float64, stream *rng.Stream) (primitive.Hit, bool) {
	if tree != nil {
		return tree.Intersect(r, tMin, tMax, stream)
	}
	// Linear scan fallback when the scene opted out of BVH acceleration.
	var best primitive.Hit
	found := false
	closest := tMax
	for _, obj := range sc.Objects {
		if hit, ok := obj.Intersect(r, tMin, closest, stream); ok {
			best = hit
			found = true
			closest = hit.T
		}
	}
	return best, found
}
