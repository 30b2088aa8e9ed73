// Package camera implements the thin-lens pinhole camera: primary rays
// originate from a jittered point on a simulated lens aperture, giving
// depth-of-field falloff away from the focus plane.
package camera

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Config describes a camera's placement and optics. VFov is the vertical
// field of view in degrees. Aperture is the lens diameter; zero disables
// depth of field entirely (every ray originates from Position).
type Config struct {
	Position     vec.Vec3
	LookAt       vec.Vec3
	VUp          vec.Vec3
	VFov         float64
	Aperture     float64
	FocusDist    float64
	ImageWidth   int
	ImageHeight  int
}

// Camera generates primary rays for image coordinates in [0,1]^2.
type Camera struct {
	origin          vec.Vec3
	lowerLeftCorner vec.Vec3
	horizontal      vec.Vec3
	vertical        vec.Vec3
	u, v, w         vec.Vec3
	lensRadius      float64
}

// New builds a camera from the given configuration.
func New(cfg Config) *Camera {
	vup := cfg.VUp
	if vup == (vec.Vec3{}) {
		vup = vec.New(0, 1, 0)
	}

	theta := cfg.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := halfHeight * float64(cfg.ImageWidth) / float64(cfg.ImageHeight)

	w := cfg.Position.Sub(cfg.LookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.Position
	horizontal := u.Scale(2 * halfWidth * cfg.FocusDist)
	vertical := v.Scale(2 * halfHeight * cfg.FocusDist)
	lowerLeftCorner := origin.
		Sub(horizontal.Scale(0.5)).
		Sub(vertical.Scale(0.5)).
		Sub(w.Scale(cfg.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
	}
}

// GenerateRay produces a primary ray for screen coordinates (s,t) in
// [0,1]^2, jittering its origin across the lens aperture when the camera
// has nonzero aperture.
func (c *Camera) GenerateRay(s, t float64, stream *rng.Stream) vec.Ray {
	var offset vec.Vec3
	if c.lensRadius > 0 {
		rd := stream.UnitDisk().Scale(c.lensRadius)
		offset = c.u.Scale(rd.X).Add(c.v.Scale(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t)).
		Sub(origin)

	return vec.NewRay(origin, direction)
}
