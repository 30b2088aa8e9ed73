// Package sceneio decodes a scene description file into a scene.Scene.
// Scene files are not part of the rendering core: they are an external
// collaborator consumed once at Scene construction, off the render hot
// path.
package sceneio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashgrove/firetrace/pkg/camera"
	"github.com/ashgrove/firetrace/pkg/env"
	"github.com/ashgrove/firetrace/pkg/material"
	"github.com/ashgrove/firetrace/pkg/meshio"
	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/scene"
	"github.com/ashgrove/firetrace/pkg/texture"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// vec3Doc is the on-disk representation of a Vec3.
type vec3Doc struct {
	X, Y, Z float64
}

func (v vec3Doc) toVec() vec.Vec3 { return vec.New(v.X, v.Y, v.Z) }

// rotationDoc is the on-disk representation of a Rotor.
type rotationDoc struct {
	Scalar   float64 `yaml:"scalar"`
	Bivector struct {
		XY, XZ, YZ float64
	} `yaml:"bivector"`
}

func (r rotationDoc) toRotor() vec.Rotor {
	return vec.Rotor{Scalar: r.Scalar, XY: r.Bivector.XY, XZ: r.Bivector.XZ, YZ: r.Bivector.YZ}.Normalize()
}

// textureDoc names a texture either by a flat color or a reference to a
// named texture defined in the document's top-level textures map.
type textureDoc struct {
	Color *vec3Doc `yaml:"color,omitempty"`
	Ref   string   `yaml:"ref,omitempty"`
}

// materialDoc describes one pool entry.
type materialDoc struct {
	Kind      string      `yaml:"kind"` // lambertian, metal, dielectric, emissive, isotropic
	Albedo    *textureDoc `yaml:"albedo,omitempty"`
	Emission  *textureDoc `yaml:"emission,omitempty"`
	Roughness float64     `yaml:"roughness,omitempty"`
	IOR       float64     `yaml:"ior,omitempty"`
}

// textureAssetDoc describes a named texture for the textures map.
type textureAssetDoc struct {
	Kind   string   `yaml:"kind"` // constant, checker, perlin, turbulence, marble, image
	Color  *vec3Doc `yaml:"color,omitempty"`
	Even   *vec3Doc `yaml:"even,omitempty"`
	Odd    *vec3Doc `yaml:"odd,omitempty"`
	Scale  float64  `yaml:"scale,omitempty"`
	Depth  int      `yaml:"depth,omitempty"`
	Seed   int64    `yaml:"seed,omitempty"`
	File   string   `yaml:"file,omitempty"`
	Width  int      `yaml:"width,omitempty"`  // image kind only; resamples if set and != source size
	Height int      `yaml:"height,omitempty"` // image kind only; resamples if set and != source size
}

// objectDoc is one render-object entry: a shape tag, its parameters, and
// its placement.
type objectDoc struct {
	Shape       string    `yaml:"shape"`
	Radius      float64   `yaml:"radius,omitempty"`
	InnerRadius float64   `yaml:"inner_radius,omitempty"`
	Height      float64   `yaml:"height,omitempty"`
	MaxPhi      float64   `yaml:"max_phi,omitempty"`
	Min1        float64   `yaml:"min1,omitempty"`
	Max1        float64   `yaml:"max1,omitempty"`
	Min2        float64   `yaml:"min2,omitempty"`
	Max2        float64   `yaml:"max2,omitempty"`
	K           float64   `yaml:"k,omitempty"`
	Min         *vec3Doc  `yaml:"min,omitempty"`
	Max         *vec3Doc  `yaml:"max,omitempty"`
	Density     float64   `yaml:"density,omitempty"`
	Boundary    *objectDoc `yaml:"boundary,omitempty"`
	MeshFile    string    `yaml:"mesh_file,omitempty"`
	Material    string    `yaml:"material"`
	Position    vec3Doc   `yaml:"position"`
	Rotation    *rotationDoc `yaml:"rotation,omitempty"`
	FlipNormals bool      `yaml:"flip_normals,omitempty"`
}

// cameraDoc describes the viewpoint and image dimensions. Width and
// height live here, not on the CLI, since the scene file is the sole
// source of render geometry (see cmd/firetrace).
type cameraDoc struct {
	Position    vec3Doc  `yaml:"position"`
	LookAt      vec3Doc  `yaml:"look_at"`
	VUp         *vec3Doc `yaml:"vup,omitempty"`
	VFov        float64  `yaml:"vfov"`
	Aperture    float64  `yaml:"aperture,omitempty"`
	FocusDist   float64  `yaml:"focus_dist,omitempty"`
	ImageWidth  int      `yaml:"image_width"`
	ImageHeight int      `yaml:"image_height"`
}

func (c cameraDoc) toConfig() camera.Config {
	vup := vec.New(0, 1, 0)
	if c.VUp != nil {
		vup = c.VUp.toVec()
	}
	return camera.Config{
		Position:    c.Position.toVec(),
		LookAt:      c.LookAt.toVec(),
		VUp:         vup,
		VFov:        nonZero(c.VFov, 60),
		Aperture:    c.Aperture,
		FocusDist:   nonZero(c.FocusDist, 1),
		ImageWidth:  nonZeroInt(c.ImageWidth, 400),
		ImageHeight: nonZeroInt(c.ImageHeight, 400),
	}
}

// environmentDoc describes the background.
type environmentDoc struct {
	Kind   string   `yaml:"kind"` // constant, gradient, hdr
	Color  *vec3Doc `yaml:"color,omitempty"`
	Top    *vec3Doc `yaml:"top,omitempty"`
	Bottom *vec3Doc `yaml:"bottom,omitempty"`
	File   string   `yaml:"file,omitempty"`
}

// document is the top-level scene file shape.
type document struct {
	Camera      cameraDoc                  `yaml:"camera"`
	Materials   map[string]materialDoc     `yaml:"materials"`
	Textures    map[string]textureAssetDoc `yaml:"textures"`
	Objects     []objectDoc                `yaml:"objects"`
	Environment environmentDoc             `yaml:"environment"`
}

// Load reads and decodes a scene file at path into a scene.Scene and the
// camera.Config describing the viewpoint it was authored for.
func Load(path string) (*scene.Scene, camera.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, camera.Config{}, fmt.Errorf("sceneio: read %q: %w", path, err)
	}
	return Decode(data)
}

// Decode parses scene file contents into a scene.Scene and camera.Config.
func Decode(data []byte) (*scene.Scene, camera.Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, camera.Config{}, fmt.Errorf("sceneio: yaml: %w", err)
	}

	textures, err := buildTextures(doc.Textures)
	if err != nil {
		return nil, camera.Config{}, err
	}

	sc := scene.New()
	materialHandles, err := buildMaterials(sc, doc.Materials, textures)
	if err != nil {
		return nil, camera.Config{}, err
	}

	for i, od := range doc.Objects {
		if err := addObject(sc, od, materialHandles); err != nil {
			return nil, camera.Config{}, fmt.Errorf("sceneio: object %d: %w", i, err)
		}
	}

	e, err := buildEnvironment(doc.Environment)
	if err != nil {
		return nil, camera.Config{}, err
	}
	sc.SetEnvironment(e)

	return sc, doc.Camera.toConfig(), nil
}

func buildTextures(docs map[string]textureAssetDoc) (map[string]texture.Texture, error) {
	out := make(map[string]texture.Texture, len(docs))
	for name, td := range docs {
		t, err := buildTexture(td)
		if err != nil {
			return nil, fmt.Errorf("sceneio: texture %q: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

func buildTexture(td textureAssetDoc) (texture.Texture, error) {
	switch td.Kind {
	case "constant":
		if td.Color == nil {
			return nil, fmt.Errorf("constant texture requires color")
		}
		return texture.NewConstant(td.Color.toVec()), nil
	case "checker":
		if td.Even == nil || td.Odd == nil {
			return nil, fmt.Errorf("checker texture requires even and odd colors")
		}
		scale := td.Scale
		if scale == 0 {
			scale = 10
		}
		return texture.NewChecker(texture.NewConstant(td.Even.toVec()), texture.NewConstant(td.Odd.toVec()), scale), nil
	case "perlin":
		return texture.NewPerlin(td.Seed, nonZero(td.Scale, 1)), nil
	case "turbulence":
		return texture.NewTurbulence(td.Seed, nonZero(td.Scale, 1), nonZeroInt(td.Depth, 7)), nil
	case "marble":
		color := vec.Splat(1)
		if td.Color != nil {
			color = td.Color.toVec()
		}
		return texture.NewMarble(td.Seed, nonZero(td.Scale, 1), nonZeroInt(td.Depth, 7), color), nil
	case "image":
		img, err := texture.DecodeImageFile(td.File)
		if err != nil {
			return nil, err
		}
		if td.Width > 0 && td.Height > 0 && (td.Width != img.Width || td.Height != img.Height) {
			img = texture.Resample(img, td.Width, td.Height)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unknown texture kind %q", td.Kind)
	}
}

func nonZero(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func nonZeroInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func resolveTexture(td *textureDoc, textures map[string]texture.Texture) (texture.Texture, error) {
	if td == nil {
		return texture.NewConstant(vec.Vec3{}), nil
	}
	if td.Color != nil {
		return texture.NewConstant(td.Color.toVec()), nil
	}
	if td.Ref != "" {
		t, ok := textures[td.Ref]
		if !ok {
			return nil, fmt.Errorf("undefined texture ref %q", td.Ref)
		}
		return t, nil
	}
	return nil, fmt.Errorf("texture reference must set color or ref")
}

func buildMaterials(sc *scene.Scene, docs map[string]materialDoc, textures map[string]texture.Texture) (map[string]primitive.MaterialHandle, error) {
	out := make(map[string]primitive.MaterialHandle, len(docs))
	for name, md := range docs {
		m, err := buildMaterial(md, textures)
		if err != nil {
			return nil, fmt.Errorf("sceneio: material %q: %w", name, err)
		}
		out[name] = sc.AddMaterial(m)
	}
	return out, nil
}

func buildMaterial(md materialDoc, textures map[string]texture.Texture) (material.Material, error) {
	switch md.Kind {
	case "lambertian":
		albedo, err := resolveTexture(md.Albedo, textures)
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := resolveTexture(md.Albedo, textures)
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo.Sample(vec.Vec2{}, vec.Vec3{}), md.Roughness), nil
	case "dielectric":
		return material.NewDielectric(nonZero(md.IOR, 1.5)), nil
	case "emissive":
		emission, err := resolveTexture(md.Emission, textures)
		if err != nil {
			return nil, err
		}
		return material.NewEmissive(emission), nil
	case "isotropic":
		albedo, err := resolveTexture(md.Albedo, textures)
		if err != nil {
			return nil, err
		}
		return material.NewIsotropic(albedo), nil
	default:
		return nil, fmt.Errorf("unknown material kind %q", md.Kind)
	}
}

func buildShape(od objectDoc, materialHandles map[string]primitive.MaterialHandle) (primitive.Shape, error) {
	mat, ok := materialHandles[od.Material]
	if od.Shape != "constant-medium" && od.Material != "" && !ok {
		return nil, fmt.Errorf("undefined material ref %q", od.Material)
	}

	switch od.Shape {
	case "sphere":
		return primitive.NewSphere(od.Radius, mat), nil
	case "cylinder":
		return primitive.NewCylinder(od.Radius, od.Height, nonZero(od.MaxPhi, 2*pi), mat), nil
	case "cone":
		return primitive.NewCone(od.Radius, od.Height, mat), nil
	case "disk":
		return primitive.NewDisk(od.Radius, od.InnerRadius, nonZero(od.MaxPhi, 2*pi), mat), nil
	case "xy-rect":
		return primitive.NewAARect(primitive.AxisZ, od.K, od.Min1, od.Max1, od.Min2, od.Max2, od.FlipNormals, mat), nil
	case "xz-rect":
		return primitive.NewAARect(primitive.AxisY, od.K, od.Min1, od.Max1, od.Min2, od.Max2, od.FlipNormals, mat), nil
	case "yz-rect":
		return primitive.NewAARect(primitive.AxisX, od.K, od.Min1, od.Max1, od.Min2, od.Max2, od.FlipNormals, mat), nil
	case "rect3d":
		if od.Min == nil || od.Max == nil {
			return nil, fmt.Errorf("rect3d requires min and max")
		}
		return primitive.NewBox(od.Min.toVec(), od.Max.toVec(), mat), nil
	case "constant-medium":
		if od.Boundary == nil {
			return nil, fmt.Errorf("constant-medium requires a boundary shape")
		}
		boundary, err := buildShape(*od.Boundary, materialHandles)
		if err != nil {
			return nil, fmt.Errorf("boundary: %w", err)
		}
		return primitive.NewConstantMedium(boundary, od.Density, mat), nil
	default:
		return nil, fmt.Errorf("unknown shape tag %q", od.Shape)
	}
}

const pi = 3.14159265358979323846

func addObject(sc *scene.Scene, od objectDoc, materialHandles map[string]primitive.MaterialHandle) error {
	if od.Shape == "mesh" {
		mesh, err := meshio.Load(od.MeshFile, materialHandles[od.Material])
		if err != nil {
			return err
		}
		ro := sc.AddMesh(mesh)
		rotation := vec.IdentityRotor()
		if od.Rotation != nil {
			rotation = od.Rotation.toRotor()
		}
		ro.SetTransform(od.Position.toVec(), rotation)
		ro.FlipNormals = od.FlipNormals
		return nil
	}

	shape, err := buildShape(od, materialHandles)
	if err != nil {
		return err
	}

	rotation := vec.IdentityRotor()
	if od.Rotation != nil {
		rotation = od.Rotation.toRotor()
	}
	ro := scene.NewRenderObject(shape, od.Position.toVec(), rotation)
	ro.FlipNormals = od.FlipNormals
	sc.AddObject(ro)
	return nil
}

func buildEnvironment(ed environmentDoc) (env.Environment, error) {
	switch ed.Kind {
	case "", "constant":
		color := vec.Vec3{}
		if ed.Color != nil {
			color = ed.Color.toVec()
		}
		return env.NewConstant(color), nil
	case "gradient":
		top, bottom := vec.Splat(1), vec.Splat(1)
		if ed.Top != nil {
			top = ed.Top.toVec()
		}
		if ed.Bottom != nil {
			bottom = ed.Bottom.toVec()
		}
		return env.NewGradient(top, bottom), nil
	case "hdr":
		panorama, err := texture.DecodeHDREquirectangular(ed.File)
		if err != nil {
			return nil, err
		}
		return env.NewHDR(panorama), nil
	default:
		return nil, fmt.Errorf("sceneio: unknown environment kind %q", ed.Kind)
	}
}
