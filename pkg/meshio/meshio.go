// Package meshio loads triangle meshes from glTF/GLB asset files into
// primitive.TriangleMesh values.
package meshio

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Load reads the glTF or GLB file at path and flattens every triangle
// primitive in every mesh of the document into a single TriangleMesh bound
// to mat. Non-triangle primitives (lines, points) are skipped.
func Load(path string, mat primitive.MaterialHandle) (*primitive.TriangleMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: open %q: %w", path, err)
	}

	var verts []vec.Vec3
	var indices []int
	var normals []vec.Vec3
	var uvs []vec.Vec2
	hasNormals, hasUVs := false, false

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("meshio: %q: read positions: %w", path, err)
			}

			var primNormals []vec.Vec3
			if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				primNormals, err = readVec3Accessor(doc, normIdx)
				if err != nil {
					return nil, fmt.Errorf("meshio: %q: read normals: %w", path, err)
				}
				hasNormals = true
			}

			var primUVs []vec.Vec2
			if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				primUVs, err = readVec2Accessor(doc, uvIdx)
				if err != nil {
					return nil, fmt.Errorf("meshio: %q: read uvs: %w", path, err)
				}
				hasUVs = true
			}

			base := len(verts)
			verts = append(verts, positions...)
			for i := range positions {
				if i < len(primNormals) {
					normals = append(normals, primNormals[i])
				} else {
					normals = append(normals, vec.Vec3{})
				}
				if i < len(primUVs) {
					// glTF's UV origin is top-left; flip V to match our
					// bottom-left texture convention.
					uvs = append(uvs, vec.NewVec2(primUVs[i].X, 1.0-primUVs[i].Y))
				} else {
					uvs = append(uvs, vec.Vec2{})
				}
			}

			if prim.Indices != nil {
				idx, err := readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("meshio: %q: read indices: %w", path, err)
				}
				for _, k := range idx {
					indices = append(indices, base+k)
				}
			} else {
				for i := range positions {
					indices = append(indices, base+i)
				}
			}
		}
	}

	var finalNormals []vec.Vec3
	if hasNormals {
		finalNormals = normals
	}
	var finalUVs []vec.Vec2
	if hasUVs {
		finalUVs = uvs
	}

	return primitive.NewTriangleMesh(verts, indices, finalNormals, finalUVs, mat)
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]vec.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}
	result := make([]vec.Vec3, len(floats))
	for i, f := range floats {
		result[i] = vec.New(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]vec.Vec2, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}
	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][2]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC2")
	}
	result := make([]vec.Vec2, len(floats))
	for i, f := range floats {
		result[i] = vec.NewVec2(float64(f[0]), float64(f[1]))
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	switch v := data.(type) {
	case []uint8:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint16:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint32:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

// readAccessorData decodes an accessor's raw buffer bytes into typed
// component slices, honoring interleaved buffer views via ByteStride.
func readAccessorData(doc *gltf.Document, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, fmt.Errorf("buffer has no embedded data (external buffers are not supported)")
	}
	bufData := buffer.Data

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	switch accessor.Type {
	case gltf.AccessorVec3:
		if stride == 0 {
			stride = 12
		}
		result := make([][3]float32, count)
		for i := 0; i < count; i++ {
			offset := start + i*stride
			for j := 0; j < 3; j++ {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorVec2:
		if stride == 0 {
			stride = 8
		}
		result := make([][2]float32, count)
		for i := 0; i < count; i++ {
			offset := start + i*stride
			for j := 0; j < 2; j++ {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorScalar:
		if stride == 0 {
			switch accessor.ComponentType {
			case gltf.ComponentUbyte:
				stride = 1
			case gltf.ComponentUshort:
				stride = 2
			case gltf.ComponentUint:
				stride = 4
			}
		}
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			result := make([]uint8, count)
			for i := 0; i < count; i++ {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case gltf.ComponentUshort:
			result := make([]uint16, count)
			for i := 0; i < count; i++ {
				offset := start + i*stride
				result[i] = uint16(bufData[offset]) | uint16(bufData[offset+1])<<8
			}
			return result, nil
		case gltf.ComponentUint:
			result := make([]uint32, count)
			for i := 0; i < count; i++ {
				offset := start + i*stride
				result[i] = uint32(bufData[offset]) |
					uint32(bufData[offset+1])<<8 |
					uint32(bufData[offset+2])<<16 |
					uint32(bufData[offset+3])<<24
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
