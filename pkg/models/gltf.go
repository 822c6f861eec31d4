package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/spinmesh/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// FaceCamera turns the model 180° about Y. glTF content faces +Z while
	// the pipeline camera sits at the origin looking down +Z.
	FaceCamera bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		FaceCamera: true,
	}
}

// LoadGLB loads a binary (.glb) or JSON (.gltf) file with default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens a GLTF or GLB file and resolves every triangle primitive into
// mesh triangles. Node transforms are not applied.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open gltf: %w", ErrResource, err)
	}

	mesh := NewMesh(filepath.Base(path))
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh appends the triangles of every triangle-list primitive.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return &MalformedMeshError{Source: mesh.Name, Reason: fmt.Sprintf("position accessor %d does not exist", posIdx)}
		}

		raw, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		positions := make([]math3d.Vec3, len(raw))
		for i, p := range raw {
			v := math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
			if l.FaceCamera {
				v = math3d.V3(-v.X, v.Y, -v.Z)
			}
			positions[i] = v
		}

		var indices []uint32
		if prim.Indices != nil {
			if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
				return &MalformedMeshError{Source: mesh.Name, Reason: fmt.Sprintf("index accessor %d does not exist", *prim.Indices)}
			}
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			var tri [3]math3d.Vec3
			for k := range 3 {
				idx := int(indices[i+k])
				if idx >= len(positions) {
					return &MalformedMeshError{Source: mesh.Name, Index: idx, Count: len(positions)}
				}
				tri[k] = positions[idx]
			}
			mesh.Triangles = append(mesh.Triangles, Tri(tri[0], tri[1], tri[2]))
		}
	}

	return nil
}
