package models

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/spinmesh/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Fatal("Expected error for nonexistent file")
	}
	if !errors.Is(err, ErrResource) {
		t.Errorf("expected ErrResource, got %v", err)
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if !loader.FaceCamera {
		t.Error("FaceCamera should default to true")
	}
}

// writeGLB saves a single-primitive document and returns its path.
func writeGLB(t *testing.T, positions [][3]float32, indices []uint16) string {
	t.Helper()

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, positions)
	idx := modeler.WriteIndices(doc, indices)
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}

	path := filepath.Join(t.TempDir(), "tri.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("save glb: %v", err)
	}
	return path
}

func TestLoadGLBTriangles(t *testing.T) {
	path := writeGLB(t, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, []uint16{0, 1, 2, 2, 1, 3})

	loader := &GLTFLoader{FaceCamera: false}
	mesh, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", mesh.TriangleCount())
	}
	want := [3]math3d.Vec4{math3d.Point(0, 1, 0), math3d.Point(1, 0, 0), math3d.Point(1, 1, 0)}
	if mesh.Triangles[1].P != want {
		t.Errorf("second triangle = %v, want %v", mesh.Triangles[1].P, want)
	}
}

func TestLoadGLBFaceCamera(t *testing.T) {
	path := writeGLB(t, [][3]float32{{1, 2, 3}, {0, 0, 0}, {0, 1, 0}}, []uint16{0, 1, 2})

	mesh, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if got := mesh.Triangles[0].P[0]; got != math3d.Point(-1, 2, -3) {
		t.Errorf("turned vertex = %v, want (-1, 2, -3)", got)
	}
}

func TestLoadGLBIndexOutOfRange(t *testing.T) {
	path := writeGLB(t, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, []uint16{0, 1, 7})

	mesh, err := LoadGLB(path)
	if mesh != nil {
		t.Error("no mesh should be returned")
	}
	var mErr *MalformedMeshError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected *MalformedMeshError, got %v", err)
	}
	if mErr.Index != 7 || mErr.Count != 3 {
		t.Errorf("index/count = %d/%d, want 7/3", mErr.Index, mErr.Count)
	}
}
