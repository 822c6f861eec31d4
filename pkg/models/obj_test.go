package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/spinmesh/pkg/math3d"
)

func TestParseOBJSingleTriangle(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}

	want := [3]math3d.Vec4{
		math3d.Point(0, 0, 0),
		math3d.Point(1, 0, 0),
		math3d.Point(0, 1, 0),
	}
	if got := mesh.Triangles[0].P; got != want {
		t.Errorf("triangle = %v, want %v", got, want)
	}
	if mesh.Triangles[0].Shade != 0 {
		t.Errorf("loaded triangle should be unshaded, got %v", mesh.Triangles[0].Shade)
	}
}

func TestParseOBJIgnoresOtherRecords(t *testing.T) {
	src := `# a comment
o teapot
mtllib teapot.mtl
v 0 0 0
vn 0 0 1
vt 0.5 0.5
v 1 0 0
s off
v 0 1 0

usemtl red
f 1 2 3
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}
	if mesh.Triangles[0].P[2] != math3d.Point(0, 1, 0) {
		t.Errorf("vn/vt lines must not be counted as vertices: %v", mesh.Triangles[0].P)
	}
}

func TestParseOBJFaceForms(t *testing.T) {
	const verts = "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\n"

	tests := []struct {
		name  string
		face  string
		count int
		first [3]math3d.Vec4
	}{
		{
			name:  "slash forms",
			face:  "f 1/1/1 2//2 3/3",
			count: 1,
			first: [3]math3d.Vec4{math3d.Point(0, 0, 0), math3d.Point(1, 0, 0), math3d.Point(1, 1, 0)},
		},
		{
			name:  "quad fan",
			face:  "f 1 2 3 4",
			count: 2,
			first: [3]math3d.Vec4{math3d.Point(0, 0, 0), math3d.Point(1, 0, 0), math3d.Point(1, 1, 0)},
		},
		{
			name:  "negative indices",
			face:  "f -4 -3 -1",
			count: 1,
			first: [3]math3d.Vec4{math3d.Point(0, 0, 0), math3d.Point(1, 0, 0), math3d.Point(0, 1, 0)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mesh, err := ParseOBJ(strings.NewReader(verts + tc.face + "\n"))
			if err != nil {
				t.Fatalf("ParseOBJ: %v", err)
			}
			if mesh.TriangleCount() != tc.count {
				t.Fatalf("expected %d triangles, got %d", tc.count, mesh.TriangleCount())
			}
			if mesh.Triangles[0].P != tc.first {
				t.Errorf("first triangle = %v, want %v", mesh.Triangles[0].P, tc.first)
			}
		})
	}
}

func TestParseOBJMalformed(t *testing.T) {
	const verts = "v 0 0 0\nv 1 0 0\nv 0 1 0\n"

	tests := []struct {
		name string
		src  string
		line int
	}{
		{"index past end", verts + "f 1 2 9\n", 4},
		{"zero index", verts + "f 0 1 2\n", 4},
		{"negative past start", verts + "f -4 1 2\n", 4},
		{"forward reference", "v 0 0 0\nf 1 2 3\nv 1 0 0\nv 0 1 0\n", 2},
		{"not a number", verts + "f 1 two 3\n", 4},
		{"too few indices", verts + "f 1 2\n", 4},
		{"bad coordinate", "v 0 zero 0\n", 1},
		{"short vertex", "v 1 2\n", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mesh, err := ParseOBJ(strings.NewReader(tc.src))
			if mesh != nil {
				t.Error("no mesh should be returned for malformed input")
			}
			if !errors.Is(err, ErrMalformedMesh) {
				t.Fatalf("expected ErrMalformedMesh, got %v", err)
			}

			var mErr *MalformedMeshError
			if !errors.As(err, &mErr) {
				t.Fatalf("expected *MalformedMeshError, got %T", err)
			}
			if mErr.Line != tc.line {
				t.Errorf("line = %d, want %d", mErr.Line, tc.line)
			}
		})
	}
}

func TestMalformedMeshErrorFields(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"))

	var mErr *MalformedMeshError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected *MalformedMeshError, got %v", err)
	}
	if mErr.Index != 9 || mErr.Count != 3 {
		t.Errorf("index/count = %d/%d, want 9/3", mErr.Index, mErr.Count)
	}
	if !strings.Contains(mErr.Error(), "out of range") {
		t.Errorf("unexpected message: %s", mErr.Error())
	}
}

func TestLoadOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 3 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if mesh.Name != "tri.obj" {
		t.Errorf("name = %q", mesh.Name)
	}
	if mesh.BoundsMax != math3d.V3(1, 1, 0) {
		t.Errorf("bounds max = %v", mesh.BoundsMax)
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ("/nonexistent/path.obj")
	if !errors.Is(err, ErrResource) {
		t.Errorf("expected ErrResource, got %v", err)
	}
	if errors.Is(err, ErrMalformedMesh) {
		t.Error("missing file is not a malformed mesh")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("model.stl")
	if !errors.Is(err, ErrResource) {
		t.Errorf("expected ErrResource, got %v", err)
	}
}
