package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/spinmesh/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file.
// Only "v" and "f" records are read; everything else is skipped.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open obj: %w", ErrResource, err)
	}
	defer f.Close()

	return parseOBJ(f, filepath.Base(path))
}

// ParseOBJ reads OBJ records from r.
//
// Each "v x y z" line appends to a 1-indexed vertex list and each
// "f a b c" line resolves its indices into a triangle right away, so a face
// can only reference vertices defined above it. Faces with more than three
// indices are split into a fan. Negative indices count back from the most
// recent vertex.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	return parseOBJ(r, "<reader>")
}

func parseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	var verts []math3d.Vec3

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, &MalformedMeshError{Source: name, Line: line, Reason: err.Error()}
			}
			verts = append(verts, v)

		case "f":
			if len(fields) < 4 {
				return nil, &MalformedMeshError{
					Source: name,
					Line:   line,
					Reason: fmt.Sprintf("face needs at least 3 vertices, got %d", len(fields)-1),
				}
			}

			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := resolveIndex(tok, len(verts))
				if err != nil {
					err.Source, err.Line = name, line
					return nil, err
				}
				idx = append(idx, i)
			}

			for k := 1; k+1 < len(idx); k++ {
				mesh.Triangles = append(mesh.Triangles, Tri(verts[idx[0]], verts[idx[k]], verts[idx[k+1]]))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read obj: %w", ErrResource, err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// parseVertex reads the first three coordinates of a "v" record.
// A fourth (w) coordinate is accepted and ignored.
func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("bad vertex coordinate %q", fields[i])
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// resolveIndex turns an OBJ face token ("7", "7/2", "7//3", "-1") into a
// 0-based index into a list of count vertices.
func resolveIndex(tok string, count int) (int, *MalformedMeshError) {
	head, _, _ := strings.Cut(tok, "/")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, &MalformedMeshError{Count: count, Reason: fmt.Sprintf("bad face index %q", tok)}
	}

	i := n - 1
	if n < 0 {
		i = count + n
	}
	if n == 0 || i < 0 || i >= count {
		return 0, &MalformedMeshError{Index: n, Count: count}
	}
	return i, nil
}
