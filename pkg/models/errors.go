package models

import (
	"errors"
	"fmt"
)

var (
	// ErrResource is returned when a mesh file cannot be opened or read.
	ErrResource = errors.New("models: resource error")

	// ErrMalformedMesh matches every *MalformedMeshError.
	ErrMalformedMesh = errors.New("models: malformed mesh")
)

// MalformedMeshError reports a face or vertex record that cannot be
// resolved. Loading stops at the first one and no mesh is returned.
type MalformedMeshError struct {
	Source string // File name or "<reader>"
	Line   int    // 1-based line, 0 for binary formats
	Index  int    // Offending vertex index as written in the file
	Count  int    // Number of vertices defined at that point
	Reason string
}

func (e *MalformedMeshError) Error() string {
	loc := e.Source
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	if e.Reason != "" {
		return fmt.Sprintf("malformed mesh %s: %s", loc, e.Reason)
	}
	return fmt.Sprintf("malformed mesh %s: vertex index %d out of range (have %d vertices)", loc, e.Index, e.Count)
}

// Is makes errors.Is(err, ErrMalformedMesh) succeed.
func (e *MalformedMeshError) Is(target error) bool {
	return target == ErrMalformedMesh
}
