// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

// Shape restricts the vertex counts AddFace accepts. The mesh topology
// is the same for all shapes, the policy is pure input validation.
type Shape int

const (
	// Polygon accepts any face with at least three vertices.
	Polygon Shape = iota

	// Triangle accepts exactly three vertices per face.
	Triangle

	// Quad accepts exactly four vertices per face.
	Quad
)

func (s Shape) allows(n int) bool {
	switch s {
	case Triangle:
		return n == 3
	case Quad:
		return n == 4
	default:
		return n >= 3
	}
}

func (s Shape) String() string {
	switch s {
	case Triangle:
		return "triangle"
	case Quad:
		return "quad"
	default:
		return "polygon"
	}
}

// NewPolygonMesh returns an empty mesh accepting faces of any degree.
func NewPolygonMesh[V, HE, E, F any](manifold bool) *Mesh[V, HE, E, F] {
	return New[V, HE, E, F](Options{Manifold: manifold, Shape: Polygon})
}

// NewTriangleMesh returns an empty mesh accepting triangles only.
func NewTriangleMesh[V, HE, E, F any](manifold bool) *Mesh[V, HE, E, F] {
	return New[V, HE, E, F](Options{Manifold: manifold, Shape: Triangle})
}

// NewQuadMesh returns an empty mesh accepting quads only.
func NewQuadMesh[V, HE, E, F any](manifold bool) *Mesh[V, HE, E, F] {
	return New[V, HE, E, F](Options{Manifold: manifold, Shape: Quad})
}
