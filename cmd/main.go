// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

// A soak probe for the halfedge package: triangulate a large grid,
// shoot random faces, compact, repeat. Panics on the first
// inconsistency it can observe from the outside.
package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/lishulincug/halfedge"
)

const (
	gridW  = 200
	gridH  = 200
	rounds = 20
)

var prng = rand.New(rand.NewPCG(42, 42))

type mesh = halfedge.Mesh[halfedge.NoData, halfedge.NoData, halfedge.NoData, halfedge.NoData]

func main() {
	for round := range rounds {
		m := buildGrid()

		if !m.IsManifold() {
			panic(fmt.Sprintf("round %d: grid not manifold after build", round))
		}

		// shoot a third of the faces
		faces := m.SizeFaces()
		for range faces / 3 {
			f := halfedge.FaceIndex(prng.Int32N(int32(faces)))
			if !m.IsDeletedFace(f) {
				m.DeleteFace(f)
			}
		}

		m.CleanUp()

		live := 0
		for range m.Faces() {
			live++
		}
		if live != m.SizeFaces() {
			panic(fmt.Sprintf("round %d: %d live faces in an arena of %d after CleanUp",
				round, live, m.SizeFaces()))
		}

		fmt.Printf("round %2d: V=%6d E=%6d F=%6d\n",
			round, m.SizeVertices(), m.SizeEdges(), m.SizeFaces())
	}
}

// buildGrid triangulates a (gridW+1)x(gridH+1) vertex grid into
// 2*gridW*gridH triangles, cell by cell in scan order. The mesh is
// built non-manifold; the finished grid is manifold.
func buildGrid() *mesh {
	m := halfedge.NewTriangleMesh[halfedge.NoData, halfedge.NoData, halfedge.NoData, halfedge.NoData](false)
	m.ReserveVertices((gridW + 1) * (gridH + 1))
	m.ReserveEdges(3*gridW*gridH + 2*(gridW+gridH))
	m.ReserveFaces(2 * gridW * gridH)

	at := func(x, y int) halfedge.VertexIndex {
		return halfedge.VertexIndex(y*(gridW+1) + x)
	}

	for range (gridW + 1) * (gridH + 1) {
		m.AddVertex(halfedge.NoData{})
	}

	for y := range gridH {
		for x := range gridW {
			f1 := m.AddFace([]halfedge.VertexIndex{at(x, y), at(x+1, y), at(x, y+1)})
			f2 := m.AddFace([]halfedge.VertexIndex{at(x+1, y), at(x+1, y+1), at(x, y+1)})
			if !f1.IsValid() || !f2.IsValid() {
				panic(fmt.Sprintf("grid cell (%d,%d) rejected", x, y))
			}
		}
	}
	return m
}
