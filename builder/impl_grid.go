// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom arcs per cell).
//   - Cell (r,c) is index r*cols+c (row-major order); its state comes from
//     the state factory like every other constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each cell emits Right then Bottom where the neighbor exists.
//     WithUndirected adds the reverse arcs.
//
// Complexity:
//   - Time: O(rows*cols) vertices + O(rows*cols) edges.
//   - Space: O(rows*cols) for the materialized states.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid[S identity.Identifiable](rows, cols int) Constructor[S] {
	return func(g *core.Graph[S], cfg Config[S]) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		states := addStates(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := states[GridIndex(r, c, cols)]
				if c+1 < cols {
					cfg.Connect(g, u, states[GridIndex(r, c+1, cols)])
				}
				if r+1 < rows {
					cfg.Connect(g, u, states[GridIndex(r+1, c, cols)])
				}
			}
		}

		return nil
	}
}

// GridIndex maps a cell to its row-major index.
func GridIndex(r, c, cols int) int { return r*cols + c }
