// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// impl_grid.go - Grid(rows, cols): orthogonal 4-neighborhood grid.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewCells).
//   - Vertices in row-major order, labelled cfg.labelFn(r*cols+c).
//   - For each cell, an edge to the right neighbour then one to the bottom
//     neighbour, where they exist.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/model"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor adding a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewCells)
		}

		cells := make([]core.Handle, 0, rows*cols)
		for r := 0; r < rows; r++ {
			vs, err := row(m, cfg, core.Nil, cols, r*cols, 0, float64(r)*cfg.stepY())
			if err != nil {
				return failed(methodGrid, err)
			}
			cells = append(cells, vs...)
		}

		at := func(r, c int) core.Handle { return cells[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := addEdge(m, cfg, core.Nil, at(r, c), at(r, c+1)); err != nil {
						return failed(methodGrid, err)
					}
				}
				if r+1 < rows {
					if _, err := addEdge(m, cfg, core.Nil, at(r, c), at(r+1, c)); err != nil {
						return failed(methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
