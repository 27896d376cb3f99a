// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewCells), 0 ≤ p ≤ 1 (else ErrInvalidProbability),
//     cfg.rng set (else ErrNeedRandSource).
//   - Vertices fill a ⌈√n⌉-wide grid in index order.
//   - For every ordered pair i < j an edge i → j is added when the next draw
//     is below p. Same seed, same diagram.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/model"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomCells     = 1
)

// RandomSparse returns a Constructor adding n vertices and random forward edges.
func RandomSparse(n int, p float64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if n < minRandomCells {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomCells, ErrTooFewCells)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		cols := int(math.Ceil(math.Sqrt(float64(n))))
		vs := make([]core.Handle, n)
		for i := 0; i < n; i++ {
			x := float64(i%cols) * cfg.stepX()
			y := float64(i/cols) * cfg.stepY()
			v, err := addVertex(m, cfg, core.Nil, cfg.labelFn(i), x, y)
			if err != nil {
				return failed(methodRandomSparse, err)
			}
			vs[i] = v
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if _, err := addEdge(m, cfg, core.Nil, vs[i], vs[j]); err != nil {
					return failed(methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
