// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// impl_chain.go - Chain(n) and Cycle(n) constructors.
//
// Contract:
//   - Vertices are laid out left to right in the default layer, labelled
//     cfg.labelFn(0..n-1).
//   - Edges run i → i+1; Cycle adds the closing edge n-1 → 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/model"
)

const (
	methodChain   = "Chain"
	methodCycle   = "Cycle"
	minChainCells = 2
	minCycleCells = 3
)

// Chain returns a Constructor adding n vertices joined in a row.
func Chain(n int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if n < minChainCells {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainCells, ErrTooFewCells)
		}
		_, err := chain(m, cfg, n)
		if err != nil {
			return failed(methodChain, err)
		}

		return nil
	}
}

// Cycle returns a Constructor adding n vertices joined in a ring.
func Cycle(n int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if n < minCycleCells {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleCells, ErrTooFewCells)
		}
		vs, err := chain(m, cfg, n)
		if err == nil {
			_, err = addEdge(m, cfg, core.Nil, vs[n-1], vs[0])
		}
		if err != nil {
			return failed(methodCycle, err)
		}

		return nil
	}
}

func chain(m *model.Model, cfg builderConfig, n int) ([]core.Handle, error) {
	vs, err := row(m, cfg, core.Nil, n, 0, 0, 0)
	if err != nil {
		return nil, err
	}

	return vs, link(m, cfg, core.Nil, vs)
}
