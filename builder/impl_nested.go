// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// impl_nested.go - Nested(depth): groups nested depth levels deep.
//
// Contract:
//   - depth ≥ 1 (else ErrTooFewCells).
//   - Group k sits inside group k-1 (group 0 in the default layer) and holds
//     one leaf labelled cfg.labelFn(k).
//   - Leaf k links to leaf k+1. Each such edge is created in the layer and
//     settles in group k, the nearest common ancestor of its terminals.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/model"
)

const (
	methodNested = "Nested"
	minDepth     = 1
)

// Nested returns a Constructor adding depth nested groups with one leaf each.
func Nested(depth int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if depth < minDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodNested, depth, minDepth, ErrTooFewCells)
		}

		parent := m.DefaultParent()
		x, y := 0.0, 0.0
		leaves := make([]core.Handle, 0, depth)
		for k := 0; k < depth; k++ {
			rest := float64(depth - k)
			w := rest*cfg.stepX() + cfg.spacing
			h := rest*cfg.stepY() + cfg.spacing
			group, err := addContainer(m, cfg, parent, fmt.Sprintf("group %d", k), x, y, w, h)
			if err != nil {
				return failed(methodNested, err)
			}
			leaf, err := addVertex(m, cfg, group, cfg.labelFn(k), cfg.spacing, cfg.spacing)
			if err != nil {
				return failed(methodNested, err)
			}
			leaves = append(leaves, leaf)
			parent, x, y = group, cfg.spacing, cfg.spacing+cfg.stepY()
		}

		for k := 1; k < len(leaves); k++ {
			if _, err := addEdge(m, cfg, core.Nil, leaves[k-1], leaves[k]); err != nil {
				return failed(methodNested, err)
			}
		}

		return nil
	}
}
