// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// impl_star.go - Star(n): hub "Center" with n-1 leaves on a ring.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewCells).
//   - Leaves are labelled cfg.labelFn(1..n-1) and placed counter-clockwise
//     starting at 3 o'clock, radius large enough to keep neighbours apart.
//   - Edges run Center → leaf in leaf order.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/model"
)

const (
	methodStar   = "Star"
	minStarCells = 2
)

// Star returns a Constructor adding a hub and n-1 spokes.
func Star(n int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if n < minStarCells {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarCells, ErrTooFewCells)
		}
		leaves := n - 1
		radius := math.Max(cfg.stepX(), float64(leaves)*cfg.stepX()/(2*math.Pi))

		hub, err := addVertex(m, cfg, core.Nil, centerLabel, radius, radius)
		if err != nil {
			return failed(methodStar, err)
		}
		for i := 0; i < leaves; i++ {
			angle := 2 * math.Pi * float64(i) / float64(leaves)
			x := radius + radius*math.Cos(angle)
			y := radius - radius*math.Sin(angle)
			leaf, err := addVertex(m, cfg, core.Nil, cfg.labelFn(i+1), x, y)
			if err != nil {
				return failed(methodStar, err)
			}
			if _, err = addEdge(m, cfg, core.Nil, hub, leaf); err != nil {
				return failed(methodStar, err)
			}
		}

		return nil
	}
}
