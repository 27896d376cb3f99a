// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// impl_swimlanes.go - Swimlanes(lanes, perLane).
//
// Contract:
//   - lanes ≥ 1 and perLane ≥ 1 (else ErrTooFewCells).
//   - Lane containers are stacked top to bottom in the default layer, styled
//     cfg.laneStyle and labelled "lane <i>".
//   - Each lane holds perLane vertices in a row, chained left to right; the
//     chain edges live in the lane.
//   - The last vertex of lane i links to the first vertex of lane i+1. Those
//     edges are created in lane i and end up in the layer, their common
//     ancestor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/model"
)

const (
	methodSwimlanes = "Swimlanes"
	minLanes        = 1
	minPerLane      = 1
)

// Swimlanes returns a Constructor adding lanes containers of perLane vertices.
func Swimlanes(lanes, perLane int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if lanes < minLanes || perLane < minPerLane {
			return fmt.Errorf("%s: lanes=%d, perLane=%d (must be ≥ %d and ≥ %d): %w",
				methodSwimlanes, lanes, perLane, minLanes, minPerLane, ErrTooFewCells)
		}

		laneW := float64(perLane)*cfg.stepX() + cfg.spacing
		laneH := cfg.cellHeight + 2*cfg.spacing
		var prevLast core.Handle
		for i := 0; i < lanes; i++ {
			y := float64(i) * (laneH + cfg.spacing)
			lane, err := addContainer(m, cfg, core.Nil, fmt.Sprintf("lane %d", i), 0, y, laneW, laneH)
			if err != nil {
				return failed(methodSwimlanes, err)
			}
			vs, err := row(m, cfg, lane, perLane, i*perLane, cfg.spacing, cfg.spacing)
			if err != nil {
				return failed(methodSwimlanes, err)
			}
			if err = link(m, cfg, lane, vs); err != nil {
				return failed(methodSwimlanes, err)
			}
			if prevLast != core.Nil {
				if _, err = addEdge(m, cfg, m.Parent(prevLast), prevLast, vs[0]); err != nil {
					return failed(methodSwimlanes, err)
				}
			}
			prevLast = vs[len(vs)-1]
		}

		return nil
	}
}
