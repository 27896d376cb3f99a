// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - labelFn     = DecimalLabel ("0","1","2",...)
//   - rng         = nil (pure unless seeded)
//   - cell size   = 80 x 40
//   - spacing     = 40
//   - styles      = "" (renderer defaults)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	labelFn LabelFn
	rng     *rand.Rand

	cellWidth  float64
	cellHeight float64
	spacing    float64

	vertexStyle string
	edgeStyle   string
	laneStyle   string
}

const (
	defaultCellWidth  = 80.0
	defaultCellHeight = 40.0
	defaultSpacing    = 40.0
	defaultLaneStyle  = "swimlane"
	centerLabel       = "Center"
)

// newBuilderConfig applies opts over the defaults, later options winning.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:    DecimalLabel,
		cellWidth:  defaultCellWidth,
		cellHeight: defaultCellHeight,
		spacing:    defaultSpacing,
		laneStyle:  defaultLaneStyle,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// stepX is the horizontal distance between neighbouring cells.
func (c builderConfig) stepX() float64 { return c.cellWidth + c.spacing }

// stepY is the vertical distance between neighbouring cells.
func (c builderConfig) stepY() float64 { return c.cellHeight + c.spacing }
