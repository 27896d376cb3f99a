// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithLabelScheme sets the vertex label generator: index -> label.
// Panics on nil.
func WithLabelScheme(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithCellSize sets the vertex width and height. Panics unless both are > 0.
func WithCellSize(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithCellSize(width<=0 || height<=0)")
	}
	return func(c *builderConfig) {
		c.cellWidth, c.cellHeight = width, height
	}
}

// WithSpacing sets the gap between neighbouring cells. Panics if negative.
func WithSpacing(gap float64) BuilderOption {
	if gap < 0 {
		panic("builder: WithSpacing(gap<0)")
	}
	return func(c *builderConfig) {
		c.spacing = gap
	}
}

// WithVertexStyle sets the style string applied to every vertex.
func WithVertexStyle(style string) BuilderOption {
	return func(c *builderConfig) {
		c.vertexStyle = style
	}
}

// WithEdgeStyle sets the style string applied to every edge.
func WithEdgeStyle(style string) BuilderOption {
	return func(c *builderConfig) {
		c.edgeStyle = style
	}
}

// WithLaneStyle sets the style of swimlane and group containers.
// An empty style restores the default "swimlane".
func WithLaneStyle(style string) BuilderOption {
	return func(c *builderConfig) {
		if style == "" {
			style = defaultLaneStyle
		}
		c.laneStyle = style
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
