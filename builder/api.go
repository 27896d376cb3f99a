// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildDiagram(mopts, bopts, cons...). Creates the model,
//     resolves cfg, runs cons in order inside a single transaction.
//   - Constructors live in impl_*.go, one per file.
//   - Determinism: same inputs, options, seed and constructor order produce
//     identical diagrams (same handles, ids, geometry).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/model"
)

// Constructor adds cells to m using the resolved configuration.
// Constructors validate parameters before touching the model and return
// sentinel errors; they never panic.
type Constructor func(m *model.Model, cfg builderConfig) error

// BuildDiagram creates a model with mopts, resolves bopts and applies every
// constructor in order. All constructors share one transaction, so a single
// change notification is fired. The first error is wrapped with
// "BuildDiagram: %w" and returned; the partially built model is discarded.
func BuildDiagram(mopts []model.Option, bopts []BuilderOption, cons ...Constructor) (*model.Model, error) {
	m := model.New(mopts...)
	if err := Apply(m, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildDiagram: %w", err)
	}

	return m, nil
}

// Apply runs constructors against an existing model in one transaction.
func Apply(m *model.Model, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Apply: nil model: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	return m.Update(func() error {
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
			}
			if err := fn(m, cfg); err != nil {
				return err
			}
		}

		return nil
	})
}

// addVertex inserts a styled, labelled vertex at (x, y) under parent.
func addVertex(m *model.Model, cfg builderConfig, parent core.Handle, label string, x, y float64) (core.Handle, error) {
	var opts []core.CellOption
	if cfg.vertexStyle != "" {
		opts = append(opts, core.WithStyle(cfg.vertexStyle))
	}

	return m.InsertVertex(parent, label, x, y, cfg.cellWidth, cfg.cellHeight, opts...)
}

// addEdge connects source to target with a styled edge created under parent.
func addEdge(m *model.Model, cfg builderConfig, parent, source, target core.Handle) (core.Handle, error) {
	var opts []core.CellOption
	if cfg.edgeStyle != "" {
		opts = append(opts, core.WithStyle(cfg.edgeStyle))
	}

	return m.InsertEdge(parent, nil, source, target, opts...)
}

// addContainer inserts a container vertex with the lane style.
func addContainer(m *model.Model, cfg builderConfig, parent core.Handle, label string, x, y, w, h float64) (core.Handle, error) {
	return m.InsertVertex(parent, label, x, y, w, h, core.WithStyle(cfg.laneStyle))
}

// row adds n vertices left to right under parent starting at (x0, y0),
// labelled from index first.
func row(m *model.Model, cfg builderConfig, parent core.Handle, n, first int, x0, y0 float64) ([]core.Handle, error) {
	out := make([]core.Handle, 0, n)
	for i := 0; i < n; i++ {
		v, err := addVertex(m, cfg, parent, cfg.labelFn(first+i), x0+float64(i)*cfg.stepX(), y0)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// link joins consecutive vertices with edges created under parent.
func link(m *model.Model, cfg builderConfig, parent core.Handle, vs []core.Handle) error {
	for i := 1; i < len(vs); i++ {
		if _, err := addEdge(m, cfg, parent, vs[i-1], vs[i]); err != nil {
			return err
		}
	}

	return nil
}
