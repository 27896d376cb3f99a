// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// impl_layers.go - Layers(n): make sure the root holds at least n layers.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/model"
)

const (
	methodLayers = "Layers"
	minLayers    = 1
)

// Layers returns a Constructor appending empty layers until the root has n.
// Existing layers are kept.
func Layers(n int) Constructor {
	return func(m *model.Model, _ builderConfig) error {
		if n < minLayers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLayers, n, minLayers, ErrTooFewCells)
		}
		for m.ChildCount(m.Root()) < n {
			if err := m.Add(m.Root(), m.Store().New(), -1); err != nil {
				return failed(methodLayers, err)
			}
		}

		return nil
	}
}
