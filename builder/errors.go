// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Constructors attach context with %w; option constructors panic instead.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCells indicates a size parameter below the constructor's minimum.
var ErrTooFewCells = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the model rejected a mutation or that a
// nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownLabelScheme is returned by LabelSchemeByName for unknown names.
var ErrUnknownLabelScheme = errors.New("builder: unknown label scheme")

// failed wraps a model error with the constructor name and ErrConstructFailed.
func failed(method string, err error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
}
