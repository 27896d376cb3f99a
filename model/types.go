// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Model struct, functional options, sentinel errors and constructor.

package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/event"
)

// ErrTransactionImbalance is returned by EndUpdate when no transaction is open.
var ErrTransactionImbalance = errors.New("model: end update without matching begin")

// Model is a diagram rooted at a single cell.
type Model struct {
	mu sync.Mutex // held only by Atomically

	store *core.Store
	root  core.Handle

	ids    map[int]core.Handle
	nextID int

	depth    int
	changes  []event.Record
	notifier event.Notifier

	maintainEdgeParent bool
	createIDs          bool
	log                zerolog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithMaintainEdgeParent toggles re-homing of edges under the nearest common
// ancestor of their terminals. Default: true.
func WithMaintainEdgeParent(on bool) Option {
	return func(m *Model) {
		m.maintainEdgeParent = on
	}
}

// WithCreateIDs toggles automatic id assignment for cells added without one.
// Default: true.
func WithCreateIDs(on bool) Option {
	return func(m *Model) {
		m.createIDs = on
	}
}

// WithLogger sets the logger used for transaction and topology diagnostics.
// Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// New returns a model holding a root cell with one empty layer.
// Neither bootstrap cell carries an id, so the first cell added receives 0.
func New(opts ...Option) *Model {
	m := &Model{
		store:              core.NewStore(),
		ids:                make(map[int]core.Handle),
		maintainEdgeParent: true,
		createIDs:          true,
		log:                zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.root = m.bootstrap()

	return m
}

// bootstrap allocates a fresh root with a single layer and returns the root.
func (m *Model) bootstrap() core.Handle {
	root := m.store.New()
	layer := m.store.New()
	_ = m.store.Insert(root, layer, -1)

	return root
}

// contract wraps core.ErrContractViolation with the failing operation and handle.
func contract(op string, h core.Handle) error {
	return fmt.Errorf("model: %s: cell %d: %w", op, h, core.ErrContractViolation)
}
