// File: clone.go
// Role: Two-phase copy of cell sets.
// Determinism:
//   - Phase 1 copies cells in pre-order and attaches each clone under the
//     clone of its parent.
//   - Phase 2 reconnects clones whose original terminals were cloned too.
//   - Originals are addressed by (root, path), computed on the untouched
//     original trees.

package model

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/cellpath"
	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/traverse"
)

// pathKey addresses an original cell within its own tree.
type pathKey struct {
	root core.Handle
	path string
}

func (m *Model) keyOf(h core.Handle) pathKey {
	return pathKey{root: m.store.RootOf(h), path: cellpath.Create(m.store, h)}
}

// CloneCell returns a detached copy of h, with its subtree when
// includeChildren is set.
func (m *Model) CloneCell(h core.Handle, includeChildren bool) (core.Handle, error) {
	out, err := m.CloneCells([]core.Handle{h}, includeChildren)
	if err != nil {
		return core.Nil, err
	}

	return out[0], nil
}

// CloneCells returns detached copies of cells, index-aligned with the input
// (Nil entries stay Nil). Values implementing core.ValueCloner are copied,
// geometry is deep-copied, ids are not carried over.
//
// An edge whose terminal is in the cloned set gets the clone of that terminal;
// terminals outside the set are left unset on the copy.
//
// Implementation:
//   - Stage 1: Key every original by (root, path) and copy it, attaching each
//     copy under the copy of its parent.
//   - Stage 2: Reconnect every copy whose original terminal was copied too.
//
// Errors:
//   - core.ErrContractViolation for an unknown handle in cells.
//
// Determinism:
//   - Output order matches input order; copies are allocated in pre-order.
//
// Complexity:
//   - Time O(n·d) for n copied cells at depth d (path computation); space O(n).
func (m *Model) CloneCells(cells []core.Handle, includeChildren bool) ([]core.Handle, error) {
	for _, h := range cells {
		if h != core.Nil && !m.store.Has(h) {
			return nil, contract("clone", h)
		}
	}

	out := make([]core.Handle, len(cells))
	mapping := make(map[pathKey]core.Handle)
	originals := make([][]core.Handle, len(cells))

	err := m.Update(func() error {
		for i, h := range cells {
			if h == core.Nil {
				continue
			}
			originals[i] = []core.Handle{h}
			if includeChildren {
				originals[i] = traverse.PreOrder(m.store, h)
			}
			clone, err := m.cloneStructure(originals[i], mapping)
			if err != nil {
				return err
			}
			out[i] = clone
		}

		for _, list := range originals {
			for _, orig := range list {
				if err := m.restoreConnectivity(orig, mapping); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// cloneStructure copies a pre-ordered subtree list and returns the clone of
// its first element.
func (m *Model) cloneStructure(order []core.Handle, mapping map[pathKey]core.Handle) (core.Handle, error) {
	clones := make(map[core.Handle]core.Handle, len(order))
	for i, orig := range order {
		clone, err := m.store.Clone(orig, nil)
		if err != nil {
			return core.Nil, fmt.Errorf("model: clone %d: %w", orig, err)
		}
		clones[orig] = clone
		mapping[m.keyOf(orig)] = clone
		if i == 0 {
			continue
		}
		if err = m.store.Insert(clones[m.store.Parent(orig)], clone, -1); err != nil {
			return core.Nil, fmt.Errorf("model: clone %d: %w", orig, err)
		}
	}

	return clones[order[0]], nil
}

// restoreConnectivity links the clone of orig to the clones of its terminals.
func (m *Model) restoreConnectivity(orig core.Handle, mapping map[pathKey]core.Handle) error {
	clone := mapping[m.keyOf(orig)]
	for _, isSource := range [2]bool{true, false} {
		t := m.store.Terminal(orig, isSource)
		if t == core.Nil {
			continue
		}
		tc, ok := mapping[m.keyOf(t)]
		if !ok {
			continue
		}
		if err := m.store.InsertEdge(tc, clone, isSource); err != nil {
			return fmt.Errorf("model: reconnect clone of %d: %w", orig, err)
		}
	}

	return nil
}
