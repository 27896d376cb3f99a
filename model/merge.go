// File: merge.go
// Role: Merges the children of a cell (possibly from another model) into a
// cell of this model, matching existing cells by id.

package model

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/cellpath"
	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/event"
)

// mergeFrame pairs a source cell with the destination cell receiving its children.
type mergeFrame struct {
	from, to core.Handle
}

// freshCopy remembers a copy created by the merge and its source original.
type freshCopy struct {
	orig, dst core.Handle
}

// MergeChildren copies the children of from (in src, or in m when src is nil)
// under to, recursively.
//
// A child carrying an id that is already registered in m is merged into that
// cell instead of being copied; with cloneAllEdges, edges are always copied.
// Copies keep the source id (reallocated on collision) and are inserted
// directly, so edge maintenance does not move them out of to. Once the
// structure is in place, copied edges are reconnected to the destination
// counterparts of their source terminals; terminals outside the merged
// subtree are left unset.
//
// Errors:
//   - core.ErrContractViolation when from is unknown in src or to in m.
//   - Store errors from inserting copies, wrapped with the source cell.
//
// Complexity:
//   - Time O(n·d) for n merged cells at depth d; space O(n) for the mapping.
//
// AI-Hints:
//   - Merging a model into itself is allowed; pass nil or m as src.
func (m *Model) MergeChildren(src *Model, from, to core.Handle, cloneAllEdges bool) error {
	if src == nil {
		src = m
	}
	if !src.store.Has(from) {
		return contract("merge from", from)
	}
	if !m.store.Has(to) {
		return contract("merge into", to)
	}

	mapping := make(map[string]core.Handle)
	var fresh []freshCopy

	return m.Update(func() error {
		stack := []mergeFrame{{from: from, to: to}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			children := src.store.Children(f.from)
			frames := make([]mergeFrame, 0, len(children))
			for _, child := range children {
				target, copied, err := m.mergeTarget(src, child, f.to, cloneAllEdges)
				if err != nil {
					return err
				}
				if copied {
					fresh = append(fresh, freshCopy{orig: child, dst: target})
				}
				mapping[cellpath.Create(src.store, child)] = target
				frames = append(frames, mergeFrame{from: child, to: target})
			}
			// reversed so the first child's subtree is merged first
			for i := len(frames) - 1; i >= 0; i-- {
				stack = append(stack, frames[i])
			}
		}

		for _, fc := range fresh {
			for _, isSource := range [2]bool{true, false} {
				t := src.store.Terminal(fc.orig, isSource)
				if t == core.Nil {
					continue
				}
				mapped, ok := mapping[cellpath.Create(src.store, t)]
				if !ok || src.store.RootOf(t) != src.store.RootOf(from) {
					continue
				}
				if err := m.SetTerminal(fc.dst, mapped, isSource); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// mergeTarget returns the destination cell for a source child, copying it
// under parent when no id match applies.
func (m *Model) mergeTarget(src *Model, child, parent core.Handle, cloneAllEdges bool) (core.Handle, bool, error) {
	id, hasID := src.store.ID(child)
	if hasID && (!src.store.IsEdge(child) || !cloneAllEdges) {
		if existing, ok := m.ids[id]; ok {
			return existing, false, nil
		}
	}

	clone, err := src.store.Clone(child, m.store)
	if err != nil {
		return core.Nil, false, fmt.Errorf("model: merge %d: %w", child, err)
	}
	if hasID {
		_ = m.store.SetID(clone, id)
	}
	if err = m.store.Insert(parent, clone, -1); err != nil {
		return core.Nil, false, fmt.Errorf("model: merge %d: %w", child, err)
	}
	m.record(event.ChildChange, clone)
	if m.Contains(parent) {
		m.cellAdded(clone)
	}

	return clone, true, nil
}
