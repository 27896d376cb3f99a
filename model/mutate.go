// File: mutate.go
// Role: Transactional mutations. Each public method is one transaction and
// records the changes it applies.

package model

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/event"
	"github.com/katalvlaran/lvldiagram/geometry"
)

// Add inserts child under parent at index (-1 appends). A child already
// under parent that is appended again ends up last.
//
// Entering the model registers the subtree's ids; leaving it disconnects and
// unregisters them. When the parent actually changes and edge maintenance
// is on, the edges of the moved subtree are re-homed.
//
// Implementation:
//   - Stage 1: Move child in the store (cycle and index checks happen there).
//   - Stage 2: Register or unregister ids when model membership changes.
//   - Stage 3: Re-home every edge of the moved subtree, then its incident edges.
//
// Errors:
//   - core.ErrContractViolation for unknown handles.
//   - core.ErrCycle when child is parent or one of its ancestors.
//   - core.ErrIndexOutOfRange for an index past the child count.
//
// Complexity:
//   - Time O(n·d) for a subtree of n cells at depth d (NCA path walks); O(1)
//     extra space beyond the traversal list.
//
// AI-Hints:
//   - Batch several Add calls inside Update to get one notification.
func (m *Model) Add(parent, child core.Handle, index int) error {
	if !m.store.Has(parent) || !m.store.Has(child) {
		return fmt.Errorf("model: add %d under %d: %w", child, parent, core.ErrContractViolation)
	}

	return m.Update(func() error {
		parentChanged := parent != m.store.Parent(child)
		if err := m.parentForCellChanged(child, parent, index); err != nil {
			return err
		}
		if m.maintainEdgeParent && parentChanged {
			return m.updateEdgeParents(child)
		}

		return nil
	})
}

// parentForCellChanged moves child and keeps the id index in step with
// model membership.
func (m *Model) parentForCellChanged(child, parent core.Handle, index int) error {
	was := m.Contains(child)
	if err := m.store.Insert(parent, child, index); err != nil {
		return fmt.Errorf("model: add %d under %d: %w", child, parent, err)
	}
	m.record(event.ChildChange, child)

	switch now := m.Contains(child); {
	case now && !was:
		m.cellAdded(child)
	case was && !now:
		m.cellRemoved(child)
	}

	return nil
}

// Remove detaches h from its parent. Descendant ids leave the index and every
// edge touching the subtree loses both terminals. Removing the root clears it.
//
// Errors:
//   - core.ErrContractViolation for an unknown handle.
//
// Complexity:
//   - Time O(n + E) for n removed cells and E edges touching them.
func (m *Model) Remove(h core.Handle) error {
	if h != core.Nil && h == m.root {
		return m.SetRoot(core.Nil)
	}
	if !m.store.Has(h) {
		return contract("remove", h)
	}

	return m.Update(func() error {
		was := m.Contains(h)
		if err := m.store.RemoveFromParent(h); err != nil {
			return fmt.Errorf("model: remove %d: %w", h, err)
		}
		m.record(event.ChildChange, h)
		if was {
			m.cellRemoved(h)
		}

		return nil
	})
}

// SetRoot replaces the root. h must be Nil or a parentless cell.
// The old tree is removed like any other subtree: its ids leave the index
// and every edge touching it loses both terminals. The subtree of h is then
// indexed from scratch; nextID keeps counting from where it was.
//
// Complexity: O(n) in the cells of both trees.
func (m *Model) SetRoot(h core.Handle) error {
	if h != core.Nil && (!m.store.Has(h) || m.store.Parent(h) != core.Nil) {
		return contract("set root", h)
	}

	return m.Update(func() error {
		if old := m.root; old != core.Nil && old != h {
			m.cellRemoved(old)
		}
		m.root = h
		m.reindex(h)
		m.record(event.RootChange, h)

		return nil
	})
}

// Clear replaces the root by a fresh root with one empty layer, removing the
// old tree as SetRoot does.
func (m *Model) Clear() error {
	return m.Update(func() error {
		if m.root != core.Nil {
			m.cellRemoved(m.root)
		}
		m.root = m.bootstrap()
		m.reindex(core.Nil)
		m.record(event.RootChange, m.root)

		return nil
	})
}

// SetTerminal connects (or, with a Nil terminal, disconnects) one side of edge.
// With edge maintenance on, a changed terminal re-homes the edge.
//
// Errors:
//   - core.ErrContractViolation when edge or a non-Nil terminal is unknown.
//
// Complexity:
//   - Time O(k + d) for k incident edges on the old terminal and path depth d.
func (m *Model) SetTerminal(edge, terminal core.Handle, isSource bool) error {
	if !m.store.Has(edge) {
		return contract("set terminal", edge)
	}
	if terminal != core.Nil && !m.store.Has(terminal) {
		return contract("set terminal", terminal)
	}

	return m.Update(func() error {
		prev := m.store.Terminal(edge, isSource)
		var err error
		if terminal != core.Nil {
			err = m.store.InsertEdge(terminal, edge, isSource)
		} else if prev != core.Nil {
			err = m.store.RemoveEdge(prev, edge, isSource)
		}
		if err != nil {
			return fmt.Errorf("model: set terminal of %d: %w", edge, err)
		}
		m.record(event.TerminalChange, edge)

		if m.maintainEdgeParent && prev != terminal {
			return m.updateEdgeParent(edge, m.root)
		}

		return nil
	})
}

// SetTerminals sets both terminals of edge in one transaction.
func (m *Model) SetTerminals(edge, source, target core.Handle) error {
	return m.Update(func() error {
		if err := m.SetTerminal(edge, source, true); err != nil {
			return err
		}

		return m.SetTerminal(edge, target, false)
	})
}

// SetValue replaces the payload of h.
func (m *Model) SetValue(h core.Handle, v any) error {
	return m.set("set value", h, event.ValueChange, func() error { return m.store.SetValue(h, v) })
}

// SetGeometry stores a copy of g on h.
func (m *Model) SetGeometry(h core.Handle, g *geometry.Geometry) error {
	return m.set("set geometry", h, event.GeometryChange, func() error { return m.store.SetGeometry(h, g) })
}

// SetStyle replaces the style string of h.
func (m *Model) SetStyle(h core.Handle, style string) error {
	return m.set("set style", h, event.StyleChange, func() error { return m.store.SetStyle(h, style) })
}

// SetVisible sets the visible flag of h.
func (m *Model) SetVisible(h core.Handle, visible bool) error {
	return m.set("set visible", h, event.VisibleChange, func() error { return m.store.SetVisible(h, visible) })
}

// SetCollapsed sets the collapsed flag of h.
func (m *Model) SetCollapsed(h core.Handle, collapsed bool) error {
	return m.set("set collapsed", h, event.CollapsedChange, func() error { return m.store.SetCollapsed(h, collapsed) })
}

// set runs one attribute write as a transaction and records it.
func (m *Model) set(op string, h core.Handle, kind event.ChangeKind, apply func() error) error {
	if !m.store.Has(h) {
		return contract(op, h)
	}

	return m.Update(func() error {
		if err := apply(); err != nil {
			return fmt.Errorf("model: %s: %w", op, err)
		}
		m.record(kind, h)

		return nil
	})
}

// InsertVertex creates a vertex with an absolute geometry and appends it to
// parent (Nil means DefaultParent). opts may set an explicit id, style or flags.
func (m *Model) InsertVertex(parent core.Handle, value any, x, y, width, height float64, opts ...core.CellOption) (core.Handle, error) {
	if parent == core.Nil {
		parent = m.DefaultParent()
	}
	base := []core.CellOption{core.AsVertex(), core.WithValue(value), core.WithGeometry(geometry.New(x, y, width, height))}
	v := m.store.New(append(base, opts...)...)
	if err := m.Add(parent, v, -1); err != nil {
		return core.Nil, err
	}

	return v, nil
}

// InsertEdge creates an edge with a relative geometry under parent (Nil means
// DefaultParent) and connects it to source and target, either of which may be
// Nil for a dangling side.
//
// Returns:
//   - core.Handle: the new edge, already under the nearest common ancestor of
//     its terminals when edge maintenance is on.
//
// Errors:
//   - Those of Add and SetTerminal. The edge stays allocated on failure.
//
// AI-Hints:
//   - Pass core.Nil as parent to use DefaultParent; re-homing still applies.
func (m *Model) InsertEdge(parent core.Handle, value any, source, target core.Handle, opts ...core.CellOption) (core.Handle, error) {
	if parent == core.Nil {
		parent = m.DefaultParent()
	}
	base := []core.CellOption{core.AsEdge(), core.WithValue(value), core.WithGeometry(geometry.NewRelative())}
	e := m.store.New(append(base, opts...)...)

	err := m.Update(func() error {
		if err := m.Add(parent, e, -1); err != nil {
			return err
		}
		if source != core.Nil {
			if err := m.SetTerminal(e, source, true); err != nil {
				return err
			}
		}
		if target != core.Nil {
			return m.SetTerminal(e, target, false)
		}

		return nil
	})
	if err != nil {
		return core.Nil, err
	}

	return e, nil
}
