// File: topology.go
// Role: Keeps every edge under the nearest common ancestor of its terminals.
// Notes:
//   - Endpoints with a relative geometry defer to their parent.
//   - The root counts as a common ancestor, so edges between sibling layers
//     move up to the root.

package model

import (
	"github.com/katalvlaran/lvldiagram/cellpath"
	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/geometry"
	"github.com/katalvlaran/lvldiagram/traverse"
)

// updateEdgeParents re-homes the incident edges of h and of all its
// descendants, children first. Only edges in the same tree as h are touched.
func (m *Model) updateEdgeParents(h core.Handle) error {
	root := m.store.RootOf(h)
	for _, c := range traverse.PostOrder(m.store, h) {
		for _, e := range m.store.Edges(c) {
			if !m.store.IsAncestor(root, e) {
				continue
			}
			if err := m.updateEdgeParent(e, root); err != nil {
				return err
			}
		}
	}

	return nil
}

// updateEdgeParent moves edge under the nearest common ancestor of its
// resolved terminals when both lie under root.
func (m *Model) updateEdgeParent(edge, root core.Handle) error {
	src := m.resolveEndpoint(m.store.Terminal(edge, true))
	trg := m.resolveEndpoint(m.store.Terminal(edge, false))
	if src == core.Nil || trg == core.Nil {
		return nil
	}
	if !m.store.IsAncestor(root, src) || !m.store.IsAncestor(root, trg) {
		return nil
	}

	var nca core.Handle
	if src == trg {
		nca = m.store.Parent(src)
	} else {
		nca = m.NearestCommonAncestor(src, trg)
	}
	if nca == core.Nil {
		return nil
	}

	current := m.store.Parent(edge)
	switch {
	case nca == current:
		return nil
	case m.store.IsAncestor(edge, nca):
		// terminals hang below the edge itself
		return nil
	case m.store.Parent(nca) == m.root && !m.store.IsAncestor(nca, edge):
		// A layer never pulls in an edge from another layer. An edge already
		// inside it may still climb out of a container up to the layer.
		return nil
	}

	return m.Update(func() error {
		if g := m.store.Geometry(edge); g != nil {
			from, to := m.Origin(current), m.Origin(nca)
			moved := g.Clone()
			moved.Translate(from.X-to.X, from.Y-to.Y)
			if err := m.SetGeometry(edge, moved); err != nil {
				return err
			}
		}
		m.log.Debug().Int32("edge", int32(edge)).Int32("from", int32(current)).Int32("to", int32(nca)).Msg("edge re-homed")

		return m.Add(nca, edge, -1)
	})
}

// resolveEndpoint walks up from h while the cell is a non-edge with a
// relative geometry.
func (m *Model) resolveEndpoint(h core.Handle) core.Handle {
	for h != core.Nil && !m.store.IsEdge(h) {
		g := m.store.Geometry(h)
		if g == nil || !g.Relative {
			break
		}
		h = m.store.Parent(h)
	}

	return h
}

// NearestCommonAncestor returns the deepest cell that is an ancestor of both
// a and b. A cell is its own ancestor, so for a above b the result is a.
// For a == b it is the parent of a. Cells of different trees yield Nil.
//
// Complexity:
//   - Time O(d²) for depth d: one path per step up from the shallower cell.
func (m *Model) NearestCommonAncestor(a, b core.Handle) core.Handle {
	if !m.store.Has(a) || !m.store.Has(b) {
		return core.Nil
	}
	if a == b {
		return m.store.Parent(a)
	}
	if m.store.RootOf(a) != m.store.RootOf(b) {
		return core.Nil
	}

	cell, current := a, cellpath.Create(m.store, a)
	path := cellpath.Create(m.store, b)
	if len(path) < len(current) {
		cell, current, path = b, path, current
	}
	for cell != core.Nil {
		if cellpath.IsAncestorPath(current, path) {
			return cell
		}
		current = cellpath.ParentPath(current)
		cell = m.store.Parent(cell)
	}

	return core.Nil
}

// Origin returns the absolute offset of h: the sum of the geometry offsets of
// h and its ancestors, edges excluded.
func (m *Model) Origin(h core.Handle) geometry.Point {
	var p geometry.Point
	for ; h != core.Nil; h = m.store.Parent(h) {
		if m.store.IsEdge(h) {
			continue
		}
		if g := m.store.Geometry(h); g != nil {
			p.X += g.X
			p.Y += g.Y
		}
	}

	return p
}
