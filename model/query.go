// File: query.go
// Role: Read-only access to the tree, the connectivity and cell attributes.
// Policy:
//   - Unknown handles yield zero values; queries never fail.
//   - Returned slices are fresh; callers may keep or modify them.

package model

import (
	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/geometry"
	"github.com/katalvlaran/lvldiagram/traverse"
)

// Store exposes the underlying arena. Writes through it bypass transactions,
// the id index and edge maintenance.
func (m *Model) Store() *core.Store { return m.store }

// Root returns the root cell (Nil after Remove of the root).
func (m *Model) Root() core.Handle { return m.root }

// DefaultParent returns the first layer, the parent used when an insertion
// names none. Nil if the root has no children.
func (m *Model) DefaultParent() core.Handle {
	if m.root == core.Nil || m.store.ChildCount(m.root) == 0 {
		return core.Nil
	}
	h, _ := m.store.ChildAt(m.root, 0)

	return h
}

// RootOf returns the topmost ancestor of h.
func (m *Model) RootOf(h core.Handle) core.Handle { return m.store.RootOf(h) }

// IsRoot reports whether h is the model root.
func (m *Model) IsRoot(h core.Handle) bool { return h != core.Nil && h == m.root }

// IsLayer reports whether h is a direct child of the root.
func (m *Model) IsLayer(h core.Handle) bool { return m.IsRoot(m.store.Parent(h)) }

// IsAncestor reports whether ancestor is child or one of its ancestors.
func (m *Model) IsAncestor(ancestor, child core.Handle) bool {
	return m.store.IsAncestor(ancestor, child)
}

// Contains reports whether h is part of the tree under the model root.
func (m *Model) Contains(h core.Handle) bool { return m.store.IsAncestor(m.root, h) }

// Cell looks a cell up by id.
func (m *Model) Cell(id int) (core.Handle, bool) {
	h, ok := m.ids[id]

	return h, ok
}

// CellCount returns the number of registered ids.
func (m *Model) CellCount() int { return len(m.ids) }

// Parent returns the parent of h.
func (m *Model) Parent(h core.Handle) core.Handle { return m.store.Parent(h) }

// ChildCount returns the number of children of h.
func (m *Model) ChildCount(h core.Handle) int { return m.store.ChildCount(h) }

// ChildAt returns the child of h at index i.
func (m *Model) ChildAt(h core.Handle, i int) (core.Handle, error) { return m.store.ChildAt(h, i) }

// Children returns the children of h in order.
func (m *Model) Children(h core.Handle) []core.Handle { return m.store.Children(h) }

// ChildVertices returns the vertex children of parent.
func (m *Model) ChildVertices(parent core.Handle) []core.Handle {
	return m.ChildCells(parent, true, false)
}

// ChildEdges returns the edge children of parent.
func (m *Model) ChildEdges(parent core.Handle) []core.Handle {
	return m.ChildCells(parent, false, true)
}

// ChildCells returns the children of parent that are vertices (when vertices
// is set) or edges (when edges is set). With both false every child is returned.
func (m *Model) ChildCells(parent core.Handle, vertices, edges bool) []core.Handle {
	children := m.store.Children(parent)
	if !vertices && !edges {
		return children
	}
	out := children[:0]
	for _, c := range children {
		if (vertices && m.store.IsVertex(c)) || (edges && m.store.IsEdge(c)) {
			out = append(out, c)
		}
	}

	return out
}

// EdgeCount returns the number of edges connected to h.
func (m *Model) EdgeCount(h core.Handle) int { return m.store.EdgeCount(h) }

// EdgeAt returns the edge of h at index i.
func (m *Model) EdgeAt(h core.Handle, i int) (core.Handle, error) { return m.store.EdgeAt(h, i) }

// DirectedEdgeCount counts the edges of h whose source (outgoing) or target
// (!outgoing) is h, not counting ignored.
func (m *Model) DirectedEdgeCount(h core.Handle, outgoing bool, ignored core.Handle) int {
	count := 0
	for _, e := range m.store.Edges(h) {
		if e != ignored && m.store.Terminal(e, outgoing) == h {
			count++
		}
	}

	return count
}

// Edges returns the edges of h filtered by direction. Self-loops are
// included only with includeLoops, regardless of direction.
func (m *Model) Edges(h core.Handle, incoming, outgoing, includeLoops bool) []core.Handle {
	var out []core.Handle
	for _, e := range m.store.Edges(h) {
		src, trg := m.store.Terminal(e, true), m.store.Terminal(e, false)
		if (includeLoops && src == trg) || (src != trg && ((incoming && trg == h) || (outgoing && src == h))) {
			out = append(out, e)
		}
	}

	return out
}

// Connections returns every edge of h, self-loops included.
func (m *Model) Connections(h core.Handle) []core.Handle { return m.Edges(h, true, true, true) }

// IncomingEdges returns the non-loop edges targeting h.
func (m *Model) IncomingEdges(h core.Handle) []core.Handle { return m.Edges(h, true, false, false) }

// OutgoingEdges returns the non-loop edges leaving h.
func (m *Model) OutgoingEdges(h core.Handle) []core.Handle { return m.Edges(h, false, true, false) }

// EdgesBetween returns the edges from source to target, plus the reverse
// ones unless directed is set.
func (m *Model) EdgesBetween(source, target core.Handle, directed bool) []core.Handle {
	// scan the shorter edge list
	scan := source
	if m.store.EdgeCount(target) < m.store.EdgeCount(source) {
		scan = target
	}
	var out []core.Handle
	for _, e := range m.store.Edges(scan) {
		src, trg := m.store.Terminal(e, true), m.store.Terminal(e, false)
		if (src == source && trg == target) || (!directed && src == target && trg == source) {
			out = append(out, e)
		}
	}

	return out
}

// Opposites returns, for each edge touching terminal, the cell on the other
// side: targets of outgoing edges when targets is set, sources of incoming
// edges when sources is set. Loops and dangling sides are skipped.
func (m *Model) Opposites(edges []core.Handle, terminal core.Handle, sources, targets bool) []core.Handle {
	var out []core.Handle
	for _, e := range edges {
		src, trg := m.store.Terminal(e, true), m.store.Terminal(e, false)
		switch {
		case src == terminal && trg != core.Nil && trg != terminal:
			if targets {
				out = append(out, trg)
			}
		case trg == terminal && src != core.Nil && src != terminal:
			if sources {
				out = append(out, src)
			}
		}
	}

	return out
}

// TopmostCells returns the cells of the list none of whose ancestors are in
// the list, in input order.
func (m *Model) TopmostCells(cells []core.Handle) []core.Handle {
	in := make(map[core.Handle]struct{}, len(cells))
	for _, c := range cells {
		in[c] = struct{}{}
	}
	var out []core.Handle
next:
	for _, c := range cells {
		for p := m.store.Parent(c); p != core.Nil; p = m.store.Parent(p) {
			if _, ok := in[p]; ok {
				continue next
			}
		}
		out = append(out, c)
	}

	return out
}

// Parents returns the distinct parents of cells in first-seen order.
func (m *Model) Parents(cells []core.Handle) []core.Handle {
	seen := make(map[core.Handle]struct{}, len(cells))
	var out []core.Handle
	for _, c := range cells {
		p := m.store.Parent(c)
		if p == core.Nil {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

// FilterDescendants returns parent and its descendants in pre-order for which
// filter returns true. A nil filter accepts all; a Nil parent means the root.
func (m *Model) FilterDescendants(filter func(core.Handle) bool, parent core.Handle) []core.Handle {
	if parent == core.Nil {
		parent = m.root
	}
	var out []core.Handle
	for _, c := range traverse.PreOrder(m.store, parent) {
		if filter == nil || filter(c) {
			out = append(out, c)
		}
	}

	return out
}

// Descendants returns parent and all its descendants in pre-order.
func (m *Model) Descendants(parent core.Handle) []core.Handle {
	return m.FilterDescendants(nil, parent)
}

// Connected returns the cells reachable from start over edges, start first.
// With directed set only source → target hops are followed.
func (m *Model) Connected(start core.Handle, directed bool) []core.Handle {
	res, err := traverse.Connected(m.store, start, directed)
	if err != nil {
		return nil
	}

	return res.Order
}

// Terminal returns the source (isSource) or target of edge.
func (m *Model) Terminal(edge core.Handle, isSource bool) core.Handle {
	return m.store.Terminal(edge, isSource)
}

// ID returns the identifier of h.
func (m *Model) ID(h core.Handle) (int, bool) { return m.store.ID(h) }

// Value returns the payload of h.
func (m *Model) Value(h core.Handle) any { return m.store.Value(h) }

// Geometry returns a copy of the geometry of h; modify it and pass it to
// SetGeometry to apply a change.
func (m *Model) Geometry(h core.Handle) *geometry.Geometry { return m.store.Geometry(h).Clone() }

// Style returns the style string of h.
func (m *Model) Style(h core.Handle) string { return m.store.Style(h) }

// IsVertex reports whether h is a vertex.
func (m *Model) IsVertex(h core.Handle) bool { return m.store.IsVertex(h) }

// IsEdge reports whether h is an edge.
func (m *Model) IsEdge(h core.Handle) bool { return m.store.IsEdge(h) }

// IsConnectable reports the connectable flag of h.
func (m *Model) IsConnectable(h core.Handle) bool { return m.store.IsConnectable(h) }

// IsVisible reports the visible flag of h.
func (m *Model) IsVisible(h core.Handle) bool { return m.store.IsVisible(h) }

// IsCollapsed reports the collapsed flag of h.
func (m *Model) IsCollapsed(h core.Handle) bool { return m.store.IsCollapsed(h) }
