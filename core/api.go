// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read/write accessors for cell attributes. No structural effects.
// Policy:
//   - Getters on unknown handles return zero values (Nil, false, "", nil).
//   - Setters on unknown handles return ErrContractViolation.
//   - Slices returned by Children/Edges are copies; mutating them has no effect.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/geometry"
)

// ID returns the identifier of h and whether one is assigned.
func (s *Store) ID(h Handle) (int, bool) {
	c := s.at(h)
	if c == nil {
		return 0, false
	}

	return c.id, c.hasID
}

// SetID assigns an identifier. Negative ids are rejected.
func (s *Store) SetID(h Handle, id int) error {
	c, err := s.mustAt(h)
	if err != nil {
		return err
	}
	if id < 0 {
		return fmt.Errorf("%w: negative id %d", ErrContractViolation, id)
	}
	c.id, c.hasID = id, true

	return nil
}

// ClearID removes the identifier of h.
func (s *Store) ClearID(h Handle) error {
	c, err := s.mustAt(h)
	if err != nil {
		return err
	}
	c.id, c.hasID = 0, false

	return nil
}

// Value returns the payload of h.
func (s *Store) Value(h Handle) any {
	if c := s.at(h); c != nil {
		return c.value
	}

	return nil
}

// SetValue replaces the payload of h.
func (s *Store) SetValue(h Handle, v any) error {
	c, err := s.mustAt(h)
	if err != nil {
		return err
	}
	c.value = v

	return nil
}

// Geometry returns the stored geometry of h. The pointer is owned by the
// store; callers must Clone before modifying it.
func (s *Store) Geometry(h Handle) *geometry.Geometry {
	if c := s.at(h); c != nil {
		return c.geometry
	}

	return nil
}

// SetGeometry stores a copy of g (nil clears the geometry).
func (s *Store) SetGeometry(h Handle, g *geometry.Geometry) error {
	c, err := s.mustAt(h)
	if err != nil {
		return err
	}
	c.geometry = g.Clone()

	return nil
}

// Style returns the style string of h.
func (s *Store) Style(h Handle) string {
	if c := s.at(h); c != nil {
		return c.style
	}

	return ""
}

// SetStyle replaces the style string of h.
func (s *Store) SetStyle(h Handle, style string) error {
	c, err := s.mustAt(h)
	if err != nil {
		return err
	}
	c.style = style

	return nil
}

// IsVertex reports whether h was created as a vertex.
func (s *Store) IsVertex(h Handle) bool {
	c := s.at(h)

	return c != nil && c.vertex
}

// IsEdge reports whether h was created as an edge.
func (s *Store) IsEdge(h Handle) bool {
	c := s.at(h)

	return c != nil && c.edge
}

// IsConnectable reports the connectable flag of h.
func (s *Store) IsConnectable(h Handle) bool {
	c := s.at(h)

	return c != nil && c.connectable
}

// SetConnectable sets the connectable flag of h.
func (s *Store) SetConnectable(h Handle, v bool) error {
	c, err := s.mustAt(h)
	if err != nil {
		return err
	}
	c.connectable = v

	return nil
}

// IsVisible reports the visible flag of h.
func (s *Store) IsVisible(h Handle) bool {
	c := s.at(h)

	return c != nil && c.visible
}

// SetVisible sets the visible flag of h.
func (s *Store) SetVisible(h Handle, v bool) error {
	c, err := s.mustAt(h)
	if err != nil {
		return err
	}
	c.visible = v

	return nil
}

// IsCollapsed reports the collapsed flag of h.
func (s *Store) IsCollapsed(h Handle) bool {
	c := s.at(h)

	return c != nil && c.collapsed
}

// SetCollapsed sets the collapsed flag of h.
func (s *Store) SetCollapsed(h Handle, v bool) error {
	c, err := s.mustAt(h)
	if err != nil {
		return err
	}
	c.collapsed = v

	return nil
}

// Parent returns the parent of h, or Nil.
func (s *Store) Parent(h Handle) Handle {
	if c := s.at(h); c != nil {
		return c.parent
	}

	return Nil
}

// ChildCount returns the number of children of h.
func (s *Store) ChildCount(h Handle) int {
	if c := s.at(h); c != nil {
		return len(c.children)
	}

	return 0
}

// ChildAt returns the child of h at index i.
func (s *Store) ChildAt(h Handle, i int) (Handle, error) {
	c, err := s.mustAt(h)
	if err != nil {
		return Nil, err
	}
	if i < 0 || i >= len(c.children) {
		return Nil, fmt.Errorf("%w: child %d of %d (cell %d)", ErrIndexOutOfRange, i, len(c.children), h)
	}

	return c.children[i], nil
}

// Children returns a copy of the ordered children of h.
func (s *Store) Children(h Handle) []Handle {
	c := s.at(h)
	if c == nil || len(c.children) == 0 {
		return nil
	}
	out := make([]Handle, len(c.children))
	copy(out, c.children)

	return out
}

// IndexOf returns the position of child in parent's children, or -1.
func (s *Store) IndexOf(parent, child Handle) int {
	c := s.at(parent)
	if c == nil {
		return -1
	}

	return indexOf(c.children, child)
}

// EdgeCount returns the number of edges incident on h.
func (s *Store) EdgeCount(h Handle) int {
	if c := s.at(h); c != nil {
		return len(c.edges)
	}

	return 0
}

// EdgeAt returns the incident edge of h at index i.
func (s *Store) EdgeAt(h Handle, i int) (Handle, error) {
	c, err := s.mustAt(h)
	if err != nil {
		return Nil, err
	}
	if i < 0 || i >= len(c.edges) {
		return Nil, fmt.Errorf("%w: edge %d of %d (cell %d)", ErrIndexOutOfRange, i, len(c.edges), h)
	}

	return c.edges[i], nil
}

// Edges returns a copy of the ordered incident edges of h.
func (s *Store) Edges(h Handle) []Handle {
	c := s.at(h)
	if c == nil || len(c.edges) == 0 {
		return nil
	}
	out := make([]Handle, len(c.edges))
	copy(out, c.edges)

	return out
}

// EdgeIndex returns the position of edge in h's incident edges, or -1.
func (s *Store) EdgeIndex(h, edge Handle) int {
	c := s.at(h)
	if c == nil {
		return -1
	}

	return indexOf(c.edges, edge)
}

// Terminal returns the source (isSource) or target terminal of edge.
func (s *Store) Terminal(edge Handle, isSource bool) Handle {
	c := s.at(edge)
	if c == nil {
		return Nil
	}
	if isSource {
		return c.source
	}

	return c.target
}

// SetTerminal sets the raw terminal reference without touching the
// terminal's edge list. Use InsertEdge/RemoveEdge to keep both sides in sync.
func (s *Store) SetTerminal(edge, terminal Handle, isSource bool) error {
	c, err := s.mustAt(edge)
	if err != nil {
		return err
	}
	if terminal != Nil && !s.Has(terminal) {
		return fmt.Errorf("%w: unknown terminal %d", ErrContractViolation, terminal)
	}
	if isSource {
		c.source = terminal
	} else {
		c.target = terminal
	}

	return nil
}

// mustAt returns the record for h or ErrContractViolation.
func (s *Store) mustAt(h Handle) (*cell, error) {
	c := s.at(h)
	if c == nil {
		return nil, fmt.Errorf("%w: unknown cell %d", ErrContractViolation, h)
	}

	return c, nil
}

func indexOf(list []Handle, h Handle) int {
	for i, x := range list {
		if x == h {
			return i
		}
	}

	return -1
}
