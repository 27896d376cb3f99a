// File: methods_edges.go
// Role: Edge/terminal primitives: InsertEdge, RemoveEdge, RemoveFromTerminal.
// Invariants:
//   - An edge appears in terminal.edges once per distinct terminal role it holds.
//   - A self-loop (source == target) is listed once, not twice.
// AI-HINT (file):
//   - outgoing == true addresses the source side, false the target side.

package core

import "fmt"

// InsertEdge connects edge to terminal on the given side.
//
// Steps:
//  1. Detach edge from whichever cell currently holds it on that side.
//  2. Set the edge's terminal to terminal.
//  3. Append edge to terminal.edges unless the opposite side already points at
//     terminal and the edge is listed (self-loop dedup).
//
// Errors:
//   - ErrContractViolation for unknown handles.
//
// Complexity:
//   - Time O(k) for k incident edges on the old and new terminal.
func (s *Store) InsertEdge(terminal, edge Handle, outgoing bool) error {
	if _, err := s.mustAt(terminal); err != nil {
		return err
	}
	if _, err := s.mustAt(edge); err != nil {
		return err
	}
	if err := s.RemoveFromTerminal(edge, outgoing); err != nil {
		return err
	}
	_ = s.SetTerminal(edge, terminal, outgoing)

	t := &s.cells[terminal]
	if s.Terminal(edge, !outgoing) != terminal || indexOf(t.edges, edge) < 0 {
		t.edges = append(t.edges, edge)
	}

	return nil
}

// RemoveEdge disconnects edge from terminal on the given side.
// The edge stays in terminal.edges while it still points at terminal from
// the opposite side.
//
// Complexity: O(k) for k incident edges on terminal.
func (s *Store) RemoveEdge(terminal, edge Handle, outgoing bool) error {
	t, err := s.mustAt(terminal)
	if err != nil {
		return err
	}
	if _, err = s.mustAt(edge); err != nil {
		return err
	}
	if s.Terminal(edge, !outgoing) != terminal {
		if i := indexOf(t.edges, edge); i >= 0 {
			t.edges = append(t.edges[:i], t.edges[i+1:]...)
		}
	}
	_ = s.SetTerminal(edge, Nil, outgoing)

	return nil
}

// RemoveFromTerminal detaches edge from its source (isSource) or target.
// No-op when that side is unset.
func (s *Store) RemoveFromTerminal(edge Handle, isSource bool) error {
	if _, err := s.mustAt(edge); err != nil {
		return err
	}
	terminal := s.Terminal(edge, isSource)
	if terminal == Nil {
		return nil
	}
	if err := s.RemoveEdge(terminal, edge, isSource); err != nil {
		return fmt.Errorf("RemoveFromTerminal(%d): %w", edge, err)
	}

	return nil
}
