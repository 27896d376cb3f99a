// File: methods.go
// Role: Parent/child primitives: Insert, Remove, RemoveFromParent, IsAncestor.
// Determinism:
//   - Children keep insertion order; positions are significant.
// Side effects:
//   - Confined to the child and its old/new parent. No cascading, no ids.

package core

import "fmt"

// Insert makes child a child of parent at index and returns nil on success.
//
// Steps:
//  1. Validate handles; reject child == parent or child being an ancestor of parent (ErrCycle).
//  2. Resolve index: index < 0 appends; if child is already under parent,
//     "append" means childCount-1 so it ends up last without a gap.
//  3. Validate index against the child count after detaching (ErrIndexOutOfRange).
//  4. Detach child from its current parent, then splice it in.
//
// Complexity: O(k) where k is the child count of the involved parents.
func (s *Store) Insert(parent, child Handle, index int) error {
	p, err := s.mustAt(parent)
	if err != nil {
		return err
	}
	c, err := s.mustAt(child)
	if err != nil {
		return err
	}
	if child == parent || s.IsAncestor(child, parent) {
		return fmt.Errorf("%w: cell %d into %d", ErrCycle, child, parent)
	}

	count := len(p.children)
	if c.parent == parent {
		count--
	}
	if index < 0 {
		index = count
	}
	if index > count {
		return fmt.Errorf("%w: insert at %d of %d (cell %d)", ErrIndexOutOfRange, index, count, parent)
	}

	s.detach(child)
	c.parent = parent
	p.children = append(p.children, Nil)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child

	return nil
}

// Remove detaches the child of parent at index and returns it.
//
// Errors:
//   - ErrContractViolation for an unknown parent.
//   - ErrIndexOutOfRange unless 0 ≤ index < ChildCount(parent).
//
// Complexity: O(k) for k children of parent.
func (s *Store) Remove(parent Handle, index int) (Handle, error) {
	p, err := s.mustAt(parent)
	if err != nil {
		return Nil, err
	}
	if index < 0 || index >= len(p.children) {
		return Nil, fmt.Errorf("%w: remove %d of %d (cell %d)", ErrIndexOutOfRange, index, len(p.children), parent)
	}
	child := p.children[index]
	p.children = append(p.children[:index], p.children[index+1:]...)
	s.cells[child].parent = Nil

	return child, nil
}

// RemoveFromParent detaches h from its parent; no-op for parentless cells.
func (s *Store) RemoveFromParent(h Handle) error {
	if _, err := s.mustAt(h); err != nil {
		return err
	}
	s.detach(h)

	return nil
}

// IsAncestor reports whether ancestor is child or one of its ancestors.
// Complexity: O(depth).
func (s *Store) IsAncestor(ancestor, child Handle) bool {
	if ancestor == Nil {
		return false
	}
	for child != Nil && child != ancestor {
		child = s.Parent(child)
	}

	return child == ancestor
}

// RootOf returns the topmost ancestor of h (h itself if parentless).
func (s *Store) RootOf(h Handle) Handle {
	if !s.Has(h) {
		return Nil
	}
	for {
		p := s.Parent(h)
		if p == Nil {
			return h
		}
		h = p
	}
}

// detach removes h from its parent's children list, if any.
func (s *Store) detach(h Handle) {
	parent := s.cells[h].parent
	if parent == Nil {
		return
	}
	p := &s.cells[parent]
	if i := indexOf(p.children, h); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	s.cells[h].parent = Nil
}
