// File: methods_clone.go
// Role: Attribute-level cell copy used by the clone and merge engines.
// Determinism:
//   - Copies value, geometry (deep), style and flags; never id or relations.

package core

// Clone allocates a detached copy of h in dst (which may be s itself).
//
// Payloads implementing ValueCloner are copied through CloneValue; other
// payloads are shared. Parent, children, terminals, incident edges and the
// identifier are left unset: connectivity is restored by the caller once all
// clones exist.
//
// Errors:
//   - ErrContractViolation for an unknown h.
//
// Complexity:
//   - Time O(p) for p geometry control points; one arena append.
func (s *Store) Clone(h Handle, dst *Store) (Handle, error) {
	src, err := s.mustAt(h)
	if err != nil {
		return Nil, err
	}
	if dst == nil {
		dst = s
	}
	// Copy by value first: dst.New may grow s.cells when dst == s.
	orig := *src
	value := orig.value
	if vc, ok := value.(ValueCloner); ok {
		value = vc.CloneValue()
	}

	return dst.New(
		func(c *cell) {
			c.value = value
			c.geometry = orig.geometry.Clone()
			c.style = orig.style
			c.vertex = orig.vertex
			c.edge = orig.edge
			c.connectable = orig.connectable
			c.visible = orig.visible
			c.collapsed = orig.collapsed
		},
	), nil
}
