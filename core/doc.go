// Package core provides the cell arena of lvldiagram: a flat Store of cell
// records addressed by stable Handle values, plus the node-level primitives
// that keep the two bidirectional relations of a diagram consistent:
//
//   - parent/child: a cell has at most one parent and appears exactly once in
//     that parent's ordered children.
//   - edge/terminal: an edge listed in a terminal's incident edges points back
//     at it as source or target; a self-loop is listed once.
//
// Why an arena?
//
//   - parent, source and target are plain handles (non-owning), children and
//     edges are ordered handle lists. There are no pointer cycles to manage and
//     no use-after-free: a removed cell keeps its slot and may be reinserted.
//   - Handles are cheap map keys, so identity-keyed bookkeeping in the model
//     (clone mappings, id index) needs no extra wrapping.
//
// What core does NOT do:
//
//   - No identifiers are allocated here; Store.ID reports whatever was set.
//   - No cascading: removing a cell does not disconnect its edges or
//     unregister its subtree. That orchestration lives in package model.
//   - No locking and no notifications.
//
// Core Methods:
//
//	// Allocation
//	New(opts ...CellOption) Handle              // O(1) amortized
//	Clone(h Handle, dst *Store) (Handle, error) // attributes only
//
//	// Tree
//	Insert(parent, child Handle, index int) error  // index<0 appends
//	Remove(parent Handle, index int) (Handle, error)
//	RemoveFromParent(h Handle) error
//	IsAncestor(ancestor, child Handle) bool
//	RootOf(h Handle) Handle
//
//	// Connectivity
//	InsertEdge(terminal, edge Handle, outgoing bool) error
//	RemoveEdge(terminal, edge Handle, outgoing bool) error
//	RemoveFromTerminal(edge Handle, isSource bool) error
//
// Errors:
//
//	ErrContractViolation – Nil/unknown handle or invalid argument
//	ErrIndexOutOfRange   – child/edge index beyond current bounds
//	ErrCycle             – insertion would make a cell its own ancestor
package core
