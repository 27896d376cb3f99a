// Package core defines the cell arena (Store), the Handle type addressing it,
// and the node-level primitives that keep parent/child and edge/terminal
// relations symmetric.
//
// This file declares Handle, the cell record, Store, CellOption, sentinel
// errors, and the NewStore constructor.
//
// Errors:
//
//	ErrContractViolation - a required handle is Nil, unknown, or of the wrong kind.
//	ErrIndexOutOfRange   - a child or edge index is beyond current bounds.
//	ErrCycle             - inserting a cell into itself or into one of its descendants.
package core

import (
	"errors"

	"github.com/katalvlaran/lvldiagram/geometry"
)

// Sentinel errors for core cell operations.
var (
	// ErrContractViolation indicates a missing or invalid cell reference.
	ErrContractViolation = errors.New("core: contract violation")

	// ErrIndexOutOfRange indicates a child or edge index outside current bounds.
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrCycle indicates an insertion that would make a cell its own ancestor.
	ErrCycle = errors.New("core: cycle or self parent")
)

// Handle addresses a cell slot in a Store. Handles are stable for the
// lifetime of the Store and are never recycled.
type Handle int32

// Nil is the absent handle (no parent, no terminal, no cell).
const Nil Handle = 0

// Valid reports whether h is not Nil. It does not check Store membership.
func (h Handle) Valid() bool { return h != Nil }

// ValueCloner is implemented by cell payloads that must be copied when a
// cell is cloned. Payloads without it are shared between original and clone.
type ValueCloner interface {
	CloneValue() any
}

// cell is the record stored in a Store slot.
//
// parent, source and target are non-owning; children and edges are ordered
// handle lists.
type cell struct {
	id    int
	hasID bool

	value    any
	geometry *geometry.Geometry
	style    string

	vertex      bool
	edge        bool
	connectable bool
	visible     bool
	collapsed   bool

	parent   Handle
	children []Handle

	source Handle
	target Handle
	edges  []Handle
}

// Store is the flat arena holding every cell of one or more trees.
//
// The store performs no locking and emits no notifications. Structural
// coordination (ids, transactions, edge re-parenting) belongs to the model
// package; Store only keeps the direct relations consistent.
type Store struct {
	// cells[0] is reserved so that the zero Handle means "none".
	cells []cell
}

// CellOption configures a cell created by Store.New.
type CellOption func(c *cell)

// AsVertex marks the new cell as a vertex.
func AsVertex() CellOption {
	return func(c *cell) { c.vertex = true }
}

// AsEdge marks the new cell as an edge.
func AsEdge() CellOption {
	return func(c *cell) { c.edge = true }
}

// WithID gives the new cell an explicit identifier. Negative values are ignored.
func WithID(id int) CellOption {
	return func(c *cell) {
		if id >= 0 {
			c.id, c.hasID = id, true
		}
	}
}

// WithValue sets the opaque payload.
func WithValue(v any) CellOption {
	return func(c *cell) { c.value = v }
}

// WithGeometry sets the geometry. The store keeps its own copy.
func WithGeometry(g *geometry.Geometry) CellOption {
	return func(c *cell) { c.geometry = g.Clone() }
}

// WithStyle sets the opaque style string.
func WithStyle(style string) CellOption {
	return func(c *cell) { c.style = style }
}

// WithConnectable overrides the connectable flag (default true).
func WithConnectable(connectable bool) CellOption {
	return func(c *cell) { c.connectable = connectable }
}

// WithVisible overrides the visible flag (default true).
func WithVisible(visible bool) CellOption {
	return func(c *cell) { c.visible = visible }
}

// WithCollapsed overrides the collapsed flag (default false).
func WithCollapsed(collapsed bool) CellOption {
	return func(c *cell) { c.collapsed = collapsed }
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{cells: make([]cell, 1, 64)}
}

// New allocates a detached cell and returns its handle.
// Defaults: connectable, visible, not collapsed, no id.
func (s *Store) New(opts ...CellOption) Handle {
	c := cell{connectable: true, visible: true}
	for _, opt := range opts {
		opt(&c)
	}
	s.cells = append(s.cells, c)

	return Handle(len(s.cells) - 1)
}

// Len returns the number of allocated cells, attached or not.
func (s *Store) Len() int { return len(s.cells) - 1 }

// Has reports whether h addresses a cell of this store.
func (s *Store) Has(h Handle) bool {
	return h > Nil && int(h) < len(s.cells)
}

// at returns the cell record for h or nil.
func (s *Store) at(h Handle) *cell {
	if !s.Has(h) {
		return nil
	}

	return &s.cells[h]
}
