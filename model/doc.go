// Package model owns a diagram: a root cell in a core.Store, an identifier
// index, a transaction counter and the observers notified when a top-level
// transaction completes.
//
// Every mutation runs inside a transaction. Transactions nest; only the
// outermost one fires an event.Change notification, carrying the changes
// recorded since it began:
//
//	m := model.New()
//	err := m.Update(func() error {
//		a, _ := m.InsertVertex(core.Nil, "A", 0, 0, 80, 30)
//		b, _ := m.InsertVertex(core.Nil, "B", 200, 0, 80, 30)
//		_, err := m.InsertEdge(core.Nil, nil, a, b)
//		return err
//	})
//
// Edges are kept under the nearest common ancestor of their terminals when
// WithMaintainEdgeParent is on (the default), with their geometry translated
// so the absolute position is unchanged.
//
// Identifiers are sequential and never recycled. Cells added to the model
// without an id receive one when WithCreateIDs is on (the default); an
// explicit id colliding with another cell is silently reallocated.
//
// Concurrency: a Model is single-writer and never locks on its own.
// Atomically wraps a top-level transaction in a per-model mutex for callers
// sharing a model across goroutines.
//
// Errors:
//
//	core.ErrContractViolation - Nil or unknown handle, or a root with a parent.
//	core.ErrIndexOutOfRange   - child index outside current bounds.
//	core.ErrCycle             - inserting a cell under itself or a descendant.
//	ErrTransactionImbalance   - EndUpdate without a matching BeginUpdate.
package model
