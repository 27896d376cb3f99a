// File: ident.go
// Role: Sequential identifier allocation and the id → cell index.
// Determinism:
//   - Ids are handed out in increasing order and never reused.
//   - Registration walks subtrees in pre-order, removal in post-order.

package model

import (
	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/event"
	"github.com/katalvlaran/lvldiagram/traverse"
)

// createID returns the next free sequential id.
func (m *Model) createID() int {
	id := m.nextID
	m.nextID++

	return id
}

// cellAdded registers h and its descendants in the id index.
// Missing ids are assigned when createIDs is on; an id held by another
// cell is replaced by fresh ones until free.
func (m *Model) cellAdded(h core.Handle) {
	for _, c := range traverse.PreOrder(m.store, h) {
		id, ok := m.store.ID(c)
		if !ok {
			if !m.createIDs {
				continue
			}
			id = m.createID()
		}
		for owner, taken := m.ids[id]; taken && owner != c; owner, taken = m.ids[id] {
			m.log.Debug().Int("id", id).Int32("cell", int32(c)).Msg("id collision, reallocating")
			id = m.createID()
		}
		_ = m.store.SetID(c, id)
		m.ids[id] = c
		if id >= m.nextID {
			m.nextID = id + 1
		}
	}
}

// cellRemoved disconnects and unregisters h and its descendants.
// Every edge touching the subtree loses both terminals. Ids stay on the
// cells but leave the index; nextID is never lowered.
func (m *Model) cellRemoved(h core.Handle) {
	for _, c := range traverse.PostOrder(m.store, h) {
		if m.store.IsEdge(c) {
			m.disconnect(c)
		}
		for _, e := range m.store.Edges(c) {
			m.disconnect(e)
		}
		if id, ok := m.store.ID(c); ok && m.ids[id] == c {
			delete(m.ids, id)
		}
	}
}

// disconnect clears both terminals of edge, recording one change per side.
func (m *Model) disconnect(edge core.Handle) {
	for _, isSource := range [2]bool{true, false} {
		t := m.store.Terminal(edge, isSource)
		if t == core.Nil {
			continue
		}
		_ = m.store.RemoveEdge(t, edge, isSource)
		m.record(event.TerminalChange, edge)
	}
}

// reindex drops the whole index and registers the subtree of h.
func (m *Model) reindex(h core.Handle) {
	m.ids = make(map[int]core.Handle)
	if h != core.Nil {
		m.cellAdded(h)
	}
}
