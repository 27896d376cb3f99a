// File: transaction.go
// Role: Nesting transaction counter, change log and notification dispatch.

package model

import (
	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/event"
)

// BeginUpdate opens a (possibly nested) transaction.
// event.BeginUpdate fires when the outermost transaction opens.
func (m *Model) BeginUpdate() {
	m.depth++
	if m.depth == 1 {
		m.notifier.Fire(event.Event{Kind: event.BeginUpdate})
	}
}

// EndUpdate closes the innermost transaction. When the outermost one closes,
// exactly one event.Change fires with every change recorded since it began,
// even if there were none.
//
// Without an open transaction EndUpdate returns ErrTransactionImbalance and
// leaves the level at zero.
func (m *Model) EndUpdate() error {
	if m.depth == 0 {
		m.log.Warn().Msg("end update without matching begin")
		return ErrTransactionImbalance
	}
	m.depth--
	if m.depth > 0 {
		return nil
	}

	changes := m.changes
	m.changes = nil
	m.log.Debug().Int("changes", len(changes)).Msg("transaction committed")
	m.notifier.Fire(event.Event{Kind: event.Change, Changes: changes})

	return nil
}

// UpdateLevel returns the current transaction nesting depth.
func (m *Model) UpdateLevel() int { return m.depth }

// Update runs fn inside a transaction. The transaction is closed on every
// exit path, panics included. There is no rollback: changes applied before
// fn fails stay applied and are reported by the notification.
//
// The error of fn takes precedence over the error of EndUpdate.
func (m *Model) Update(fn func() error) (err error) {
	m.BeginUpdate()
	defer func() {
		if endErr := m.EndUpdate(); err == nil {
			err = endErr
		}
	}()

	return fn()
}

// Atomically runs fn as a top-level transaction while holding the model's
// mutex. Use it when several goroutines share one model. fn must not call
// Atomically again.
func (m *Model) Atomically(fn func() error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Update(fn)
}

// Subscribe registers l for notifications of the given kind.
func (m *Model) Subscribe(kind event.Kind, l event.Listener) event.Subscription {
	return m.notifier.Subscribe(kind, l)
}

// Unsubscribe removes a listener registered with Subscribe.
func (m *Model) Unsubscribe(sub event.Subscription) bool {
	return m.notifier.Unsubscribe(sub)
}

// record appends a change to the open transaction's log.
func (m *Model) record(kind event.ChangeKind, h core.Handle) {
	m.changes = append(m.changes, event.Record{Kind: kind, Cell: h})
}
