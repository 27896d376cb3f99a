// Package event delivers model notifications to any number of observers.
//
// Observers subscribe per Kind and receive a Subscription handle they can
// later pass to Unsubscribe. Several observers may watch the same Kind; they
// are invoked synchronously in subscription order.
package event

import "github.com/katalvlaran/lvldiagram/core"

// Kind names a notification.
type Kind uint8

const (
	// BeginUpdate fires when the outermost transaction opens.
	BeginUpdate Kind = iota + 1
	// Change fires once when the outermost transaction closes.
	Change
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case BeginUpdate:
		return "begin_update"
	case Change:
		return "change"
	default:
		return "unknown"
	}
}

// ChangeKind classifies one recorded mutation.
type ChangeKind uint8

const (
	RootChange ChangeKind = iota + 1
	ChildChange
	TerminalChange
	ValueChange
	GeometryChange
	StyleChange
	VisibleChange
	CollapsedChange
)

// ChangeKinds lists every ChangeKind in declaration order.
var ChangeKinds = []ChangeKind{
	RootChange, ChildChange, TerminalChange, ValueChange,
	GeometryChange, StyleChange, VisibleChange, CollapsedChange,
}

// String returns the lower-case name of k.
func (k ChangeKind) String() string {
	switch k {
	case RootChange:
		return "root"
	case ChildChange:
		return "child"
	case TerminalChange:
		return "terminal"
	case ValueChange:
		return "value"
	case GeometryChange:
		return "geometry"
	case StyleChange:
		return "style"
	case VisibleChange:
		return "visible"
	case CollapsedChange:
		return "collapsed"
	default:
		return "unknown"
	}
}

// Record is one mutation applied inside a transaction.
type Record struct {
	Kind ChangeKind
	Cell core.Handle
}

// Event is what observers receive.
// Changes is set for Change events and lists mutations in application order.
type Event struct {
	Kind    Kind
	Changes []Record
}

// Listener observes events. It runs synchronously on the mutating goroutine.
type Listener func(Event)

// Subscription identifies one registered listener.
type Subscription uint64
