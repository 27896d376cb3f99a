package event

// entry pairs a subscription handle with its listener.
type entry struct {
	sub Subscription
	fn  Listener
}

// Notifier keeps an ordered listener list per Kind.
//
// The zero value is ready to use. Notifier does not lock: it follows the
// single-writer discipline of the model that owns it.
type Notifier struct {
	next      Subscription
	listeners map[Kind][]entry
}

// Subscribe registers l for kind and returns its handle.
// A nil listener is ignored and yields the zero Subscription.
func (n *Notifier) Subscribe(kind Kind, l Listener) Subscription {
	if l == nil {
		return 0
	}
	if n.listeners == nil {
		n.listeners = make(map[Kind][]entry)
	}
	n.next++
	n.listeners[kind] = append(n.listeners[kind], entry{sub: n.next, fn: l})

	return n.next
}

// Unsubscribe removes the listener registered under sub.
// It reports whether a listener was removed.
func (n *Notifier) Unsubscribe(sub Subscription) bool {
	for kind, list := range n.listeners {
		for i, e := range list {
			if e.sub != sub {
				continue
			}
			// Copy so that a Fire in progress keeps iterating its own snapshot.
			out := make([]entry, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			n.listeners[kind] = out

			return true
		}
	}

	return false
}

// Fire invokes every listener of ev.Kind in subscription order.
// Listeners added or removed during Fire take effect on the next call.
func (n *Notifier) Fire(ev Event) {
	for _, e := range n.listeners[ev.Kind] {
		e.fn(ev)
	}
}

// Len returns the number of listeners registered for kind.
func (n *Notifier) Len(kind Kind) int {
	return len(n.listeners[kind])
}
