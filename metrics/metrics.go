// Package metrics exports model activity as Prometheus metrics.
//
// A Recorder listens to a model's change notifications and maintains:
//
//	lvldiagram_transactions_total         committed top-level transactions
//	lvldiagram_changes_total{kind}        recorded changes by kind
//	lvldiagram_transaction_changes        changes per transaction (histogram)
//	lvldiagram_cells                      cells holding an id after the last commit
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvldiagram/event"
)

const namespace = "lvldiagram"

// Source is the part of a model a Recorder observes. *model.Model
// implements it.
type Source interface {
	Subscribe(kind event.Kind, l event.Listener) event.Subscription
	Unsubscribe(sub event.Subscription) bool
	CellCount() int
}

// Recorder owns the collectors. One Recorder may observe several sources.
type Recorder struct {
	transactions prometheus.Counter
	changes      *prometheus.CounterVec
	batch        prometheus.Histogram
	cells        prometheus.Gauge
}

// New creates a Recorder and registers its collectors with reg.
// A nil reg skips registration.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		transactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Committed top-level transactions.",
		}),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_total",
			Help:      "Changes recorded inside transactions, by kind.",
		}, []string{"kind"}),
		batch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transaction_changes",
			Help:      "Number of changes delivered per notification.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}),
		cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cells",
			Help:      "Cells registered in the model after the last commit.",
		}),
	}
	// expose every kind at zero
	for _, k := range event.ChangeKinds {
		r.changes.WithLabelValues(k.String())
	}
	if reg == nil {
		return r, nil
	}
	for _, c := range r.Collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Collectors returns the collectors owned by r.
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.transactions, r.changes, r.batch, r.cells}
}

// Attach subscribes r to src and returns a function that detaches it.
func (r *Recorder) Attach(src Source) (detach func()) {
	sub := src.Subscribe(event.Change, func(ev event.Event) {
		r.Observe(ev)
		r.cells.Set(float64(src.CellCount()))
	})

	return func() { src.Unsubscribe(sub) }
}

// Observe accounts one change notification. Other kinds are ignored.
func (r *Recorder) Observe(ev event.Event) {
	if ev.Kind != event.Change {
		return
	}
	r.transactions.Inc()
	r.batch.Observe(float64(len(ev.Changes)))
	for _, c := range ev.Changes {
		r.changes.WithLabelValues(c.Kind.String()).Inc()
	}
}
