package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldiagram/event"
	"github.com/katalvlaran/lvldiagram/metrics"
	"github.com/katalvlaran/lvldiagram/model"
)

// gather returns the gathered families of reg keyed by name.
func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		out[mf.GetName()] = mf
	}

	return out
}

// changeCount returns lvldiagram_changes_total for kind.
func changeCount(t *testing.T, fams map[string]*dto.MetricFamily, kind string) float64 {
	t.Helper()
	mf, ok := fams["lvldiagram_changes_total"]
	require.True(t, ok)
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == "kind" && lp.GetValue() == kind {
				return m.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("no series for kind %q", kind)

	return 0
}

func TestRecorderAttach(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	m := model.New()
	detach := rec.Attach(m)

	err = m.Update(func() error {
		a, err := m.InsertVertex(0, "A", 0, 0, 10, 10)
		if err != nil {
			return err
		}
		b, err := m.InsertVertex(0, "B", 50, 0, 10, 10)
		if err != nil {
			return err
		}
		_, err = m.InsertEdge(0, nil, a, b)

		return err
	})
	require.NoError(t, err)

	fams := gather(t, reg)
	require.Equal(t, 1.0, fams["lvldiagram_transactions_total"].GetMetric()[0].GetCounter().GetValue())
	require.Equal(t, 3.0, fams["lvldiagram_cells"].GetMetric()[0].GetGauge().GetValue())
	require.Equal(t, 3.0, changeCount(t, fams, "child"))
	require.Equal(t, 2.0, changeCount(t, fams, "terminal"))
	require.Equal(t, 0.0, changeCount(t, fams, "style"))
	require.Equal(t, uint64(1), fams["lvldiagram_transaction_changes"].GetMetric()[0].GetHistogram().GetSampleCount())

	detach()
	_, err = m.InsertVertex(0, "C", 0, 0, 1, 1)
	require.NoError(t, err)
	fams = gather(t, reg)
	require.Equal(t, 1.0, fams["lvldiagram_transactions_total"].GetMetric()[0].GetCounter().GetValue(), "detached recorder stops counting")
}

func TestRecorderObserveIgnoresBegin(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	rec.Observe(event.Event{Kind: event.BeginUpdate})
	rec.Observe(event.Event{Kind: event.Change, Changes: []event.Record{{Kind: event.ValueChange, Cell: 3}}})

	fams := gather(t, reg)
	require.Equal(t, 1.0, fams["lvldiagram_transactions_total"].GetMetric()[0].GetCounter().GetValue())
	require.Equal(t, 1.0, changeCount(t, fams, "value"))
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	require.Error(t, err)

	rec, err := metrics.New(nil)
	require.NoError(t, err)
	require.Len(t, rec.Collectors(), 4)
}
