package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/event"
	"github.com/katalvlaran/lvldiagram/geometry"
	"github.com/katalvlaran/lvldiagram/model"
)

// newDiagram returns a fresh model and its default layer.
func newDiagram(t *testing.T, opts ...model.Option) (*model.Model, core.Handle) {
	t.Helper()
	m := model.New(opts...)
	layer := m.DefaultParent()
	require.NotEqual(t, core.Nil, layer)

	return m, layer
}

func vertex(t *testing.T, m *model.Model, parent core.Handle, value any, x, y float64, opts ...core.CellOption) core.Handle {
	t.Helper()
	h, err := m.InsertVertex(parent, value, x, y, 20, 20, opts...)
	require.NoError(t, err)

	return h
}

func edge(t *testing.T, m *model.Model, parent, source, target core.Handle) core.Handle {
	t.Helper()
	h, err := m.InsertEdge(parent, nil, source, target)
	require.NoError(t, err)

	return h
}

// layer appends a new empty layer to the root.
func layer(t *testing.T, m *model.Model) core.Handle {
	t.Helper()
	l := m.Store().New()
	require.NoError(t, m.Add(m.Root(), l, -1))

	return l
}

// recordEvents captures every notification of kind fired by m.
func recordEvents(m *model.Model, kind event.Kind) *[]event.Event {
	var got []event.Event
	m.Subscribe(kind, func(ev event.Event) { got = append(got, ev) })

	return &got
}

func mustID(t *testing.T, m *model.Model, h core.Handle) int {
	t.Helper()
	id, ok := m.ID(h)
	require.True(t, ok, "cell %d has no id", h)

	return id
}

func withPoints(pts ...geometry.Point) *geometry.Geometry {
	g := geometry.NewRelative()
	g.Points = pts

	return g
}
