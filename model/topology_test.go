package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/geometry"
	"github.com/katalvlaran/lvldiagram/model"
)

func TestEdgeBetweenLayersMovesToRoot(t *testing.T) {
	m, l1 := newDiagram(t)
	l2 := layer(t, m)
	a := vertex(t, m, l1, "A", 10, 10)
	b := vertex(t, m, l2, "B", 200, 10)

	e := edge(t, m, core.Nil, core.Nil, core.Nil)
	require.NoError(t, m.SetGeometry(e, withPoints(geometry.Point{X: 5, Y: 5})))
	require.Equal(t, l1, m.Parent(e))

	require.NoError(t, m.SetTerminals(e, a, b))
	require.Equal(t, m.Root(), m.Parent(e))
	require.Equal(t, []geometry.Point{{X: 5, Y: 5}}, m.Geometry(e).Points, "layers carry no offset")
	require.Equal(t, []core.Handle{e}, m.Store().Edges(a))
	require.Equal(t, []core.Handle{e}, m.Store().Edges(b))
}

func TestEdgeMaintenanceDisabled(t *testing.T) {
	m, l1 := newDiagram(t, model.WithMaintainEdgeParent(false))
	l2 := layer(t, m)
	a := vertex(t, m, l1, "A", 10, 10)
	b := vertex(t, m, l2, "B", 200, 10)

	e := edge(t, m, core.Nil, a, b)
	require.Equal(t, l1, m.Parent(e))
}

func TestEdgeReHomedWithTranslation(t *testing.T) {
	m, l := newDiagram(t)
	g := vertex(t, m, l, "G", 100, 50)
	a := vertex(t, m, g, "A", 10, 10)
	b := vertex(t, m, l, "B", 300, 0)

	e := edge(t, m, g, core.Nil, core.Nil)
	require.NoError(t, m.SetGeometry(e, withPoints(geometry.Point{X: 5, Y: 5})))
	before := m.Origin(m.Parent(e))

	require.NoError(t, m.SetTerminals(e, a, b))
	require.Equal(t, l, m.Parent(e))

	got := m.Geometry(e).Points[0]
	require.Equal(t, geometry.Point{X: 105, Y: 55}, got)
	after := m.Origin(m.Parent(e))
	require.Equal(t, before.X+5, after.X+got.X, "absolute position is preserved")
	require.Equal(t, before.Y+5, after.Y+got.Y)
}

func TestMovingTerminalReHomesEdge(t *testing.T) {
	m, l := newDiagram(t)
	g := vertex(t, m, l, "G", 100, 50)
	a := vertex(t, m, g, "A", 0, 0)
	b := vertex(t, m, g, "B", 40, 0)
	e := edge(t, m, core.Nil, a, b)
	require.Equal(t, g, m.Parent(e))
	require.NoError(t, m.SetGeometry(e, withPoints(geometry.Point{X: 5, Y: 5})))

	require.NoError(t, m.Add(l, b, -1))
	require.Equal(t, l, m.Parent(e))
	require.Equal(t, geometry.Point{X: 105, Y: 55}, m.Geometry(e).Points[0])
}

func TestLayerAdoptsOnlyContainedEdges(t *testing.T) {
	m, l1 := newDiagram(t)
	l2 := layer(t, m)
	a := vertex(t, m, l1, "A", 0, 0)
	b := vertex(t, m, l1, "B", 50, 0)

	e := edge(t, m, l2, a, b)
	require.Equal(t, l2, m.Parent(e), "a layer does not pull edges out of another layer")
}

func TestRelativeEndpointDefersToParent(t *testing.T) {
	m, l := newDiagram(t)
	g := vertex(t, m, l, "G", 0, 0)
	a := vertex(t, m, g, "A", 10, 10)

	rel := geometry.New(0.5, 1, 0, 0)
	rel.Relative = true
	label := vertex(t, m, a, "label", 0, 0)
	require.NoError(t, m.SetGeometry(label, rel))

	e := edge(t, m, core.Nil, label, a)
	require.Equal(t, g, m.Parent(e), "label resolves to A, so the loop lives next to A")
}

func TestNearestCommonAncestor(t *testing.T) {
	m, l1 := newDiagram(t)
	l2 := layer(t, m)
	g := vertex(t, m, l1, "G", 0, 0)
	a := vertex(t, m, g, "A", 0, 0)
	b := vertex(t, m, g, "B", 0, 0)
	c := vertex(t, m, l1, "C", 0, 0)
	x := vertex(t, m, l2, "X", 0, 0)
	detached := m.Store().New(core.AsVertex())

	cases := []struct {
		name string
		a, b core.Handle
		want core.Handle
	}{
		{"siblings", a, b, g},
		{"ancestor and descendant", g, a, g},
		{"descendant and ancestor", a, g, g},
		{"same cell", a, a, g},
		{"different depth", a, c, l1},
		{"different layers", a, x, m.Root()},
		{"root", m.Root(), a, m.Root()},
		{"other tree", a, detached, core.Nil},
		{"unknown", a, core.Handle(999), core.Nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, m.NearestCommonAncestor(tc.a, tc.b))
		})
	}
}

func TestOrigin(t *testing.T) {
	m, l := newDiagram(t)
	g := vertex(t, m, l, "G", 100, 50)
	a := vertex(t, m, g, "A", 10, 10)
	b := vertex(t, m, g, "B", 30, 0)
	e := edge(t, m, core.Nil, a, b)

	require.Equal(t, geometry.Point{X: 110, Y: 60}, m.Origin(a))
	require.Equal(t, geometry.Point{X: 100, Y: 50}, m.Origin(e), "edges add no offset")
	require.Equal(t, geometry.Point{}, m.Origin(core.Nil))
}
