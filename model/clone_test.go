package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldiagram/core"
)

type payload struct {
	tags []string
}

func (p *payload) CloneValue() any {
	return &payload{tags: append([]string(nil), p.tags...)}
}

func TestCloneCellsRestoresConnectivity(t *testing.T) {
	m, l := newDiagram(t)
	a := vertex(t, m, l, "A", 0, 0)
	b := vertex(t, m, l, "B", 50, 0)
	e := edge(t, m, core.Nil, a, b)

	out, err := m.CloneCells([]core.Handle{a, b, e}, true)
	require.NoError(t, err)
	require.Len(t, out, 3)

	ca, cb, ce := out[0], out[1], out[2]
	require.Equal(t, ca, m.Terminal(ce, true))
	require.Equal(t, cb, m.Terminal(ce, false))
	require.Equal(t, []core.Handle{ce}, m.Store().Edges(ca))

	for _, c := range out {
		require.Equal(t, core.Nil, m.Parent(c), "clones are detached")
		_, ok := m.ID(c)
		require.False(t, ok, "clones carry no id")
	}
	require.Equal(t, "A", m.Value(ca))
	require.Equal(t, []core.Handle{e}, m.Store().Edges(a), "originals untouched")
}

func TestCloneEdgeAloneIsDangling(t *testing.T) {
	m, l := newDiagram(t)
	a := vertex(t, m, l, "A", 0, 0)
	b := vertex(t, m, l, "B", 50, 0)
	e := edge(t, m, core.Nil, a, b)

	ce, err := m.CloneCell(e, true)
	require.NoError(t, err)
	require.True(t, m.IsEdge(ce))
	require.Equal(t, core.Nil, m.Terminal(ce, true))
	require.Equal(t, core.Nil, m.Terminal(ce, false))
}

func TestCloneSubtreeWithInnerEdge(t *testing.T) {
	m, l := newDiagram(t)
	g := vertex(t, m, l, "G", 100, 50)
	a := vertex(t, m, g, "A", 0, 0)
	b := vertex(t, m, g, "B", 40, 0)
	e := edge(t, m, core.Nil, a, b)
	require.Equal(t, g, m.Parent(e))

	cg, err := m.CloneCell(g, true)
	require.NoError(t, err)

	kids := m.Children(cg)
	require.Len(t, kids, 3)
	ca, cb, ce := kids[0], kids[1], kids[2]
	require.Equal(t, "A", m.Value(ca))
	require.Equal(t, ca, m.Terminal(ce, true))
	require.Equal(t, cb, m.Terminal(ce, false))
	require.True(t, m.Geometry(cg).Equal(m.Geometry(g)))

	flat, err := m.CloneCell(g, false)
	require.NoError(t, err)
	require.Zero(t, m.ChildCount(flat))
}

func TestCloneCopiesPayloads(t *testing.T) {
	m, l := newDiagram(t)
	p := &payload{tags: []string{"x"}}
	a := vertex(t, m, l, p, 0, 0)

	ca, err := m.CloneCell(a, false)
	require.NoError(t, err)
	cp, ok := m.Value(ca).(*payload)
	require.True(t, ok)
	cp.tags[0] = "y"
	require.Equal(t, "x", p.tags[0])
}

func TestCloneNilAndUnknown(t *testing.T) {
	m, l := newDiagram(t)
	a := vertex(t, m, l, "A", 0, 0)

	out, err := m.CloneCells([]core.Handle{core.Nil, a}, false)
	require.NoError(t, err)
	require.Equal(t, core.Nil, out[0])
	require.NotEqual(t, core.Nil, out[1])

	_, err = m.CloneCells([]core.Handle{core.Handle(999)}, false)
	require.ErrorIs(t, err, core.ErrContractViolation)
}
