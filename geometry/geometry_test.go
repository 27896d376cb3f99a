package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldiagram/geometry"
)

func TestTranslateAbsolute(t *testing.T) {
	g := geometry.New(10, 20, 30, 40)
	g.Points = []geometry.Point{{X: 1, Y: 1}}
	g.Translate(5, -5)

	require.Equal(t, geometry.Rect{X: 15, Y: 15, Width: 30, Height: 40}, g.Rect)
	require.Equal(t, geometry.Point{X: 6, Y: -4}, g.Points[0])
}

func TestTranslateRelativeMovesPointsOnly(t *testing.T) {
	g := geometry.NewRelative()
	g.X, g.Y = 0.5, 1
	g.SourcePoint = &geometry.Point{X: 0, Y: 0}
	g.TargetPoint = &geometry.Point{X: 10, Y: 10}
	g.Offset = &geometry.Point{X: 3, Y: 3}
	g.Translate(100, 50)

	require.Equal(t, 0.5, g.X)
	require.Equal(t, 1.0, g.Y)
	require.Equal(t, geometry.Point{X: 100, Y: 50}, *g.SourcePoint)
	require.Equal(t, geometry.Point{X: 110, Y: 60}, *g.TargetPoint)
	require.Equal(t, geometry.Point{X: 3, Y: 3}, *g.Offset, "label offset is not translated")

	var nilGeo *geometry.Geometry
	require.NotPanics(t, func() { nilGeo.Translate(1, 1) })
}

func TestCloneIsDeep(t *testing.T) {
	g := geometry.New(1, 2, 3, 4)
	g.Points = []geometry.Point{{X: 1, Y: 2}}
	g.SourcePoint = &geometry.Point{X: 9, Y: 9}

	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Points[0].X = 100
	c.SourcePoint.Y = 0
	require.Equal(t, 1.0, g.Points[0].X)
	require.Equal(t, 9.0, g.SourcePoint.Y)
	require.False(t, g.Equal(c))

	var nilGeo *geometry.Geometry
	require.Nil(t, nilGeo.Clone())
	require.True(t, nilGeo.Equal(nil))
	require.False(t, nilGeo.Equal(g))
}

func TestRect(t *testing.T) {
	r := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	require.Equal(t, geometry.Point{X: 5, Y: 5}, r.Center())
	require.Equal(t, geometry.Rect{X: 2, Y: 3, Width: 10, Height: 10}, r.Translate(2, 3))

	u := r.Union(geometry.Rect{X: 20, Y: -5, Width: 5, Height: 5})
	require.Equal(t, geometry.Rect{X: 0, Y: -5, Width: 25, Height: 15}, u)
}
