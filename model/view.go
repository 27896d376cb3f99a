// File: view.go
// Role: Read-only export of resolved bounds and connectivity for renderers.

package model

import (
	"fmt"

	"github.com/katalvlaran/lvldiagram/cellpath"
	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/geometry"
	"github.com/katalvlaran/lvldiagram/traverse"
)

// CellView is the renderer-facing record of one cell.
type CellView struct {
	Handle    core.Handle      `json:"handle" yaml:"handle"`
	ID        *int             `json:"id,omitempty" yaml:"id,omitempty"`
	Path      string           `json:"path" yaml:"path"`
	Parent    core.Handle      `json:"parent,omitempty" yaml:"parent,omitempty"`
	Kind      string           `json:"kind" yaml:"kind"`
	Value     string           `json:"value,omitempty" yaml:"value,omitempty"`
	Style     string           `json:"style,omitempty" yaml:"style,omitempty"`
	Hidden    bool             `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Collapsed bool             `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Bounds    *geometry.Rect   `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Source    core.Handle      `json:"source,omitempty" yaml:"source,omitempty"`
	Target    core.Handle      `json:"target,omitempty" yaml:"target,omitempty"`
	Points    []geometry.Point `json:"points,omitempty" yaml:"points,omitempty"`
}

// Snapshot lists every cell under the root in document order.
type Snapshot struct {
	Cells []CellView `json:"cells" yaml:"cells"`
}

// Snapshot captures the current tree. Vertex bounds and edge control points
// are absolute; a relative vertex geometry is placed as a fraction of its
// parent's bounds plus its offset.
func (m *Model) Snapshot() *Snapshot {
	snap := &Snapshot{}
	abs := make(map[core.Handle]geometry.Rect)
	for _, h := range traverse.PreOrder(m.store, m.root) {
		v := CellView{
			Handle:    h,
			Path:      cellpath.Create(m.store, h),
			Parent:    m.store.Parent(h),
			Kind:      m.kindOf(h),
			Style:     m.store.Style(h),
			Hidden:    !m.store.IsVisible(h),
			Collapsed: m.store.IsCollapsed(h),
			Source:    m.store.Terminal(h, true),
			Target:    m.store.Terminal(h, false),
		}
		if id, ok := m.store.ID(h); ok {
			v.ID = &id
		}
		if val := m.store.Value(h); val != nil {
			v.Value = fmt.Sprint(val)
		}

		parentBounds := abs[v.Parent]
		if g := m.store.Geometry(h); g != nil {
			if m.store.IsEdge(h) {
				// same frame as the vertex bounds of the parent
				for _, p := range g.Points {
					v.Points = append(v.Points, p.Translate(parentBounds.X, parentBounds.Y))
				}
			} else {
				b := g.Rect.Translate(parentBounds.X, parentBounds.Y)
				if g.Relative {
					b.X = parentBounds.X + g.X*parentBounds.Width
					b.Y = parentBounds.Y + g.Y*parentBounds.Height
					if g.Offset != nil {
						b.X += g.Offset.X
						b.Y += g.Offset.Y
					}
				}
				v.Bounds = &b
				abs[h] = b
			}
		}
		if _, ok := abs[h]; !ok && !m.store.IsEdge(h) {
			// containers without geometry inherit the parent origin
			abs[h] = geometry.Rect{X: parentBounds.X, Y: parentBounds.Y}
		}
		snap.Cells = append(snap.Cells, v)
	}

	return snap
}

func (m *Model) kindOf(h core.Handle) string {
	switch {
	case m.store.IsEdge(h):
		return "edge"
	case m.store.IsVertex(h):
		return "vertex"
	case m.IsRoot(h):
		return "root"
	case m.IsLayer(h):
		return "layer"
	default:
		return "cell"
	}
}
