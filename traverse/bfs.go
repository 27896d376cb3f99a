package traverse

import (
	"github.com/katalvlaran/lvldiagram/core"
)

type queued struct {
	h     core.Handle
	depth int
}

// BFS walks the subtree rooted at start level by level.
// OnExit is ignored; Result.PostOrder stays empty.
//
// Complexity: O(n) for n visited cells.
func BFS(t Tree, start core.Handle, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !t.Has(start) {
		return nil, ErrStartNotFound
	}

	res := newResult(16)
	queue := []queued{{h: start}}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if err = visit(&o, res, cur.h, cur.depth); err != nil {
			return res, err
		}
		if o.MaxDepth >= 0 && cur.depth >= o.MaxDepth {
			continue
		}
		n := t.ChildCount(cur.h)
		for i := 0; i < n; i++ {
			child, cerr := t.ChildAt(cur.h, i)
			if cerr != nil || (o.Filter != nil && !o.Filter(child)) {
				continue
			}
			res.Parent[child] = cur.h
			queue = append(queue, queued{h: child, depth: cur.depth + 1})
		}
	}

	return res, nil
}

// Connected returns the cells reachable from start by following edges.
//
// With directed set, only outgoing edges (start is the source) are followed;
// otherwise either terminal leads to the opposite one. Dangling edges are
// skipped. Result.Depth counts edge hops; start comes first in Result.Order.
func Connected(g Graph, start core.Handle, directed bool) (*Result, error) {
	if g == nil {
		return nil, ErrNilTree
	}
	if !g.Has(start) {
		return nil, ErrStartNotFound
	}

	res := newResult(16)
	res.Depth[start] = 0
	res.Order = append(res.Order, start)

	for head := 0; head < len(res.Order); head++ {
		cur := res.Order[head]
		n := g.EdgeCount(cur)
		for i := 0; i < n; i++ {
			edge, err := g.EdgeAt(cur, i)
			if err != nil {
				continue
			}
			src, trg := g.Terminal(edge, true), g.Terminal(edge, false)
			var next core.Handle
			switch {
			case src == cur:
				next = trg
			case !directed && trg == cur:
				next = src
			}
			if next == core.Nil {
				continue
			}
			if _, seen := res.Depth[next]; seen {
				continue
			}
			res.Depth[next] = res.Depth[cur] + 1
			res.Parent[next] = cur
			res.Order = append(res.Order, next)
		}
	}

	return res, nil
}
