package traverse

import (
	"github.com/katalvlaran/lvldiagram/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	h     core.Handle
	depth int
	next  int // next child index to descend into
}

// DFS walks the subtree rooted at start depth-first.
//
// Children are visited in index order. Result.Order is the pre-order and
// Result.PostOrder the post-order of the visited cells. An error from a hook
// aborts the walk and is returned together with the partial result.
//
// Complexity: O(n) for n visited cells.
func DFS(t Tree, start core.Handle, opts ...Option) (*Result, error) {
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
	res.PostOrder = make([]core.Handle, 0, 16)

	if err = visit(&o, res, start, 0); err != nil {
		return res, err
	}
	stack := []frame{{h: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < t.ChildCount(top.h) && (o.MaxDepth < 0 || top.depth < o.MaxDepth) {
			child, cerr := t.ChildAt(top.h, top.next)
			top.next++
			if cerr != nil || (o.Filter != nil && !o.Filter(child)) {
				continue
			}
			res.Parent[child] = top.h
			if err = visit(&o, res, child, top.depth+1); err != nil {
				return res, err
			}
			stack = append(stack, frame{h: child, depth: top.depth + 1})
			continue
		}

		// all children done: post-order exit
		stack = stack[:len(stack)-1]
		if o.OnExit != nil {
			if err = o.OnExit(top.h, top.depth); err != nil {
				return res, err
			}
		}
		res.PostOrder = append(res.PostOrder, top.h)
	}

	return res, nil
}

func visit(o *Options, res *Result, h core.Handle, depth int) error {
	res.Depth[h] = depth
	res.Order = append(res.Order, h)
	if o.OnVisit != nil {
		return o.OnVisit(h, depth)
	}

	return nil
}

// PreOrder returns start and all its descendants in pre-order.
// It returns nil when start is not in t.
func PreOrder(t Tree, start core.Handle) []core.Handle {
	res, err := DFS(t, start)
	if err != nil {
		return nil
	}

	return res.Order
}

// PostOrder returns start and all its descendants in post-order
// (children before parents). It returns nil when start is not in t.
func PostOrder(t Tree, start core.Handle) []core.Handle {
	res, err := DFS(t, start)
	if err != nil {
		return nil
	}

	return res.PostOrder
}
