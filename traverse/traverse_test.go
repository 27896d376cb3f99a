package traverse_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/traverse"
)

// fixture builds
//
//	r
//	├── a
//	│   ├── a0
//	│   └── a1
//	└── b
//	    └── b0
//
// plus edges a0→b0 and b0→a1 owned by r.
type fixture struct {
	s                   *core.Store
	r, a, a0, a1, b, b0 core.Handle
	e1, e2              core.Handle
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	s := core.NewStore()
	f := fixture{s: s}
	f.r, f.a, f.a0, f.a1, f.b, f.b0 = s.New(), s.New(), s.New(), s.New(), s.New(), s.New()
	f.e1, f.e2 = s.New(core.AsEdge()), s.New(core.AsEdge())
	for _, p := range [][2]core.Handle{{f.r, f.a}, {f.a, f.a0}, {f.a, f.a1}, {f.r, f.b}, {f.b, f.b0}, {f.r, f.e1}, {f.r, f.e2}} {
		if err := s.Insert(p[0], p[1], -1); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	mustEdge(t, s, f.a0, f.e1, true)
	mustEdge(t, s, f.b0, f.e1, false)
	mustEdge(t, s, f.b0, f.e2, true)
	mustEdge(t, s, f.a1, f.e2, false)

	return f
}

func mustEdge(t *testing.T, s *core.Store, terminal, edge core.Handle, out bool) {
	t.Helper()
	if err := s.InsertEdge(terminal, edge, out); err != nil {
		t.Fatalf("InsertEdge: %v", err)
	}
}

func TestDFS_Orders(t *testing.T) {
	f := newFixture(t)
	res, err := traverse.DFS(f.s, f.r)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	wantPre := []core.Handle{f.r, f.a, f.a0, f.a1, f.b, f.b0, f.e1, f.e2}
	if !reflect.DeepEqual(res.Order, wantPre) {
		t.Errorf("Order = %v; want %v", res.Order, wantPre)
	}
	wantPost := []core.Handle{f.a0, f.a1, f.a, f.b0, f.b, f.e1, f.e2, f.r}
	if !reflect.DeepEqual(res.PostOrder, wantPost) {
		t.Errorf("PostOrder = %v; want %v", res.PostOrder, wantPost)
	}
	if res.Depth[f.b0] != 2 || res.Parent[f.b0] != f.b {
		t.Errorf("b0: depth %d parent %v", res.Depth[f.b0], res.Parent[f.b0])
	}
	if _, ok := res.Parent[f.r]; ok {
		t.Errorf("start must have no parent entry")
	}
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	f := newFixture(t)
	res, err := traverse.DFS(f.s, f.r, traverse.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if want := []core.Handle{f.r, f.a, f.b, f.e1, f.e2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(1) Order = %v; want %v", res.Order, want)
	}

	res, err = traverse.DFS(f.s, f.r, traverse.WithFilter(func(h core.Handle) bool { return !f.s.IsEdge(h) && h != f.a }))
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if want := []core.Handle{f.r, f.b, f.b0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

func TestDFS_HookAbort(t *testing.T) {
	f := newFixture(t)
	stop := errors.New("stop")
	res, err := traverse.DFS(f.s, f.r, traverse.WithOnVisit(func(h core.Handle, _ int) error {
		if h == f.a1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want stop, got %v", err)
	}
	if got := res.Order[len(res.Order)-1]; got != f.a1 {
		t.Errorf("last visited = %v; want a1", got)
	}

	var exits []core.Handle
	_, err = traverse.DFS(f.s, f.a, traverse.WithOnExit(func(h core.Handle, _ int) error {
		exits = append(exits, h)
		return nil
	}))
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if want := []core.Handle{f.a0, f.a1, f.a}; !reflect.DeepEqual(exits, want) {
		t.Errorf("exits = %v; want %v", exits, want)
	}
}

func TestDFS_Errors(t *testing.T) {
	if _, err := traverse.DFS(nil, 1); !errors.Is(err, traverse.ErrNilTree) {
		t.Errorf("nil tree: want ErrNilTree, got %v", err)
	}
	s := core.NewStore()
	if _, err := traverse.DFS(s, 42); !errors.Is(err, traverse.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	h := s.New()
	if _, err := traverse.DFS(s, h, traverse.WithMaxDepth(-1)); !errors.Is(err, traverse.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := traverse.BFS(s, h, traverse.WithMaxDepth(-2)); !errors.Is(err, traverse.ErrOptionViolation) {
		t.Errorf("BFS negative depth: want ErrOptionViolation, got %v", err)
	}
}

func TestDFS_DeepChain(t *testing.T) {
	s := core.NewStore()
	root := s.New()
	prev := root
	const depth = 10000
	for i := 0; i < depth; i++ {
		h := s.New()
		if err := s.Insert(prev, h, -1); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		prev = h
	}
	post := traverse.PostOrder(s, root)
	if len(post) != depth+1 || post[0] != prev || post[depth] != root {
		t.Fatalf("PostOrder over chain: len %d", len(post))
	}
}

func TestBFS_LevelOrder(t *testing.T) {
	f := newFixture(t)
	res, err := traverse.BFS(f.s, f.r)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	want := []core.Handle{f.r, f.a, f.b, f.e1, f.e2, f.a0, f.a1, f.b0}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if len(res.PostOrder) != 0 {
		t.Errorf("BFS PostOrder must be empty")
	}

	res, err = traverse.BFS(f.s, f.r, traverse.WithMaxDepth(0))
	if err != nil || !reflect.DeepEqual(res.Order, []core.Handle{f.r}) {
		t.Errorf("MaxDepth(0) Order = %v, err %v", res.Order, err)
	}
}

func TestConnected(t *testing.T) {
	f := newFixture(t)

	res, err := traverse.Connected(f.s, f.a0, true)
	if err != nil {
		t.Fatalf("Connected: %v", err)
	}
	if want := []core.Handle{f.a0, f.b0, f.a1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("directed Order = %v; want %v", res.Order, want)
	}
	if res.Depth[f.a1] != 2 {
		t.Errorf("Depth[a1] = %d; want 2", res.Depth[f.a1])
	}

	res, err = traverse.Connected(f.s, f.a1, true)
	if err != nil || len(res.Order) != 1 {
		t.Errorf("a1 has no outgoing edges: %v, %v", res.Order, err)
	}
	res, err = traverse.Connected(f.s, f.a1, false)
	if err != nil || len(res.Order) != 3 {
		t.Errorf("undirected from a1: %v, %v", res.Order, err)
	}
}
