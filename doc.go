// Package lvldiagram is an in-memory model for hierarchical diagrams:
// layers, containers, vertices and edges kept in one cell tree.
//
// What it does
//
//   - Cell tree: a flat arena of cells addressed by stable handles
//   - Cell paths: "1.0.3" addresses, valid until the next structural edit
//   - Identity: unique integer ids, auto-assigned and collision-free
//   - Transactions: nested begin/end, one change notification per outer end
//   - Topology: every edge lives under the nearest common ancestor of its
//     terminals, with its control points translated when it moves
//   - Cloning and merging with connectivity restored among the copies
//   - Snapshots with absolute bounds for renderers
//
// Packages:
//
//	core/      cell arena (Store, Handle), parent/child and edge links
//	geometry/  Geometry, Point, Rect
//	cellpath/  path creation and resolution
//	event/     Notifier, change kinds, subscriptions
//	traverse/  iterative DFS/BFS over the cell tree, edge connectivity
//	model/     Model: ids, transactions, edge maintenance, clone, merge
//	builder/   deterministic fixture diagrams
//	config/    YAML settings
//	metrics/   Prometheus recorder for model notifications
//
// Quick start:
//
//	m := model.New()
//	a, _ := m.InsertVertex(core.Nil, "A", 10, 10, 80, 40)
//	b, _ := m.InsertVertex(core.Nil, "B", 150, 10, 80, 40)
//	_, _ = m.InsertEdge(core.Nil, nil, a, b)
//	_ = m.Snapshot()
//
// See cmd/lvldiagram for a command line front end.
package lvldiagram

// Version is the release of this module.
const Version = "0.1.0"
