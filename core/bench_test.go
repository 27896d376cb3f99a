// Package core_test provides benchmarks for core.Store operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvldiagram/core"
)

// BenchmarkInsert_Append measures appending fresh children under one parent.
func BenchmarkInsert_Append(b *testing.B) {
	s := core.NewStore()
	root := s.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Insert(root, s.New(), -1)
	}
}

// BenchmarkInsert_Reorder measures moving an existing child to the end.
func BenchmarkInsert_Reorder(b *testing.B) {
	s := core.NewStore()
	root := s.New()
	kids := make([]core.Handle, 100)
	for i := range kids {
		kids[i] = s.New()
		_ = s.Insert(root, kids[i], -1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Insert(root, kids[i%len(kids)], -1)
	}
}

// BenchmarkInsertEdge_Star measures connecting many edges to one hub.
func BenchmarkInsertEdge_Star(b *testing.B) {
	s := core.NewStore()
	hub := s.New(core.AsVertex())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := s.New(core.AsEdge())
		_ = s.InsertEdge(hub, e, true)
	}
}
