// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvldiagram/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Store.
//   - Keep core tests stdlib-only; higher packages use testify.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvldiagram/core"
)

// Common payloads used across core tests.
const (
	ValueA = "A"
	ValueB = "B"
	ValueC = "C"
	ValueE = "E"
)

// Common identifiers used across core tests.
const (
	ID0 = 0
	ID7 = 7
)

// treeFixture is a root with two children; child0 has one grandchild.
//
//	root
//	├── c0
//	│   └── g0
//	└── c1
type treeFixture struct {
	s              *core.Store
	root, c0, c1   core.Handle
	g0             core.Handle
	edge, loopEdge core.Handle
}

// newTreeFixture builds treeFixture plus two detached edges.
func newTreeFixture(t *testing.T) treeFixture {
	t.Helper()

	s := core.NewStore()
	f := treeFixture{
		s:        s,
		root:     s.New(),
		c0:       s.New(core.AsVertex(), core.WithValue(ValueA)),
		c1:       s.New(core.AsVertex(), core.WithValue(ValueB)),
		g0:       s.New(core.AsVertex(), core.WithValue(ValueC)),
		edge:     s.New(core.AsEdge(), core.WithValue(ValueE)),
		loopEdge: s.New(core.AsEdge()),
	}
	MustNoError(t, s.Insert(f.root, f.c0, -1), "Insert(root,c0)")
	MustNoError(t, s.Insert(f.root, f.c1, -1), "Insert(root,c1)")
	MustNoError(t, s.Insert(f.c0, f.g0, -1), "Insert(c0,g0)")

	return f
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
//
// Notes:
//   - Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: predicate is false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: predicate is true", op)
}

// MustEqualInt FAILS if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d, want %d", op, got, want)
}

// MustEqualHandle FAILS if got != want.
func MustEqualHandle(t *testing.T, got, want core.Handle, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got handle %d, want %d", op, got, want)
}

// MustEqualHandles FAILS if the two handle slices differ in length or order.
func MustEqualHandles(t *testing.T, got, want []core.Handle, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %v (len %d), want %v (len %d)", op, got, len(got), want, len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: at %d got %d, want %d (got=%v want=%v)", op, i, got[i], want[i], got, want)
		}
	}
}
