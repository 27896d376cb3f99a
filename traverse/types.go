// Package traverse walks cell trees and edge connectivity without recursion.
//
// DFS yields pre-order and post-order sequences of a subtree, BFS yields the
// level order, and Connected follows edges through their opposite terminals.
// Every walk uses an explicit stack or queue, so tree depth is bounded only
// by memory.
package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvldiagram/core"
)

var (
	// ErrNilTree is returned when a nil Tree or Graph is passed.
	ErrNilTree = errors.New("traverse: tree is nil")

	// ErrStartNotFound indicates that the start handle is not in the tree.
	ErrStartNotFound = errors.New("traverse: start cell not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Tree is the child-list surface walked by DFS and BFS. *core.Store implements it.
type Tree interface {
	Has(h core.Handle) bool
	ChildCount(h core.Handle) int
	ChildAt(h core.Handle, i int) (core.Handle, error)
}

// Graph adds the edge lists walked by Connected. *core.Store implements it.
type Graph interface {
	Tree
	EdgeCount(h core.Handle) int
	EdgeAt(h core.Handle, i int) (core.Handle, error)
	Terminal(edge core.Handle, isSource bool) core.Handle
}

// Option configures a walk.
type Option func(*Options)

// Options holds hooks and limits shared by DFS and BFS.
type Options struct {
	// OnVisit runs when a cell is discovered (pre-order). An error aborts the walk.
	OnVisit func(h core.Handle, depth int) error

	// OnExit runs after all descendants of a cell were walked (post-order).
	// BFS ignores it.
	OnExit func(h core.Handle, depth int) error

	// MaxDepth limits descent; 0 visits only the start cell. -1 means no limit.
	MaxDepth int

	// Filter skips a child (and its subtree) when it returns false.
	Filter func(h core.Handle) bool

	err error
}

// DefaultOptions returns Options with no hooks, no filter and no depth limit.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(h core.Handle, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(h core.Handle, depth int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the walk to cells at most limit levels below the start.
// A negative limit is recorded and surfaced as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilter prunes children for which fn returns false.
// The start cell is never filtered.
func WithFilter(fn func(h core.Handle) bool) Option {
	return func(o *Options) {
		o.Filter = fn
	}
}

// Result captures one walk.
type Result struct {
	// Order lists cells in discovery order (pre-order for DFS, level order for BFS).
	Order []core.Handle

	// PostOrder lists cells as they finished. Empty for BFS.
	PostOrder []core.Handle

	// Depth maps each visited cell to its distance from the start.
	Depth map[core.Handle]int

	// Parent maps each visited cell except the start to the cell it was reached from.
	Parent map[core.Handle]core.Handle
}

func newResult(capHint int) *Result {
	return &Result{
		Order:  make([]core.Handle, 0, capHint),
		Depth:  make(map[core.Handle]int, capHint),
		Parent: make(map[core.Handle]core.Handle, capHint),
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}
