// Package cellpath computes and resolves cell paths: dot-separated child
// indices from a root down to a cell.
//
// A path is a timestamp, not an identifier. It is valid only until the next
// structural edit of any ancestor, which is why the clone and merge engines
// compute all paths they need before attaching anything.
//
//	root          → ""
//	root.child(1) → "1"
//	…child(1).child(0).child(3) → "1.0.3"
package cellpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvldiagram/core"
)

// Separator joins the child indices of a path.
const Separator = "."

// ErrMalformedPath indicates a path segment that is not a non-negative integer.
var ErrMalformedPath = errors.New("cellpath: malformed path")

// Tree is the read surface cellpath needs. *core.Store implements it.
type Tree interface {
	Parent(h core.Handle) core.Handle
	IndexOf(parent, child core.Handle) int
	ChildAt(h core.Handle, i int) (core.Handle, error)
}

// Create returns the path of h relative to its topmost ancestor.
// A root (or Nil) yields "".
// Complexity: O(depth · siblings) because each step looks up the child index.
func Create(t Tree, h core.Handle) string {
	if h == core.Nil {
		return ""
	}
	var idx []int
	for parent := t.Parent(h); parent != core.Nil; parent = t.Parent(h) {
		idx = append(idx, t.IndexOf(parent, h))
		h = parent
	}
	if len(idx) == 0 {
		return ""
	}

	var b strings.Builder
	for i := len(idx) - 1; i >= 0; i-- {
		b.WriteString(strconv.Itoa(idx[i]))
		if i > 0 {
			b.WriteString(Separator)
		}
	}

	return b.String()
}

// Resolve walks path from root and returns the addressed cell.
// "" resolves to root itself.
func Resolve(t Tree, root core.Handle, path string) (core.Handle, error) {
	if root == core.Nil {
		return core.Nil, fmt.Errorf("cellpath: resolve %q: %w", path, core.ErrContractViolation)
	}
	if path == "" {
		return root, nil
	}

	cur := root
	for _, seg := range strings.Split(path, Separator) {
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 {
			return core.Nil, fmt.Errorf("%w: segment %q in %q", ErrMalformedPath, seg, path)
		}
		if cur, err = t.ChildAt(cur, i); err != nil {
			return core.Nil, fmt.Errorf("cellpath: resolve %q: %w", path, err)
		}
	}

	return cur, nil
}

// ParentPath returns path without its last segment ("" for top-level paths
// and for the root path).
func ParentPath(path string) string {
	if i := strings.LastIndex(path, Separator); i >= 0 {
		return path[:i]
	}

	return ""
}

// IsAncestorPath reports whether ancestor addresses the same cell as path or
// one of its ancestors. The root path "" is an ancestor of every path.
func IsAncestorPath(ancestor, path string) bool {
	if ancestor == "" || ancestor == path {
		return true
	}

	return strings.HasPrefix(path, ancestor+Separator)
}

// Compare orders two paths of the same tree in pre-order (document order):
// ancestors sort before descendants, siblings by index. It returns -1, 0 or 1.
func Compare(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}
	as, bs := strings.Split(a, Separator), strings.Split(b, Separator)
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, _ := strconv.Atoi(as[i])
		bi, _ := strconv.Atoi(bs[i])
		if ai != bi {
			if ai < bi {
				return -1
			}

			return 1
		}
	}
	if len(as) < len(bs) {
		return -1
	}

	return 1
}
