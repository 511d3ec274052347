package orderedset

import (
	g "github.com/anacrolix/generics"
	"github.com/pkg/errors"
)

// Checks the tree's structure against the Set's invariants: parent links agree with child links,
// the root hangs off the sentinel, keys ascend strictly in order, and Len matches the keys that
// are reachable.
func (me *Set[K]) Validate() error {
	end := me.sentinel()
	if !end.end {
		return errors.New("sentinel isn't tagged")
	}
	if end.parent != nil || end.right != nil {
		return errors.New("sentinel has parent or right child")
	}
	reachable := 0
	if root := end.left; root != nil {
		if root.parent != end {
			return errors.Errorf("root %v has parent other than sentinel", root.key)
		}
		stack := []*node[K]{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.end {
				return errors.New("sentinel is reachable from root")
			}
			reachable++
			if reachable > me.len {
				return errors.Errorf("more than %v keys reachable", me.len)
			}
			for _, child := range [...]*node[K]{n.left, n.right} {
				if child == nil {
					continue
				}
				if child.parent != n {
					return errors.Errorf("child %v of %v doesn't link back to it", child.key, n.key)
				}
				stack = append(stack, child)
			}
		}
	}
	if reachable != me.len {
		return errors.Errorf("%v keys reachable but len is %v", reachable, me.len)
	}
	var prev g.Option[K]
	for c := me.Begin(); !c.IsEnd(); c = c.Next() {
		if prev.Ok && me.cmp(prev.Value, c.n.key) >= 0 {
			return errors.Errorf("%v is followed by %v", prev.Value, c.n.key)
		}
		prev.Set(c.n.key)
	}
	return nil
}
