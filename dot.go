package orderedset

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
	"github.com/pkg/errors"
)

// Writes the shape of the tree in Graphviz DOT format, starting at the sentinel. Edges are labelled
// l and r. label formats keys, and defaults to fmt.Sprint.
func (me *Set[K]) WriteDot(w io.Writer, label func(K) string) error {
	if label == nil {
		label = func(k K) string {
			return fmt.Sprint(k)
		}
	}
	graph := dot.NewGraph(dot.Directed)
	ids := 0
	// Keys can render the same, so nodes get their own ids.
	newNode := func(text string) dot.Node {
		n := graph.Node(fmt.Sprintf("n%d", ids)).Label(text)
		ids++
		return n
	}
	type pending struct {
		n      *node[K]
		parent dot.Node
		edge   string
	}
	end := me.sentinel()
	var stack []pending
	if end.left != nil {
		stack = append(stack, pending{end.left, newNode("end"), "l"})
	} else {
		newNode("end")
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		gn := newNode(label(p.n.key))
		p.parent.Edge(gn, p.edge)
		if p.n.right != nil {
			stack = append(stack, pending{p.n.right, gn, "r"})
		}
		if p.n.left != nil {
			stack = append(stack, pending{p.n.left, gn, "l"})
		}
	}
	_, err := io.WriteString(w, graph.String())
	return errors.Wrap(err, "writing dot graph")
}
