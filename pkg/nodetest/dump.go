package nodetest

import (
	"fmt"
	"strings"

	"github.com/go-arbor/arbor/pkg/core"
)

// Dump renders the tree as an indented listing, one node per line:
// type name, identity if set, and child count for containers.
func Dump(root core.Node) string {
	var b strings.Builder
	dump(&b, root, 0)
	return b.String()
}

func dump(b *strings.Builder, n core.Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(fmt.Sprintf("%T", n))
	if id := n.ID(); id != "" {
		fmt.Fprintf(b, " #%s", id)
	}
	if c, ok := n.(core.Container); ok {
		kids := c.Children()
		fmt.Fprintf(b, " (%d)", len(kids))
		b.WriteByte('\n')
		for _, child := range kids {
			dump(b, child, depth+1)
		}
		return
	}
	b.WriteByte('\n')
}
