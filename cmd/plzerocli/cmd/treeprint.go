package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/plzero/pl0c/internal/parsetree"
)

// printTree renders t as indented node names; a leaf (no children)
// prints its literal text inline instead of descending further.
func printTree(w io.Writer, t *parsetree.Node, depth int) {
	if t == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	if t.IsError() {
		fmt.Fprintf(w, "%s[error] %s\n", indent, t.Name)
		for _, c := range t.Children {
			if c != nil {
				printTree(w, c, depth+1)
			}
		}
		return
	}

	if len(t.Children) == 0 {
		fmt.Fprintf(w, "%s%q\n", indent, t.Name)
		return
	}

	fmt.Fprintf(w, "%s%s\n", indent, t.Name)
	for _, c := range t.Children {
		if c != nil {
			printTree(w, c, depth+1)
		}
	}
}
