// File: pkg/aggregate/tree.go
package aggregate

import (
	"fmt"
	"path/filepath"
	"strings"
)

type treeNode struct {
	name     string
	children []*treeNode
	index    map[string]*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name, index: map[string]*treeNode{}}
}

func (n *treeNode) child(name string) *treeNode {
	if c, ok := n.index[name]; ok {
		return c
	}
	c := newTreeNode(name)
	n.index[name] = c
	n.children = append(n.children, c)
	return c
}

// RenderTree renders entries as a tree, one per folder selection, followed
// by the individually selected files. Children keep discovery order.
func RenderTree(entries []Entry) string {
	var roots []*treeNode
	byOrigin := map[string]*treeNode{}

	for _, e := range entries {
		if e.Source != SourceFolder {
			continue
		}
		root, ok := byOrigin[e.Origin]
		if !ok {
			root = newTreeNode(strings.TrimSuffix(filepath.ToSlash(e.Origin), "/"))
			byOrigin[e.Origin] = root
			roots = append(roots, root)
		}
		node := root
		for _, part := range strings.Split(filepath.ToSlash(e.Name), "/") {
			node = node.child(part)
		}
	}

	var treeBuilder strings.Builder
	for _, root := range roots {
		treeBuilder.WriteString(root.name + "/\n")
		writeTree(&treeBuilder, root, "")
	}
	for _, e := range entries {
		if e.Source == SourceFile {
			treeBuilder.WriteString(fmt.Sprintf("%s (from %s)\n", e.Name, e.Origin))
		}
	}
	return treeBuilder.String()
}

func writeTree(b *strings.Builder, n *treeNode, prefix string) {
	for i, c := range n.children {
		connector := "├── "
		extension := "│   "
		if i == len(n.children)-1 {
			connector = "└── "
			extension = "    "
		}

		name := c.name
		if len(c.children) > 0 {
			name += "/"
		}
		b.WriteString(prefix + connector + name + "\n")
		writeTree(b, c, prefix+extension)
	}
}
