package printer

import (
	"sort"
	"strings"
)

// treeNode is one directory or file in the structure tree. Files have a nil
// children map.
type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	c, ok := n.children[name]
	if !ok {
		c = &treeNode{name: name}
		if dir {
			c.children = make(map[string]*treeNode)
		}
		n.children[name] = c
	}
	return c
}

// buildTree assembles a tree from slash-separated relative paths.
func buildTree(relPaths []string) *treeNode {
	root := &treeNode{children: make(map[string]*treeNode)}
	for _, rel := range relPaths {
		parts := strings.Split(rel, "/")
		cur := root
		for i, part := range parts {
			cur = cur.child(part, i < len(parts)-1)
		}
	}
	return root
}

type treeFrame struct {
	node   *treeNode
	prefix string
	last   bool
}

// renderTree flattens the tree into display lines using an explicit work
// stack rather than recursion.
func renderTree(root *treeNode) []string {
	var lines []string
	stack := pushChildren(nil, root, "")

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		connector := "|-- "
		childPrefix := fr.prefix + "|   "
		if fr.last {
			connector = "`-- "
			childPrefix = fr.prefix + "    "
		}
		lines = append(lines, fr.prefix+connector+fr.node.name)

		if fr.node.children != nil {
			stack = pushChildren(stack, fr.node, childPrefix)
		}
	}
	return lines
}

// pushChildren pushes node's children in reverse sorted order so the stack
// pops them alphabetically.
func pushChildren(stack []treeFrame, node *treeNode, prefix string) []treeFrame {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i := len(names) - 1; i >= 0; i-- {
		stack = append(stack, treeFrame{
			node:   node.children[names[i]],
			prefix: prefix,
			last:   i == len(names)-1,
		})
	}
	return stack
}
