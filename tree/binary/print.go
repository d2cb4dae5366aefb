package binary

import (
	"fmt"
	"strings"

	"go.lepak.sg/ordtree/tree"
)

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == tree.Nil {
		return ""
	}

	t.print(&sb)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

type printFrame struct {
	id      tree.ID
	prefix  string
	branch  string
	initial bool
	isMid   bool
}

// print writes the tree using an explicit stack of what would be
// the recursive calls' arguments, so a deep chain cannot blow the stack.
func (t *Tree[T]) print(sb *strings.Builder) {
	stack := []printFrame{{id: t.root, initial: true}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		prefix := f.prefix
		if !f.initial {
			sb.WriteString(prefix)
			if f.isMid {
				prefix += treeMidContinue
				sb.WriteString(treeMidBranch)
			} else {
				prefix += treeLastContinue
				sb.WriteString(treeLastBranch)
			}
			sb.WriteString(f.branch)
		}

		s := t.a.At(f.id)
		sb.WriteString(fmt.Sprint(s.Key))
		sb.WriteRune('\n')

		// pushed right first, so the left child is printed first
		if s.Right != tree.Nil {
			stack = append(stack, printFrame{id: s.Right, prefix: prefix, branch: treeRightBranch})
		}
		if s.Left != tree.Nil {
			stack = append(stack, printFrame{
				id: s.Left, prefix: prefix, branch: treeLeftBranch, isMid: s.Right != tree.Nil,
			})
		}
	}
}
