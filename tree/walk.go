// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	for cur := n.This; cur != nil; cur = cur.AsTree().ParentNode() {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself). It stops walking if the function returns [Break] and keeps
// walking if it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	parent := n.ParentNode()
	if parent == nil {
		return true
	}
	return parent.AsTree().WalkUp(fun)
}

// WalkDown calls the given function on the node and all of its descendants
// in depth-first pre-order. It does not descend into the children of a node
// for which the function returns [Break]. Each node iterates over a snapshot
// of its children, so the function may modify the tree.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil || !fun(n.This) {
		return
	}
	for _, c := range n.Children() {
		c.AsTree().WalkDown(fun)
	}
}

// ForEach calls the given function on every child of this node in order.
// If recursive is true, it visits the descendants of each child right after
// that child, before moving on to its next sibling (pre-order).
func (n *NodeBase) ForEach(fun func(n Node), recursive bool) {
	for _, c := range n.Children() {
		fun(c)
		if recursive {
			c.AsTree().ForEach(fun, true)
		}
	}
}

// FindParent returns the closest ancestor of this node (not including the
// node itself) for which the given function returns true, or nil.
func (n *NodeBase) FindParent(match func(n Node) bool) Node {
	var found Node
	n.WalkUpParent(func(k Node) bool {
		if match(k) {
			found = k
			return Break
		}
		return Continue
	})
	return found
}

// FindChild returns the first child of this node for which the given function
// returns true, or nil. If nested is true, it searches all descendants depth
// first, checking each child before its own descendants.
func (n *NodeBase) FindChild(match func(n Node) bool, nested bool) Node {
	for _, c := range n.children {
		if match(c) {
			return c
		}
		if nested {
			if found := c.AsTree().FindChild(match, true); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindSibling returns the first other child of this node's parent
// for which the given function returns true, or nil.
func (n *NodeBase) FindSibling(match func(n Node) bool) Node {
	parent := n.ParentNode()
	if parent == nil {
		return nil
	}
	for _, c := range parent.AsTree().children {
		if c != n.This && match(c) {
			return c
		}
	}
	return nil
}

// Last returns the last node in the tree.
func Last(n Node) Node {
	nb := n.AsTree()
	if nb.HasChildren() {
		return Last(nb.Child(nb.Len() - 1))
	}
	return n
}

// Previous returns the previous node in the tree,
// or nil if this is the root node.
func Previous(n Node) Node {
	nb := n.AsTree()
	parent := nb.ParentNode()
	if parent == nil {
		return nil
	}
	myidx := nb.IndexInParent()
	if myidx > 0 {
		return Last(parent.AsTree().Child(myidx - 1))
	}
	return parent
}

// Next returns next node in the tree,
// or nil if this is the last node.
func Next(n Node) Node {
	if !n.AsTree().HasChildren() {
		return NextSibling(n)
	}
	return n.AsTree().Child(0)
}

// NextSibling returns the next sibling of this node, or the next
// sibling of its closest ancestor that has one, or nil if there is none.
func NextSibling(n Node) Node {
	nb := n.AsTree()
	parent := nb.ParentNode()
	if parent == nil {
		return nil
	}
	myidx := nb.IndexInParent()
	if myidx >= 0 && myidx < parent.AsTree().Len()-1 {
		return parent.AsTree().Child(myidx + 1)
	}
	return NextSibling(parent)
}
