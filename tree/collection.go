// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"iter"
	"slices"
)

// collection.go has the methods that let a node be used as an
// ordered collection of its children. All removals go through
// [Node.RemoveChild] so that they can not bypass its side effects.

// Len returns the number of children this node has.
func (n *NodeBase) Len() int {
	return len(n.children)
}

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.children) > 0
}

// Contains returns whether the given node is a direct child of this node.
func (n *NodeBase) Contains(child Node) bool {
	if child == nil {
		return false
	}
	_, ok := n.childSet[child]
	return ok
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.children) || i < 0 {
		return nil
	}
	return n.children[i]
}

// IndexOf returns the index of the given child, or -1 if it is not a
// direct child of this node.
func (n *NodeBase) IndexOf(child Node) int {
	if !n.Contains(child) {
		return -1
	}
	return slices.Index(n.children, child)
}

// IndexByName returns the index of the first child with the given name at
// or after the given start index, or -1 if there is none.
func (n *NodeBase) IndexByName(name string, start int) int {
	for i := max(start, 0); i < len(n.children); i++ {
		if n.children[i].AsTree().Name == name {
			return i
		}
	}
	return -1
}

// ChildByName returns the first child with the given name, or nil.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(n.IndexByName(name, 0))
}

// Children returns a copy of the list of children of this node.
func (n *NodeBase) Children() []Node {
	return slices.Clone(n.children)
}

// All returns a sequence over the indexes and children of this node.
// It iterates over a snapshot of the children, so the node may be
// modified during iteration.
func (n *NodeBase) All() iter.Seq2[int, Node] {
	return slices.All(n.Children())
}

// AddAll adds each of the given children in order with [NodeBase.AddChild]
// and returns whether any of them was added. It stops at the first error.
func (n *NodeBase) AddAll(children ...Node) (bool, error) {
	changed := false
	for _, c := range children {
		added, err := n.AddChild(c)
		changed = changed || added
		if err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// RemoveAll removes each of the given children that is a direct child of
// this node and returns whether any of them was removed.
func (n *NodeBase) RemoveAll(children ...Node) bool {
	changed := false
	for _, c := range children {
		if n.This.RemoveChild(c) {
			changed = true
		}
	}
	return changed
}

// RetainAll removes every child of this node that is not one of the
// given nodes and returns whether any child was removed.
func (n *NodeBase) RetainAll(keep ...Node) bool {
	changed := false
	for _, c := range n.Children() {
		if !slices.Contains(keep, c) && n.This.RemoveChild(c) {
			changed = true
		}
	}
	return changed
}

// Clear removes all children of this node, except those that the node
// refuses to release.
func (n *NodeBase) Clear() {
	for _, c := range n.Children() {
		n.This.RemoveChild(c)
	}
}

// Move moves the child at index from to index to, keeping the
// order of the other children. It returns false if either index
// is out of range.
func (n *NodeBase) Move(from, to int) bool {
	if from < 0 || from >= len(n.children) || to < 0 || to >= len(n.children) {
		return false
	}
	c := n.children[from]
	n.children = slices.Delete(n.children, from, from+1)
	n.children = slices.Insert(n.children, to, c)
	return true
}

// Iterator returns a new [Iterator] over the children of this node.
func (n *NodeBase) Iterator() *Iterator {
	return &Iterator{node: n, index: -1}
}

// Iterator steps through the children of a node and allows removing
// the current child while doing so. The intended usage is:
//
//	it := n.Iterator()
//	for it.Next() {
//		if shouldRemove(it.Node()) {
//			it.Remove()
//		}
//	}
type Iterator struct {
	node    *NodeBase
	index   int
	current Node
}

// Next advances to the next child and returns false when there are none left.
func (it *Iterator) Next() bool {
	it.index++
	it.current = it.node.Child(it.index)
	return it.current != nil
}

// Node returns the current child.
func (it *Iterator) Node() Node {
	return it.current
}

// Remove removes the current child from the node through [Node.RemoveChild]
// and returns whether it was removed.
func (it *Iterator) Remove() bool {
	if it.current == nil || !it.node.This.RemoveChild(it.current) {
		return false
	}
	it.current = nil
	it.index--
	return true
}
