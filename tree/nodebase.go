// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/property"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// All nodes must be initialized by [Init], [InitNode] or [NewNodeBase]
// before they are used as parents; nodes that are added as children are
// initialized automatically if they are not yet. This ensures that
// [NodeBase.This] is set correctly and that the [NodeBase.Root] and
// [NodeBase.Parent] properties exist.
//
// A NodeBase is not safe for concurrent modification; callers must
// make sure that only one goroutine mutates a tree at a time.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to other children of
	// the same parent. It is used in [NodeBase.Path]. If not otherwise set, it defaults to the
	// lowercase name of the node type combined with the total number of children that have
	// ever been added to the node's parent.
	Name string

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types, which
	// is necessary for overriding [Node.RemoveChild] and the child hooks.
	This Node

	// Root is the root of the tree this node is in, which is the node itself
	// when it has no parent. It is updated automatically for the whole subtree
	// of a node when the node is added or removed. It is read-only outside
	// of this package, but anyone can listen to its changes.
	Root *property.NotNull[Node]

	// Parent is the parent of this node, or nil if it is a root. It is updated
	// automatically when this node is added to or removed from a parent.
	// Setting it from outside of this package is the same as adding the node
	// to the new parent with [NodeBase.AddChild], or removing it from its
	// current parent when the new value is nil.
	Parent *property.Property[Node]

	// children is the ordered list of children of this node.
	children []Node

	// childSet mirrors children for fast membership tests.
	childSet map[Node]struct{}

	// baseType is the type that all children must be assignable to.
	baseType reflect.Type

	// numLifetimeChildren is the number of children that have ever been added to this
	// node, which is used for automatic unique naming.
	numLifetimeChildren uint64
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// BaseType returns the type that all children of this node must be assignable to.
func (n *NodeBase) BaseType() reflect.Type {
	return n.baseType
}

// ParentNode returns the current parent of this node, or nil.
func (n *NodeBase) ParentNode() Node {
	if n.Parent == nil {
		return nil
	}
	return n.Parent.Get()
}

// Parents:

// IndexInParent returns our index within our parent node.
// It returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	parent := n.ParentNode()
	if parent == nil {
		return -1
	}
	return parent.AsTree().IndexOf(n.This)
}

// Depth returns the number of ancestors of this node.
func (n *NodeBase) Depth() int {
	depth := 0
	n.WalkUpParent(func(Node) bool {
		depth++
		return Continue
	})
	return depth
}

// HasAncestor returns whether the given node is this node or one of its ancestors.
func (n *NodeBase) HasAncestor(anc Node) bool {
	if anc == nil || n.This == nil {
		return false
	}
	if Root(n.This) != Root(anc) {
		return false
	}
	return !n.WalkUp(func(k Node) bool {
		return k != anc
	})
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// Path returns the path to this node from the tree root,
// using [NodeBase.Name]s separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if parent := n.ParentNode(); parent != nil {
		return parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// Adding and removing children:

// AddChild adds the given child at the end of the children of this node.
// It returns false without doing anything if the child is already a direct
// child of this node. If the child has another parent, it is first removed
// from that parent through [Node.RemoveChild].
//
// AddChild fails without changing the tree if the child is nil, if its type
// is not assignable to the base type of this node, if it is this node or one
// of its ancestors, or if its old parent refuses to release it. Once the
// child has been linked, its root is set to the root of this node (which
// updates its whole subtree), its parent is set to this node, and
// [Node.OnChildAdded] is called. Errors returned by listeners of those
// properties are returned along with true.
func (n *NodeBase) AddChild(child Node) (bool, error) {
	if err := checkThis(n); err != nil {
		return false, err
	}
	if child == nil || property.IsNil(child) {
		return false, fmt.Errorf("tree: add child to %v: %w", n, errors.ErrNullArgument)
	}
	if ct := reflect.TypeOf(child); !ct.AssignableTo(n.baseType) {
		return false, fmt.Errorf("tree: add child of type %v to %v: %w: children must be %v", ct, n, errors.ErrTypeMismatch, n.baseType)
	}
	cb := child.AsTree()
	InitNode(child, n.baseType)
	if child == n.This {
		return false, fmt.Errorf("tree: add %v to itself: %w", n, errors.ErrGraphViolation)
	}
	if n.HasAncestor(child) {
		return false, fmt.Errorf("tree: add ancestor %v to %v: %w", cb, n, errors.ErrGraphViolation)
	}
	if n.Contains(child) {
		return false, nil
	}
	if old := cb.ParentNode(); old != nil {
		if !old.RemoveChild(child) {
			return false, fmt.Errorf("tree: move %v to %v: %w: old parent refused to release it", cb, n, errors.ErrGraphViolation)
		}
		slog.Debug("tree: moving node", "node", cb.Name, "from", old.AsTree(), "to", n)
	}

	n.numLifetimeChildren++
	if cb.Name == "" {
		cb.Name = typeName(child) + "-" + strconv.FormatUint(n.numLifetimeChildren-1, 10)
	}
	n.children = append(n.children, child)
	n.childSet[child] = struct{}{}
	rerr := cb.Root.Set(n.Root.Get(), owner)
	perr := cb.Parent.Set(n.This, owner)
	n.This.OnChildAdded(child)
	return true, errors.Join(rerr, perr)
}

// RemoveChild removes the given direct child of this node, returning false
// if it is not a direct child (including when it is nil). The removed child
// becomes the root of its own tree: its root is reset to itself for its
// whole subtree and its parent is set to nil. Then [Node.OnChildRemoved]
// is called. Errors returned by listeners of those properties are logged.
func (n *NodeBase) RemoveChild(child Node) bool {
	if child == nil || !n.Contains(child) {
		return false
	}
	idx := n.IndexOf(child)
	n.children = slices.Delete(n.children, idx, idx+1)
	delete(n.childSet, child)
	cb := child.AsTree()
	errors.Log(cb.Root.Reset(owner))
	errors.Log(cb.Parent.Set(nil, owner))
	n.This.OnChildRemoved(child)
	return true
}

// RemoveFromParent removes this node from its parent, returning false
// if it has no parent or the parent refuses to release it.
func (n *NodeBase) RemoveFromParent() bool {
	parent := n.ParentNode()
	if parent == nil {
		return false
	}
	return parent.RemoveChild(n.This)
}

// OnChildAdded is a placeholder implementation of
// [Node.OnChildAdded] that does nothing.
func (n *NodeBase) OnChildAdded(child Node) {}

// OnChildRemoved is a placeholder implementation of
// [Node.OnChildRemoved] that does nothing.
func (n *NodeBase) OnChildRemoved(child Node) {}

// propagateRoot is the listener on the root property that
// pushes a new root down to all of the children.
func (n *NodeBase) propagateRoot(_ *property.Property[Node], _, root Node) error {
	errs := make([]error, 0, len(n.children))
	for _, c := range n.children {
		errs = append(errs, c.AsTree().Root.Set(root, owner))
	}
	return errors.Join(errs...)
}

// interceptParent is the interceptor of the parent property, which turns
// outside assignments of the parent into additions and removals.
func (n *NodeBase) interceptParent(_ *property.Property[Node], old, parent Node) error {
	if parent == nil || property.IsNil(parent) {
		if old != nil && !old.RemoveChild(n.This) {
			return fmt.Errorf("tree: detach %v: %w: parent refused to release it", n, errors.ErrGraphViolation)
		}
		return nil
	}
	_, err := parent.AsTree().AddChild(n.This)
	return err
}

// typeName returns the lowercase name of the type of the given node.
func typeName(n Node) string {
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}
