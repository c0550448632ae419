// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"iter"
	"reflect"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/property"
)

// admin.go has infrastructure code outside of the Node interface.

// ErrNotInitialized is returned when a tree operation is attempted
// on a node that has not been initialized with [Init] or [InitNode].
var ErrNotInitialized = errors.New("tree: node is not initialized; use tree.Init")

// nodeType is the [reflect.Type] of [Node].
var nodeType = reflect.TypeFor[Node]()

// Init initializes the given node as a detached root whose children
// must all be of type N, and returns it. If a name is given, it sets
// the name of the node. Init does nothing beyond naming if the node
// has already been initialized. The intended usage is:
//
//	el := tree.Init(&Element{}, "root")
func Init[N Node](n N, name ...string) N {
	InitNode(n, reflect.TypeFor[N]())
	if len(name) > 0 {
		n.AsTree().Name = name[0]
	}
	return n
}

// New returns a new initialized node of type N, which must be a pointer
// to a struct embedding [NodeBase]. If a parent is given, the new node is
// added to it and any error from doing so is logged. The intended usage is:
//
//	el := tree.New[*Element](parent)
func New[N Node](parent ...Node) N {
	n := reflect.New(reflect.TypeFor[N]().Elem()).Interface().(N)
	Init(n)
	if len(parent) > 0 && parent[0] != nil {
		errors.Log1(parent[0].AsTree().AddChild(n))
	}
	return n
}

// NewNodeBase returns a new initialized [NodeBase] that accepts
// children of any [Node] type.
func NewNodeBase(name ...string) *NodeBase {
	n := &NodeBase{}
	InitNode(n, nodeType)
	if len(name) > 0 {
		n.Name = name[0]
	}
	return n
}

// InitNode initializes the given node with the given base type, which
// is the type that all of its children must be assignable to. A nil base
// type accepts any [Node]. It sets [NodeBase.This] and creates the root
// and parent properties of the node. Calling it again on an initialized
// node does nothing. Finally, it calls [Initer.Init] if the node
// implements it.
func InitNode(this Node, base reflect.Type) {
	n := this.AsTree()
	if n.This == this {
		return
	}
	if base == nil {
		base = nodeType
	}
	n.This = this
	n.baseType = base
	n.childSet = map[Node]struct{}{}

	n.Root = errors.Must1(property.NewNotNull[Node](this))
	n.Root.WithName("root")
	errors.Must(n.Root.SetOwner(nil, owner))
	errors.Must(n.Root.SetReadOnly(owner, true))
	errors.Must1(n.Root.AddChangeListener(n.propagateRoot))

	n.Parent = property.New[Node](nil).WithName("parent")
	errors.Must(n.Parent.SetOwner(nil, owner))
	errors.Must(n.Parent.SetInterceptor(owner, n.interceptParent))

	if in, ok := this.(Initer); ok {
		in.Init()
	}
}

// checkThis returns an error if the node has not been initialized.
func checkThis(n *NodeBase) error {
	if n.This != nil {
		return nil
	}
	return fmt.Errorf("tree.NodeBase %q: %w", n.Name, ErrNotInitialized)
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	nb := n.AsTree()
	return nb.Parent == nil || nb.Parent.Get() == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	nb := n.AsTree()
	if nb.Root == nil {
		return n
	}
	return nb.Root.Get()
}

// AsType returns the given node as type N, or the zero value of N
// if it is nil or of another type.
func AsType[N Node](n Node) N {
	v, _ := n.(N)
	return v
}

// ParentOf returns the parent of the given node as type N,
// or the zero value of N if it has no parent of that type.
func ParentOf[N Node](n Node) N {
	return AsType[N](n.AsTree().ParentNode())
}

// RootOf returns the root of the given node's tree as type N,
// or the zero value of N if the root is of another type.
func RootOf[N Node](n Node) N {
	return AsType[N](Root(n))
}

// ChildrenOf returns a sequence over the direct children of the given
// node that are of type N. It iterates over a snapshot of the children,
// so the node may be modified during iteration.
func ChildrenOf[N Node](n Node) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, c := range n.AsTree().Children() {
			if v, ok := c.(N); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}
