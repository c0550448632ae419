// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a scene-graph tree system centered on the
// [Node] interface. Every node is also a mutable, ordered collection of
// children, and keeps its parent and the root of its tree in reactive
// [property.Property] values that are updated automatically as nodes
// are added, removed and moved between parents.
package tree

import "cogentcore.org/scenegraph/property"

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level tree types
// must embed it. This interface only contains the tree functionality that
// higher-level tree types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
// All values that implement [Node] must be pointer values.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// RemoveChild removes the given direct child, returning false if it
	// is not a child of this node or if the node refuses to release it.
	// Node types can implement this to veto removals; if they do, they
	// should call [NodeBase.RemoveChild] to actually remove the child.
	// All removals, including those done while moving a node to a new
	// parent and through an [Iterator], go through this method.
	RemoveChild(child Node) bool

	// OnChildAdded is called on the parent after a node has been added
	// to it and its root and parent have been updated.
	// It does nothing by default.
	OnChildAdded(child Node)

	// OnChildRemoved is called on the parent after a node has been removed
	// from it and its root and parent have been reset.
	// It does nothing by default.
	OnChildRemoved(child Node)
}

// Initer is implemented by node types that set up their own state, such
// as their own properties, when they are initialized. [InitNode] calls
// Init once, after the tree state of the node has been created.
type Initer interface {
	Init()
}

// owner is the token owning the root and parent properties of all nodes.
var owner = property.NewToken("tree")
