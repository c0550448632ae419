// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata has node types used in the tree tests.
package testdata

import "cogentcore.org/scenegraph/tree"

// NodeEmbed embeds tree.NodeBase and adds a couple of fields.
type NodeEmbed struct {
	tree.NodeBase
	Mbr1 string
	Mbr2 int
}

// NewNodeEmbed returns a new initialized root [NodeEmbed]
// whose children must also be NodeEmbeds.
func NewNodeEmbed(name ...string) *NodeEmbed {
	return tree.Init(&NodeEmbed{}, name...)
}

// Other is a node type that is not a [NodeEmbed].
type Other struct {
	tree.NodeBase
}

// Hooks records the children added to and removed from it,
// and refuses to release children while Locked is true.
type Hooks struct {
	tree.NodeBase
	Locked  bool
	Added   []string
	Removed []string
}

// NewHooks returns a new initialized root [Hooks]
// that accepts children of any node type.
func NewHooks(name string) *Hooks {
	h := &Hooks{}
	tree.InitNode(h, nil)
	h.Name = name
	return h
}

func (h *Hooks) RemoveChild(child tree.Node) bool {
	if h.Locked {
		return false
	}
	return h.NodeBase.RemoveChild(child)
}

func (h *Hooks) OnChildAdded(child tree.Node) {
	h.Added = append(h.Added, child.AsTree().Name)
}

func (h *Hooks) OnChildRemoved(child tree.Node) {
	h.Removed = append(h.Removed, child.AsTree().Name)
}

// Labeler is a node with a label. [NodeEmbed] and [Tagged]
// implement it and [Other] does not.
type Labeler interface {
	tree.Node
	Label() string
}

func (n *NodeEmbed) Label() string { return n.Mbr1 }

// Tagged is a node with a tag used as its label.
type Tagged struct {
	tree.NodeBase
	Tag string
}

func (n *Tagged) Label() string { return n.Tag }
