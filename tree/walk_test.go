// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/scenegraph/tree"
	"cogentcore.org/scenegraph/tree/testdata"
)

// testTree returns the tree
//
//	root
//	├── child0
//	├── child1
//	│   └── subchild1
//	│       └── subsubchild1
//	├── child2
//	└── child3
func testTree(t *testing.T) *NodeBase {
	root := NewNodeBase("root")
	child0 := NewNodeBase("child0")
	child1 := NewNodeBase("child1")
	schild1 := NewNodeBase("subchild1")
	sschild1 := &testdata.NodeEmbed{}
	sschild1.Name = "subsubchild1"
	child2 := &testdata.NodeEmbed{}
	child2.Name = "child2"
	child3 := NewNodeBase("child3")
	mustAdd(t, root, child0)
	mustAdd(t, root, child1)
	mustAdd(t, child1, schild1)
	mustAdd(t, schild1, sschild1)
	mustAdd(t, root, child2)
	mustAdd(t, root, child3)
	return root
}

func TestDown(t *testing.T) {
	var cur Node = testTree(t)
	res := []string{}
	for {
		res = append(res, cur.AsTree().Path())
		curi := Next(cur)
		if curi == nil {
			break
		}
		cur = curi
	}
	assert.Equal(t, []string{"/root", "/root/child0", "/root/child1", "/root/child1/subchild1", "/root/child1/subchild1/subsubchild1", "/root/child2", "/root/child3"}, res)
}

func TestUp(t *testing.T) {
	cur := Last(testTree(t))
	res := []string{}
	for {
		res = append(res, cur.AsTree().Path())
		curi := Previous(cur)
		if curi == nil {
			break
		}
		cur = curi
	}
	assert.Equal(t, []string{"/root/child3", "/root/child2", "/root/child1/subchild1/subsubchild1", "/root/child1/subchild1", "/root/child1", "/root/child0", "/root"}, res)
}

func TestForEach(t *testing.T) {
	root := testTree(t)
	var flat, deep []string
	root.ForEach(func(n Node) { flat = append(flat, n.AsTree().Name) }, false)
	root.ForEach(func(n Node) { deep = append(deep, n.AsTree().Name) }, true)
	assert.Equal(t, []string{"child0", "child1", "child2", "child3"}, flat)
	assert.Equal(t, []string{"child0", "child1", "subchild1", "subsubchild1", "child2", "child3"}, deep)
}

func TestWalkDown(t *testing.T) {
	root := testTree(t)
	var res []string
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return n.AsTree().Name != "subchild1"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "subchild1", "child2", "child3"}, res)
}

func TestFind(t *testing.T) {
	root := testTree(t)
	byName := func(name string) func(n Node) bool {
		return func(n Node) bool { return n.AsTree().Name == name }
	}

	assert.Nil(t, root.FindChild(byName("subchild1"), false))
	schild := root.FindChild(byName("subchild1"), true)
	if assert.NotNil(t, schild) {
		assert.Equal(t, "/root/child1/subchild1", schild.AsTree().Path())
	}
	sschild := root.FindChild(func(n Node) bool {
		_, ok := n.(*testdata.NodeEmbed)
		return ok
	}, true)
	assert.Equal(t, "subsubchild1", sschild.AsTree().Name)

	assert.Same(t, root, sschild.AsTree().FindParent(byName("root")))
	assert.Nil(t, sschild.AsTree().FindParent(byName("subsubchild1")))
	assert.Equal(t, 3, sschild.AsTree().Depth())

	child0 := root.Child(0).AsTree()
	assert.Equal(t, "child2", child0.FindSibling(func(n Node) bool { return n.AsTree().Name != "child1" }).AsTree().Name)
	assert.Nil(t, child0.FindSibling(byName("child0")))
	assert.Nil(t, root.FindSibling(byName("child0")))
}

func TestWalkUp(t *testing.T) {
	root := testTree(t)
	sschild := Last(root.Child(1))
	var res []string
	finished := sschild.AsTree().WalkUp(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return n.AsTree().Name != "child1"
	})
	assert.False(t, finished)
	assert.Equal(t, []string{"subsubchild1", "subchild1", "child1"}, res)
	assert.True(t, sschild.AsTree().HasAncestor(root))
	assert.False(t, root.HasAncestor(sschild))
}
