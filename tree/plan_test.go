// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scenegraph/base/errors"
	. "cogentcore.org/scenegraph/tree"
	"cogentcore.org/scenegraph/tree/testdata"
)

func namePlan(inits *[]string, names ...string) *Plan {
	p := &Plan{}
	for _, nm := range names {
		AddAt(p, nm, func(n *testdata.NodeEmbed) {
			*inits = append(*inits, n.Path())
		})
	}
	return p
}

func TestPlanUpdate(t *testing.T) {
	parent := testdata.NewNodeEmbed("root")
	var inits []string

	mods, err := namePlan(&inits, "a", "b", "c").Update(parent)
	require.NoError(t, err)
	assert.True(t, mods)
	assert.Equal(t, []string{"a", "b", "c"}, names(parent))
	assert.Equal(t, []string{"/root/a", "/root/b", "/root/c"}, inits)
	b := parent.ChildByName("b")

	inits = nil
	mods, err = namePlan(&inits, "a", "b", "c").Update(parent)
	require.NoError(t, err)
	assert.False(t, mods)
	assert.Empty(t, inits)

	mods, err = namePlan(&inits, "c", "aa", "b").Update(parent)
	require.NoError(t, err)
	assert.True(t, mods)
	assert.Equal(t, []string{"c", "aa", "b"}, names(parent))
	assert.Equal(t, []string{"/root/aa"}, inits)
	assert.Same(t, b, parent.ChildByName("b"))
	assert.Nil(t, parent.ChildByName("a"))

	mods, err = (&Plan{}).Update(parent)
	require.NoError(t, err)
	assert.True(t, mods)
	assert.Equal(t, 0, parent.Len())
	assert.True(t, IsRoot(b))
}

func TestPlanErrors(t *testing.T) {
	parent := testdata.NewHooks("root")
	var inits []string
	_, err := namePlan(&inits, "a", "a").Update(parent)
	assert.Error(t, err)
	assert.Equal(t, 0, parent.Len())

	_, err = namePlan(&inits, "a", "b").Update(parent)
	require.NoError(t, err)
	parent.Locked = true
	mods, err := namePlan(&inits, "c", "a").Update(parent)
	assert.ErrorIs(t, err, errors.ErrGraphViolation)
	assert.True(t, mods)
	assert.Equal(t, []string{"c", "a", "b"}, names(parent))

	_, err = (&Plan{}).Update(&NodeBase{})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestIndexByName(t *testing.T) {
	parent := NewNodeBase("root")
	_, err := parent.AddAll(newChildren("a", "b", "a")...)
	require.NoError(t, err)
	assert.Equal(t, 0, parent.IndexByName("a", 0))
	assert.Equal(t, 2, parent.IndexByName("a", 1))
	assert.Equal(t, -1, parent.IndexByName("b", 2))
	assert.Equal(t, -1, parent.IndexByName("x", -1))
	assert.Same(t, parent.Child(1), parent.ChildByName("b"))
}
