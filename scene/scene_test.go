// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/property"
	. "cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/tree"
	"cogentcore.org/scenegraph/tree/testdata"
)

// testScene returns the scene
//
//	root    (0,0)-(100,100)
//	├── a   (0,0)-(50,50)
//	│   └── a1 (10,10)-(20,20)
//	└── b   (40,40)-(100,100)
func testScene() (root, a, a1, b *Element) {
	root = NewRoot("root").SetBounds(image.Rect(0, 0, 100, 100))
	a = New(root).SetBounds(image.Rect(0, 0, 50, 50))
	a.Name = "a"
	a1 = New(a).SetBounds(image.Rect(10, 10, 20, 20))
	a1.Name = "a1"
	b = New(root).SetBounds(image.Rect(40, 40, 100, 100))
	b.Name = "b"
	return
}

func TestElementInit(t *testing.T) {
	root := NewRoot("root")
	child := &Element{}
	_, err := root.AddChild(child)
	require.NoError(t, err)
	require.NotNil(t, child.Visible)
	assert.True(t, child.Visible.Get())
	assert.True(t, child.Bounds.Get().Empty())
	assert.False(t, child.Hovered.Get())

	_, err = root.AddChild(testdata.NewNodeEmbed("other"))
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
}

func TestBoundsCanonical(t *testing.T) {
	el := NewRoot("el")
	require.NoError(t, el.Bounds.Set(image.Rectangle{Min: image.Pt(10, 10), Max: image.Pt(0, 0)}, nil))
	assert.Equal(t, image.Rect(0, 0, 10, 10), el.Bounds.Get())
}

func TestVisibleChildren(t *testing.T) {
	root, a, a1, b := testScene()
	assert.Equal(t, []*Element{a, b}, root.VisibleChildren())
	require.NoError(t, a.Visible.Toggle(nil))
	assert.Equal(t, []*Element{b}, root.VisibleChildren())
	assert.False(t, a1.IsDisplayed())
	assert.True(t, b.IsDisplayed())

	var visited []string
	root.WalkVisible(func(el *Element, depth int) {
		visited = append(visited, el.Name)
		assert.Equal(t, el.Depth(), depth)
	})
	assert.Equal(t, []string{"root", "b"}, visited)
}

func TestElementAt(t *testing.T) {
	root, a, a1, b := testScene()
	assert.Same(t, a1, ElementAt(root, image.Pt(15, 15)))
	assert.Same(t, a, ElementAt(root, image.Pt(5, 5)))
	assert.Same(t, b, ElementAt(root, image.Pt(45, 45)))
	assert.Same(t, root, ElementAt(root, image.Pt(90, 5)))
	assert.Nil(t, ElementAt(root, image.Pt(200, 5)))

	require.NoError(t, b.Visible.Set(false, nil))
	assert.Same(t, a, ElementAt(root, image.Pt(45, 45)))
}

func TestStateReadOnly(t *testing.T) {
	root, a, _, _ := testScene()
	err := a.Hovered.Set(true, nil)
	assert.ErrorIs(t, err, errors.ErrCallerIdentity)
	err = a.Focused.Set(true, property.NewToken("scene"))
	assert.ErrorIs(t, err, errors.ErrCallerIdentity)

	in := NewInput("mouse")
	require.NoError(t, in.Attach(root))
	assert.Same(t, in, a.Input())
	err = a.Hovered.Set(true, nil)
	assert.ErrorIs(t, err, errors.ErrCallerIdentity)
	assert.ErrorIs(t, a.Hovered.SetReadOnly(nil, false), errors.ErrCallerIdentity)
	assert.False(t, a.Hovered.Get())
}

func TestInputHover(t *testing.T) {
	root, a, a1, b := testScene()
	in := NewInput("mouse")
	require.NoError(t, in.Attach(root))

	var events []bool
	a1.Hovered.OnChange(func(v bool) { events = append(events, v) })

	changed, err := in.MouseMove(root, image.Pt(15, 15))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Same(t, a1, in.Hovered())
	assert.True(t, a1.Hovered.Get())

	changed, err = in.MouseMove(root, image.Pt(16, 16))
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = in.MouseMove(root, image.Pt(60, 60))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, a1.Hovered.Get())
	assert.True(t, b.Hovered.Get())
	assert.False(t, a.Hovered.Get())
	assert.Equal(t, []bool{true, false}, events)

	_, err = in.SetHover(nil)
	require.NoError(t, err)
	assert.Nil(t, in.Hovered())
	assert.False(t, b.Hovered.Get())
}

func TestInputNotAttached(t *testing.T) {
	root, a, _, _ := testScene()
	in := NewInput("keyboard")
	_, err := in.SetFocus(a)
	assert.ErrorIs(t, err, errors.ErrCallerIdentity)

	changed, err := in.MouseMove(root, image.Pt(5, 5))
	assert.NoError(t, err)
	assert.False(t, changed)
}

func TestInputFocusNext(t *testing.T) {
	root, a, a1, b := testScene()
	in := NewInput("keyboard")
	require.NoError(t, in.Attach(root))

	var order []string
	for range 5 {
		changed, err := in.FocusNext(root)
		require.NoError(t, err)
		require.True(t, changed)
		order = append(order, in.Focused().Name)
	}
	assert.Equal(t, []string{"a", "a1", "b", "root", "a"}, order)
	assert.True(t, a.Focused.Get())
	assert.False(t, b.Focused.Get())

	require.NoError(t, a1.Visible.Set(false, nil))
	_, err := in.FocusNext(root)
	require.NoError(t, err)
	assert.Same(t, b, in.Focused())
}

func TestInputFollowsTree(t *testing.T) {
	root, a, a1, _ := testScene()
	in := NewInput("mouse")
	require.NoError(t, in.Attach(root))

	c := New(a1)
	assert.Same(t, in, c.Input())

	_, err := in.SetFocus(a1)
	require.NoError(t, err)
	assert.True(t, a.RemoveChild(a1))
	assert.Nil(t, a1.Input())
	assert.Nil(t, c.Input())
	assert.Nil(t, in.Focused())
	assert.False(t, a1.Focused.Get())
	assert.True(t, tree.IsRoot(a1))
}

func TestInputTakeOver(t *testing.T) {
	root, a, _, _ := testScene()
	first := NewInput("first")
	second := NewInput("second")
	require.NoError(t, first.Attach(root))
	_, err := first.SetHover(a)
	require.NoError(t, err)

	require.NoError(t, second.Attach(a))
	assert.Same(t, second, a.Input())
	assert.Same(t, first, root.Input())
	assert.Nil(t, first.Hovered())
	assert.False(t, a.Hovered.Get())

	_, err = first.SetHover(a)
	assert.ErrorIs(t, err, errors.ErrCallerIdentity)
	_, err = second.SetHover(a)
	assert.NoError(t, err)
	assert.True(t, a.Hovered.Get())

	require.NoError(t, second.Detach(a))
	assert.Nil(t, a.Input())
	assert.False(t, a.Hovered.Get())
}

// button is an element type that embeds [Element].
type button struct {
	Element
	Label string
}

func TestEmbeddedElement(t *testing.T) {
	root, a, a1, b := testScene()
	btn := &button{Label: "ok"}
	btn.Name = "ok"
	_, err := a.AddChild(btn)
	require.NoError(t, err)
	require.NotNil(t, btn.Visible)
	btn.SetBounds(image.Rect(30, 30, 40, 40))

	assert.Same(t, &btn.Element, AsElement(btn))
	assert.Equal(t, tree.Node(btn), btn.This)
	assert.Same(t, &btn.Element, ElementAt(root, image.Pt(35, 35)))
	assert.Contains(t, a.VisibleChildren(), &btn.Element)

	in := NewInput("mouse")
	require.NoError(t, in.Attach(root))
	assert.Same(t, in, btn.Input())
	changed, err := in.MouseMove(root, image.Pt(35, 35))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, btn.Hovered.Get())

	_, err = in.SetFocus(&btn.Element)
	require.NoError(t, err)
	_, err = in.FocusNext(root)
	require.NoError(t, err)
	assert.Same(t, b, in.Focused())

	require.NoError(t, btn.Visible.Set(false, nil))
	require.NoError(t, b.Visible.Set(false, nil))
	_, err = in.SetFocus(nil)
	require.NoError(t, err)
	_, err = in.FocusNext(a)
	require.NoError(t, err)
	assert.Same(t, a1, in.Focused())
	_, err = in.FocusNext(a)
	require.NoError(t, err)
	assert.Same(t, a, in.Focused())

	// an embedding type can be a root that accepts plain elements
	toolbar := InitRoot(&button{}, "toolbar")
	child := New(toolbar)
	assert.Equal(t, tree.Node(toolbar), child.ParentNode())
	_, err = toolbar.AddChild(testdata.NewNodeEmbed("other"))
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
}

func TestInputDetachOnAdd(t *testing.T) {
	root, _, _, _ := testScene()
	popup := NewRoot("popup")
	in := NewInput("mouse")
	require.NoError(t, in.Attach(popup))
	_, err := in.SetHover(popup)
	require.NoError(t, err)

	_, err = root.AddChild(popup)
	require.NoError(t, err)
	assert.Nil(t, popup.Input())
	assert.Nil(t, in.Hovered())
	assert.False(t, popup.Hovered.Get())
}
