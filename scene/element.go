// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides [Element], a concrete scene-graph node that carries
// the visibility, bounds, hover and focus state read by rendering and input
// collaborators, and [Input], the collaborator that owns hover and focus.
package scene

import (
	"image"
	"reflect"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/property"
	"cogentcore.org/scenegraph/tree"
)

// owner is the token owning the hover and focus
// properties of elements that are not attached to an [Input].
var owner = property.NewToken("scene")

// Elementer is implemented by all elements, including types that embed
// [Element]. The children of an element must all be Elementers.
type Elementer interface {
	tree.Node

	// AsElement returns the [Element] embedded in the node.
	AsElement() *Element
}

// elementerType is the base type of every element tree.
var elementerType = reflect.TypeFor[Elementer]()

// Element is a node in a scene. Types that embed it are elements too.
// Use [NewRoot], [New] or [InitRoot] to make one; an element added as a
// child is initialized automatically. A type embedding Element that
// defines its own Init method must call [Element.Init] from it.
type Element struct {
	tree.NodeBase

	// Visible is whether the element and its children are drawn
	// and receive input. It defaults to true.
	Visible *property.Bool

	// Bounds is the bounding box of the element in scene coordinates.
	// Every value written to it is canonicalized.
	Bounds *property.Property[image.Rectangle]

	// Hovered is whether the pointer is over the element. It is
	// read-only except for the [Input] the element is attached to.
	Hovered *property.Bool

	// Focused is whether the element has keyboard focus. It is
	// read-only except for the [Input] the element is attached to.
	Focused *property.Bool

	// input is the input the element is attached to, if any.
	input *Input
}

// NewRoot returns a new root element with the given name.
func NewRoot(name string) *Element {
	return InitRoot(&Element{}, name)
}

// InitRoot initializes the given element, which may be of any type
// embedding [Element], as a detached root with the given name and
// returns it.
func InitRoot[E Elementer](el E, name string) E {
	tree.InitNode(el, elementerType)
	el.AsTree().Name = name
	return el
}

// New returns a new element, added to the given parent if there is one.
func New(parent ...tree.Node) *Element {
	el := &Element{}
	tree.InitNode(el, elementerType)
	if len(parent) > 0 && parent[0] != nil {
		errors.Log1(parent[0].AsTree().AddChild(el))
	}
	return el
}

// AsElement returns the [Element] of the given node, or nil
// if it is not an [Elementer].
func AsElement(n tree.Node) *Element {
	if e, ok := n.(Elementer); ok {
		return e.AsElement()
	}
	return nil
}

// AsElement returns the element itself. It satisfies [Elementer].
func (el *Element) AsElement() *Element {
	return el
}

// Init sets up the properties of the element. It is called by [tree.InitNode].
func (el *Element) Init() {
	el.Visible = property.NewBool(true)
	el.Visible.WithName("visible")

	el.Bounds = property.New(image.Rectangle{}).WithName("bounds")
	errors.Must1(el.Bounds.AddFilter(nil, image.Rectangle.Canon))

	el.Hovered = newState("hovered")
	el.Focused = newState("focused")
}

// newState returns a new read-only bool property owned by the scene.
func newState(name string) *property.Bool {
	p := property.NewBool(false)
	p.WithName(name)
	errors.Must(p.SetOwner(nil, owner))
	errors.Must(p.SetReadOnly(owner, true))
	return p
}

// Input returns the input this element is attached to, or nil.
func (el *Element) Input() *Input {
	return el.input
}

// SetBounds sets the bounds of the element to the given rectangle.
func (el *Element) SetBounds(r image.Rectangle) *Element {
	errors.Log(el.Bounds.Set(r, nil))
	return el
}

// IsDisplayed returns whether this element and all of its ancestors
// are visible, and its bounds are not empty.
func (el *Element) IsDisplayed() bool {
	if el.Bounds.Get().Empty() {
		return false
	}
	return el.WalkUp(func(n tree.Node) bool {
		e := AsElement(n)
		return e == nil || e.Visible.Get()
	})
}

// ContainsPoint returns whether the given point is within the bounds of the element.
func (el *Element) ContainsPoint(pt image.Point) bool {
	return pt.In(el.Bounds.Get())
}

// VisibleChildren returns the direct children of the element
// that are visible, in order.
func (el *Element) VisibleChildren() []*Element {
	var res []*Element
	for e := range tree.ChildrenOf[Elementer](el) {
		if c := e.AsElement(); c.Visible.Get() {
			res = append(res, c)
		}
	}
	return res
}

// WalkVisible calls the given function on the element and its visible
// descendants in depth-first pre-order, with the depth of each element
// relative to this one. Invisible elements and their subtrees are skipped.
func (el *Element) WalkVisible(fun func(el *Element, depth int)) {
	el.walkVisible(fun, 0)
}

func (el *Element) walkVisible(fun func(el *Element, depth int), depth int) {
	if !el.Visible.Get() {
		return
	}
	fun(el, depth)
	for _, c := range el.VisibleChildren() {
		c.walkVisible(fun, depth+1)
	}
}

// ElementAt returns the deepest displayed element under the given root
// whose bounds contain the given point. Later siblings are on top of
// earlier ones. It returns nil if no element contains the point.
func ElementAt(root *Element, pt image.Point) *Element {
	var found *Element
	root.WalkDown(func(n tree.Node) bool {
		el := AsElement(n)
		if el == nil || !el.Visible.Get() || !el.ContainsPoint(pt) {
			return tree.Break
		}
		found = el
		return tree.Continue
	})
	return found
}

// OnChildAdded attaches the new child to the input of this element,
// or detaches it from its input if this element has none.
func (el *Element) OnChildAdded(child tree.Node) {
	c := AsElement(child)
	switch {
	case c == nil:
	case el.input != nil:
		errors.Log(el.input.Attach(c))
	case c.input != nil:
		errors.Log(c.input.Detach(c))
	}
}

// OnChildRemoved detaches the removed child from its input.
func (el *Element) OnChildRemoved(child tree.Node) {
	if c := AsElement(child); c != nil && c.input != nil {
		errors.Log(c.input.Detach(c))
	}
}
