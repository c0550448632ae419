// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/property"
	"cogentcore.org/scenegraph/tree"
)

// Input routes pointer and focus state to the elements attached to it.
// It is the only code that can change the [Element.Hovered] and
// [Element.Focused] properties of those elements. An Input is not safe
// for concurrent use.
type Input struct {

	// Name is the name of the input, used in log messages.
	Name string

	// tok is the token owning the state of attached elements.
	tok *property.Token

	// hovered is the element the pointer is over, if any.
	hovered *Element

	// focused is the element with keyboard focus, if any.
	focused *Element
}

// NewInput returns a new input with the given name.
func NewInput(name string) *Input {
	return &Input{Name: name, tok: owner.Derive(name)}
}

// Hovered returns the element the pointer is over, or nil.
func (in *Input) Hovered() *Element {
	return in.hovered
}

// Focused returns the element with keyboard focus, or nil.
func (in *Input) Focused() *Element {
	return in.focused
}

// Attach attaches the given element and all of its descendants to this
// input, taking them over from any other input they were attached to.
// Elements added to an attached element later are attached automatically.
func (in *Input) Attach(root *Element) error {
	var errs []error
	root.WalkDown(func(n tree.Node) bool {
		if el := AsElement(n); el != nil {
			errs = append(errs, in.attach(el))
		}
		return tree.Continue
	})
	return errors.Join(errs...)
}

func (in *Input) attach(el *Element) error {
	if el.input == in {
		return nil
	}
	from := in.tok
	if el.input != nil {
		from = el.input.tok
		el.input.release(el)
	}
	err := errors.Join(el.Hovered.SetOwner(from, in.tok), el.Focused.SetOwner(from, in.tok))
	if err != nil {
		return fmt.Errorf("scene: attach %v to input %q: %w", el, in.Name, err)
	}
	el.input = in
	return nil
}

// Detach detaches the given element and all of its descendants that are
// attached to this input, clearing their hover and focus state.
func (in *Input) Detach(root *Element) error {
	var errs []error
	root.WalkDown(func(n tree.Node) bool {
		el := AsElement(n)
		if el == nil || el.input != in {
			return tree.Continue
		}
		in.release(el)
		errs = append(errs, el.Hovered.SetOwner(in.tok, owner), el.Focused.SetOwner(in.tok, owner))
		el.input = nil
		return tree.Continue
	})
	return errors.Join(errs...)
}

// release clears the hover and focus state of the given element
// if it has them.
func (in *Input) release(el *Element) {
	if in.hovered == el {
		in.hovered = nil
		errors.Log(el.Hovered.Set(false, in.tok))
	}
	if in.focused == el {
		in.focused = nil
		errors.Log(el.Focused.Set(false, in.tok))
	}
}

// checkAttached returns an error if the given non-nil
// element is not attached to this input.
func (in *Input) checkAttached(el *Element, op string) error {
	if el != nil && el.input != in {
		return fmt.Errorf("scene: %s %v on input %q: %w: element is not attached", op, el, in.Name, errors.ErrCallerIdentity)
	}
	return nil
}

// SetHover moves the hover state to the given element, which may be nil
// to clear it. It returns whether the hovered element changed.
func (in *Input) SetHover(el *Element) (bool, error) {
	if err := in.checkAttached(el, "hover"); err != nil {
		return false, err
	}
	prev := in.hovered
	if prev == el {
		return false, nil
	}
	var errs []error
	if prev != nil {
		errs = append(errs, prev.Hovered.Set(false, in.tok))
	}
	in.hovered = el
	if el != nil {
		errs = append(errs, el.Hovered.Set(true, in.tok))
	}
	return true, errors.Join(errs...)
}

// SetFocus moves the keyboard focus to the given element, which may be
// nil to clear it. It returns whether the focused element changed.
func (in *Input) SetFocus(el *Element) (bool, error) {
	if err := in.checkAttached(el, "focus"); err != nil {
		return false, err
	}
	prev := in.focused
	if prev == el {
		return false, nil
	}
	slog.Debug("scene: set focus", "input", in.Name, "from", prev, "to", el)
	var errs []error
	if prev != nil {
		errs = append(errs, prev.Focused.Set(false, in.tok))
	}
	in.focused = el
	if el != nil {
		errs = append(errs, el.Focused.Set(true, in.tok))
	}
	return true, errors.Join(errs...)
}

// FocusNext moves the focus to the next displayed element attached to this
// input after the current focus, in depth-first order within the subtree
// of the given root, wrapping around at the end. It returns whether an
// element got focus.
func (in *Input) FocusNext(root *Element) (bool, error) {
	top := root.This
	start := top
	if in.focused != nil && in.focused.HasAncestor(top) {
		start = in.focused.This
	}
	cur := start
	for {
		next := tree.Next(cur)
		if next == nil || !next.AsTree().HasAncestor(top) {
			next = top
		}
		if el := AsElement(next); el != nil && el.input == in && el.IsDisplayed() {
			if el == in.focused {
				return false, nil
			}
			return in.SetFocus(el)
		}
		if next == start {
			return false, nil
		}
		cur = next
	}
}

// MouseMove updates the hover state for a pointer at the given position
// over the tree of the given root. It returns whether the hovered
// element changed.
func (in *Input) MouseMove(root *Element, pos image.Point) (bool, error) {
	el := ElementAt(root, pos)
	if el != nil && el.input != in {
		el = nil
	}
	return in.SetHover(el)
}
