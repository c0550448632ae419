// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"cogentcore.org/scenegraph/base/errors"
)

// Plan represents a plan for the children of a [Node], identified by their
// names. [Plan.Update] makes the children of a node match the plan, keeping
// the existing children whose names are in the plan. To add a child item to
// a plan, use [AddAt] or [Plan.Add].
type Plan struct {

	// Children are the [PlanItem]s for the children, in order.
	Children []*PlanItem
}

// PlanItem represents a plan for how a child [Node] should be constructed and initialized.
// See [Plan] for more information.
type PlanItem struct {

	// Name is the name of the planned node.
	Name string

	// New returns a new node of the correct type for this child.
	New func() Node

	// Init is a slice of functions that are called in sequential ascending
	// order on a child made by New, after it has been added to its parent.
	// They are not called on existing children that are kept.
	Init []func(n Node)
}

// AddAt adds a new [PlanItem] to the given [Plan] for a node of type N with
// the given name and function to initialize the node. The node is
// guaranteed to be added to its parent before the init function is called.
func AddAt[N Node](p *Plan, name string, init func(n N)) {
	p.Add(name, func() Node {
		return New[N]()
	}, func(n Node) {
		init(n.(N))
	})
}

// Add adds a new [PlanItem] with the given name and functions to the [Plan].
// The init function may be nil.
func (p *Plan) Add(name string, new func() Node, init func(n Node)) {
	item := &PlanItem{Name: name, New: new}
	if init != nil {
		item.Init = append(item.Init, init)
	}
	p.Children = append(p.Children, item)
}

// Update updates the children of the given [Node] in accordance with the
// [Plan]. Children whose names are not in the plan are removed through
// [Node.RemoveChild], missing children are made with [PlanItem.New] and
// added with [NodeBase.AddChild], and children are moved into the planned
// order. Children that the node refuses to release stay after the planned
// ones. It returns whether the children changed, along with all errors.
func (p *Plan) Update(n Node) (bool, error) {
	nb := n.AsTree()
	if err := checkThis(nb); err != nil {
		return false, err
	}
	planned := make(map[string]bool, len(p.Children))
	for _, item := range p.Children {
		if planned[item.Name] {
			return false, fmt.Errorf("tree: plan for %v: duplicate name %q", nb, item.Name)
		}
		planned[item.Name] = true
	}

	mods := false
	var errs []error
	for _, c := range nb.Children() {
		if !planned[c.AsTree().Name] {
			if nb.This.RemoveChild(c) {
				mods = true
			} else {
				errs = append(errs, fmt.Errorf("tree: plan for %v: %w: %v refused to be removed", nb, errors.ErrGraphViolation, c))
			}
		}
	}
	for i, item := range p.Children {
		idx := nb.IndexByName(item.Name, i)
		if idx >= 0 {
			if idx != i {
				nb.Move(idx, i)
				mods = true
			}
			continue
		}
		child := item.New()
		child.AsTree().Name = item.Name
		added, err := nb.AddChild(child)
		if !added {
			errs = append(errs, err)
			continue
		}
		mods = true
		errs = append(errs, err)
		nb.Move(nb.Len()-1, i)
		for _, f := range item.Init {
			f(child)
		}
	}
	return mods, errors.Join(errs...)
}
