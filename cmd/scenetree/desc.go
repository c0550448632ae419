// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/settings"
	"cogentcore.org/scenegraph/tree"
)

// Desc describes an element and its children in a scene file.
type Desc struct {

	// Name is the name of the element. Children without
	// a name are named automatically.
	Name string `yaml:"name" toml:"name"`

	// Bounds is the bounding box of the element as [x0, y0, x1, y1].
	Bounds []int `yaml:"bounds,omitempty" toml:"bounds,omitempty"`

	// Hidden makes the element invisible.
	Hidden bool `yaml:"hidden,omitempty" toml:"hidden,omitempty"`

	// Children are the child elements, in order.
	Children []Desc `yaml:"children,omitempty" toml:"children,omitempty"`
}

// ReadDesc decodes a scene description in the given format.
func ReadDesc(r io.Reader, f settings.Format) (*Desc, error) {
	d := &Desc{}
	var err error
	switch f {
	case settings.YAML:
		err = yaml.NewDecoder(r).Decode(d)
	default:
		err = toml.NewDecoder(r).Decode(d)
	}
	if err != nil {
		return nil, fmt.Errorf("read scene as %v: %w", f, err)
	}
	return d, nil
}

// OpenDesc reads the scene description in the given file, in the
// format given by [settings.FormatOf].
func OpenDesc(filename string) (*Desc, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDesc(f, settings.FormatOf(filename))
}

// Build returns a new scene tree for the description.
func (d *Desc) Build() (*scene.Element, error) {
	root := scene.NewRoot(d.Name)
	if err := d.Update(root); err != nil {
		return nil, err
	}
	return root, nil
}

// Update makes the given element and its subtree match the description.
// Existing children with the names of described children are kept and
// updated in place; other children are removed. Children without a name
// are named after their index, like element-0.
func (d *Desc) Update(el *scene.Element) error {
	switch len(d.Bounds) {
	case 0:
	case 4:
		el.SetBounds(image.Rect(d.Bounds[0], d.Bounds[1], d.Bounds[2], d.Bounds[3]))
	default:
		return fmt.Errorf("element %v: bounds must have 4 values, not %d", el, len(d.Bounds))
	}
	if err := el.Visible.Set(!d.Hidden, nil); err != nil {
		return err
	}
	p := &tree.Plan{}
	for i, cd := range d.Children {
		name := cd.Name
		if name == "" {
			name = fmt.Sprintf("element-%d", i)
		}
		p.Add(name, func() tree.Node { return &scene.Element{} }, nil)
	}
	if _, err := p.Update(el); err != nil {
		return err
	}
	var errs []error
	for i := range d.Children {
		c := scene.AsElement(el.Child(i))
		errs = append(errs, d.Children[i].Update(c))
	}
	return errors.Join(errs...)
}
