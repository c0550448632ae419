// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/tree"
)

func showCmd() *cobra.Command {
	var at string
	var visible bool
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the element tree of a scene file",
		Long: `Show loads the given scene file, which is in YAML if it has a .yaml
or .yml extension and in TOML otherwise, and prints its element tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := OpenDesc(args[0])
			if err != nil {
				return err
			}
			root, err := d.Build()
			if err != nil {
				return err
			}
			slog.Info("loaded scene", "file", args[0], "elements", count(root))
			if at != "" {
				pt, err := parsePoint(at)
				if err != nil {
					return err
				}
				in := scene.NewInput("scenetree")
				if err := in.Attach(root); err != nil {
					return err
				}
				if _, err := in.MouseMove(root, pt); err != nil {
					return err
				}
			}
			printTree(cmd.OutOrStdout(), root, visible)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "mark the element under the point `X,Y`")
	cmd.Flags().BoolVar(&visible, "visible", false, "only print visible elements")
	return cmd
}

// parsePoint parses a point in the form X,Y.
func parsePoint(s string) (image.Point, error) {
	var pt image.Point
	if _, err := fmt.Sscanf(s, "%d,%d", &pt.X, &pt.Y); err != nil {
		return pt, fmt.Errorf("invalid point %q: want X,Y", s)
	}
	return pt, nil
}

// count returns the number of elements in the given tree.
func count(root *scene.Element) int {
	n := 0
	root.WalkDown(func(tree.Node) bool {
		n++
		return tree.Continue
	})
	return n
}

// printTree prints one line for each element of the given tree, indented
// by depth. If visible is true, hidden elements and their children are
// skipped.
func printTree(w io.Writer, root *scene.Element, visible bool) {
	out := termenv.NewOutput(w)
	line := func(el *scene.Element, depth int) {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(out.String(el.Name).Bold().String())
		if r := el.Bounds.Get(); !r.Empty() {
			b.WriteString(" " + out.String(r.String()).Foreground(termenv.ANSICyan).String())
		}
		if !el.Visible.Get() {
			b.WriteString(" " + out.String("hidden").Faint().String())
		}
		if el.Hovered.Get() {
			b.WriteString(" " + out.String("*").Foreground(termenv.ANSIGreen).String())
		}
		fmt.Fprintln(w, b.String())
	}
	if visible {
		root.WalkVisible(line)
		return
	}
	root.WalkDown(func(n tree.Node) bool {
		el := scene.AsElement(n)
		line(el, el.Depth())
		return tree.Continue
	})
}
