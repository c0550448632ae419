// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenetree loads scene description files and prints their
// element trees.
package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/scenegraph/base/logx"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		out := termenv.NewOutput(os.Stderr)
		fmt.Fprintln(os.Stderr, out.String("error:").Foreground(termenv.ANSIRed).String(), err)
		os.Exit(1)
	}
}

// rootCmd returns the root command with all subcommands added.
func rootCmd() *cobra.Command {
	var vv, v, q bool
	cmd := &cobra.Command{
		Use:   "scenetree",
		Short: "Inspect scene description files",
		Long: `Scenetree loads scene description files written in YAML or TOML,
builds their element trees and prints them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "show debug log messages")
	pf.BoolVarP(&v, "verbose", "v", false, "show info log messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show error log messages")

	cmd.AddCommand(showCmd(), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "scenetree", version)
		},
	}
}
