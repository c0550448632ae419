// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default logger to be a colored text handler
// writing to [os.Stderr] that only shows messages at or above [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: &UserLevel})))
}

// NewHandler returns a new [slog.TextHandler] writing to the given writer,
// with level names colored according to the color profile of the writer
// and without timestamps. The given options may be nil.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	out := termenv.NewOutput(w)
	ho := slog.HandlerOptions{}
	if opts != nil {
		ho = *opts
	}
	replace := ho.ReplaceAttr
	ho.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if replace != nil {
			a = replace(groups, a)
		}
		if len(groups) > 0 {
			return a
		}
		switch a.Key {
		case slog.TimeKey:
			return slog.Attr{}
		case slog.LevelKey:
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(lvl)).String())
		}
		return a
	}
	return slog.NewTextHandler(w, &ho)
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIMagenta
	}
}
