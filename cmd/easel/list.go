package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/example/easel/internal/palette"
	"github.com/example/easel/internal/tools"
)

type toolsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	cmd := &toolsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *toolsCmd) Run() error {
	defaultTool, err := c.resolveDefaultTool()
	if err != nil {
		return err
	}
	reg := tools.NewRegistry()
	fmt.Fprintln(c.stdout, "available tools (* marks the default tool):")
	for _, t := range tools.Types() {
		marker := " "
		if t == defaultTool {
			marker = "*"
		}
		shortcut := "-"
		if s, ok := tools.Shortcut(t); ok {
			shortcut = string(s.Rune)
		}
		tool, err := reg.Create(t, nil)
		if err != nil {
			return err
		}
		var flags []string
		caps := tool.Capabilities()
		if caps.OptionsView {
			flags = append(flags, "options")
		}
		if caps.AcceptsColor {
			flags = append(flags, "color")
		}
		fmt.Fprintf(c.stdout, "%s %-8s %s  %s\n", marker, t, shortcut, strings.Join(flags, ","))
	}
	return nil
}

func (c *toolsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	fmt.Fprintln(c.stdout, "available palette colors (* marks the configured color):")
	for idx, entry := range palette.Entries() {
		marker := " "
		if entry.Color == c.config.Color {
			marker = "*"
		}
		col := entry.Color
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.R, col.G, col.B)
		fmt.Fprintf(c.stdout, "%s %2d: %-12s %s %s\n", marker, idx, entry.Name, palette.Hex(col), block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
