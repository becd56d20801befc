package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/example/easel/internal/editor"
	"github.com/example/easel/internal/store"
	"github.com/example/easel/internal/tools"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func closeWithLog(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Printf("%s: close: %v", name, err)
	}
}

// editCmd runs an editing session, either from -e commands or interactively.
type editCmd struct {
	*root
	fs *flag.FlagSet

	execs         commandList
	output        string
	fromClipboard bool
	ephemeral     bool
	verbose       bool
	file          string
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	c := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.Var(&c.execs, "e", "execute an editor command (may be specified multiple times)")
	fs.StringVar(&c.output, "output", "", "file written by save (defaults to the loaded file)")
	fs.BoolVar(&c.fromClipboard, "from-clipboard", false, "start from the clipboard image")
	fs.BoolVar(&c.ephemeral, "ephemeral", false, "do not read or write the session database")
	fs.BoolVar(&c.verbose, "v", false, "report options panel changes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, &UsageError{of: c}
	}
	c.file = fs.Arg(0)
	if c.file != "" && c.fromClipboard {
		return nil, fmt.Errorf("-from-clipboard cannot be combined with an input file")
	}
	return c, nil
}

func (c *editCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *editCmd) Run() error {
	defaultTool, err := c.resolveDefaultTool()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := tools.NewRegistry()
	c.config.Apply(reg)

	opts := []editor.Option{
		editor.WithDefaultTool(defaultTool),
		editor.WithColor(c.config.Color),
		editor.WithSaveDir(c.config.SaveDir),
		editor.WithOutput(c.output),
		editor.WithNotifier(c.notifier),
		editor.WithWriter(c.stdout),
		editor.WithVerbose(c.verbose),
	}
	if !c.ephemeral {
		if path := c.resolveStatePath(); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("failed to create state directory: %w", err)
			}
			db, err := store.Open(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to open state database %s: %w", path, err)
			}
			defer closeWithLog("state database", db)
			opts = append(opts, editor.WithStore(db))
		}
	}
	ed := editor.New(ctx, reg, opts...)

	switch {
	case c.fromClipboard:
		if err := ed.Paste(); err != nil {
			return err
		}
	case c.file != "":
		if err := ed.LoadImage(c.file); err != nil {
			return err
		}
	}

	if len(c.execs) > 0 {
		for _, line := range c.execs {
			done, err := ed.Execute(line)
			if err != nil {
				return fmt.Errorf("%s: %w", line, err)
			}
			if done {
				break
			}
		}
		return nil
	}
	return c.interactive(ctx, ed)
}

func (c *editCmd) interactive(ctx context.Context, ed *editor.Editor) error {
	fmt.Fprintln(c.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(c.stdin)
	for ctx.Err() == nil {
		fmt.Fprint(c.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := ed.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			continue
		}
		if done {
			break
		}
	}
	return scanner.Err()
}
