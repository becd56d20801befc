package editor

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"

	"github.com/example/easel/internal/canvas"
	"github.com/example/easel/internal/palette"
	"github.com/example/easel/internal/tools"
)

var commandHelp = map[string]string{
	"tool":      "tool <name>            activate a tool",
	"back":      "back                   return to the default tool",
	"key":       "key <letter>           activate the tool bound to a shortcut key",
	"color":     "color <name|#hex>      pick a color",
	"options":   "options show|hide|toggle|enable|disable",
	"down":      "down x y               press at a point",
	"move":      "move x y               move the pointer",
	"up":        "up x y                 release at a point",
	"tap":       "tap x y                press and release",
	"drag":      "drag x0 y0 x1 y1       press, move and release",
	"text":      "text <content>         set the pending text",
	"commit":    "commit                 render the pending text or line",
	"width":     "width <px>             set the stroke width",
	"tolerance": "tolerance <0-255>      set the fill tolerance",
	"size":      "size <pt>              set the text size",
	"shape":     "shape rect|ellipse     set the shape kind",
	"filled":    "filled true|false      fill shapes",
	"reset":     "reset                  drop the gesture in progress",
	"recreate":  "recreate               rebuild the active tool",
	"new":       "new w h                start a blank image",
	"load":      "load <file>            load an image",
	"paste":     "paste                  load the clipboard image",
	"save":      "save [file]            write the image",
	"copy":      "copy [color]           copy the image or the color",
	"status":    "status                 show the active tool",
	"help":      "help                   list commands",
	"exit":      "exit                   end the session",
}

// Execute runs one command line. done is true when the session should end.
func (e *Editor) Execute(line string) (done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "exit", "quit":
		return true, nil
	case "help":
		e.printHelp()
	case "tool":
		if len(args) != 1 {
			return false, usage(name)
		}
		t, err := tools.ParseType(args[0])
		if err != nil {
			return false, err
		}
		e.switchTool(t, false)
	case "back":
		e.switchTool(e.ctrl.ToolType(), true)
	case "key":
		if len(args) != 1 || utf8.RuneCountInString(args[0]) != 1 {
			return false, usage(name)
		}
		r, _ := utf8.DecodeRuneInString(args[0])
		t, ok := tools.ForKey(key.Event{Rune: r, Direction: key.DirPress})
		if !ok {
			return false, fmt.Errorf("no tool bound to %q", args[0])
		}
		e.switchTool(t, false)
	case "color":
		if len(args) != 1 {
			return false, usage(name)
		}
		c, err := palette.Parse(args[0])
		if err != nil {
			return false, err
		}
		e.ctrl.PickColor(c)
	case "options":
		if len(args) != 1 {
			return false, usage(name)
		}
		return false, e.options(args[0])
	case "down", "move", "up", "tap":
		pts, err := points(args, 1)
		if err != nil {
			return false, fmt.Errorf("%s: %w", name, err)
		}
		e.pointer(name, pts[0])
	case "drag":
		pts, err := points(args, 2)
		if err != nil {
			return false, fmt.Errorf("%s: %w", name, err)
		}
		tool := e.ctrl.CurrentTool()
		tool.HandleDown(pts[0])
		tool.HandleMove(pts[1])
		tool.HandleUp(pts[1])
	case "text":
		txt, ok := e.ctrl.CurrentTool().(*tools.TextTool)
		if !ok {
			return false, fmt.Errorf("text needs the text tool, %s is active", e.ctrl.ToolType())
		}
		content := strings.TrimSpace(line[len(fields[0]):])
		if !txt.SetText(content) {
			return false, errors.New("tap the image to place the text first")
		}
	case "commit":
		c, ok := e.ctrl.CurrentTool().(committer)
		if !ok {
			return false, fmt.Errorf("commit needs the text or line tool, %s is active", e.ctrl.ToolType())
		}
		if !c.Commit() {
			return false, errors.New("nothing to commit")
		}
	case "width", "tolerance", "size", "shape", "filled":
		if len(args) != 1 {
			return false, usage(name)
		}
		return false, e.setOption(name, args[0])
	case "reset":
		e.ctrl.ResetToolInternalState()
	case "recreate":
		e.ctrl.CreateTool()
	case "new":
		if len(args) != 2 {
			return false, usage(name)
		}
		w, errW := strconv.Atoi(args[0])
		h, errH := strconv.Atoi(args[1])
		if errW != nil || errH != nil {
			return false, usage(name)
		}
		return false, e.NewImage(w, h)
	case "load":
		if len(args) != 1 {
			return false, usage(name)
		}
		return false, e.LoadImage(args[0])
	case "paste":
		return false, e.Paste()
	case "save":
		if len(args) > 1 {
			return false, usage(name)
		}
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		saved, err := e.Save(path)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(e.out, "saved %s\n", saved)
	case "copy":
		if len(args) == 1 && strings.EqualFold(args[0], "color") {
			hex, err := e.CopyColor()
			if err != nil {
				return false, err
			}
			fmt.Fprintf(e.out, "copied %s\n", hex)
			return false, nil
		}
		if len(args) != 0 {
			return false, usage(name)
		}
		if err := e.Copy(); err != nil {
			return false, err
		}
		fmt.Fprintln(e.out, "copied image")
	case "status":
		e.printStatus()
	default:
		return false, fmt.Errorf("unknown command %q", name)
	}
	return false, nil
}

func usage(name string) error {
	return fmt.Errorf("usage: %s", commandHelp[name])
}

func (e *Editor) options(op string) error {
	switch strings.ToLower(op) {
	case "show":
		e.ctrl.ShowToolOptionsView()
	case "hide":
		e.ctrl.HideToolOptionsView()
	case "toggle":
		e.ctrl.ToggleToolOptionsView()
	case "enable":
		e.ctrl.EnableToolOptionsView()
	case "disable":
		e.ctrl.DisableToolOptionsView()
	default:
		return usage("options")
	}
	return nil
}

func (e *Editor) pointer(op string, p image.Point) {
	tool := e.ctrl.CurrentTool()
	switch op {
	case "down":
		tool.HandleDown(p)
	case "move":
		tool.HandleMove(p)
	case "up":
		tool.HandleUp(p)
	case "tap":
		tool.HandleDown(p)
		tool.HandleUp(p)
	}
}

func points(args []string, n int) ([]image.Point, error) {
	if len(args) != n*2 {
		return nil, fmt.Errorf("expected %d coordinates, got %d", n*2, len(args))
	}
	pts := make([]image.Point, n)
	for i := range pts {
		x, err := strconv.Atoi(args[i*2])
		if err != nil {
			return nil, fmt.Errorf("invalid x %q", args[i*2])
		}
		y, err := strconv.Atoi(args[i*2+1])
		if err != nil {
			return nil, fmt.Errorf("invalid y %q", args[i*2+1])
		}
		pts[i] = image.Pt(x, y)
	}
	return pts, nil
}

func (e *Editor) printHelp() {
	names := make([]string, 0, len(commandHelp))
	for name := range commandHelp {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(e.out, commandHelp[name])
	}
}

// committer is a tool holding work that "commit" can finalize.
type committer interface {
	Commit() bool
}

func (e *Editor) printStatus() {
	s := e.ctrl.OptionsState()
	fmt.Fprintf(e.out, "tool %s (default %s)\n", e.ctrl.ToolType(), e.ctrl.DefaultToolType())
	fmt.Fprintf(e.out, "color %s pending %s\n", palette.Hex(e.ctrl.ToolColor()), palette.Hex(e.ctrl.PendingColor()))
	fmt.Fprintf(e.out, "options visible=%v enabled=%v available=%v\n", s.Visible, s.Enabled, s.HasOptionsView)
	if c, ok := e.ctrl.CurrentTool().(tools.Configurable); ok && s.HasOptionsView {
		st := c.Settings()
		fmt.Fprintf(e.out, "settings width=%d tolerance=%d size=%g shape=%s filled=%v\n",
			st.Width, st.Tolerance, st.TextSize, st.Shape, st.Filled)
	}
	if txt, ok := e.ctrl.CurrentTool().(*tools.TextTool); ok {
		if content, at, ok := txt.Pending(); ok && content != "" {
			w, h, _, err := canvas.MeasureText(content, txt.Settings().TextSize)
			if err != nil {
				log.Printf("measure text: %v", err)
			} else {
				fmt.Fprintf(e.out, "text %q at (%d,%d) %dx%d\n", content, at.X, at.Y, w, h)
			}
		}
	}
	if img := e.ctrl.Bitmap(); img != nil {
		b := img.Bounds()
		src := e.source
		if src == "" {
			src = "untitled"
		}
		fmt.Fprintf(e.out, "image %s %dx%d\n", src, b.Dx(), b.Dy())
	}
}
