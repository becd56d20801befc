// Package editor is the event layer of an editing session. It turns user
// commands into tool controller calls, runs the image-load pipeline and keeps
// the session's tool settings in the state database.
package editor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/example/easel/internal/canvas"
	"github.com/example/easel/internal/clipboard"
	"github.com/example/easel/internal/controller"
	"github.com/example/easel/internal/notify"
	"github.com/example/easel/internal/palette"
	"github.com/example/easel/internal/store"
	"github.com/example/easel/internal/tools"
)

var (
	// ErrOptionsDisabled is returned when an option is edited while the
	// options panel is disabled.
	ErrOptionsDisabled = errors.New("tool options are disabled")
	// ErrNoOptionsView is returned when an option is edited on a tool that
	// has no options panel.
	ErrNoOptionsView = errors.New("tool has no options")
	// ErrNoImage is returned by operations that need a loaded image.
	ErrNoImage = errors.New("no image loaded")
)

// Replaced in tests.
var (
	loadImageFn      = canvas.Load
	readClipboardFn  = clipboard.ReadImage
	writeClipboardFn = clipboard.WriteImage
	writeTextFn      = clipboard.WriteText
)

// Editor owns one tool controller and everything that feeds it.
type Editor struct {
	ctx      context.Context
	registry *tools.Registry
	ctrl     *controller.Controller

	out      io.Writer
	output   string
	saveDir  string
	source   string
	db       *store.DB
	notifier *notify.Notifier
	verbose  bool

	defaultTool tools.Type
	color       *color.RGBA
	image       *image.RGBA
}

// Option configures an Editor.
type Option func(*Editor)

// WithImage starts the session with img as the working bitmap.
func WithImage(img *image.RGBA) Option { return func(e *Editor) { e.image = img } }

// WithOutput sets the file written by save when no path is given.
func WithOutput(path string) Option { return func(e *Editor) { e.output = path } }

// WithSaveDir sets the directory used for generated file names.
func WithSaveDir(dir string) Option { return func(e *Editor) { e.saveDir = dir } }

// WithStore persists tool settings and session state in db.
func WithStore(db *store.DB) Option { return func(e *Editor) { e.db = db } }

// WithNotifier sends desktop notifications for load, save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(e *Editor) { e.notifier = n } }

// WithWriter sets where command feedback is written.
func WithWriter(w io.Writer) Option { return func(e *Editor) { e.out = w } }

// WithDefaultTool sets the tool restored by back navigation.
func WithDefaultTool(t tools.Type) Option { return func(e *Editor) { e.defaultTool = t } }

// WithColor sets the starting color. A color stored in the state database
// takes precedence.
func WithColor(c color.RGBA) Option { return func(e *Editor) { e.color = &c } }

// WithVerbose reports options panel changes as they happen.
func WithVerbose(v bool) Option { return func(e *Editor) { e.verbose = v } }

// New creates an Editor. Stored tool settings, color and last tool are
// restored when a store is configured.
func New(ctx context.Context, reg *tools.Registry, opts ...Option) *Editor {
	e := &Editor{
		ctx:         ctx,
		registry:    reg,
		out:         io.Discard,
		defaultTool: tools.Brush,
	}
	for _, o := range opts {
		o(e)
	}

	last, storedColor := e.restore()
	ctrlOpts := []controller.Option{
		controller.WithDefaultTool(e.defaultTool),
		controller.WithBitmap(e.image),
		controller.WithOptionsObserver(e.optionsChanged),
	}
	switch {
	case storedColor != nil:
		ctrlOpts = append(ctrlOpts, controller.WithColor(*storedColor))
	case e.color != nil:
		ctrlOpts = append(ctrlOpts, controller.WithColor(*e.color))
	}
	e.ctrl = controller.New(reg, ctrlOpts...)
	e.ctrl.SetOnColorPickedListener(e.colorPicked)
	if last != nil {
		e.ctrl.SwitchTool(*last, false)
	}
	return e
}

// Controller exposes the tool controller driven by the session.
func (e *Editor) Controller() *controller.Controller { return e.ctrl }

// Output returns the path save writes to by default.
func (e *Editor) Output() string { return e.output }

// restore loads persisted settings into the registry and returns the last
// active tool and color, if stored.
func (e *Editor) restore() (*tools.Type, *color.RGBA) {
	if e.db == nil {
		return nil, nil
	}
	all, err := e.db.AllToolSettings(e.ctx)
	if err != nil {
		log.Printf("restore tool settings: %v", err)
	}
	for t, s := range all {
		e.registry.SetSettings(t, s)
	}

	var last *tools.Type
	if v, err := e.db.State(e.ctx, store.KeyLastTool); err != nil {
		log.Printf("restore last tool: %v", err)
	} else if v != "" {
		if t, err := tools.ParseType(v); err == nil {
			last = &t
		}
	}
	var col *color.RGBA
	if v, err := e.db.State(e.ctx, store.KeyLastColor); err != nil {
		log.Printf("restore last color: %v", err)
	} else if v != "" {
		if c, err := palette.Parse(v); err == nil {
			col = &c
		}
	}
	return last, col
}

func (e *Editor) remember(key, value string) {
	if e.db == nil {
		return
	}
	if err := e.db.SetState(e.ctx, key, value); err != nil {
		log.Printf("persist %s: %v", key, err)
	}
}

func (e *Editor) optionsChanged(s controller.OptionsState) {
	if !e.verbose {
		return
	}
	fmt.Fprintf(e.out, "options visible=%v enabled=%v available=%v\n", s.Visible, s.Enabled, s.HasOptionsView)
}

func (e *Editor) colorPicked(c color.RGBA) {
	hex := palette.Hex(c)
	// Picked colors join the palette so later lookups can name them.
	palette.Ensure(c, "")
	fmt.Fprintf(e.out, "color %s\n", palette.Name(c))
	e.remember(store.KeyLastColor, hex)
}

// switchTool activates t and records it as the last used tool.
func (e *Editor) switchTool(t tools.Type, back bool) {
	e.ctrl.SwitchTool(t, back)
	e.remember(store.KeyLastTool, e.ctrl.ToolType().String())
}

// SetImage makes img the working bitmap. Tools drop state tied to the
// previous image.
func (e *Editor) SetImage(img *image.RGBA, source string) {
	e.ctrl.SetBitmapFromSource(img)
	e.ctrl.ResetToolInternalStateOnImageLoaded()
	e.source = source
}

// LoadImage reads path and makes it the working bitmap. The first loaded file
// becomes the default save target.
func (e *Editor) LoadImage(path string) error {
	img, err := loadImageFn(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	e.SetImage(img, path)
	if e.output == "" {
		e.output = path
	}
	e.notifier.Load(path, img)
	return nil
}

// NewImage starts a blank white w×h bitmap.
func (e *Editor) NewImage(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid size %dx%d", w, h)
	}
	e.SetImage(canvas.New(w, h, color.White), "")
	return nil
}

// Paste replaces the working bitmap with the clipboard image.
func (e *Editor) Paste() error {
	img, err := readClipboardFn()
	if err != nil {
		return fmt.Errorf("failed to read clipboard: %w", err)
	}
	rgba := canvas.ToRGBA(img)
	e.SetImage(rgba, "clipboard")
	e.notifier.Load("clipboard", rgba)
	return nil
}

// Save writes the working bitmap. An empty path falls back to the output
// path and then to a generated name in the save directory.
func (e *Editor) Save(path string) (string, error) {
	img := e.ctrl.Bitmap()
	if img == nil {
		return "", ErrNoImage
	}
	if path == "" {
		path = e.output
	}
	if path == "" {
		dir := e.saveDir
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, "easel-"+time.Now().Format("20060102-150405")+".png")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := canvas.Save(path, img); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	e.notifier.Save(path)
	return path, nil
}

// Copy places the working bitmap on the clipboard.
func (e *Editor) Copy() error {
	img := e.ctrl.Bitmap()
	if img == nil {
		return ErrNoImage
	}
	if err := writeClipboardFn(img); err != nil {
		return fmt.Errorf("failed to copy image: %w", err)
	}
	e.notifier.Copy("image")
	return nil
}

// CopyColor places the pending color on the clipboard as hex text.
func (e *Editor) CopyColor() (string, error) {
	hex := palette.Hex(e.ctrl.PendingColor())
	if err := writeTextFn(hex); err != nil {
		return "", fmt.Errorf("failed to copy color: %w", err)
	}
	e.notifier.Copy(hex)
	return hex, nil
}
