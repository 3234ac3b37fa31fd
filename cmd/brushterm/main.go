// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command brushterm is an interactive brushy canvas in the terminal.
//
// Drag with the left mouse button to paint and with the right button to
// erase. Keys:
//
//	1-9      select layer
//	+ / -    grow or shrink the brush
//	x        clear the current layer
//	q, Esc   quit
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/brushy"
)

func main() {
	var (
		presets = flag.String("presets", "", "TOML brush preset file")
		name    = flag.String("brush", "", "preset name (requires -presets, default: first preset)")
		layers  = flag.Int("layers", brushy.DefaultLayers, "number of layers")
		logFile = flag.String("log", "", "write debug log to file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		brushy.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []brushy.CanvasOption{brushy.WithLayers(*layers)}
	if *presets != "" {
		all, err := brushy.LoadPresets(*presets)
		if err != nil {
			log.Fatalf("Failed to load presets: %v", err)
		}
		p, err := brushy.SelectPreset(all, *name)
		if err != nil {
			log.Fatalf("Failed to select preset: %v", err)
		}
		opts = append(opts, brushy.WithBrush(p.Brush), brushy.WithColor(p.Color))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	a, err := newApp(screen, opts...)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to create canvas: %v", err)
	}
	a.run()
}

// app routes terminal input to the canvas.
type app struct {
	screen   tcell.Screen
	canvas   *brushy.Canvas
	renderer *brushy.Renderer

	last    brushy.Point
	pressed tcell.ButtonMask
}

func newApp(screen tcell.Screen, opts ...brushy.CanvasOption) (*app, error) {
	w, h := canvasSize(screen.Size())
	canvas, err := brushy.NewCanvas(w, h, opts...)
	if err != nil {
		return nil, err
	}
	p, err := newTermPresenter(screen, w, h)
	if err != nil {
		return nil, err
	}
	r, err := brushy.NewRenderer(canvas, p)
	if err != nil {
		return nil, err
	}
	return &app{screen: screen, canvas: canvas, renderer: r}, nil
}

func (a *app) run() {
	for {
		if err := a.renderer.Render(); err != nil {
			brushy.Logger().Warn("brushterm: render failed", "err", err)
		}
		if !a.handle(a.screen.PollEvent()) {
			return
		}
	}
}

// handle processes one event and reports whether to keep running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventResize:
		if err := a.renderer.ResizeSurface(ev.Size()); err != nil {
			brushy.Logger().Warn("brushterm: resize failed", "err", err)
		}
		a.screen.Sync()
	case *tcell.EventMouse:
		a.mouse(ev)
	case *tcell.EventKey:
		return a.key(ev)
	}
	return true
}

// mouse turns a drag into stroke segments. The first event of a drag
// stamps once at the cursor.
func (a *app) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	cursor := brushy.Pt(float64(x), float64(y*2))
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2)

	last := a.last
	if buttons == 0 || buttons != a.pressed {
		last = cursor
	}
	a.pressed = buttons
	a.last = cursor

	var err error
	switch {
	case buttons&tcell.Button1 != 0:
		err = a.canvas.Paint(cursor, last)
	case buttons&tcell.Button2 != 0:
		err = a.canvas.Erase(cursor, last)
	}
	if err != nil {
		brushy.Logger().Warn("brushterm: stroke failed", "err", err)
	}
}

func (a *app) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r >= '1' && r <= '9':
		if err := a.canvas.SetCurrentLayer(int(r - '1')); err != nil {
			brushy.Logger().Debug("brushterm: no such layer", "layer", r-'0')
		}
	case r == '+' || r == '=':
		a.resizeBrush(1)
	case r == '-':
		a.resizeBrush(-1)
	case r == 'x':
		if l, err := a.canvas.Layer(a.canvas.CurrentLayer()); err == nil {
			l.Clear(color.NRGBA{})
			a.canvas.MarkDirty()
		}
	}
	return true
}

func (a *app) resizeBrush(delta float64) {
	b := a.canvas.Brush()
	r := b.Radius() + delta
	if r < 1 {
		return
	}
	if err := a.canvas.SetBrush(b.WithRadius(r)); err != nil {
		brushy.Logger().Warn("brushterm: brush rejected", "err", err)
	}
}
