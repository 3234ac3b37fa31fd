// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/brushy/surface"
)

// upperHalf draws the top pixel of a cell as foreground and the bottom
// pixel as background, giving two canvas rows per terminal row.
const upperHalf = '▀'

// termPresenter shows a canvas frame on a tcell screen.
type termPresenter struct {
	screen     tcell.Screen
	frame      []byte
	width      int
	height     int
	cols, rows int
	background [3]int32
	closed     bool
}

var _ surface.Presenter = (*termPresenter)(nil)

// newTermPresenter creates a presenter for a width x height canvas on
// screen. Transparent pixels are composited over black.
func newTermPresenter(screen tcell.Screen, width, height int) (*termPresenter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", surface.ErrInvalidDimensions, width, height)
	}
	cols, rows := screen.Size()
	return &termPresenter{
		screen: screen,
		frame:  make([]byte, width*height*4),
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
	}, nil
}

// canvasSize returns the canvas dimensions that fill a terminal.
func canvasSize(cols, rows int) (width, height int) {
	return max(cols, 1), max(rows*2, 2)
}

func (p *termPresenter) FrameSize() (width, height int) { return p.width, p.height }
func (p *termPresenter) Frame() []byte                  { return p.frame }

// Resize records the terminal size in cells.
func (p *termPresenter) Resize(cols, rows int) error {
	if p.closed {
		return surface.ErrClosed
	}
	p.cols, p.rows = cols, rows
	p.screen.Clear()
	return nil
}

// Present writes the frame to the screen. Canvas pixels outside the
// terminal are cropped.
func (p *termPresenter) Present() error {
	if p.closed {
		return surface.ErrClosed
	}
	cols := min(p.cols, p.width)
	rows := min(p.rows, (p.height+1)/2)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := p.color(cx, cy*2)
			bottom := p.color(cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
	p.screen.Show()
	return nil
}

// color returns the pixel at (x, y) composited over the background.
// Rows past the canvas bottom are background.
func (p *termPresenter) color(x, y int) tcell.Color {
	bg := p.background
	if y >= p.height {
		return tcell.NewRGBColor(bg[0], bg[1], bg[2])
	}
	i := (y*p.width + x) * 4
	px := p.frame[i : i+4]
	a := int32(px[3])
	mix := func(c byte, b int32) int32 {
		return (int32(c)*a + b*(255-a) + 127) / 255
	}
	return tcell.NewRGBColor(mix(px[0], bg[0]), mix(px[1], bg[1]), mix(px[2], bg[2]))
}

func (p *termPresenter) Close() error {
	p.closed = true
	return nil
}
