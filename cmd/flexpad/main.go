// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/flexpad/main.go
// Summary: Demo spreadsheet viewer: a full-screen GridView over a generated
// sheet, wired to the config store, the grid registry, and a scroll-position
// store.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dave-wathen/flexpad/config"
	"github.com/dave-wathen/flexpad/grid"
	"github.com/dave-wathen/flexpad/grid/extent"
	"github.com/dave-wathen/flexpad/grid/scroll"
	"github.com/dave-wathen/flexpad/registry"
	"github.com/dave-wathen/flexpad/ui/core"
	"github.com/dave-wathen/flexpad/ui/gridview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("flexpad", flag.ContinueOnError)
	rows := fs.Int("rows", 500, "Number of rows in the demo sheet")
	cols := fs.Int("cols", 40, "Number of columns in the demo sheet")
	logPath := fs.String("log", "flexpad.log", "Log file path")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("Application starting...")

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	cfg := config.Get()
	if err := config.Err(); err != nil {
		log.Printf("Config: using defaults after load error: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()
	screen.HideCursor()

	gv := newSheet(*rows, *cols, cfg.Scroll)

	positions := scroll.NewPositions()
	gv.UsePositions(positions, scroll.PositionKey{Document: "demo", View: "sheet1"})

	reg := registry.New()
	id := reg.Add(gv)
	log.Printf("Registered demo grid as %s", id)
	defer reg.Remove(id)

	return eventLoop(screen, gv)
}

// newSheet builds a GridView over a generated revenue sheet: a label column,
// a wide notes column, and numeric columns of width 10.
func newSheet(nrows, ncols int, cfg config.Scroll) *gridview.GridView {
	colSeq := extent.New()
	colSeq.Push(14)
	colSeq.Push(24)
	colSeq.PushN(ncols-2, 10)
	rowSeq := extent.New()
	rowSeq.PushN(nrows, 1)
	return gridview.New(sheetModel{}, colSeq, rowSeq, cfg)
}

type sheetModel struct{}

func (sheetModel) CellText(rc grid.RowCol) string {
	switch rc.Col {
	case 0:
		return fmt.Sprintf("Item %d", rc.Row+1)
	case 1:
		return fmt.Sprintf("Batch %d, lane %d", rc.Row/10+1, rc.Row%10)
	default:
		return fmt.Sprintf("%d.%02d", (rc.Row+1)*(rc.Col-1), (rc.Row*7+rc.Col*13)%100)
	}
}

func eventLoop(screen tcell.Screen, gv *gridview.GridView) error {
	w, h := screen.Size()
	gv.SetPosition(0, 0)
	gv.Resize(w, h)

	dirty := make(chan struct{}, 1)
	gv.SetInvalidator(func(core.Rect) {
		select {
		case dirty <- struct{}{}:
		default:
		}
	})
	gv.OnViewport(func(vp scroll.Viewport) {
		log.Printf("Viewport: rows %d-%d cols %d-%d", vp.Cells.Start.Row, vp.Cells.End.Row, vp.Cells.Start.Col, vp.Cells.End.Col)
	})

	quit := make(chan struct{})
	events := make(chan tcell.Event, 10)
	go func() {
		for {
			select {
			case <-quit:
				return
			default:
				events <- screen.PollEvent()
			}
		}
	}()

	draw(screen, gv)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				gv.Resize(w, h)
				screen.Clear()
				draw(screen, gv)
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return nil
				}
				if gv.HandleKey(ev) {
					draw(screen, gv)
				}
			case *tcell.EventMouse:
				if gv.HandleMouse(ev) {
					draw(screen, gv)
				}
			}
		case <-dirty:
			draw(screen, gv)
		}
	}
}

// draw renders the widget into an off-screen buffer and blits it.
func draw(screen tcell.Screen, gv *gridview.GridView) {
	w, h := gv.Size()
	buf := core.NewBuffer(w, h)
	p := core.NewPainter(buf, core.Rect{X: 0, Y: 0, W: w, H: h})
	gv.Draw(p)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, buf[y][x].Ch, nil, buf[y][x].Style)
		}
	}
	screen.Show()
}
