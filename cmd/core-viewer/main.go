// Command core-viewer is a terminal UI inspecting assembled warriors laid
// out in a core image: resolved instructions, metadata and assembler
// diagnostics.
package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"go.creack.net/redcode/cli"
	"go.creack.net/redcode/core"
)

var colors = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
}

type viewer struct {
	app *tview.Application

	coreView     *tview.Table
	metadataView *tview.TextView
	logsView     *tview.TextView

	cfg  cli.Config
	core *core.Core
}

func newViewer(cfg cli.Config, c *core.Core) *viewer {
	app := tview.NewApplication().EnableMouse(true)

	newTextView := func(title string) *tview.TextView {
		tv := tview.NewTextView().SetDynamicColors(true)
		tv.SetTitle(title).SetBorder(true)
		return tv
	}

	coreView := tview.NewTable().SetBorders(false).SetSelectable(true, false)
	coreView.SetTitle("Core").SetBorder(true)

	metadataView := newTextView("Warriors")
	logsView := newTextView("Diagnostics")

	rightPane := tview.NewFlex().SetDirection(tview.FlexRow)
	rightPane.
		AddItem(metadataView, 0, 2, false).
		AddItem(logsView, 0, 1, false)

	flex := tview.NewFlex().
		AddItem(coreView, 0, 2, true).
		AddItem(rightPane, 0, 1, false)

	app.SetRoot(flex, true)

	return &viewer{
		app:          app,
		coreView:     coreView,
		metadataView: metadataView,
		logsView:     logsView,
		cfg:          cfg,
		core:         c,
	}
}

func (v *viewer) drawCore() {
	for i, elem := range []string{"addr", "instruction"} {
		cell := tview.NewTableCell(elem).
			SetAttributes(tcell.AttrBold).
			SetAlign(tview.AlignCenter)
		v.coreView.SetCell(0, i, cell).SetFixed(1, i)
	}

	row := 1
	for addr := 0; addr < v.core.Size(); addr++ {
		ins, _ := v.core.Get(addr)
		if ins == (core.Instruction{}) {
			continue
		}

		color := tcell.ColorDefault
		entry := false
		for i, w := range v.cfg.Warriors {
			if addr >= w.At && addr < w.At+len(w.Prog.Instructions) {
				color = colors[i%len(colors)]
				entry = addr == w.At+w.Prog.Origin
			}
		}

		addrCell := tview.NewTableCell(fmt.Sprintf("%04d", addr)).
			SetAlign(tview.AlignRight).
			SetTextColor(tcell.ColorDimGray)
		insCell := tview.NewTableCell(ins.String()).SetTextColor(color)
		if entry {
			insCell.SetAttributes(tcell.AttrBold | tcell.AttrUnderline)
		}
		v.coreView.SetCell(row, 0, addrCell)
		v.coreView.SetCell(row, 1, insCell)
		row++
	}
}

func (v *viewer) drawMetadata() {
	v.metadataView.Clear()
	for i, w := range v.cfg.Warriors {
		attr := "[" + colors[i%len(colors)].String() + ":::]"
		fmt.Fprintf(v.metadataView, "%s%s[-:-:-:-]\n", attr, w.ShortName)
		for _, tag := range []string{"name", "author", "version", "date", "redcode", "assertion"} {
			if value, ok := w.Prog.Metadata.Tag(tag); ok {
				fmt.Fprintf(v.metadataView, "  %-9s %s\n", tag, value)
			}
		}
		fmt.Fprintf(v.metadataView, "  %-9s %d (loaded at %d)\n", "origin", w.Prog.Origin, w.At)
	}
}

func (v *viewer) drawLogs() {
	v.logsView.Clear()
	for _, w := range v.cfg.Warriors {
		for _, diag := range w.Prog.Diagnostics {
			fmt.Fprintf(v.logsView, "%s: %s\n", w.ShortName, diag)
		}
	}
}

func (v *viewer) run() error {
	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			v.app.Stop()
			return nil
		}
		if event.Rune() == 'q' {
			v.app.Stop()
			return nil
		}
		return event
	})

	v.drawCore()
	v.drawMetadata()
	v.drawLogs()

	return v.app.Run()
}

func main() {
	cfg, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}

	c := core.New(cfg.CoreSize)
	for _, w := range cfg.Warriors {
		if err := w.Prog.Load(c, w.At); err != nil {
			log.Fatalf("Failed to load %q: %s.", w.PathName, err)
		}
	}

	if err := newViewer(cfg, c).run(); err != nil {
		log.Fatalf("Failed to run viewer: %s.", err)
	}
}
