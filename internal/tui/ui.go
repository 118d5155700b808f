// Package tui renders spawned processes in an interactive tview table.
//
// The view is intentionally static apart from kill results: the library does
// not track process liveness, so the table shows what was spawned and what
// the kill facility reported, nothing more.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Paintersrp/xproc"
	"github.com/Paintersrp/xproc/internal/metrics"
)

const tableTitle = "Processes"

// Entry describes one spawned process shown in the table.
type Entry struct {
	Name    string
	Pid     uint32
	Command string
	Status  string
}

// Killer delivers a termination request for a pid.
type Killer func(pid uint32) error

// Option configures UI behaviour.
type Option func(*UI)

// WithKiller overrides the termination path used by the kill keybinding.
func WithKiller(k Killer) Option {
	return func(u *UI) {
		if k != nil {
			u.kill = k
		}
	}
}

// UI coordinates the interactive process table.
type UI struct {
	app     *tview.Application
	table   *tview.Table
	entries []Entry
	kill    Killer
}

// New constructs a UI over the provided entries.
func New(entries []Entry, opts ...Option) *UI {
	app := tview.NewApplication()
	table := tview.NewTable().SetFixed(1, 0).SetSelectable(true, false)
	table.SetBorder(true).SetTitle(tableTitle)

	ui := &UI{app: app, table: table, entries: entries, kill: xproc.Kill}
	for _, opt := range opts {
		opt(ui)
	}

	for i := range ui.entries {
		if ui.entries[i].Status == "" {
			ui.entries[i].Status = "spawned"
		}
	}

	table.SetInputCapture(ui.handleKey)
	ui.render()
	if len(ui.entries) > 0 {
		table.Select(1, 0)
	}
	app.SetRoot(table, true)

	return ui
}

// Run blocks until the user quits the interface.
func (u *UI) Run() error {
	return u.app.Run()
}

func (u *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyEscape,
		event.Key() == tcell.KeyRune && event.Rune() == 'q':
		u.app.Stop()
		return nil
	case event.Key() == tcell.KeyRune && event.Rune() == 'k':
		row, _ := u.table.GetSelection()
		u.killRow(row)
		return nil
	}
	return event
}

// killRow requests termination for the entry at the given table row. Row 0 is
// the header.
func (u *UI) killRow(row int) {
	idx := row - 1
	if idx < 0 || idx >= len(u.entries) {
		return
	}
	err := u.kill(u.entries[idx].Pid)
	metrics.ObserveKill(err)
	if err != nil {
		u.entries[idx].Status = fmt.Sprintf("kill failed: %v", err)
	} else {
		u.entries[idx].Status = "signalled"
	}
	u.render()
}

func (u *UI) render() {
	u.table.Clear()
	for col, header := range []string{"NAME", "PID", "COMMAND", "STATUS"} {
		cell := tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false)
		u.table.SetCell(0, col, cell)
	}
	for i, entry := range u.entries {
		u.table.SetCell(i+1, 0, tview.NewTableCell(entry.Name))
		u.table.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("%d", entry.Pid)))
		u.table.SetCell(i+1, 2, tview.NewTableCell(entry.Command))
		u.table.SetCell(i+1, 3, tview.NewTableCell(entry.Status))
	}
}
