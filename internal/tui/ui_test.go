package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestUI(entries []Entry, kill Killer) *UI {
	return New(entries, WithKiller(kill))
}

func TestRenderPopulatesTable(t *testing.T) {
	ui := newTestUI([]Entry{
		{Name: "web", Pid: 101, Command: "python3 -m http.server"},
		{Name: "task", Pid: 102, Command: "echo done"},
	}, func(uint32) error { return nil })

	if got := ui.table.GetCell(0, 0).Text; got != "NAME" {
		t.Fatalf("expected header NAME, got %q", got)
	}
	if got := ui.table.GetCell(1, 0).Text; got != "web" {
		t.Fatalf("expected first row web, got %q", got)
	}
	if got := ui.table.GetCell(1, 1).Text; got != "101" {
		t.Fatalf("expected pid 101, got %q", got)
	}
	if got := ui.table.GetCell(2, 3).Text; got != "spawned" {
		t.Fatalf("expected initial status spawned, got %q", got)
	}
}

func TestKillRowSignalsSelectedPid(t *testing.T) {
	var killed []uint32
	ui := newTestUI([]Entry{
		{Name: "web", Pid: 101, Command: "sleep 30"},
	}, func(pid uint32) error {
		killed = append(killed, pid)
		return nil
	})

	ui.killRow(1)

	if len(killed) != 1 || killed[0] != 101 {
		t.Fatalf("expected kill request for pid 101, got %v", killed)
	}
	if got := ui.table.GetCell(1, 3).Text; got != "signalled" {
		t.Fatalf("expected status signalled, got %q", got)
	}
}

func TestKillRowReportsFailure(t *testing.T) {
	ui := newTestUI([]Entry{
		{Name: "web", Pid: 101, Command: "sleep 30"},
	}, func(uint32) error {
		return errors.New("no such process")
	})

	ui.killRow(1)

	if got := ui.table.GetCell(1, 3).Text; !strings.Contains(got, "kill failed") {
		t.Fatalf("expected failure status, got %q", got)
	}
}

func TestKillRowIgnoresHeaderAndOutOfRange(t *testing.T) {
	var killed int
	ui := newTestUI([]Entry{
		{Name: "web", Pid: 101},
	}, func(uint32) error {
		killed++
		return nil
	})

	ui.killRow(0)
	ui.killRow(5)

	if killed != 0 {
		t.Fatalf("expected no kill requests, got %d", killed)
	}
}

func TestKillKeybindingUsesSelection(t *testing.T) {
	var killed []uint32
	ui := newTestUI([]Entry{
		{Name: "web", Pid: 101},
	}, func(pid uint32) error {
		killed = append(killed, pid)
		return nil
	})

	event := ui.handleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	if event != nil {
		t.Fatal("expected kill key to be consumed")
	}
	if len(killed) != 1 || killed[0] != 101 {
		t.Fatalf("expected kill request for pid 101, got %v", killed)
	}
}
