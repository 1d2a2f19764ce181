package tui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap(), 3)

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{runeKey('w'), core.ActionJump, false},
		{runeKey('k'), core.ActionFire, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestKeyMapperHoldsMovement(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap(), 3)
	km.Press(runeKey('d'))

	frame := core.NewInputFrame()
	for tick := 0; tick < 3; tick++ {
		frame.Clear()
		km.Fill(&frame)
		if !frame.Has(core.ActionRight) {
			t.Fatalf("tick %d: right released too early", tick)
		}
	}
	frame.Clear()
	km.Fill(&frame)
	if frame.Has(core.ActionRight) {
		t.Error("right still held after hold window")
	}
}

func TestKeyMapperOppositeDirectionsCancel(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap(), 5)
	km.Press(runeKey('d'))
	km.Press(runeKey('a'))

	frame := core.NewInputFrame()
	km.Fill(&frame)
	if !frame.Has(core.ActionLeft) || frame.Has(core.ActionRight) {
		t.Errorf("frame = %v, want left only", frame.Actions)
	}
}

func TestKeyMapperOneShots(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap(), 5)
	km.Press(runeKey('j'))
	km.Press(runeKey('p'))

	frame := core.NewInputFrame()
	km.Fill(&frame)
	if !frame.Has(core.ActionFire) || frame.Aim != core.AimLeft {
		t.Errorf("fire = %v aim = %v, want fire left", frame.Has(core.ActionFire), frame.Aim)
	}
	if !frame.Has(core.ActionPause) {
		t.Error("pause missing")
	}

	frame.Clear()
	km.Fill(&frame)
	if frame.Has(core.ActionFire) || frame.Has(core.ActionPause) {
		t.Error("one-shot actions repeated on the next tick")
	}
}

func TestKeyMapperRelease(t *testing.T) {
	km := NewKeyMapper(DefaultGameKeyMap(), 10)
	km.Press(runeKey('a'))
	km.Press(runeKey('w'))
	km.Release()

	frame := core.NewInputFrame()
	km.Fill(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("frame = %v after Release, want empty", frame.Actions)
	}
}

func TestAimAt(t *testing.T) {
	anchor := func(w, h int) (int, int) { return w / 2, h / 2 }

	tests := []struct {
		x, y int
		want float64
	}{
		{15, 5, core.AimRight},
		{5, 5, core.AimLeft},
		{10, 9, core.AimDown},
		{10, 0, core.AimUp},
	}
	for _, tt := range tests {
		got, ok := AimAt(anchor, 20, 10, tt.x, tt.y)
		if !ok || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AimAt(%d, %d) = %v, %v; want %v", tt.x, tt.y, got, ok, tt.want)
		}
	}
	if _, ok := AimAt(anchor, 20, 10, 10, 5); ok {
		t.Error("clicking the player should not aim")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.SetColored(0, 1, '@', core.Color(200))

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := TickInterval(tt.rate); got != tt.want {
			t.Errorf("TickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks, rate int
		want        string
	}{
		{0, 60, "0:00"},
		{59, 60, "0:00"},
		{60 * 75, 60, "1:15"},
		{120, 0, "0:02"},
	}
	for _, tt := range tests {
		if got := FormatTicks(tt.ticks, tt.rate); got != tt.want {
			t.Errorf("FormatTicks(%d, %d) = %q, want %q", tt.ticks, tt.rate, got, tt.want)
		}
	}
}

func TestRunsModelLoadsViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Seed: 1, Depth: 50})
	store.SaveRun(storage.Run{Seed: 2, Depth: 400, Won: true})
	store.SaveRun(storage.Run{Seed: 3, Depth: 10})

	m := NewRunsModel(store, 100, 30)
	if len(m.runs) != 3 || m.runs[0].Seed != 2 {
		t.Fatalf("best view = %v, want seed 2 first", m.runs)
	}
	if m.stats == nil || m.stats.Runs != 3 || m.stats.Wins != 1 {
		t.Errorf("stats = %+v", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	if m.view != viewRecent || m.runs[0].Seed != 3 {
		t.Errorf("recent view = %v, want seed 3 first", m.runs)
	}
	if !strings.Contains(m.View(), "Recent") {
		t.Error("view title should name the recent view")
	}
}

func TestRunsModelEmptyStore(t *testing.T) {
	m := NewRunsModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty browser should say so")
	}
}

func TestRunRow(t *testing.T) {
	row := RunRow(1, storage.Run{Seed: 42, Depth: 480, Deaths: 3, Ticks: 3600, Won: true})
	want := []string{"1", "480", "lab", "3", "1:00", "42"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("row[%d] = %q, want %q", i, row[i], w)
		}
	}
}
