package viz

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/kuramoto/internal/kuramoto"
	"github.com/san-kum/kuramoto/internal/render"
)

func newTestModel(t *testing.T, exportPath string) Model {
	t.Helper()
	ens, err := kuramoto.New([][]float64{
		{0, 0.5, 1.0, 1.5},
		{math.Pi, 3.0, 2.5, 2.0},
	}, []float64{0.5, 1.5})
	if err != nil {
		t.Fatal(err)
	}
	opts := render.DefaultOptions()
	opts.StepsPerFrame = 1
	opts.ShowAverage = true

	m, err := NewModel(ens, opts, ThemeMinimal, exportPath)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_TickAdvancesAndWraps(t *testing.T) {
	m := newTestModel(t, "")

	for i := 1; i <= 4; i++ {
		m = update(m, TickMsg(time.Now()))
		if want := i % 4; m.Frame() != want {
			t.Fatalf("after %d ticks frame = %d, want %d", i, m.Frame(), want)
		}
	}
}

func TestModel_PauseAndStep(t *testing.T) {
	m := newTestModel(t, "")

	m = update(m, key(" "))
	if m.Running() {
		t.Fatal("space should pause")
	}
	m = update(m, TickMsg(time.Now()))
	if m.Frame() != 0 {
		t.Errorf("paused model advanced to %d", m.Frame())
	}

	m = update(m, key("["))
	if m.Frame() != 3 {
		t.Errorf("step back from 0 should wrap to 3, got %d", m.Frame())
	}
	m = update(m, key("]"))
	m = update(m, key("]"))
	if m.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", m.Frame())
	}

	m = update(m, key("r"))
	if m.Frame() != 0 {
		t.Errorf("restart should return to frame 0, got %d", m.Frame())
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, "")
	view := m.View()

	for _, want := range []string{"KURAMOTO", "oscillators", "order parameter r"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_ThemeCycle(t *testing.T) {
	m := newTestModel(t, "")
	m = update(m, key("t"))
	if m.theme.Name != NextTheme(ThemeMinimal).Name {
		t.Errorf("theme = %s", m.theme.Name)
	}
}

func TestModel_ExportRunsAsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.gif")
	m := newTestModel(t, path)

	next, cmd := m.Update(key("g"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("g should return an export command")
	}
	if !strings.Contains(m.status, "exporting") {
		t.Errorf("status = %q", m.status)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("export must not run inside Update")
	}

	// a second press while exporting is ignored
	if _, again := m.Update(key("g")); again != nil {
		t.Error("expected no second export while one is running")
	}

	msg := cmd()
	done, ok := msg.(ExportMsg)
	if !ok {
		t.Fatalf("expected ExportMsg, got %T", msg)
	}
	if done.Err != nil || done.Frames != 4 {
		t.Fatalf("export result %+v", done)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export not written: %v", err)
	}

	m = update(m, done)
	if m.exporting || !strings.Contains(m.status, "saved 4 frames") {
		t.Errorf("status = %q, exporting %v", m.status, m.exporting)
	}
}

func TestModel_ExportFailureReported(t *testing.T) {
	m := newTestModel(t, "")
	next, cmd := m.Update(key("g"))
	if cmd != nil || next.(Model).status != "no export path set" {
		t.Errorf("expected no-path status, got %q", next.(Model).status)
	}

	m = update(m, ExportMsg{Path: "x.gif", Err: errors.New("disk full")})
	if !strings.Contains(m.status, "export failed: disk full") {
		t.Errorf("status = %q", m.status)
	}
}

func TestNewModel_NoFrames(t *testing.T) {
	ens, _ := kuramoto.New([][]float64{{0}}, nil)
	opts := render.DefaultOptions()
	if _, err := NewModel(ens, opts, ThemeMinimal, ""); err == nil {
		t.Error("expected error for ensemble shorter than one frame")
	}
}
