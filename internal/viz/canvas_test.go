package viz

import (
	"strings"
	"testing"
)

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	c.SetColor(3, 5, "#ff0000")
	if !c.IsSet(3, 5) {
		t.Fatal("pixel not set")
	}
	if c.Colors[1][1] != "#ff0000" {
		t.Errorf("cell color = %q", c.Colors[1][1])
	}

	// out of range writes are ignored
	c.Set(-1, 0)
	c.Set(100, 100)

	c.Clear()
	if c.IsSet(3, 5) || c.Colors[1][1] != "" {
		t.Error("clear did not reset the canvas")
	}
	for _, row := range c.Grid {
		for _, r := range row {
			if r != brailleBlank {
				t.Fatalf("expected blank braille, got %U", r)
			}
		}
	}
}

func TestCanvas_DrawCircleSymmetric(t *testing.T) {
	c := NewCanvas(20, 10)
	cx, cy, r := 20, 20, 10
	c.DrawCircle(cx, cy, r, "")

	for _, p := range [][2]int{{cx + r, cy}, {cx - r, cy}, {cx, cy + r}, {cx, cy - r}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected (%d, %d) on circle", p[0], p[1])
		}
	}
	if c.IsSet(cx, cy) {
		t.Error("centre should stay empty")
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawDot(2, 2, "#00ff00")

	plain := c.String()
	if strings.Count(plain, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", plain)
	}
	if !strings.Contains(c.Render(), string(c.Grid[0][1])) {
		t.Error("rendered output lost a dot")
	}
}
