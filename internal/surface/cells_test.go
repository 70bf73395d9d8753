package surface

import (
	"strings"
	"testing"

	"github.com/vladelaina/catime-notes/internal/markdown"
	"github.com/vladelaina/catime-notes/internal/render"
)

func renderCells(t *testing.T, src string, width float32) *Cells {
	t.Helper()
	doc, err := markdown.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	cells := NewCells()
	engine := render.NewEngine(render.Options{ListIndent: 2, WrapMargin: 1})
	engine.Paint(cells, doc, markdown.Rect{Right: width})
	return cells
}

func TestCells_Layout(t *testing.T) {
	cells := renderCells(t, "# Title\n- item [link](u)", 40)
	lines := cells.Lines()

	expected := []string{"Title", "  • item link"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestCells_Wrap(t *testing.T) {
	cells := renderCells(t, "abcdefghij", 5)

	if got := cells.String(); got != "abcde\nfghij" {
		t.Errorf("Expected wrapped text, got %q", got)
	}
}

func TestCells_WideRunes(t *testing.T) {
	cells := NewCells()
	w, ok := cells.Advance('日')
	if !ok || w != 2 {
		t.Errorf("Expected width 2 for wide rune, got %v,%v", w, ok)
	}
	if _, ok := cells.Advance('́'); ok {
		t.Error("Expected combining mark to be unsupported")
	}

	cells.DrawRune('日', 0, 0)
	cells.DrawRune('本', 2, 0)
	if got := cells.String(); got != "日本" {
		t.Errorf("Expected '日本', got %q", got)
	}
}

func TestCells_ANSI(t *testing.T) {
	cells := renderCells(t, "plain **bold** [l](u)", 80)
	out := cells.ANSI()

	if !strings.Contains(out, "\x1b[1mbold\x1b[0m") {
		t.Errorf("Expected bold sequence in %q", out)
	}
	if !strings.Contains(out, "\x1b[38;2;0;100;200ml\x1b[0m") {
		t.Errorf("Expected link color sequence in %q", out)
	}
	if !strings.HasPrefix(out, "plain ") {
		t.Errorf("Expected unstyled prefix, got %q", out)
	}
}
