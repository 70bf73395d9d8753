package markdown

import "testing"

func checkUnique[T Ranged](t *testing.T, kind string, records []T) {
	t.Helper()
	for i, r := range records {
		start, end := r.Span()
		for p := start; p < end; p++ {
			got, ok := Locate(p, records)
			if !ok || got != i {
				t.Errorf("%s: Locate(%d) = %d,%v, expected %d", kind, p, got, ok, i)
			}
		}
	}
}

func TestLocate_Uniqueness(t *testing.T) {
	input := "# Notes\n- **Bold** and [link](https://a)\n    - `code` _it_ [b](https://b)\n## More"
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	checkUnique(t, "links", doc.Links)
	checkUnique(t, "headings", doc.Headings)
	checkUnique(t, "styles", doc.Styles)
	checkUnique(t, "list items", doc.ListItems)
}

func TestLocate_FirstMatchWins(t *testing.T) {
	records := []Style{
		{Type: StyleBold, Start: 0, End: 5},
		{Type: StyleItalic, Start: 2, End: 4},
	}

	idx, ok := Locate(3, records)
	if !ok || idx != 0 {
		t.Errorf("Expected first record, got %d,%v", idx, ok)
	}
	if _, ok := Locate(5, records); ok {
		t.Error("Expected no match at exclusive end")
	}
}

func TestDocument_LinkAt(t *testing.T) {
	doc, err := Parse("see [docs](http://x)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if _, ok := doc.LinkAt(3); ok {
		t.Error("Expected no link at position 3")
	}
	if idx, ok := doc.LinkAt(4); !ok || idx != 0 {
		t.Errorf("Expected link 0 at position 4, got %d,%v", idx, ok)
	}

	var empty *Document
	if _, ok := empty.LinkAt(0); ok {
		t.Error("Expected nil document to have no links")
	}
}

func TestDocument_LinkAtPoint(t *testing.T) {
	doc := &Document{Links: []Link{
		{URL: "a", Rect: Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}},
		{URL: "b", Rect: Rect{Left: 20, Top: 0, Right: 30, Bottom: 10}},
	}}

	if link, ok := doc.LinkAtPoint(25, 5); !ok || link.URL != "b" {
		t.Errorf("Expected link b, got %q,%v", link.URL, ok)
	}
	if _, ok := doc.LinkAtPoint(10, 5); ok {
		t.Error("Expected right edge to be exclusive")
	}
}
