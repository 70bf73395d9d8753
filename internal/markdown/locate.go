package markdown

// Ranged is implemented by every annotation record
type Ranged interface {
	Span() (start, end int)
}

// Locate returns the index of the first record whose [start, end) contains
// pos, scanning in parse order.
func Locate[T Ranged](pos int, records []T) (int, bool) {
	for i := range records {
		start, end := records[i].Span()
		if pos >= start && pos < end {
			return i, true
		}
	}
	return -1, false
}

// LinkAt returns the index of the link covering pos
func (d *Document) LinkAt(pos int) (int, bool) {
	if d == nil {
		return -1, false
	}
	return Locate(pos, d.Links)
}

// HeadingAt returns the index of the heading covering pos
func (d *Document) HeadingAt(pos int) (int, bool) {
	if d == nil {
		return -1, false
	}
	return Locate(pos, d.Headings)
}

// StyleAt returns the index of the style span covering pos
func (d *Document) StyleAt(pos int) (int, bool) {
	if d == nil {
		return -1, false
	}
	return Locate(pos, d.Styles)
}

// ListItemAt returns the index of the list item covering pos
func (d *Document) ListItemAt(pos int) (int, bool) {
	if d == nil {
		return -1, false
	}
	return Locate(pos, d.ListItems)
}

// LinkAtPoint returns the first link whose rendered rectangle contains the
// point. Rectangles are only valid after a paint pass.
func (d *Document) LinkAtPoint(x, y float32) (Link, bool) {
	if d == nil {
		return Link{}, false
	}
	for _, link := range d.Links {
		if link.Rect.Contains(x, y) {
			return link, true
		}
	}
	return Link{}, false
}
