package markdown

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxInputRunes bounds the source accepted by Parse
const MaxInputRunes = 1 << 20

// BulletPoint replaces the "- " / "* " marker of a list item
const BulletPoint = "• "

// ErrInputTooLarge is returned when the source exceeds MaxInputRunes
var ErrInputTooLarge = errors.New("markdown: input too large")

// parser holds the state of a single left-to-right pass
type parser struct {
	src         []rune
	pos         int
	out         []rune
	doc         *Document
	atLineStart bool

	openHeading  int
	openListItem int
}

// Parse converts src into a display buffer and its annotations. On error no
// Document is returned.
func Parse(src string) (*Document, error) {
	if utf8.RuneCountInString(src) > MaxInputRunes {
		return nil, ErrInputTooLarge
	}

	capacity := Estimate(src)
	runes := []rune(src)
	p := &parser{
		src: runes,
		out: make([]rune, 0, len(runes)),
		doc: &Document{
			Links:     make([]Link, 0, initialCapacity(capacity.Links, InitialLinkCapacity)),
			Headings:  make([]Heading, 0, initialCapacity(capacity.Headings, InitialHeadingCapacity)),
			Styles:    make([]Style, 0, initialCapacity(capacity.Styles, InitialStyleCapacity)),
			ListItems: make([]ListItem, 0, initialCapacity(capacity.ListItems, InitialListItemCapacity)),
		},
		atLineStart:  true,
		openHeading:  -1,
		openListItem: -1,
	}
	p.run()
	p.doc.Text = p.out
	return p.doc, nil
}

func (p *parser) run() {
	for p.pos < len(p.src) {
		if p.atLineStart {
			if p.parseListItem() || p.parseHeading() {
				continue
			}
		}

		c := p.src[p.pos]
		switch {
		case c == '[' && p.parseLink():
			continue
		case c == '`' && p.parseCode():
			continue
		case (c == '*' || c == '_') && p.parseEmphasis():
			continue
		case isLineBreak(c):
			p.closeLine()
			p.atLineStart = true
			p.out = append(p.out, c)
			p.pos++
			continue
		}

		p.out = append(p.out, c)
		p.pos++
		p.atLineStart = false
	}
	p.closeLine()
}

// closeLine ends any open heading or list item at the current buffer offset
func (p *parser) closeLine() {
	if p.openHeading >= 0 {
		p.doc.Headings[p.openHeading].End = len(p.out)
		p.openHeading = -1
	}
	if p.openListItem >= 0 {
		p.doc.ListItems[p.openListItem].End = len(p.out)
		p.openListItem = -1
	}
}

// parseListItem handles "<spaces>- " and "<spaces>* " at line start
func (p *parser) parseListItem() bool {
	spaces, ok := listPrefix(p.src, p.pos)
	if !ok {
		return false
	}
	p.out = append(p.out, p.src[p.pos:p.pos+spaces]...)
	start := len(p.out)
	p.out = append(p.out, []rune(BulletPoint)...)
	p.doc.ListItems = append(p.doc.ListItems, ListItem{
		IndentLevel: spaces / 4,
		Start:       start,
		End:         start,
	})
	p.openListItem = len(p.doc.ListItems) - 1
	p.pos += spaces + 2
	p.atLineStart = false
	return true
}

// parseHeading handles "# " through "#### " at line start
func (p *parser) parseHeading() bool {
	level := headingLevel(p.src, p.pos)
	if level == 0 {
		return false
	}
	p.pos += level + 1
	p.doc.Headings = append(p.doc.Headings, Heading{
		Level: level,
		Start: len(p.out),
		End:   len(p.out),
	})
	p.openHeading = len(p.doc.Headings) - 1
	p.atLineStart = false
	return true
}

// parseLink handles [text](url) and [text](url "title")
func (p *parser) parseLink() bool {
	closeBracket := indexRune(p.src, p.pos+1, ']')
	if closeBracket < 0 || closeBracket+1 >= len(p.src) || p.src[closeBracket+1] != '(' {
		return false
	}
	target := closeBracket + 2
	closeParen := linkTargetEnd(p.src, target)
	if closeParen < 0 {
		return false
	}

	text := p.src[p.pos+1 : closeBracket]
	url, title := splitLinkTarget(string(p.src[target:closeParen]))

	start := len(p.out)
	p.out = append(p.out, text...)
	if url != "" {
		p.doc.Links = append(p.doc.Links, Link{
			Text:  string(text),
			URL:   url,
			Title: title,
			Start: start,
			End:   len(p.out),
		})
	}
	p.pos = closeParen + 1
	p.atLineStart = false
	return true
}

// linkTargetEnd finds the ')' closing a link target, skipping a quoted title
func linkTargetEnd(s []rune, from int) int {
	inTitle := false
	var quote rune
	for i := from; i < len(s); i++ {
		c := s[i]
		switch {
		case inTitle && c == quote:
			inTitle = false
		case inTitle:
		case c == '"' || c == '\'':
			if i > from && s[i-1] == ' ' {
				inTitle = true
				quote = c
			}
		case c == ')':
			return i
		}
	}
	return indexRune(s, from, ')')
}

// splitLinkTarget separates `url "title"` into its parts
func splitLinkTarget(target string) (string, string) {
	target = strings.TrimSpace(target)
	idx := strings.IndexAny(target, " \t")
	if idx < 0 {
		return target, ""
	}
	url := target[:idx]
	title := strings.TrimSpace(target[idx:])
	if len(title) >= 2 && (title[0] == '"' || title[0] == '\'') && title[len(title)-1] == title[0] {
		title = title[1 : len(title)-1]
	}
	return url, title
}

// parseCode handles `code` with a non-empty interior
func (p *parser) parseCode() bool {
	end := indexRune(p.src, p.pos+1, '`')
	if end <= p.pos+1 {
		return false
	}
	start := len(p.out)
	p.out = append(p.out, p.src[p.pos+1:end]...)
	p.doc.Styles = append(p.doc.Styles, Style{Type: StyleCode, Start: start, End: len(p.out)})
	p.pos = end + 1
	p.atLineStart = false
	return true
}

// parseEmphasis handles *x*, **x**, ***x*** and the '_' forms. On failure the
// cursor stays at the run start and the caller copies one marker literally.
func (p *parser) parseEmphasis() bool {
	marker := p.src[p.pos]
	run := markerRun(p.src, p.pos, marker, maxEmphasisRun)
	textStart := p.pos + run
	if textStart >= len(p.src) || p.src[textStart] == ' ' {
		return false
	}

	for end := textStart; end < len(p.src); end++ {
		if p.src[end] != marker {
			continue
		}
		if markerRun(p.src, end, marker, run) != run {
			continue
		}
		if end <= textStart {
			continue
		}
		start := len(p.out)
		p.out = append(p.out, p.src[textStart:end]...)
		p.doc.Styles = append(p.doc.Styles, Style{Type: emphasisStyle(run), Start: start, End: len(p.out)})
		p.pos = end + run
		p.atLineStart = false
		return true
	}
	return false
}
