package markdown

// Initial record capacities used when the estimator finds nothing
const (
	InitialLinkCapacity     = 10
	InitialHeadingCapacity  = 5
	InitialStyleCapacity    = 20
	InitialListItemCapacity = 10

	// MaxHeadingLevel is the deepest heading the dialect recognises
	MaxHeadingLevel = 4
	// maxEmphasisRun is the longest emphasis marker run (***)
	maxEmphasisRun = 3
)

// Capacity holds per-kind upper bounds used to pre-size record slices
type Capacity struct {
	Links     int
	Headings  int
	Styles    int
	ListItems int
}

// Estimate scans the source once per annotation kind
func Estimate(src string) Capacity {
	runes := []rune(src)
	return Capacity{
		Links:     countLinks(runes),
		Headings:  countHeadings(runes),
		Styles:    countStyles(runes),
		ListItems: countListItems(runes),
	}
}

// CountLinks returns an upper bound on the links Parse will emit
func CountLinks(src string) int { return countLinks([]rune(src)) }

// CountHeadings returns an upper bound on the headings Parse will emit
func CountHeadings(src string) int { return countHeadings([]rune(src)) }

// CountStyles returns an upper bound on the style spans Parse will emit
func CountStyles(src string) int { return countStyles([]rune(src)) }

// CountListItems returns an upper bound on the list items Parse will emit
func CountListItems(src string) int { return countListItems([]rune(src)) }

// initialCapacity pads a non-zero estimate or falls back to the floor
func initialCapacity(estimate, floor int) int {
	if estimate > 0 {
		return estimate + 2
	}
	return floor
}

func countLinks(s []rune) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '[' {
			continue
		}
		closeBracket := indexRune(s, i+1, ']')
		if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
			continue
		}
		if indexRune(s, closeBracket+2, ')') >= 0 {
			count++
		}
	}
	return count
}

func countHeadings(s []rune) int {
	count := 0
	atLineStart := true
	for i := 0; i < len(s); i++ {
		if atLineStart {
			if level := headingLevel(s, i); level > 0 {
				count++
			}
		}
		atLineStart = isLineBreak(s[i])
	}
	return count
}

func countStyles(s []rune) int {
	count := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '`':
			end := indexRune(s, i+1, '`')
			if end > i+1 {
				count++
				i = end
			}
		case '*', '_':
			run := markerRun(s, i, s[i], maxEmphasisRun)
			if i+run < len(s) && s[i+run] != ' ' {
				count++
			}
			i += run - 1
		}
	}
	return count
}

func countListItems(s []rune) int {
	count := 0
	atLineStart := true
	for i := 0; i < len(s); i++ {
		if atLineStart {
			if _, ok := listPrefix(s, i); ok {
				count++
			}
		}
		atLineStart = isLineBreak(s[i])
	}
	return count
}

// headingLevel returns the level of a "#.. " prefix at i, or 0
func headingLevel(s []rune, i int) int {
	level := 0
	for i+level < len(s) && s[i+level] == '#' && level < MaxHeadingLevel {
		level++
	}
	if level == 0 || i+level >= len(s) || s[i+level] != ' ' {
		return 0
	}
	return level
}

// listPrefix returns the number of leading spaces of a "- " or "* " item at i
func listPrefix(s []rune, i int) (int, bool) {
	spaces := 0
	for i+spaces < len(s) && s[i+spaces] == ' ' {
		spaces++
	}
	p := i + spaces
	if p+1 < len(s) && (s[p] == '-' || s[p] == '*') && s[p+1] == ' ' {
		return spaces, true
	}
	return 0, false
}

// markerRun counts consecutive marker runes at i, up to limit
func markerRun(s []rune, i int, marker rune, limit int) int {
	n := 0
	for i+n < len(s) && s[i+n] == marker && n < limit {
		n++
	}
	return n
}

func indexRune(s []rune, from int, r rune) int {
	for i := from; i < len(s); i++ {
		if s[i] == r {
			return i
		}
	}
	return -1
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
