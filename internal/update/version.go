package update

import (
	"strconv"
	"strings"
)

// Pre-release ranks; a plain release outranks every pre-release
const (
	rankUnknown = iota
	rankAlpha
	rankBeta
	rankRC
	rankRelease
)

// Version is a parsed "major.minor.patch[-label[N]]" string
type Version struct {
	Parts     [3]int
	Rank      int
	PreNumber int
}

// NormalizeVersion strips surrounding space and a leading "v" or "V"
func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "v")
	v = strings.TrimPrefix(v, "V")
	return v
}

// ParseVersion parses a version string. ok is false when the numeric core
// cannot be read.
func ParseVersion(s string) (Version, bool) {
	s = NormalizeVersion(s)
	if s == "" {
		return Version{}, false
	}

	core, label, _ := strings.Cut(s, "-")
	if plus := strings.IndexByte(core, '+'); plus >= 0 {
		core = core[:plus]
	}

	var v Version
	pieces := strings.Split(core, ".")
	if len(pieces) > len(v.Parts) {
		return Version{}, false
	}
	for i, piece := range pieces {
		n, err := strconv.Atoi(piece)
		if err != nil || n < 0 {
			return Version{}, false
		}
		v.Parts[i] = n
	}

	v.Rank, v.PreNumber = parseLabel(label)
	return v, true
}

// parseLabel ranks a pre-release label such as "beta2" or "rc.1"
func parseLabel(label string) (int, int) {
	label = strings.ToLower(strings.TrimSpace(label))
	if plus := strings.IndexByte(label, '+'); plus >= 0 {
		label = label[:plus]
	}
	if label == "" {
		return rankRelease, 0
	}

	name := strings.TrimRight(label, "0123456789.")
	number, _ := strconv.Atoi(strings.TrimLeft(label[len(name):], "."))

	switch name {
	case "alpha", "a":
		return rankAlpha, number
	case "beta", "b":
		return rankBeta, number
	case "rc", "pre":
		return rankRC, number
	default:
		return rankUnknown, number
	}
}

// Compare returns -1, 0 or 1 as v is older than, equal to or newer than o
func (v Version) Compare(o Version) int {
	for i := range v.Parts {
		if c := compareInt(v.Parts[i], o.Parts[i]); c != 0 {
			return c
		}
	}
	if c := compareInt(v.Rank, o.Rank); c != 0 {
		return c
	}
	return compareInt(v.PreNumber, o.PreNumber)
}

// CompareVersions compares two version strings
// Returns -1 if a < b, 0 if equal, 1 if a > b; ok is false if either is invalid
func CompareVersions(a, b string) (int, bool) {
	va, ok := ParseVersion(a)
	if !ok {
		return 0, false
	}
	vb, ok := ParseVersion(b)
	if !ok {
		return 0, false
	}
	return va.Compare(vb), true
}

// IsNewer returns true if candidate is strictly newer than current
func IsNewer(candidate, current string) bool {
	cmp, ok := CompareVersions(candidate, current)
	return ok && cmp > 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
