package split

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/addrsplit/internal/debug"
)

// LineCount is the number of lines an address is distributed across
const LineCount = 3

// MinCharsPerLine is the minimum amount of remaining text, per line still
// to fill, before the packer is allowed to move on to the next line
const MinCharsPerLine = 10

// segmentSeparator joins delimiter-split segments that share a line
const segmentSeparator = ", "

// Address segment delimiters (comma and semicolon)
var reDelimiter = regexp.MustCompile(`[,;]`)

// Lines is a postal address distributed across exactly three lines.
// Unused trailing lines are empty strings.
type Lines struct {
	Line1 string
	Line2 string
	Line3 string
}

// Distribute splits a free-form address into three lines of roughly equal
// length. It never fails: any input, however messy, produces a Lines value
func Distribute(address string) Lines {
	return DistributeTrace(false, address)
}

// DistributeTrace is Distribute with optional trace output for each step
func DistributeTrace(verbose bool, address string) Lines {
	debug.DebugHeader(verbose)
	defer debug.DebugFooter(verbose)

	normalized := normalize(address)
	debug.DebugOutput(verbose, "Normalized: %q", normalized)
	if normalized == "" {
		return Lines{}
	}

	// Prefer natural boundaries when the address carries enough of them
	if segs := segments(normalized); len(segs) >= LineCount {
		debug.DebugOutput(verbose, "Delimiter split: %d segments %v", len(segs), segs)
		packed := DistributeParts(segs, LineCount)
		return Lines{Line1: packed[0], Line2: packed[1], Line3: packed[2]}
	}

	words := strings.Split(normalized, " ")
	if len(words) <= LineCount {
		debug.DebugOutput(verbose, "Short address, one word per line: %v", words)
		for len(words) < LineCount {
			words = append(words, "")
		}
		return Lines{Line1: words[0], Line2: words[1], Line3: words[2]}
	}

	target := charLen(normalized) / LineCount
	debug.DebugOutput(verbose, "Packing %d words, target length %d", len(words), target)

	lines := make([]string, LineCount)
	current := 0
	for _, word := range words {
		if lines[current] == "" {
			lines[current] = word
		} else {
			lines[current] += " " + word
		}

		if current >= LineCount-1 {
			continue
		}
		// Lookup is by value, so a repeated word measures the remainder
		// from its first occurrence
		remaining := strings.Join(words[slices.Index(words, word)+1:], " ")
		left := LineCount - current - 1
		if charLen(lines[current]) >= target && left > 0 && charLen(remaining) >= left*MinCharsPerLine {
			debug.DebugOutput(verbose, "Line %d full at %q, %d chars left for %d lines",
				current+1, lines[current], charLen(remaining), left)
			current++
		}
	}
	return Lines{Line1: lines[0], Line2: lines[1], Line3: lines[2]}
}

// DistributeParts spreads parts across numLines lines, joining parts that
// share a line with ", ". When the counts match, each part gets its own
// line verbatim. Returns nil if numLines < 1
func DistributeParts(parts []string, numLines int) []string {
	if numLines < 1 {
		return nil
	}
	lines := make([]string, numLines)
	if len(parts) == numLines {
		copy(lines, parts)
		return lines
	}

	total := 0
	for _, part := range parts {
		total += charLen(part)
	}
	target := total / numLines

	current := 0
	currentLen := 0
	for _, part := range parts {
		if lines[current] == "" {
			lines[current] = part
			currentLen = charLen(part)
		} else {
			lines[current] += segmentSeparator + part
			currentLen += charLen(part) + len(segmentSeparator)
		}

		if current >= numLines-1 {
			continue
		}
		// Same value-based remainder rule as the word packer
		remaining := parts[slices.Index(parts, part)+1:]
		if len(remaining) > 0 && currentLen >= target {
			current++
			currentLen = 0
		}
	}
	return lines
}

// normalize collapses runs of whitespace to single spaces and trims the ends
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// segments cuts an address at delimiter characters, trimming each piece and
// dropping the empty ones
func segments(s string) []string {
	raw := reDelimiter.Split(s, -1)
	segs := make([]string, 0, len(raw))
	for _, piece := range raw {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			segs = append(segs, trimmed)
		}
	}
	return segs
}

// charLen counts characters rather than bytes, so accented addresses
// measure the same as they read
func charLen(s string) int {
	return utf8.RuneCountInString(s)
}
