package htmltomarkdown

import "strings"

// Truncate caps Markdown at max characters without ever producing an
// unterminated code fence. If the cut lands inside a fence, the whole
// unfinished fence is dropped along with any immediately preceding blank
// lines, so the result is always valid Markdown.
//
// Characters are counted as runes, matching how callers measure content
// length.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	cut := string(runes[:max])
	if start := unterminatedFenceStart(cut); start >= 0 {
		cut = cut[:start]
	}
	return strings.TrimRight(cut, " \t\n")
}

// unterminatedFenceStart returns the byte offset of the opening delimiter
// of a code fence left unclosed in s, or -1 when every fence is balanced.
func unterminatedFenceStart(s string) int {
	inFence := false
	fenceStart := -1

	offset := 0
	for _, line := range strings.SplitAfter(s, "\n") {
		if isFenceDelimiter(line) {
			if inFence {
				inFence = false
				fenceStart = -1
			} else {
				inFence = true
				fenceStart = offset
			}
		}
		offset += len(line)
	}

	if inFence {
		return fenceStart
	}
	return -1
}

// isFenceDelimiter reports whether a line opens or closes a fenced code
// block (three or more backticks, optionally followed by a language tag).
func isFenceDelimiter(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "```")
}
