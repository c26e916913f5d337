package htmltomarkdown

import (
	"regexp"
	"strings"
)

// headingRe matches short standalone title-case lines that documentation
// sites often render as section labels without heading markup.
var headingRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9\-\s]{2,}$`)

// maxHeadingWords bounds how long a promoted label can be; anything longer
// reads as prose.
const maxHeadingWords = 6

// PromoteHeadings rewrites short standalone title-case lines as level-2
// Markdown headings. Lines inside code fences and lines that are already
// headings are left untouched.
func PromoteHeadings(markdown string) string {
	lines := strings.Split(markdown, "\n")

	inFence := false
	for i, line := range lines {
		if isFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if headingRe.MatchString(trimmed) && len(strings.Fields(trimmed)) <= maxHeadingWords {
			lines[i] = "## " + trimmed
		}
	}

	return strings.Join(lines, "\n")
}
