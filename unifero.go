// Package unifero provides web search and bounded documentation crawling
// with code-aware content extraction. Given a search query it returns a
// cleaned Markdown rendition of each hit; given a documentation base URL it
// crawls a bounded set of same-site pages and returns the same rendition
// for each.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, duckduckgo/, http/).
package unifero
