package ingest

import (
	"regexp"
	"strings"
)

// Scraped GitBook pages carry navigation and legal boilerplate around the
// article body. Each expression removes one class of it.
var (
	poweredByRe   = regexp.MustCompile(`(?s)^.*?Powered by GitBook`)
	termsRe       = regexp.MustCompile(`(?s)^.*?Terms of Service`)
	disclaimerRe  = regexp.MustCompile(`(?s)^.*?Disclaimer`)
	footerRe      = regexp.MustCompile(`(?s)Previous.*?Last updated.*$`)
	emphasisRe    = regexp.MustCompile(`\*\*`)
	nonASCIIRe    = regexp.MustCompile(`[^\x00-\x7F]+`)
	mentionRe     = regexp.MustCompile(`@\w+`)
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	escapedLineRe = regexp.MustCompile(`\\n`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Clean strips boilerplate and markup from scraped content and collapses
// all whitespace runs to single spaces.
func Clean(content string) string {
	s := poweredByRe.ReplaceAllString(content, "")
	s = termsRe.ReplaceAllString(s, "")
	s = disclaimerRe.ReplaceAllString(s, "")
	s = footerRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "")
	s = nonASCIIRe.ReplaceAllString(s, "")
	s = mentionRe.ReplaceAllString(s, "")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = escapedLineRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Titles that mark a page as pure legal/contact boilerplate. Documents
// matching any of these are dropped before chunking.
var irrelevantTitles = []string{
	"terms of use",
	"contact us",
	"disclaimer",
	"terms of service",
}

// IrrelevantTitle reports whether the title case-insensitively contains
// one of the denylisted titles.
func IrrelevantTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, t := range irrelevantTitles {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
