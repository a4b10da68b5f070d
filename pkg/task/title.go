package task

import (
	"regexp"
	"strings"
)

var (
	bulletPrefix   = regexp.MustCompile(`^[-*+](\s+|$)`)
	checkboxPrefix = regexp.MustCompile(`^\[[ xX]?\]\s*(\d{1,2}/\d{1,2}/\d{4}\s*)?`)
	numberPrefix   = regexp.MustCompile(`^\d+\.\s+`)
)

// CleanTitle trims a pasted line and strips one leading list marker of each
// kind: a markdown bullet, a checkbox with an optional MM/DD/YYYY date, and a
// numeric "N. " marker.
func CleanTitle(line string) string {
	s := strings.TrimSpace(line)
	s = bulletPrefix.ReplaceAllString(s, "")
	s = checkboxPrefix.ReplaceAllString(s, "")
	s = numberPrefix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanTitles cleans every line and drops the ones left empty.
func CleanTitles(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if c := CleanTitle(l); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// SplitPasted breaks pasted text into lines, accepting \n, \r\n and \r.
func SplitPasted(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
