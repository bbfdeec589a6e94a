package wiki

import (
	"regexp"
	"strings"
)

// wikiWord matches words the wiki engine would turn into page links.
var wikiWord = regexp.MustCompile(`^[A-Z]+[a-z]+[A-Z]`)

// Escape prefixes every CamelCase word in s with "!" so the wiki does not
// auto-link it. Whitespace runs collapse to single spaces.
func Escape(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if wikiWord.MatchString(w) {
			words[i] = "!" + w
		}
	}
	return strings.Join(words, " ")
}
