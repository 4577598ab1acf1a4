package ledger

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lowerCaser = cases.Lower(language.Und)
	titleCaser = cases.Title(language.Und)
)

// DeriveUsername builds the login name for an owner: the first letter of
// every space separated word, lowercased.
//
//	DeriveUsername("Steven Thomas Williams") == "stw"
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Split(lowerCaser.String(owner), " ") {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

// firstName is the welcome name for an owner.
func firstName(owner string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(owner), " ")
	return titleCaser.String(first)
}
