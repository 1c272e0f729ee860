package generator

import "strings"

// CharacterSet is an ordered run of character codes from one lexical category.
type CharacterSet string

// Lowercase (97-122), digits (48-57), uppercase (65-90) and the four ASCII
// punctuation runs 33-47, 58-64, 91-96 and 123-126.
const (
	Lowercase CharacterSet = "abcdefghijklmnopqrstuvwxyz"
	Digits    CharacterSet = "0123456789"
	Uppercase CharacterSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Symbols   CharacterSet = "!\"#$%&'()*+,-./" + ":;<=>?@" + "[\\]^_`" + "{|}~"
)

// Contains reports whether r belongs to the set.
func (s CharacterSet) Contains(r rune) bool {
	return strings.ContainsRune(string(s), r)
}

func (s CharacterSet) String() string {
	return string(s)
}
