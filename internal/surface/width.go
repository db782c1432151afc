package surface

import "github.com/unilibs/uniwidth"

// runeWidth returns a rune's display width: 2 for wide characters (CJK,
// emoji), 1 for normal, 0 for combining marks and other zero-width
// codepoints. Grounded verbatim on the teacher's width.go runeWidth.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}
