package katsuyo

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize puts typed kana into the shape the lexicon indexes surfaces
// in: half-width katakana widened, full-width ASCII narrowed, dakuten
// composed, katakana folded to hiragana, whitespace removed.
func Normalize(s string) string {
	s = width.Fold.String(s)
	s = norm.NFC.String(s)
	s = strings.Join(strings.Fields(s), "")
	return strings.Map(toHiragana, s)
}

// toHiragana maps katakana ァ..ヶ onto the matching hiragana.
func toHiragana(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' {
		return r - ('ァ' - 'ぁ')
	}
	return r
}
