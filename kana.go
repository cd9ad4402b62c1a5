package katsuyo

import "strings"

// euphonicTable maps the final kana of a consonant-stem verb to the
// row-shifted kana (or kana cluster) that replaces it in a given stem.
type euphonicTable struct {
	name string
	rows map[string]string
}

// The tables cover exactly the nine consonant-stem endings.
// They are filled at package load and never written afterwards.
var (
	// aRow builds the negative stem: かう → かわ(ない).
	aRow = euphonicTable{"a-row", map[string]string{
		"う": "わ", "つ": "た", "る": "ら",
		"む": "ま", "ぶ": "ば", "ぬ": "な",
		"く": "か", "ぐ": "が", "す": "さ",
	}}

	// iRow builds the polite stem: かう → かい(ます).
	iRow = euphonicTable{"i-row", map[string]string{
		"う": "い", "つ": "ち", "る": "り",
		"む": "み", "ぶ": "び", "ぬ": "に",
		"く": "き", "ぐ": "ぎ", "す": "し",
	}}

	// pastCluster replaces the final kana in the plain past: よむ → よんだ.
	pastCluster = euphonicTable{"past-cluster", map[string]string{
		"う": "った", "つ": "った", "る": "った",
		"む": "んだ", "ぶ": "んだ", "ぬ": "んだ",
		"く": "いた", "ぐ": "いだ", "す": "した",
	}}

	// potentialEnding replaces the final kana in the potential verb: よむ → よめる.
	potentialEnding = euphonicTable{"potential-ending", map[string]string{
		"う": "える", "つ": "てる", "る": "れる",
		"む": "める", "ぶ": "べる", "ぬ": "ねる",
		"く": "ける", "ぐ": "げる", "す": "せる",
	}}
)

// lookup returns the replacement for the final kana of verb.
// A kana outside the table panics with a *MalformedEndingError.
func (t euphonicTable) lookup(verb string, class VerbClass) string {
	ending := lastKana(verb)
	if r, ok := t.rows[ending]; ok {
		return r
	}
	panic(&MalformedEndingError{Verb: verb, Class: class, Ending: ending, Table: t.name})
}

// has reports whether kana is one of the table's keys.
func (t euphonicTable) has(kana string) bool {
	_, ok := t.rows[kana]
	return ok
}

// suruSuffix is the irregular root every Irregular verb ends with.
const suruSuffix = "する"

// lastKana returns the final character of s, or "" for an empty string.
func lastKana(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[len(runes)-1])
}

// dropLast removes the final n characters of s.
func dropLast(s string, n int) string {
	runes := []rune(s)
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:len(runes)-n])
}

// suruStem strips the trailing する of an Irregular verb:
// うんてんする → うんてん, する → "".
func suruStem(verb string) string {
	if !strings.HasSuffix(verb, suruSuffix) {
		panic(&MalformedEndingError{Verb: verb, Class: Irregular, Ending: lastKana(verb), Table: "suru"})
	}
	return strings.TrimSuffix(verb, suruSuffix)
}
