package katsuyo

import "fmt"

// inflection is the part of a Form that selects a surface pattern once
// the verb text and class are fixed.
type inflection struct {
	tense    Tense
	register Register
	polarity Polarity
}

// inflect builds one of the eight immediate surface forms of verb.
func inflect(verb string, class VerbClass, t Tense, r Register, p Polarity) string {
	switch (inflection{t, r, p}) {
	case inflection{Present, Plain, Affirmative}:
		return verb
	case inflection{Present, Plain, Negative}:
		return negativeStem(verb, class) + "ない"
	case inflection{Present, Polite, Affirmative}:
		return politeStem(verb, class) + "ます"
	case inflection{Present, Polite, Negative}:
		return politeStem(verb, class) + "ません"
	case inflection{Past, Plain, Affirmative}:
		return pastForm(verb, class)
	case inflection{Past, Plain, Negative}:
		return negativeStem(verb, class) + "なかった"
	case inflection{Past, Polite, Affirmative}:
		return politeStem(verb, class) + "ました"
	case inflection{Past, Polite, Negative}:
		return politeStem(verb, class) + "ませんでした"
	}
	panic(fmt.Sprintf("katsuyo: no surface pattern for %s %s %s", t, r, p))
}

// Conjugate returns the surface form of v for the given axes.
//
// Potential forms are built by deriving the potential verb first and
// conjugating it as a VowelStem verb. Conjugate panics with a
// *MalformedEndingError if v's ending does not match its class; verbs
// built with NewVerb never do.
func Conjugate(v Verb, t Tense, r Register, p Polarity, m Mode) string {
	switch m {
	case Immediate:
		return inflect(v.Dictionary, v.Class, t, r, p)
	case Potential:
		return inflect(potentialVerb(v.Dictionary, v.Class), VowelStem, t, r, p)
	}
	panic(fmt.Sprintf("katsuyo: unknown mode %s", m))
}

// Conjugate returns the surface form of v for f.
func (v Verb) Conjugate(f Form) string {
	return Conjugate(v, f.Tense, f.Register, f.Polarity, f.Mode)
}
