// Package katsuyo conjugates Japanese verbs.
//
// Given a verb's dictionary form and class, it derives the surface form
// for any combination of tense, politeness register, polarity and
// potential mode, together with an English gloss. All conjugation is
// pure computation over immutable values and is safe for concurrent use.
package katsuyo

import (
	"errors"
	"fmt"
	"path/filepath"
)

// VerbsFile is the lexicon file read from a data directory.
const VerbsFile = "verbs.txt"

// ErrEmptyLexicon is returned when a lexicon would hold no verbs.
var ErrEmptyLexicon = errors.New("lexicon has no verbs")

// Lexicon is an indexed list of verbs with a reverse index from surface
// forms to the verbs and forms that produce them.
type Lexicon struct {
	verbs []Verb

	// byName maps Verb.Name → index into verbs.
	byName map[string]int

	// byDictionary maps dictionary form → indices into verbs (homographs share a key).
	byDictionary map[string][]int

	// surfaces maps every normalized conjugated surface → its analyses.
	surfaces map[string][]Analysis
}

// New loads dataDir/verbs.txt and returns a ready-to-use Lexicon. An
// empty dataDir yields a Lexicon of SampleVerbs.
func New(dataDir string) (*Lexicon, error) {
	if dataDir == "" {
		return NewLexicon(SampleVerbs())
	}
	path := filepath.Join(dataDir, VerbsFile)
	verbs, err := loadVerbs(path)
	if err != nil {
		return nil, err
	}
	if len(verbs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyLexicon)
	}
	return NewLexicon(verbs)
}

// NewLexicon indexes verbs. There must be at least one verb, every verb
// must validate and names must be unique.
func NewLexicon(verbs []Verb) (*Lexicon, error) {
	if len(verbs) == 0 {
		return nil, ErrEmptyLexicon
	}
	l := &Lexicon{
		verbs:        make([]Verb, 0, len(verbs)),
		byName:       make(map[string]int, len(verbs)),
		byDictionary: make(map[string][]int, len(verbs)),
		surfaces:     make(map[string][]Analysis),
	}
	for _, v := range verbs {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if _, dup := l.byName[v.Name()]; dup {
			return nil, fmt.Errorf("duplicate verb %s", v.Name())
		}
		l.add(v)
	}
	return l, nil
}

func (l *Lexicon) add(v Verb) {
	i := len(l.verbs)
	l.verbs = append(l.verbs, v)
	l.byName[v.Name()] = i
	l.byDictionary[v.Dictionary] = append(l.byDictionary[v.Dictionary], i)
	for _, c := range InflectionTable(v).Cells {
		key := Normalize(c.Surface)
		l.surfaces[key] = append(l.surfaces[key], Analysis{Verb: v, Form: c.Form, Gloss: c.Gloss})
	}
}

// Verbs returns a copy of the lexicon's verbs in load order.
func (l *Lexicon) Verbs() []Verb {
	out := make([]Verb, len(l.verbs))
	copy(out, l.verbs)
	return out
}

// Len returns the number of verbs.
func (l *Lexicon) Len() int {
	return len(l.verbs)
}

// Verb looks a verb up by canonical name ("9_行く") or, failing that, by
// dictionary form (the first verb loaded with that form).
func (l *Lexicon) Verb(key string) (Verb, bool) {
	if i, ok := l.byName[key]; ok {
		return l.verbs[i], true
	}
	if idx := l.byDictionary[key]; len(idx) > 0 {
		return l.verbs[idx[0]], true
	}
	return Verb{}, false
}

// Find returns every verb whose dictionary form is dictionary.
func (l *Lexicon) Find(dictionary string) []Verb {
	var out []Verb
	for _, i := range l.byDictionary[dictionary] {
		out = append(out, l.verbs[i])
	}
	return out
}

// Analyze returns every (verb, form) of the lexicon whose conjugation
// matches surface after Normalize, in load order then AllForms order.
// Surfaces of verbs outside the lexicon are not recognised.
func (l *Lexicon) Analyze(surface string) []Analysis {
	found := l.surfaces[Normalize(surface)]
	out := make([]Analysis, len(found))
	copy(out, found)
	return out
}
