package katsuyo

import (
	"fmt"
	"strconv"
	"strings"
)

// VerbClass is the conjugation class of a verb. It never changes once a
// verb is constructed.
type VerbClass int

const (
	// ConsonantStem verbs ("u-verbs") shift their final kana across kana rows.
	ConsonantStem VerbClass = iota
	// VowelStem verbs ("ru-verbs") end in る and conjugate by truncation.
	VowelStem
	// Irregular verbs are する and its compounds (うんてんする).
	Irregular
)

func (c VerbClass) String() string {
	switch c {
	case ConsonantStem:
		return "u"
	case VowelStem:
		return "ru"
	case Irregular:
		return "suru"
	}
	return "VerbClass(" + strconv.Itoa(int(c)) + ")"
}

// ParseVerbClass accepts the canonical names (u, ru, suru) as well as
// consonant, vowel and irregular.
func ParseVerbClass(s string) (VerbClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "consonant", "godan":
		return ConsonantStem, nil
	case "ru", "vowel", "ichidan":
		return VowelStem, nil
	case "suru", "irregular":
		return Irregular, nil
	}
	return 0, fmt.Errorf("unknown verb class %q", s)
}

// Verb is a dictionary-form verb with its class and English gloss.
// Verbs are plain values: conjugating one never modifies it.
type Verb struct {
	// ID is the verb's identifier within its source list.
	ID int
	// Class is the conjugation class.
	Class VerbClass
	// Dictionary is the plain present affirmative form (みる, 行く, うんてんする).
	Dictionary string
	// Gloss is the English base meaning, without "to" (see, go home).
	Gloss string
}

// NewVerb builds a Verb after checking that its dictionary form ends the
// way its class requires. The returned error wraps ErrMalformedEnding.
func NewVerb(id int, class VerbClass, dictionary, gloss string) (Verb, error) {
	v := Verb{ID: id, Class: class, Dictionary: dictionary, Gloss: gloss}
	if err := v.Validate(); err != nil {
		return Verb{}, err
	}
	return v, nil
}

// Validate checks the class/ending invariant without panicking.
func (v Verb) Validate() error {
	n := len([]rune(v.Dictionary))
	ending := lastKana(v.Dictionary)
	switch v.Class {
	case VowelStem:
		if n >= 2 && ending == "る" {
			return nil
		}
	case ConsonantStem:
		if n >= 2 && aRow.has(ending) {
			return nil
		}
	case Irregular:
		if strings.HasSuffix(v.Dictionary, suruSuffix) {
			return nil
		}
	default:
		return fmt.Errorf("verb %q: unknown class %d", v.Dictionary, int(v.Class))
	}
	return fmt.Errorf("verb %q cannot be %s: %w", v.Dictionary, v.Class, ErrMalformedEnding)
}

// Name returns the identity string id_dictionary, e.g. "1_みる".
func (v Verb) Name() string {
	return strconv.Itoa(v.ID) + "_" + v.Dictionary
}

func (v Verb) String() string {
	return v.Name()
}

// ParseVerbLine parses one lexicon line of the form
// id|class|dictionary|gloss and validates the result.
func ParseVerbLine(line string) (Verb, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 4 {
		return Verb{}, fmt.Errorf("want 4 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Verb{}, fmt.Errorf("bad id: %w", err)
	}
	class, err := ParseVerbClass(parts[1])
	if err != nil {
		return Verb{}, err
	}
	return NewVerb(id, class, strings.TrimSpace(parts[2]), strings.TrimSpace(parts[3]))
}
