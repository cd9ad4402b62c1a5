package katsuyo

import "strings"

// negativeStem returns the stem ない attaches to: みる → み, かう → かわ,
// うんてんする → うんてんし.
func negativeStem(verb string, class VerbClass) string {
	switch class {
	case VowelStem:
		return dropLast(verb, 1)
	case ConsonantStem:
		return dropLast(verb, 1) + aRow.lookup(verb, class)
	case Irregular:
		return suruStem(verb) + "し"
	}
	panic(unknownClass(verb, class))
}

// politeStem returns the stem ます attaches to: みる → み, かう → かい,
// うんてんする → うんてんし.
func politeStem(verb string, class VerbClass) string {
	switch class {
	case VowelStem:
		return dropLast(verb, 1)
	case ConsonantStem:
		return dropLast(verb, 1) + iRow.lookup(verb, class)
	case Irregular:
		return suruStem(verb) + "し"
	}
	panic(unknownClass(verb, class))
}

// pastForm returns the plain past affirmative: みた, かった, よんだ, うんてんした.
func pastForm(verb string, class VerbClass) string {
	switch class {
	case VowelStem:
		return dropLast(verb, 1) + "た"
	case ConsonantStem:
		if isIku(verb) {
			return dropLast(verb, 1) + "った"
		}
		return dropLast(verb, 1) + pastCluster.lookup(verb, class)
	case Irregular:
		return suruStem(verb) + "した"
	}
	panic(unknownClass(verb, class))
}

// isIku reports whether verb is 行く or a compound of it. Those take った
// in the past instead of the regular く → いた. The ていく suffix is a
// heuristic and would also catch an unrelated verb ending in ていく.
func isIku(verb string) bool {
	return verb == "いく" || strings.HasSuffix(verb, "行く") || strings.HasSuffix(verb, "ていく")
}

func unknownClass(verb string, class VerbClass) *MalformedEndingError {
	return &MalformedEndingError{Verb: verb, Class: class, Ending: lastKana(verb), Table: "class"}
}
