package katsuyo

// potentialVerb derives the potential verb from verb: みる → みられる,
// よむ → よめる, うんてんする → うんてんできる. The result always ends in
// る and conjugates as a VowelStem verb.
func potentialVerb(verb string, class VerbClass) string {
	switch class {
	case VowelStem:
		return dropLast(verb, 1) + "られる"
	case ConsonantStem:
		return dropLast(verb, 1) + potentialEnding.lookup(verb, class)
	case Irregular:
		return suruStem(verb) + "できる"
	}
	panic(unknownClass(verb, class))
}

// PotentialOf returns the potential form of v as a VowelStem verb with
// the same ID and gloss. It panics with a *MalformedEndingError when v's
// ending does not match its class.
func PotentialOf(v Verb) Verb {
	return Verb{
		ID:         v.ID,
		Class:      VowelStem,
		Dictionary: potentialVerb(v.Dictionary, v.Class),
		Gloss:      v.Gloss,
	}
}
