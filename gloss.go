package katsuyo

// glossPrefix is the English auxiliary for each (mode, tense) pair.
var glossPrefix = map[Mode]map[Tense]string{
	Immediate: {Present: "will", Past: "did"},
	Potential: {Present: "can", Past: "could"},
}

// Translate returns the English gloss of v for the given axes, e.g.
// "will see", "did not buy", "could not go home". Register has no
// English counterpart and is not an argument.
func Translate(v Verb, t Tense, p Polarity, m Mode) string {
	sep := " "
	if p == Negative {
		sep = " not "
	}
	return glossPrefix[m][t] + sep + v.Gloss
}

// Translate returns the English gloss of v for f.
func (v Verb) Translate(f Form) string {
	return Translate(v, f.Tense, f.Polarity, f.Mode)
}
