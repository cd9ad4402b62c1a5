package katsuyo

// Analysis identifies a surface form as one conjugation of a known verb.
type Analysis struct {
	// Verb is the lexicon verb that produces the surface form.
	Verb Verb
	// Form is the grammatical form producing it.
	Form Form
	// Gloss is the English gloss of that form.
	Gloss string
}
