package katsuyo

// Tenses returns every Tense, Present first.
func Tenses() []Tense { return []Tense{Present, Past} }

// Registers returns every Register, Plain first.
func Registers() []Register { return []Register{Plain, Polite} }

// Polarities returns every Polarity, Affirmative first.
func Polarities() []Polarity { return []Polarity{Affirmative, Negative} }

// Modes returns every Mode, Immediate first.
func Modes() []Mode { return []Mode{Immediate, Potential} }

// AllForms returns the 16 Forms in tense, register, polarity, mode
// nesting order: present_plain_affirmative_immediate first,
// past_polite_negative_potential last.
func AllForms() []Form {
	all := make([]Form, 0, 16)
	for _, t := range Tenses() {
		for _, r := range Registers() {
			for _, p := range Polarities() {
				for _, m := range Modes() {
					all = append(all, Form{Tense: t, Register: r, Polarity: p, Mode: m})
				}
			}
		}
	}
	return all
}
