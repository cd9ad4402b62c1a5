package katsuyo

// SampleVerbs returns a fixed demonstration list covering every
// consonant-stem ending, a vowel-stem verb, 行く and two する verbs.
func SampleVerbs() []Verb {
	return []Verb{
		{ID: 1, Class: VowelStem, Dictionary: "みる", Gloss: "see"},
		{ID: 2, Class: ConsonantStem, Dictionary: "かう", Gloss: "buy"},
		{ID: 3, Class: ConsonantStem, Dictionary: "まつ", Gloss: "wait"},
		{ID: 4, Class: ConsonantStem, Dictionary: "かえる", Gloss: "go home"},
		{ID: 5, Class: ConsonantStem, Dictionary: "よむ", Gloss: "read"},
		{ID: 6, Class: ConsonantStem, Dictionary: "あそぶ", Gloss: "play"},
		{ID: 7, Class: ConsonantStem, Dictionary: "しぬ", Gloss: "die"},
		{ID: 8, Class: ConsonantStem, Dictionary: "かく", Gloss: "write"},
		{ID: 9, Class: ConsonantStem, Dictionary: "行く", Gloss: "go"},
		{ID: 10, Class: ConsonantStem, Dictionary: "ぬぐ", Gloss: "disrobe"},
		{ID: 11, Class: ConsonantStem, Dictionary: "さがす", Gloss: "search"},
		{ID: 12, Class: VowelStem, Dictionary: "たべる", Gloss: "eat"},
		{ID: 13, Class: Irregular, Dictionary: "うんてんする", Gloss: "drive"},
		{ID: 14, Class: Irregular, Dictionary: "する", Gloss: "do"},
	}
}
