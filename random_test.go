package katsuyo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAxesCoverBothValues(t *testing.T) {
	tenses := make(map[Tense]int)
	registers := make(map[Register]int)
	polarities := make(map[Polarity]int)
	modes := make(map[Mode]int)
	for i := 0; i < 200; i++ {
		tenses[RandomTense()]++
		registers[RandomRegister()]++
		polarities[RandomPolarity()]++
		modes[RandomMode()]++
	}
	assert.Len(t, tenses, 2)
	assert.Len(t, registers, 2)
	assert.Len(t, polarities, 2)
	assert.Len(t, modes, 2)
}

func TestRandomForm(t *testing.T) {
	valid := make(map[Form]bool)
	for _, f := range AllForms() {
		valid[f] = true
	}
	for i := 0; i < 50; i++ {
		assert.True(t, valid[RandomForm()])
	}
}

func TestRandomVerb(t *testing.T) {
	verbs := SampleVerbs()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[RandomVerb(verbs).Name()] = true
	}
	assert.Len(t, seen, len(verbs))
	assert.Panics(t, func() { RandomVerb(nil) })
}
