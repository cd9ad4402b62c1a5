// Package drill runs conjugation drills: it poses a random verb in a
// random form, checks the learner's answer and keeps a history of
// attempts.
package drill

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nihongo-drills/katsuyo"
)

// Challenge asks for one conjugated form of a verb.
type Challenge struct {
	ID        uuid.UUID
	Verb      katsuyo.Verb
	Form      katsuyo.Form
	Prompt    string
	Answer    string
	CreatedAt time.Time
}

// NewChallenge builds the challenge for v in form f. The prompt is the
// English gloss with the register, e.g. "did not buy (polite)".
func NewChallenge(v katsuyo.Verb, f katsuyo.Form, now time.Time) Challenge {
	return Challenge{
		ID:        uuid.New(),
		Verb:      v,
		Form:      f,
		Prompt:    fmt.Sprintf("%s (%s)", v.Translate(f), f.Register),
		Answer:    v.Conjugate(f),
		CreatedAt: now,
	}
}

// RandomChallenge draws a verb from verbs and an independent random form.
func RandomChallenge(verbs []katsuyo.Verb, now time.Time) Challenge {
	return NewChallenge(katsuyo.RandomVerb(verbs), katsuyo.RandomForm(), now)
}

// Result is the outcome of answering a challenge.
type Result struct {
	Challenge Challenge
	Given     string
	Correct   bool
}
