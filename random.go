package katsuyo

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randomByte reads one byte from the system's cryptographic source.
// Entropy is required; a read failure panics.
func randomByte() byte {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Errorf("katsuyo: random source unavailable: %w", err))
	}
	return b[0]
}

// pick returns a uniformly chosen option. The byte is reduced modulo
// len(options), which is unbiased for the two-valued axes.
func pick[T any](options []T) T {
	return options[int(randomByte())%len(options)]
}

// RandomTense returns Present or Past.
func RandomTense() Tense { return pick(Tenses()) }

// RandomRegister returns Plain or Polite.
func RandomRegister() Register { return pick(Registers()) }

// RandomPolarity returns Affirmative or Negative.
func RandomPolarity() Polarity { return pick(Polarities()) }

// RandomMode returns Immediate or Potential.
func RandomMode() Mode { return pick(Modes()) }

// RandomForm draws each axis independently.
func RandomForm() Form {
	return Form{
		Tense:    RandomTense(),
		Register: RandomRegister(),
		Polarity: RandomPolarity(),
		Mode:     RandomMode(),
	}
}

// RandomVerb returns a uniformly chosen verb from verbs, which must not be empty.
func RandomVerb(verbs []Verb) Verb {
	if len(verbs) == 0 {
		panic("katsuyo: RandomVerb on empty list")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(verbs))))
	if err != nil {
		panic(fmt.Errorf("katsuyo: random source unavailable: %w", err))
	}
	return verbs[n.Int64()]
}
