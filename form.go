package katsuyo

import (
	"fmt"
	"strings"
)

// Tense is the time axis of a conjugation.
type Tense int

const (
	Present Tense = iota
	Past
)

// Register is the politeness level of a conjugation.
type Register int

const (
	Plain Register = iota
	Polite
)

// Polarity selects affirmative or negative.
type Polarity int

const (
	Affirmative Polarity = iota
	Negative
)

// Mode selects the verb itself (Immediate) or its potential form.
type Mode int

const (
	Immediate Mode = iota
	Potential
)

func (t Tense) String() string {
	switch t {
	case Present:
		return "present"
	case Past:
		return "past"
	}
	return fmt.Sprintf("Tense(%d)", int(t))
}

func (r Register) String() string {
	switch r {
	case Plain:
		return "plain"
	case Polite:
		return "polite"
	}
	return fmt.Sprintf("Register(%d)", int(r))
}

func (p Polarity) String() string {
	switch p {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	}
	return fmt.Sprintf("Polarity(%d)", int(p))
}

func (m Mode) String() string {
	switch m {
	case Immediate:
		return "immediate"
	case Potential:
		return "potential"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// parseAxis matches s case-insensitively against the canonical names of options.
func parseAxis[T fmt.Stringer](axis, s string, options []T) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, o := range options {
		if o.String() == s {
			return o, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", axis, s)
}

// ParseTense parses "present" or "past".
func ParseTense(s string) (Tense, error) { return parseAxis("tense", s, Tenses()) }

// ParseRegister parses "plain" or "polite".
func ParseRegister(s string) (Register, error) { return parseAxis("register", s, Registers()) }

// ParsePolarity parses "affirmative" or "negative".
func ParsePolarity(s string) (Polarity, error) { return parseAxis("polarity", s, Polarities()) }

// ParseMode parses "immediate" or "potential".
func ParseMode(s string) (Mode, error) { return parseAxis("mode", s, Modes()) }

// Form is one combination of the four grammatical axes.
type Form struct {
	Tense    Tense
	Register Register
	Polarity Polarity
	Mode     Mode
}

// Name joins the canonical axis names in tense, register, polarity, mode
// order, e.g. "past_polite_negative_potential".
func (f Form) Name() string {
	return strings.Join([]string{
		f.Tense.String(), f.Register.String(), f.Polarity.String(), f.Mode.String(),
	}, "_")
}

func (f Form) String() string {
	return f.Name()
}

// ParseForm inverts Form.Name.
func ParseForm(name string) (Form, error) {
	parts := strings.Split(name, "_")
	if len(parts) != 4 {
		return Form{}, fmt.Errorf("form %q: want tense_register_polarity_mode", name)
	}
	var (
		f   Form
		err error
	)
	if f.Tense, err = ParseTense(parts[0]); err != nil {
		return Form{}, fmt.Errorf("form %q: %w", name, err)
	}
	if f.Register, err = ParseRegister(parts[1]); err != nil {
		return Form{}, fmt.Errorf("form %q: %w", name, err)
	}
	if f.Polarity, err = ParsePolarity(parts[2]); err != nil {
		return Form{}, fmt.Errorf("form %q: %w", name, err)
	}
	if f.Mode, err = ParseMode(parts[3]); err != nil {
		return Form{}, fmt.Errorf("form %q: %w", name, err)
	}
	return f, nil
}
