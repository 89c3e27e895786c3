package crypto

import (
	"fmt"
	"unicode/utf8"
)

// Strength is a qualitative rating of a password.
type Strength int

const (
	Weak Strength = iota
	Fair
	Good
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "Weak"
	case Fair:
		return "Fair"
	case Good:
		return "Good"
	case Strong:
		return "Strong"
	}
	return fmt.Sprintf("Strength(%d)", int(s))
}

// Color returns the badge color shown next to the rating.
func (s Strength) Color() string {
	switch s {
	case Weak:
		return "red"
	case Fair:
		return "orange"
	case Good:
		return "yellow"
	case Strong:
		return "green"
	}
	return ""
}

// MarshalText encodes the strength as its label.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a label produced by MarshalText.
func (s *Strength) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Weak":
		*s = Weak
	case "Fair":
		*s = Fair
	case "Good":
		*s = Good
	case "Strong":
		*s = Strong
	default:
		return fmt.Errorf("unknown strength %q", text)
	}
	return nil
}

// Analysis holds the character-type breakdown behind a strength rating.
type Analysis struct {
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
	TypeCount int
	Length    int
	Strength  Strength
}

// Analyze inspects a password. Anything outside [a-zA-Z0-9] counts as a symbol.
// Length is measured in runes.
func Analyze(password string) Analysis {
	var a Analysis
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			a.Lowercase = true
		case r >= 'A' && r <= 'Z':
			a.Uppercase = true
		case r >= '0' && r <= '9':
			a.Numbers = true
		default:
			a.Symbols = true
		}
	}

	for _, present := range []bool{a.Lowercase, a.Uppercase, a.Numbers, a.Symbols} {
		if present {
			a.TypeCount++
		}
	}
	a.Length = utf8.RuneCountInString(password)
	a.Strength = rate(a.Length, a.TypeCount)

	return a
}

// Classify rates a password. It is total over all strings.
func Classify(password string) Strength {
	return Analyze(password).Strength
}

// rate applies the rules in order; the conditions overlap, so order matters.
func rate(length, typeCount int) Strength {
	if length >= 24 && typeCount == 4 {
		return Strong
	}
	if length >= 18 && typeCount >= 3 {
		return Good
	}
	if length >= 12 || typeCount >= 2 {
		return Fair
	}
	return Weak
}
