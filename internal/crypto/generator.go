package crypto

// CharacterClass identifies one of the fixed alphabets a password can draw from.
type CharacterClass int

const (
	Lowercase CharacterClass = iota
	Uppercase
	Numbers
	Symbols
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = `!@#$%^&*()_+{}:"<>?~`
)

// Classes lists every character class in declaration order.
// Generation walks this array, never a map, so the round-robin fill is stable.
var Classes = [...]CharacterClass{Lowercase, Uppercase, Numbers, Symbols}

// Alphabet returns the ordered characters belonging to the class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Numbers:
		return numberChars
	case Symbols:
		return symbolChars
	}
	return ""
}

func (c CharacterClass) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Numbers:
		return "numbers"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// Options records which character classes are enabled.
// The zero value enables nothing and is valid input to Generate.
type Options struct {
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// AllOptions enables every character class.
func AllOptions() Options {
	return Options{Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}
}

// Enabled reports whether the class is switched on.
func (o Options) Enabled(c CharacterClass) bool {
	switch c {
	case Lowercase:
		return o.Lowercase
	case Uppercase:
		return o.Uppercase
	case Numbers:
		return o.Numbers
	case Symbols:
		return o.Symbols
	}
	return false
}

// Count returns the number of enabled classes.
func (o Options) Count() int {
	n := 0
	for _, c := range Classes {
		if o.Enabled(c) {
			n++
		}
	}
	return n
}

// Generate builds a password of exactly length characters.
//
// Position i is filled from the (i mod k)-th enabled alphabet, so every enabled
// class appears at least once whenever length >= k. The result is then
// permuted with a Fisher-Yates shuffle. All fill draws happen before any
// shuffle draw, which keeps output reproducible under a seeded source.
//
// Generate never fails: no enabled classes or a non-positive length yield "".
func Generate(length int, opts Options, src RandomSource) string {
	alphabets := activeAlphabets(opts)
	if len(alphabets) == 0 || length <= 0 {
		return ""
	}

	result := fill(length, alphabets, src)
	shuffle(result, src)

	return string(result)
}

// activeAlphabets returns the enabled alphabets in class declaration order.
func activeAlphabets(opts Options) []string {
	var alphabets []string
	for _, c := range Classes {
		if opts.Enabled(c) {
			alphabets = append(alphabets, c.Alphabet())
		}
	}
	return alphabets
}

// fill picks one random character per position, cycling through alphabets.
func fill(length int, alphabets []string, src RandomSource) []byte {
	result := make([]byte, length)
	for i := range result {
		alphabet := alphabets[i%len(alphabets)]
		result[i] = alphabet[src.IntN(len(alphabet))]
	}
	return result
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle(data []byte, src RandomSource) {
	for i := len(data) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
