package service

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// Slider range for requested lengths. The core generator accepts any length;
// the API enforces the same bounds the control panel offers.
const (
	MinLength     = 8
	MaxLength     = 32
	DefaultLength = 24
)

var (
	ErrLengthOutOfRange = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src crypto.RandomSource
}

// NewGeneratorService creates a GeneratorService drawing from src.
func NewGeneratorService(src crypto.RandomSource) *GeneratorService {
	return &GeneratorService{src: src}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}

	opts := crypto.Options{
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if err := validateSettings(length, opts); err != nil {
		return model.GenerateResponse{}, err
	}

	return s.generate(length, opts), nil
}

// Strength rates an arbitrary password.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	a := crypto.Analyze(req.Password)
	return model.StrengthResponse{
		Strength:  a.Strength,
		Color:     a.Strength.Color(),
		Length:    a.Length,
		TypeCount: a.TypeCount,
		Lowercase: a.Lowercase,
		Uppercase: a.Uppercase,
		Numbers:   a.Numbers,
		Symbols:   a.Symbols,
	}
}

func (s *GeneratorService) generate(length int, opts crypto.Options) model.GenerateResponse {
	password := crypto.Generate(length, opts, s.src)
	strength := crypto.Classify(password)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strength,
		Color:    strength.Color(),
	}
}

func validateSettings(length int, opts crypto.Options) error {
	if length < MinLength || length > MaxLength {
		return ErrLengthOutOfRange
	}
	if opts.Count() == 0 {
		return ErrNoCharacterTypes
	}
	return nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
