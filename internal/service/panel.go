package service

import (
	"errors"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// ActionGenerate re-rolls the password without changing the panel state.
const ActionGenerate = "generate"

var ErrUnknownAction = errors.New("unknown panel action")

// Panel recomputes the live control panel from explicit state values.
type Panel struct {
	src crypto.RandomSource
}

// NewPanel creates a Panel drawing from src.
func NewPanel(src crypto.RandomSource) *Panel {
	return &Panel{src: src}
}

// DefaultPanelState is what a freshly opened panel shows.
func DefaultPanelState() model.PanelState {
	return model.PanelState{Length: DefaultLength, Options: crypto.AllOptions()}
}

// ValidateUpdate rejects updates carrying an unrecognised action.
func ValidateUpdate(u model.PanelUpdate) error {
	if u.Action != "" && u.Action != ActionGenerate {
		return ErrUnknownAction
	}
	return nil
}

// ApplyUpdate returns the state after an update. The input is not modified.
// Lengths are clamped to the slider range.
func ApplyUpdate(state model.PanelState, u model.PanelUpdate) model.PanelState {
	if u.Length != nil {
		state.Length = min(max(*u.Length, MinLength), MaxLength)
	}
	if u.Lowercase != nil {
		state.Options.Lowercase = *u.Lowercase
	}
	if u.Uppercase != nil {
		state.Options.Uppercase = *u.Uppercase
	}
	if u.Numbers != nil {
		state.Options.Numbers = *u.Numbers
	}
	if u.Symbols != nil {
		state.Options.Symbols = *u.Symbols
	}
	return state
}

// Render generates a fresh password for the state. With every class switched
// off the password is empty and rated Weak.
func (p *Panel) Render(state model.PanelState) model.PanelView {
	password := crypto.Generate(state.Length, state.Options, p.src)
	strength := crypto.Classify(password)

	return model.PanelView{
		Length:    state.Length,
		Lowercase: state.Options.Lowercase,
		Uppercase: state.Options.Uppercase,
		Numbers:   state.Options.Numbers,
		Symbols:   state.Options.Symbols,
		Password:  password,
		Strength:  strength,
		Color:     strength.Color(),
	}
}
