package model

import "github.com/passforge/passforge-go/internal/crypto"

// PanelState is the full input of the live control panel.
// Each change produces a new value; the password is derived from it.
type PanelState struct {
	Length  int
	Options crypto.Options
}

// PanelUpdate is one inbound panel message. Nil fields are left unchanged.
// Action "generate" re-rolls the password without changing the state.
type PanelUpdate struct {
	Action    string `json:"action,omitempty"`
	Length    *int   `json:"length,omitempty"`
	Lowercase *bool  `json:"lowercase,omitempty"`
	Uppercase *bool  `json:"uppercase,omitempty"`
	Numbers   *bool  `json:"numbers,omitempty"`
	Symbols   *bool  `json:"symbols,omitempty"`
}

// PanelView is what the panel displays after each change.
type PanelView struct {
	Length    int             `json:"length"`
	Lowercase bool            `json:"lowercase"`
	Uppercase bool            `json:"uppercase"`
	Numbers   bool            `json:"numbers"`
	Symbols   bool            `json:"symbols"`
	Password  string          `json:"password"`
	Strength  crypto.Strength `json:"strength"`
	Color     string          `json:"color"`
}
