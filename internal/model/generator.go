package model

import "github.com/passforge/passforge-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a generated password and its rating.
type GenerateResponse struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Strength crypto.Strength `json:"strength"`
	Color    string          `json:"color"`
}

// StrengthRequest asks for the rating of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is the rating of a password with its character-type breakdown.
type StrengthResponse struct {
	Strength  crypto.Strength `json:"strength"`
	Color     string          `json:"color"`
	Length    int             `json:"length"`
	TypeCount int             `json:"type_count"`
	Lowercase bool            `json:"lowercase"`
	Uppercase bool            `json:"uppercase"`
	Numbers   bool            `json:"numbers"`
	Symbols   bool            `json:"symbols"`
}
