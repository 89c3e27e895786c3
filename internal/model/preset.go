package model

import "time"

// Preset is a saved set of generator settings owned by a user.
// Only the settings are stored, never a generated password.
type Preset struct {
	ID        int64
	UserID    int64
	Name      string
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PresetRequest represents a preset create or update request.
type PresetRequest struct {
	Name      string `json:"name"`
	Length    int    `json:"length"`
	Lowercase bool   `json:"lowercase"`
	Uppercase bool   `json:"uppercase"`
	Numbers   bool   `json:"numbers"`
	Symbols   bool   `json:"symbols"`
}

// PresetResponse represents a preset in API responses.
type PresetResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Length    int       `json:"length"`
	Lowercase bool      `json:"lowercase"`
	Uppercase bool      `json:"uppercase"`
	Numbers   bool      `json:"numbers"`
	Symbols   bool      `json:"symbols"`
	UpdatedAt time.Time `json:"updated_at"`
}
