package service

import (
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func intPtr(n int) *int { return &n }

func TestDefaultPanelState(t *testing.T) {
	state := DefaultPanelState()
	if state.Length != 24 {
		t.Errorf("expected length 24, got %d", state.Length)
	}
	if state.Options != crypto.AllOptions() {
		t.Errorf("expected all classes enabled, got %+v", state.Options)
	}
}

func TestApplyUpdate(t *testing.T) {
	tests := []struct {
		name   string
		update model.PanelUpdate
		want   model.PanelState
	}{
		{
			name:   "no change",
			update: model.PanelUpdate{Action: ActionGenerate},
			want:   DefaultPanelState(),
		},
		{
			name:   "length",
			update: model.PanelUpdate{Length: intPtr(12)},
			want:   model.PanelState{Length: 12, Options: crypto.AllOptions()},
		},
		{
			name:   "length clamped low",
			update: model.PanelUpdate{Length: intPtr(2)},
			want:   model.PanelState{Length: MinLength, Options: crypto.AllOptions()},
		},
		{
			name:   "length clamped high",
			update: model.PanelUpdate{Length: intPtr(100)},
			want:   model.PanelState{Length: MaxLength, Options: crypto.AllOptions()},
		},
		{
			name:   "toggle symbols and numbers off",
			update: model.PanelUpdate{Symbols: boolPtr(false), Numbers: boolPtr(false)},
			want:   model.PanelState{Length: 24, Options: crypto.Options{Lowercase: true, Uppercase: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := DefaultPanelState()
			got := ApplyUpdate(before, tt.update)
			if got != tt.want {
				t.Errorf("ApplyUpdate() = %+v, want %+v", got, tt.want)
			}
			if before != DefaultPanelState() {
				t.Error("ApplyUpdate() modified its input")
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	if err := ValidateUpdate(model.PanelUpdate{}); err != nil {
		t.Errorf("empty action: unexpected error %v", err)
	}
	if err := ValidateUpdate(model.PanelUpdate{Action: ActionGenerate}); err != nil {
		t.Errorf("generate action: unexpected error %v", err)
	}
	if err := ValidateUpdate(model.PanelUpdate{Action: "copy"}); err != ErrUnknownAction {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestPanelRender(t *testing.T) {
	panel := NewPanel(crypto.NewSeededSource(4))

	view := panel.Render(DefaultPanelState())
	if len(view.Password) != 24 {
		t.Errorf("expected 24-character password, got %q", view.Password)
	}
	if view.Strength != crypto.Strong || view.Color != "green" {
		t.Errorf("expected Strong/green, got %s/%s", view.Strength, view.Color)
	}
	if !view.Lowercase || !view.Uppercase || !view.Numbers || !view.Symbols {
		t.Errorf("expected all switches on, got %+v", view)
	}
}

func TestPanelRenderAllOff(t *testing.T) {
	panel := NewPanel(crypto.NewSeededSource(4))

	view := panel.Render(model.PanelState{Length: 16})
	if view.Password != "" {
		t.Errorf("expected empty password, got %q", view.Password)
	}
	if view.Strength != crypto.Weak || view.Color != "red" {
		t.Errorf("expected Weak/red, got %s/%s", view.Strength, view.Color)
	}
}
