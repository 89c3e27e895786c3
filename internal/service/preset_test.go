package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func newTestPresetService() *PresetService {
	return NewPresetService(newMemoryPresets(), newTestGeneratorService())
}

func validPresetRequest() model.PresetRequest {
	return model.PresetRequest{Name: "work", Length: 20, Lowercase: true, Uppercase: true, Numbers: true}
}

func TestValidatePreset_ReportsEveryProblem(t *testing.T) {
	err := validatePreset(model.Preset{Name: " ", Length: 4})
	if err == nil {
		t.Fatal("expected validation error")
	}

	for _, want := range []error{ErrPresetNameRequired, ErrLengthOutOfRange, ErrNoCharacterTypes} {
		if !errors.Is(err, want) {
			t.Errorf("expected %v in %v", want, err)
		}
	}
	if errors.Is(err, ErrPresetNameTooLong) {
		t.Errorf("unexpected ErrPresetNameTooLong in %v", err)
	}
	if !IsPresetValidationError(err) {
		t.Error("IsPresetValidationError() = false, want true")
	}
}

func TestValidatePreset_NameTooLong(t *testing.T) {
	p := presetFromRequest(1, validPresetRequest())
	p.Name = strings.Repeat("n", maxPresetNameLength+1)

	if err := validatePreset(p); !errors.Is(err, ErrPresetNameTooLong) {
		t.Errorf("expected ErrPresetNameTooLong, got %v", err)
	}
}

func TestValidatePreset_Valid(t *testing.T) {
	if err := validatePreset(presetFromRequest(1, validPresetRequest())); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPresetLifecycle(t *testing.T) {
	svc := newTestPresetService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, validPresetRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.ID == 0 || created.Name != "work" {
		t.Fatalf("unexpected preset: %+v", created)
	}

	if _, err := svc.Create(ctx, 1, validPresetRequest()); err != ErrPresetNameTaken {
		t.Errorf("expected ErrPresetNameTaken, got %v", err)
	}

	gen, err := svc.Generate(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(gen.Password) != 20 {
		t.Errorf("expected 20-character password, got %q", gen.Password)
	}
	if strings.ContainsAny(gen.Password, crypto.Symbols.Alphabet()) {
		t.Errorf("password %q contains symbols from a preset without them", gen.Password)
	}
	if gen.Strength != crypto.Good {
		t.Errorf("expected Good, got %s", gen.Strength)
	}

	update := validPresetRequest()
	update.Length = 32
	update.Symbols = true
	updated, err := svc.Update(ctx, 1, created.ID, update)
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Length != 32 || !updated.Symbols {
		t.Errorf("unexpected updated preset: %+v", updated)
	}

	list, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(list))
	}

	if err := svc.Delete(ctx, 1, created.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, 1, created.ID); err != ErrPresetNotFound {
		t.Errorf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestPresetOwnership(t *testing.T) {
	svc := newTestPresetService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, validPresetRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if _, err := svc.Generate(ctx, 2, created.ID); err != ErrPresetNotFound {
		t.Errorf("Generate() by other user: expected ErrPresetNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, 2, created.ID, validPresetRequest()); err != ErrPresetNotFound {
		t.Errorf("Update() by other user: expected ErrPresetNotFound, got %v", err)
	}

	list, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %d presets", len(list))
	}
}

func TestPresetCreate_InvalidSkipsStore(t *testing.T) {
	store := newMemoryPresets()
	svc := NewPresetService(store, newTestGeneratorService())

	_, err := svc.Create(context.Background(), 1, model.PresetRequest{Name: "x", Length: 40})
	if !IsPresetValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.byID) != 0 {
		t.Errorf("expected nothing stored, got %d presets", len(store.byID))
	}
}

func TestValidatePreset_Message(t *testing.T) {
	err := validatePreset(model.Preset{Name: "ok", Length: 50})
	want := "password length must be between 8 and 32; at least one character type must be selected"
	if err == nil || err.Error() != want {
		t.Errorf("error message = %v, want %q", err, want)
	}
}
