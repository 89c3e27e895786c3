package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

const maxPresetNameLength = 64

var (
	ErrPresetNameRequired = errors.New("name is required")
	ErrPresetNameTooLong  = errors.New("name must be at most 64 characters")
	ErrPresetNotFound     = errors.New("preset not found")
	ErrPresetNameTaken    = errors.New("preset name already taken")
)

// PresetStore persists saved generator settings.
type PresetStore interface {
	Create(ctx context.Context, p *model.Preset) error
	GetByID(ctx context.Context, userID, id int64) (*model.Preset, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Preset, error)
	Update(ctx context.Context, p *model.Preset) error
	Delete(ctx context.Context, userID, id int64) error
}

// PresetService manages saved generator settings and generates from them.
type PresetService struct {
	store     PresetStore
	generator *GeneratorService
}

// NewPresetService creates a new PresetService.
func NewPresetService(store PresetStore, generator *GeneratorService) *PresetService {
	return &PresetService{store: store, generator: generator}
}

// Create saves a new preset for the user.
func (s *PresetService) Create(ctx context.Context, userID int64, req model.PresetRequest) (model.PresetResponse, error) {
	p := presetFromRequest(userID, req)
	if err := validatePreset(p); err != nil {
		return model.PresetResponse{}, err
	}

	if err := s.store.Create(ctx, &p); err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}

	return toPresetResponse(p), nil
}

// List returns every preset of the user.
func (s *PresetService) List(ctx context.Context, userID int64) ([]model.PresetResponse, error) {
	presets, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.PresetResponse, len(presets))
	for i, p := range presets {
		result[i] = toPresetResponse(p)
	}
	return result, nil
}

// Update replaces the settings of an existing preset.
func (s *PresetService) Update(ctx context.Context, userID, id int64, req model.PresetRequest) (model.PresetResponse, error) {
	p := presetFromRequest(userID, req)
	p.ID = id
	if err := validatePreset(p); err != nil {
		return model.PresetResponse{}, err
	}

	if err := s.store.Update(ctx, &p); err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}

	return toPresetResponse(p), nil
}

// Delete removes a preset.
func (s *PresetService) Delete(ctx context.Context, userID, id int64) error {
	return mapPresetError(s.store.Delete(ctx, userID, id))
}

// Generate produces a password from a saved preset.
func (s *PresetService) Generate(ctx context.Context, userID, id int64) (model.GenerateResponse, error) {
	p, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return model.GenerateResponse{}, mapPresetError(err)
	}

	opts := presetOptions(*p)
	if err := validateSettings(p.Length, opts); err != nil {
		return model.GenerateResponse{}, err
	}

	return s.generator.generate(p.Length, opts), nil
}

// validatePreset reports every problem with a preset at once.
func validatePreset(p model.Preset) error {
	var merr *multierror.Error

	name := strings.TrimSpace(p.Name)
	if name == "" {
		merr = multierror.Append(merr, ErrPresetNameRequired)
	} else if utf8.RuneCountInString(name) > maxPresetNameLength {
		merr = multierror.Append(merr, ErrPresetNameTooLong)
	}
	if p.Length < MinLength || p.Length > MaxLength {
		merr = multierror.Append(merr, ErrLengthOutOfRange)
	}
	if presetOptions(p).Count() == 0 {
		merr = multierror.Append(merr, ErrNoCharacterTypes)
	}

	if merr != nil {
		merr.ErrorFormat = joinErrors
	}
	return merr.ErrorOrNil()
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// IsPresetValidationError reports whether err came from preset validation.
func IsPresetValidationError(err error) bool {
	return errors.Is(err, ErrPresetNameRequired) ||
		errors.Is(err, ErrPresetNameTooLong) ||
		errors.Is(err, ErrLengthOutOfRange) ||
		errors.Is(err, ErrNoCharacterTypes)
}

func mapPresetError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPresetNotFound):
		return ErrPresetNotFound
	case errors.Is(err, repository.ErrDuplicatePreset):
		return ErrPresetNameTaken
	}
	return err
}

func presetFromRequest(userID int64, req model.PresetRequest) model.Preset {
	return model.Preset{
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Length:    req.Length,
		Lowercase: req.Lowercase,
		Uppercase: req.Uppercase,
		Numbers:   req.Numbers,
		Symbols:   req.Symbols,
	}
}

func presetOptions(p model.Preset) crypto.Options {
	return crypto.Options{
		Lowercase: p.Lowercase,
		Uppercase: p.Uppercase,
		Numbers:   p.Numbers,
		Symbols:   p.Symbols,
	}
}

func toPresetResponse(p model.Preset) model.PresetResponse {
	return model.PresetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Length:    p.Length,
		Lowercase: p.Lowercase,
		Uppercase: p.Uppercase,
		Numbers:   p.Numbers,
		Symbols:   p.Symbols,
		UpdatedAt: p.UpdatedAt,
	}
}
