package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrPresetNotFound  = errors.New("preset not found")
	ErrDuplicatePreset = errors.New("preset name already exists")
)

const presetColumns = `id, user_id, name, length, lowercase, uppercase, numbers, symbols, created_at, updated_at`

// PresetRepository handles saved generator settings.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// Create inserts a preset and sets its generated ID.
func (r *PresetRepository) Create(ctx context.Context, p *model.Preset) error {
	query := `INSERT INTO presets (user_id, name, length, lowercase, uppercase, numbers, symbols)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Length, p.Lowercase, p.Uppercase, p.Numbers, p.Symbols,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicatePreset
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

// GetByID retrieves a preset owned by the user.
func (r *PresetRepository) GetByID(ctx context.Context, userID, id int64) (*model.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE user_id = ? AND id = ?`

	p, err := scanPreset(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}

	return p, nil
}

// ListByUser retrieves all presets of a user ordered by name.
func (r *PresetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE user_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, *p)
	}

	return presets, rows.Err()
}

// Update overwrites the settings of a preset owned by the user.
func (r *PresetRepository) Update(ctx context.Context, p *model.Preset) error {
	query := `UPDATE presets SET name = ?, length = ?, lowercase = ?, uppercase = ?, numbers = ?, symbols = ?
		WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Length, p.Lowercase, p.Uppercase, p.Numbers, p.Symbols, p.UserID, p.ID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicatePreset
		}
		return err
	}

	return requireAffected(result)
}

// Delete removes a preset owned by the user.
func (r *PresetRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// requireAffected maps an update that touched no row to ErrPresetNotFound.
// MySQL reports 0 affected rows for an UPDATE that changes nothing unless the
// DSN sets clientFoundRows=true, which config's default DSN does.
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPresetNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*model.Preset, error) {
	p := &model.Preset{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Length,
		&p.Lowercase, &p.Uppercase, &p.Numbers, &p.Symbols,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
