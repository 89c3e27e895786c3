package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNewRepositories(t *testing.T) {
	if repo := NewUserRepository(nil); repo == nil || repo.db != nil {
		t.Fatal("expected non-nil UserRepository with nil db")
	}
	if repo := NewPresetRepository(nil); repo == nil || repo.db != nil {
		t.Fatal("expected non-nil PresetRepository with nil db")
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrUserNotFound, "user not found"},
		{ErrDuplicateEmail, "email already exists"},
		{ErrPresetNotFound, "preset not found"},
		{ErrDuplicatePreset, "preset name already exists"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected error message: %s", tt.err)
		}
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("Duplicate entry 'x' for key 'email'"), want: false},
		{name: "other mysql error", err: &mysql.MySQLError{Number: 1146, Message: "table doesn't exist"}, want: false},
		{name: "duplicate entry", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, want: true},
		{name: "wrapped duplicate", err: fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateEntryError(tt.err); got != tt.want {
				t.Errorf("isDuplicateEntryError() = %v, want %v", got, tt.want)
			}
		})
	}
}

type fakeResult struct {
	affected int64
	err      error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, r.err }

func TestRequireAffected(t *testing.T) {
	if err := requireAffected(fakeResult{affected: 1}); err != nil {
		t.Errorf("requireAffected(1) = %v, want nil", err)
	}
	if err := requireAffected(fakeResult{affected: 0}); err != ErrPresetNotFound {
		t.Errorf("requireAffected(0) = %v, want ErrPresetNotFound", err)
	}
	boom := errors.New("boom")
	if err := requireAffected(fakeResult{err: boom}); err != boom {
		t.Errorf("requireAffected(err) = %v, want %v", err, boom)
	}
}
