package service

import (
	"context"
	"sync"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

type memoryUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[int64]*model.User)}
}

func (m *memoryUsers) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.byID[user.ID] = &stored
	return nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

type memoryPresets struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]model.Preset
}

func newMemoryPresets() *memoryPresets {
	return &memoryPresets{byID: make(map[int64]model.Preset)}
}

func (m *memoryPresets) duplicate(p *model.Preset) bool {
	for id, other := range m.byID {
		if id != p.ID && other.UserID == p.UserID && other.Name == p.Name {
			return true
		}
	}
	return false
}

func (m *memoryPresets) Create(_ context.Context, p *model.Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.duplicate(p) {
		return repository.ErrDuplicatePreset
	}
	m.nextID++
	p.ID = m.nextID
	m.byID[p.ID] = *p
	return nil
}

func (m *memoryPresets) GetByID(_ context.Context, userID, id int64) (*model.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrPresetNotFound
	}
	return &p, nil
}

func (m *memoryPresets) ListByUser(_ context.Context, userID int64) ([]model.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Preset
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.byID[id]; ok && p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryPresets) Update(_ context.Context, p *model.Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.byID[p.ID]
	if !ok || existing.UserID != p.UserID {
		return repository.ErrPresetNotFound
	}
	if m.duplicate(p) {
		return repository.ErrDuplicatePreset
	}
	m.byID[p.ID] = *p
	return nil
}

func (m *memoryPresets) Delete(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok || p.UserID != userID {
		return repository.ErrPresetNotFound
	}
	delete(m.byID, id)
	return nil
}
