// Package modules provides storage operations for course modules.
package modules

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

// Repository handles all module storage operations.
type Repository struct {
	store   *storage.Store
	modules *storage.Collection[entities.Module]
}

// NewRepository creates a new modules repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{
		store:   store,
		modules: storage.NewCollection[entities.Module](store, storage.KeyModules),
	}
}

func (r *Repository) GetModules() ([]entities.Module, error) {
	return r.modules.All()
}

func (r *Repository) GetModuleByID(id string) (*entities.Module, error) {
	module, ok, err := r.modules.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("module %s not found", id)
	}
	return &module, nil
}

// GetModulesByCourse returns the course's modules in creation order.
// Callers that need display order sort by Position.
func (r *Repository) GetModulesByCourse(courseID string) ([]entities.Module, error) {
	return r.modules.Filter(func(m entities.Module) bool { return m.CourseID == courseID })
}

func (r *Repository) CreateModule(in entities.NewModule) (*entities.Module, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := r.store.Now()
	module := entities.Module{
		ID:        r.store.NewID(),
		Title:     in.Title,
		CourseID:  in.CourseID,
		Position:  in.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.modules.Insert(module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *Repository) UpdateModule(id string, upd entities.ModuleUpdate) (*entities.Module, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	module, ok, err := r.modules.Update(id, func(m *entities.Module) {
		upd.Apply(m)
		m.UpdatedAt = r.store.Now()
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("module %s not found", id)
	}
	return &module, nil
}
